package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blueriver/models"
	"blueriver/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the data, rejects duplicate emails, stores the user with a
// bcrypt password hash and returns a signed token.
func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*AuthResponse, error) {
	name := strings.TrimSpace(data.Name)
	email := normalizeEmail(data.Email)
	if name == "" || email == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}
	if err := VerifyPasswordComplexity(data.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, models.ErrEmailTaken
	case err != nil && !errors.Is(err, models.ErrNotFound):
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(u)
}
