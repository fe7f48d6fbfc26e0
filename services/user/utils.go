package user

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"blueriver/models"
	"blueriver/utils"
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	var hasLetter, hasNumber bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}
	if len(pw) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", models.ErrValidation)
	}
	if !hasLetter || !hasNumber {
		return fmt.Errorf("%w: password must include at least one letter and one number", models.ErrValidation)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := utils.GenerateToken(u.ID, u.Email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{ID: u.ID, Token: token, Name: u.Name, Email: u.Email}, nil
}
