package utils

import (
	"errors"
	"fmt"
	"time"

	"blueriver/config"

	"github.com/golang-jwt/jwt"
)

// devSecret signs tokens when JWT_SECRET is unset. Production refuses to issue them.
const devSecret = "BLUE-RIVER"

var errNoSecret = errors.New("JWT_SECRET is not configured")

// GuestClaims are the claims carried by an access token. Subject is the user ID.
type GuestClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

func signingKey() ([]byte, error) {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s), nil
	}
	if config.IsProduction() {
		return nil, errNoSecret
	}
	return []byte(devSecret), nil
}

// GenerateToken signs an HS256 access token for userID that expires after ttl.
func GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := GuestClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
			Issuer:    "blueriver",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string) (*GuestClaims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}
	claims := &GuestClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractIDFromToken returns the user ID of a valid token.
func ExtractIDFromToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
