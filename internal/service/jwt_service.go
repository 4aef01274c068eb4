package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var _ JWTGenerator = (*JWTService)(nil)

// JWTService issues and validates the HS256 bearer tokens protecting the
// MFA API routes.
type JWTService struct {
	jwtSecret []byte
}

// NewJWTService creates a JWTService
func NewJWTService(secret string) *JWTService {
	return &JWTService{jwtSecret: []byte(secret)}
}

// GenerateToken creates a new JWT for a user
func (s *JWTService) GenerateToken(userID string) (string, time.Time, error) {
	exp := time.Now().Add(time.Hour * 1) // Expiration time (1 hour)
	claims := jwt.MapClaims{
		"sub": userID,           // Subject (standard claim)
		"iss": "scs-mfa-server", // Issuer (standard claim)
		"aud": "scs-client-app", // Audience (standard claim)
		"exp": exp.Unix(),
		"iat": time.Now().Unix(), // Issued at
		"nbf": time.Now().Unix(), // Not before
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, exp, nil
}

// ParseToken checks the signature and registered claims and returns the
// parsed token. The router's auth middleware runs every bearer token
// through this.
func (s *JWTService) ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return token, nil
}

// ValidateToken parses the token and returns its subject (the user id).
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := s.ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return userID, nil
}
