package services

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the admin identifier as the token's only claim. No exp is set:
// tokens stay valid until the signing secret changes.
type Claims struct {
	AdminID string `json:"_id"`
	jwt.RegisteredClaims
}

// TokenService handles JWT token generation and validation.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

// Issue signs a token for the given admin id.
func (s *TokenService) Issue(adminID string) (string, error) {
	if adminID == "" {
		return "", errors.New("admin id is required")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{AdminID: adminID})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature of tokenString and returns the admin id it carries.
func (s *TokenService) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.AdminID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.AdminID, nil
}
