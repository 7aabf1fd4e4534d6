package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type userClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 session token carrying the profile id
// and role.
func GenerateToken(secret, userID, role string) (string, error) {
	claims := userClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "foodlink",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the profile id and
// role it carries.
func ParseToken(secret, tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}
	return claims.UserID, claims.Role, nil
}
