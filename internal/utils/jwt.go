package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256 access token for the administrator.
func GenerateToken(secret string, adminID int64, username string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"username": username,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the admin identity.
func ParseToken(secret, tokenString string) (int64, string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}

	adminID, ok1 := claims["admin_id"].(float64)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 {
		return 0, "", errors.New("invalid token payload")
	}

	return int64(adminID), username, nil
}
