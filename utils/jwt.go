package utils

import (
	"errors"
	"strconv"
	"time"

	"barberbook/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "barberbook-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given user. The role travels in
// the claims so guards can run without a store round-trip.
func GenerateToken(userID uint, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ClaimsFromToken extracts the user id and role from a valid token string.
func ClaimsFromToken(tokenString string) (uint, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, "", errors.New("token does not contain a valid 'sub' claim")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, "", errors.New("token subject is not a user id")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = "user"
	}
	return uint(id), role, nil
}
