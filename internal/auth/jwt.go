// Package auth mints and parses the bearer tokens used to resolve the
// acting person. Session management beyond the token itself is out of scope.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired, or mis-signed tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated person's id.
type Claims struct {
	PersonID int64 `json:"person_id"`
	jwt.RegisteredClaims
}

// CreateToken mints an HS256 token for the person.
func CreateToken(secret string, personID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		PersonID: personID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the token and returns the person id it carries.
func ParseToken(secret, tokenStr string) (int64, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.PersonID, nil
}
