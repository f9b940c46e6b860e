package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("token lacks admin claim")
)

// Claims is the admin token payload. Tokens carry no expiry; rotating the secret revokes them all.
type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

func GenerateToken(secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Admin: true,
	})

	return token.SignedString(secretKey)
}

// VerifyAdminToken checks the HS256 signature and the admin claim.
func VerifyAdminToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid {
		return ErrInvalidToken
	}
	if !claims.Admin {
		return ErrNotAdmin
	}

	return nil
}
