package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/springingstars/schooldash/internal/common"
	"github.com/springingstars/schooldash/internal/models"
)

// Claims carries the signed identity fields of the session record.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
	Name string      `json:"name"`
}

// GenerateToken signs the session identity with HS256. The token lets a
// rehydrated session be verified against tampering: a session record whose
// token does not verify is treated like a corrupt record, i.e. absent.
func GenerateToken(ownerID string, role models.Role, name string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Role: role,
		Name: name,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the token and returns its claims. Any failure, be it a
// malformed token, a wrong key, or an expired claim, maps to
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// IsInvalidToken reports whether err means the token failed verification.
func IsInvalidToken(err error) bool {
	return errors.Is(err, common.ErrInvalidToken)
}
