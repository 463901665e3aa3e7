package jwt

import (
	"errors"
	"fmt"
	"time"

	"dinas_portal/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of an access token.
type Claims struct {
	UserID   string      `json:"uid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// ToModel converts the JWT payload into domain claims.
func (c *Claims) ToModel() (models.TokenClaims, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return models.TokenClaims{}, ErrInvalidToken
	}

	var exp time.Time
	if c.ExpiresAt != nil {
		exp = c.ExpiresAt.Time
	}

	return models.TokenClaims{
		UserID:    uid,
		Username:  c.Username,
		Role:      c.Role,
		ID:        c.ID,
		ExpiresAt: exp,
	}, nil
}

// NewToken signs an HS256 token for the user. Each token gets a fresh jti so it
// can be revoked on its own.
func NewToken(user models.User, duration time.Duration, secret string) (models.Token, models.TokenClaims, error) {
	now := time.Now()
	exp := now.Add(duration)

	claims := &Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return models.Token{}, models.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}

	tc, _ := claims.ToModel()

	return models.Token{AccessToken: tokenString, ExpiresAt: exp}, tc, nil
}

// Parse validates signature and expiry and returns the claims.
func Parse(tokenString, secret string) (models.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.TokenClaims{}, ErrInvalidToken
	}

	return claims.ToModel()
}
