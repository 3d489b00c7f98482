package backend

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource mints the bearer token sent with a backend call made on
// behalf of a Telegram user.
type TokenSource interface {
	Token(telegramID int64) (string, error)
}

// ServiceTokenSource signs short-lived HS256 tokens with a secret shared
// with the backend. The subject is the Telegram user id.
type ServiceTokenSource struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewServiceTokenSource creates a token source.
func NewServiceTokenSource(secret, issuer string, ttl time.Duration) *ServiceTokenSource {
	return &ServiceTokenSource{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *ServiceTokenSource) Token(telegramID int64) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("backend jwt secret not configured")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(telegramID, 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
