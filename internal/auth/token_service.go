package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Token verification failures. The HTTP layer collapses all of these into a
// single unauthorized response; logs keep the subtype.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrNonPositiveTTL        = errors.New("token ttl must be positive")
)

// Claims carried by issued tokens. Only the subject is trusted downstream;
// the user record is always re-fetched after verification.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens. It
// holds no state beyond the signing secret, which is injected at construction
// so tests can use distinct secrets and deployments can rotate on restart.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue binds subject and an absolute expiry into a signed HS256 token.
func (s *TokenService) Issue(subject uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrNonPositiveTTL
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatUint(uint64(subject), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature and expiry of a token and returns its
// subject. Callers must re-fetch the user record for the subject; nothing
// else in the token is to be trusted.
func (s *TokenService) Verify(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalidSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenInvalidSignature):
			return 0, ErrTokenInvalidSignature
		default:
			return 0, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}
	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return uint(subject), nil
}
