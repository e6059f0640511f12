// Package auth supplies bearer tokens to the API client and issues/verifies
// the HS256 tokens used by the development backend.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no access token available")
	ErrTokenExpired = errors.New("access token expired")
)

// TokenSource is the token-retrieval collaborator. The client asks it for a
// token right before every authenticated call and never caches the result.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken always returns the same token.
type StaticToken string

func (s StaticToken) Token(_ context.Context) (string, error) {
	t := strings.TrimSpace(string(s))
	if t == "" {
		return "", ErrNoToken
	}
	return t, nil
}

// ExpiryChecked wraps a source and refuses JWTs whose exp claim has passed,
// so an expired token fails locally instead of costing a 401 round trip.
// Opaque (non-JWT) tokens are passed through untouched.
type ExpiryChecked struct {
	Source TokenSource
	Leeway time.Duration
	now    func() time.Time
}

func NewExpiryChecked(src TokenSource, leeway time.Duration) *ExpiryChecked {
	return &ExpiryChecked{Source: src, Leeway: leeway, now: time.Now}
}

func (e *ExpiryChecked) Token(ctx context.Context) (string, error) {
	token, err := e.Source.Token(ctx)
	if err != nil {
		return "", err
	}
	exp, ok := ExpiresAt(token)
	if !ok {
		return token, nil
	}
	now := time.Now
	if e.now != nil {
		now = e.now
	}
	if !now().Add(e.Leeway).Before(exp) {
		return "", ErrTokenExpired
	}
	return token, nil
}

// ExpiresAt reads the exp claim without verifying the signature.
// ok is false for tokens that are not JWTs or carry no exp.
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
