// Package authctx carries the browser's bearer token through a request and
// decodes the viewer it identifies.
package authctx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/sessioncookie"
)

type tokenKey struct{}

// WithToken returns ctx carrying token. Blank tokens leave ctx unchanged.
func WithToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Tokens is the graphql.TokenStore backed by the request context.
var Tokens graphql.TokenStore = graphql.TokenStoreFunc(TokenFromContext)

// Middleware lifts the token cookie into the request context. Tokens whose
// expiry has passed are dropped so the request runs anonymously.
func Middleware(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessioncookie.Read(r)
			if ok && !expired(token, now()) {
				r = r.WithContext(WithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Claims is the profile the API signs into its tokens.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       string `json:"_id"`
}

type tokenClaims struct {
	Data Claims `json:"data"`
	jwt.RegisteredClaims
}

var errUnreadableToken = errors.New("unreadable token")

// ParseClaims decodes token without verifying its signature; only the API
// holds the signing secret and it re-checks every request. The bool is false
// for unreadable or expired tokens.
func ParseClaims(token string, now time.Time) (Claims, bool) {
	parsed, err := decode(token)
	if err != nil {
		return Claims{}, false
	}
	if exp := parsed.ExpiresAt; exp != nil && !now.Before(exp.Time) {
		return Claims{}, false
	}
	if strings.TrimSpace(parsed.Data.Username) == "" {
		return Claims{}, false
	}
	return parsed.Data, true
}

func decode(token string) (tokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return tokenClaims{}, errUnreadableToken
	}
	var parsed tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &parsed); err != nil {
		return tokenClaims{}, err
	}
	return parsed, nil
}

// expired reports whether token is a readable JWT whose expiry has passed.
// Opaque tokens are passed through for the API to judge.
func expired(token string, now time.Time) bool {
	parsed, err := decode(token)
	if err != nil {
		return false
	}
	return parsed.ExpiresAt != nil && !now.Before(parsed.ExpiresAt.Time)
}
