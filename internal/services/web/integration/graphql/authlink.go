package graphql

import "context"

// AuthorizationHeader carries the bearer token upstream.
const AuthorizationHeader = "authorization"

// TokenStore yields the bearer token for the current request, or "" when the
// caller is anonymous.
type TokenStore interface {
	Token(ctx context.Context) string
}

// TokenStoreFunc adapts a function to TokenStore.
type TokenStoreFunc func(ctx context.Context) string

// Token calls f.
func (f TokenStoreFunc) Token(ctx context.Context) string {
	if f == nil {
		return ""
	}
	return f(ctx)
}

// AuthorizationValue formats the authorization header value for token. An
// empty token yields an empty value, which the API treats as anonymous. Any
// other token is sent as given.
func AuthorizationValue(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// AugmentHeaders returns headers plus the authorization entry for token.
func AugmentHeaders(headers Header, token string) Header {
	return headers.With(AuthorizationHeader, AuthorizationValue(token))
}

// AuthLink sets the authorization header from store on every request before
// handing it to the next stage.
func AuthLink(store TokenStore) Link {
	return func(next Handler) Handler {
		return func(ctx context.Context, req Request) (Response, error) {
			token := ""
			if store != nil {
				token = store.Token(ctx)
			}
			req.Headers = AugmentHeaders(req.Headers, token)
			return next(ctx, req)
		}
	}
}
