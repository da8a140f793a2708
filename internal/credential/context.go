package credential

import "context"

type tokenKey struct{}

// WithToken attaches a request-scoped token, e.g. one read from a cookie.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// FromContext is a Provider that reads the token attached by WithToken.
var FromContext Provider = ProviderFunc(func(ctx context.Context) (string, bool) {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token, token != ""
})
