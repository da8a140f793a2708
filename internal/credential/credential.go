// Package credential supplies the bearer token used for cart writes.
package credential

import "context"

// TokenKey is the storage entry holding the session token.
const TokenKey = "token"

// Provider returns the current session token. ok is false when the user is
// not signed in. Tokens are opaque; no validation happens here.
type Provider interface {
	Token(ctx context.Context) (token string, ok bool)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (string, bool)

func (f ProviderFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

// Static always returns the same token; an empty Static means signed out.
type Static string

func (s Static) Token(context.Context) (string, bool) {
	return string(s), s != ""
}
