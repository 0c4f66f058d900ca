package auth

import (
	"context"
)

type contextKey string

// ContextKeyPrincipal is the context key for the authenticated caller
const ContextKeyPrincipal contextKey = "principal"

// Principal is the authenticated caller of a request
type Principal struct {
	UserID int64
	Email  string
	Role   string
}

// WithPrincipal adds the caller to the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// PrincipalFromContext retrieves the caller from the context
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ContextKeyPrincipal).(*Principal)
	return p, ok && p != nil
}
