// Package authctx carries the authenticated principal through a request
// context.
package authctx

import (
	"context"
	"time"
)

// Principal is the identity established by a validated session token.
type Principal struct {
	UserID    string
	UserName  string
	ExpiresAt time.Time
}

type ctxKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}
