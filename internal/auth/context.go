package auth

import "context"

type ctxKey string

const principalKey ctxKey = "principal"

// Principal is the resolved caller: the role tag from the token plus the
// live database record loaded by the guard.
type Principal struct {
	ID     string
	Role   string
	Record any
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func FromContext(ctx context.Context) Principal {
	if v, ok := ctx.Value(principalKey).(Principal); ok {
		return v
	}
	return Principal{}
}

func Subject(ctx context.Context) string {
	return FromContext(ctx).ID
}
