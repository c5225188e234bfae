package auth

import "context"

// IdentityResolver valida un identificador de usuario y devuelve claims o error.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (Claims, error)
}
