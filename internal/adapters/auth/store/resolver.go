// Package store resuelve la identidad del request contra el repo de usuarios:
// el X-User-ID solo vale si corresponde a una cuenta existente.
package store

import (
	"context"

	"studio-agenda/internal/domain/users"
	"studio-agenda/internal/ports/auth"
)

type Resolver struct {
	svc *users.Service
}

func NewResolver(svc *users.Service) *Resolver {
	return &Resolver{svc: svc}
}

func (r *Resolver) Resolve(ctx context.Context, userID string) (auth.Claims, error) {
	u, err := r.svc.Resolve(ctx, userID)
	if err != nil {
		return auth.Claims{}, err
	}
	return auth.Claims{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}, nil
}
