package appointments

import (
	"context"
	"time"
)

// ListFilter acota el listado por día exacto o por rango inclusivo.
// Date tiene prioridad sobre el rango si vienen ambos.
type ListFilter struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByOwner(ctx context.Context, ownerUserID string, f ListFilter) ([]Appointment, error)
	Delete(ctx context.Context, id string) error
}
