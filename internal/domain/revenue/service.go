package revenue

import (
	"context"
	"time"

	"studio-agenda/internal/domain/appointments"
)

type Service struct {
	appts *appointments.Service
}

func NewService(appts *appointments.Service) *Service {
	return &Service{appts: appts}
}

type Query struct {
	Period    Period
	Reference time.Time
	Start     *time.Time
	End       *time.Time
}

// Report trae el snapshot completo del dueño y agrega en memoria.
// El set de una operadora son decenas de registros; no hace falta empujar
// el filtrado al store.
func (s *Service) Report(ctx context.Context, ownerUserID string, q Query) (Summary, error) {
	appts, err := s.appts.List(ctx, ownerUserID, appointments.ListFilter{})
	if err != nil {
		return Summary{}, err
	}

	custom := CustomRange{Start: q.Start, End: q.End}
	return Aggregate(appts, func(a appointments.Appointment) bool {
		return MatchesPeriod(a.Date, q.Period, q.Reference, custom)
	}), nil
}
