package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"studio-agenda/internal/domain/appointments"
)

type appointmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentsRepo() appointments.Repository {
	return &appointmentsRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return appointments.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) ListByOwner(ctx context.Context, ownerUserID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if a.OwnerUserID != ownerUserID {
			continue
		}
		if !matchesFilter(a, f) {
			continue
		}
		out = append(out, a)
	}

	// Orden estable: fecha asc, luego created_at (igual que el repo SQL)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return appointments.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func matchesFilter(a appointments.Appointment, f appointments.ListFilter) bool {
	key := a.DateKey()
	if f.Date != nil {
		return key == f.Date.Format("2006-01-02")
	}
	if f.StartDate != nil && f.EndDate != nil {
		return key >= f.StartDate.Format("2006-01-02") && key <= f.EndDate.Format("2006-01-02")
	}
	return true
}
