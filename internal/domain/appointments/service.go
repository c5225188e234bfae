package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/platform/currency"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
	ErrSlotTaken    = errors.New("slot already taken")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Date         time.Time
	Times        []string
	ServiceType  ServiceType
	ClientName   string
	Value        currency.Cents
	Observations string
	Phone        string
}

// Create valida el input, rechaza horarios ya ocupados del mismo dueño y
// persiste el agendamiento con los horarios en orden ascendente.
func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (Appointment, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	if err := validate(in); err != nil {
		return Appointment{}, err
	}
	if err := s.checkSlots(ctx, ownerUserID, in.Date, in.Times, ""); err != nil {
		return Appointment{}, err
	}

	now := s.now().UTC()
	a := Appointment{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Date:         normalizeDate(in.Date),
		Times:        sortedTimes(in.Times),
		ServiceType:  in.ServiceType,
		ClientName:   strings.TrimSpace(in.ClientName),
		Value:        in.Value,
		Observations: strings.TrimSpace(in.Observations),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Update reemplaza los campos mutables (PUT). El dueño nunca cambia y el
// chequeo de ocupación excluye al propio agendamiento en edición.
func (s *Service) Update(ctx context.Context, ownerUserID, id string, in Input) (Appointment, error) {
	current, err := s.owned(ctx, ownerUserID, id)
	if err != nil {
		return Appointment{}, err
	}
	if err := validate(in); err != nil {
		return Appointment{}, err
	}
	if err := s.checkSlots(ctx, ownerUserID, in.Date, in.Times, id); err != nil {
		return Appointment{}, err
	}

	current.Date = normalizeDate(in.Date)
	current.Times = sortedTimes(in.Times)
	current.ServiceType = in.ServiceType
	current.ClientName = strings.TrimSpace(in.ClientName)
	current.Value = in.Value
	current.Observations = strings.TrimSpace(in.Observations)
	current.Phone = strings.TrimSpace(in.Phone)
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// Delete borra el agendamiento del dueño. Irreversible.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	if _, err := s.owned(ctx, ownerUserID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List devuelve el snapshot del dueño, opcionalmente filtrado por día o rango.
func (s *Service) List(ctx context.Context, ownerUserID string, f ListFilter) ([]Appointment, error) {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		f.StartDate, f.EndDate = f.EndDate, f.StartDate
	}
	return s.repo.ListByOwner(ctx, ownerUserID, f)
}

// DayGrid arma la grilla de slots de un día con la ocupación del dueño.
func (s *Service) DayGrid(ctx context.Context, ownerUserID string, date time.Time) ([]schedule.SlotInfo, error) {
	date = normalizeDate(date)
	appts, err := s.repo.ListByOwner(ctx, ownerUserID, ListFilter{Date: &date})
	if err != nil {
		return nil, err
	}
	return schedule.DayGrid(date.Format("2006-01-02"), Bookings(appts)), nil
}

// Bookings proyecta agendamientos a la vista que consume la grilla.
func Bookings(appts []Appointment) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(appts))
	for _, a := range appts {
		out = append(out, schedule.Booking{
			AppointmentID: a.ID,
			DateKey:       a.DateKey(),
			Times:         a.Times,
			ClientName:    a.ClientName,
		})
	}
	return out
}

func (s *Service) owned(ctx context.Context, ownerUserID, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(ownerUserID) == "" {
		return Appointment{}, ErrNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	// Fuera del dueño el agendamiento no existe.
	if a.OwnerUserID != ownerUserID {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *Service) checkSlots(ctx context.Context, ownerUserID string, date time.Time, times []string, editingID string) error {
	date = normalizeDate(date)
	sameDay, err := s.repo.ListByOwner(ctx, ownerUserID, ListFilter{Date: &date})
	if err != nil {
		return err
	}

	taken := schedule.Occupied(times, date.Format("2006-01-02"), Bookings(sameDay), editingID)
	if len(taken) > 0 {
		return fmt.Errorf("%w: %s", ErrSlotTaken, strings.Join(taken, ", "))
	}
	return nil
}

func validate(in Input) error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return fmt.Errorf("%w: client_name required", ErrInvalidInput)
	}
	if len(in.Times) == 0 {
		return fmt.Errorf("%w: at least one time slot required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(in.Times))
	for _, t := range in.Times {
		if !schedule.ValidLabel(t) {
			return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, t)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: duplicated time slot %q", ErrInvalidInput, t)
		}
		seen[t] = struct{}{}
	}
	if !in.ServiceType.Valid() {
		return fmt.Errorf("%w: invalid service type %q", ErrInvalidInput, string(in.ServiceType))
	}
	if in.Value < 0 {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}
	return nil
}

// normalizeDate trunca a medianoche UTC: el dominio trabaja a granularidad día.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortedTimes(times []string) []string {
	out := make([]string, len(times))
	copy(out, times)
	sort.Strings(out)
	return out
}
