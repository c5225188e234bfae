package postgres

import (
	"context"
	"database/sql"
	"strings"

	"studio-agenda/internal/domain/appointments"
	"studio-agenda/internal/platform/currency"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, owner_user_id,
			date, times, service_type,
			client_name, value_cents, observations, phone,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.OwnerUserID,
		a.Date,
		joinTimes(a.Times),
		string(a.ServiceType),
		a.ClientName,
		int64(a.Value),
		a.Observations,
		a.Phone,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			date = $2,
			times = $3,
			service_type = $4,
			client_name = $5,
			value_cents = $6,
			observations = $7,
			phone = $8,
			updated_at = $9
		WHERE id = $1
	`,
		a.ID,
		a.Date,
		joinTimes(a.Times),
		string(a.ServiceType),
		a.ClientName,
		int64(a.Value),
		a.Observations,
		a.Phone,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			date, times, service_type,
			client_name, value_cents, observations, phone,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerUserID string, f appointments.ListFilter) ([]appointments.Appointment, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	q := `
		SELECT
			id, owner_user_id,
			date, times, service_type,
			client_name, value_cents, observations, phone,
			created_at, updated_at
		FROM appointments
		WHERE owner_user_id = $1`
	args := []any{ownerUserID}

	switch {
	case f.Date != nil:
		q += ` AND date = $2`
		args = append(args, *f.Date)
	case f.StartDate != nil && f.EndDate != nil:
		q += ` AND date BETWEEN $2 AND $3`
		args = append(args, *f.StartDate, *f.EndDate)
	}

	q += ` ORDER BY date ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var (
		a     appointments.Appointment
		times string
		cents int64
		typ   string
	)
	if err := row.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.Date,
		&times,
		&typ,
		&a.ClientName,
		&cents,
		&a.Observations,
		&a.Phone,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}

	a.Times = splitTimes(times)
	a.ServiceType = appointments.ServiceType(typ)
	a.Value = currency.Cents(cents)

	// date es DATE; pgx lo mapea a time.Time medianoche UTC
	return a, nil
}

// times se guarda como texto "07:00,07:30": etiquetas de ancho fijo, orden
// ascendente garantizado por el servicio.
func joinTimes(times []string) string {
	return strings.Join(times, ",")
}

func splitTimes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
