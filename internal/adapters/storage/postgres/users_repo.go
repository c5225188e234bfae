package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"studio-agenda/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el SQLSTATE de violación de constraint unique.
const uniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, username, email, password_hash, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		u.ID,
		u.Name,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return users.ErrDuplicateUsername
			}
			return users.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UsersRepo) getBy(ctx context.Context, column, value string) (users.User, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return users.User{}, users.ErrNotFound
	}

	// column viene de los wrappers de arriba, nunca del request
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, created_at
		FROM users
		WHERE `+column+` = $1
	`, value)

	var u users.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
