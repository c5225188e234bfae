package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrBadCredentials    = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int // costo bcrypt
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
}

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Register crea la cuenta. Username y email se normalizan a minúsculas;
// la contraseña se guarda solo como hash bcrypt.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return User{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if len(username) < 3 {
		return User{}, fmt.Errorf("%w: username must be at least 3 characters", ErrInvalidInput)
	}
	if strings.Contains(username, "@") {
		return User{}, fmt.Errorf("%w: username must not contain @", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login resuelve username-o-email (case-insensitive) y compara la contraseña.
// Cualquier fallo es ErrBadCredentials: nunca se distingue qué parte falló.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (User, error) {
	ident := strings.ToLower(strings.TrimSpace(usernameOrEmail))
	if ident == "" || password == "" {
		return User{}, fmt.Errorf("%w: username/email and password required", ErrInvalidInput)
	}

	var (
		u   User
		err error
	)
	if strings.Contains(ident, "@") {
		u, err = s.repo.GetByEmail(ctx, ident)
	} else {
		u, err = s.repo.GetByUsername(ctx, ident)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

// Resolve devuelve la cuenta para un ID; lo usa el middleware de auth.
func (s *Service) Resolve(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
