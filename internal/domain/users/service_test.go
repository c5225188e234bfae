package users

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Ana Paula",
		Username: "anapaula",
		Email:    "ana@example.com",
		Password: "secret1",
	}
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validInput()
	in.Username = "  AnaPaula "
	in.Email = " Ana@Example.COM "

	u, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.Username != "anapaula" {
		t.Fatalf("expected lowercased username, got %q", u.Username)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.PasswordHash == "" || u.PasswordHash == in.Password {
		t.Fatal("expected password stored as hash")
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty name", func(in *RegisterInput) { in.Name = "  " }},
		{"short username", func(in *RegisterInput) { in.Username = "ab" }},
		{"username with @", func(in *RegisterInput) { in.Username = "ana@paula" }},
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterInput) { in.Password = "12345" }},
	}

	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestRegister_DuplicateConflicts(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	dup := validInput()
	dup.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	dup = validInput()
	dup.Username = "otherana"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	reg, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Identificador case-insensitive, por username o por email
	for _, ident := range []string{"anapaula", "AnaPaula", "ana@example.com", "ANA@EXAMPLE.COM"} {
		u, err := svc.Login(context.Background(), ident, "secret1")
		if err != nil {
			t.Fatalf("login with %q: %v", ident, err)
		}
		if u.ID != reg.ID {
			t.Fatalf("login with %q: wrong user", ident)
		}
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "anapaula", "wrong-pass"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "secret1"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.Resolve(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != u.ID {
		t.Fatal("resolve returned wrong user")
	}

	if _, err := svc.Resolve(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
