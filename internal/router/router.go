package router

import (
	"database/sql"
	"net/http"
	"os"

	authstore "studio-agenda/internal/adapters/auth/store"
	mem "studio-agenda/internal/adapters/storage/memory"
	pg "studio-agenda/internal/adapters/storage/postgres"
	"studio-agenda/internal/domain/appointments"
	"studio-agenda/internal/domain/revenue"
	"studio-agenda/internal/domain/users"
	"studio-agenda/internal/middleware"
	"studio-agenda/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	// Resolver de identidad. Si es nil se arma uno contra el repo de
	// usuarios, salvo que InsecureDevAuth esté activo.
	Resolver auth.IdentityResolver

	// InsecureDevAuth confía en el X-User-ID sin consultar el store.
	// Solo para dev y tests de bajo nivel.
	InsecureDevAuth bool

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	var (
		userRepo users.Repository
		apptRepo appointments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
	} else {
		userRepo = mem.NewUsersRepo()
		apptRepo = mem.NewAppointmentsRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	apptSvc := appointments.NewService(apptRepo)
	revSvc := revenue.NewService(apptSvc)

	resolver := opts.Resolver
	if resolver == nil && !opts.InsecureDevAuth {
		resolver = authstore.NewResolver(usersSvc)
	}

	// chi exige todos los Use antes de registrar rutas
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.AuthContext(resolver))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	appointments.RegisterRoutes(r, apptSvc)
	revenue.RegisterRoutes(r, revSvc)

	return r
}
