package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"studio-agenda/internal/adapters/storage/postgres"
	"studio-agenda/internal/platform/config"
	"studio-agenda/internal/platform/logger"
	"studio-agenda/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		lg := logger.New("studio-agenda", "info", "text")
		lg.Fatal().Err(err).Msg("load config")
	}

	lg := logger.New(cfg.AppName, cfg.LogLevel, cfg.LogFormat)

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			lg.Fatal().Err(err).Msg("open postgres")
		}
		defer db.Close()
		lg.Info().Msg("connected to postgres")
	} else {
		lg.Warn().Msg("DB_DSN not set, using in-memory storage")
	}

	h := router.NewRouter(router.Options{DB: db, Logger: lg})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info().Int("port", cfg.Port).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatal().Err(err).Msg("server error")
	}
}
