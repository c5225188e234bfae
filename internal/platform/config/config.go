package config

import "github.com/kelseyhightower/envconfig"

// Config agrupa la configuración del servicio, leída de variables de entorno.
type Config struct {
	AppName   string `envconfig:"APP_NAME" default:"studio-agenda"`
	Port      int    `envconfig:"PORT" default:"8080"`
	DBDSN     string `envconfig:"DB_DSN" default:""`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load procesa el entorno. DB_DSN vacío => repos in-memory (modo dev).
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
