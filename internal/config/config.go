package config // package config loads application configuration from environment variables

import (
	"os"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Unlike earlier iterations every value has a default so
// the service can boot against a local MySQL with an empty environment.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DatabaseDSN  string // go-sql-driver connection string
	DBSkipVerify bool   // disable TLS certificate verification (managed DB providers)
	BcryptCost   int    // bcrypt cost for password hashing
	StaticDir    string // directory holding the static front-end
	QueueEnabled bool   // publish like/unlike activity events to the broker
}

// Load reads configuration values from environment variables and returns a
// Config, falling back to defaults for anything unset.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8000"),
		DatabaseDSN:  getenv("DATABASE_DSN", "root@tcp(localhost:3306)/cinelike"),
		DBSkipVerify: getenvBool("DB_TLS_SKIP_VERIFY", false),
		BcryptCost:   atoi(getenv("BCRYPT_COST", "10")),
		StaticDir:    getenv("STATIC_DIR", "web"),
		QueueEnabled: getenvBool("QUEUE_ENABLED", true),
	}
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}
