package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"

	AuthMarker = "marker"
	AuthJWT    = "jwt"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3001"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`
	PublicDir   string `env:"PUBLIC_DIR" envDefault:"public"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	MongoURI            string        `env:"MONGO_URI"`
	MongoDB             string        `env:"MONGO_DB" envDefault:"gdg-registration"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	MongoIndexRetry     time.Duration `env:"MONGO_INDEX_RETRY" envDefault:"15s"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"registrations.db"`

	AdminAuthMode string        `env:"ADMIN_AUTH_MODE" envDefault:"marker"`
	AdminHeader   string        `env:"ADMIN_HEADER" envDefault:"x-admin-auth"`
	AdminMarker   string        `env:"ADMIN_MARKER" envDefault:"true"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"gdg-admin"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"12h"`

	DefaultEventName string `env:"DEFAULT_EVENT_NAME" envDefault:"GDG Event"`
	ExportFilename   string `env:"EXPORT_FILENAME" envDefault:"gdg-aitr-registrations.csv"`

	LogJSON  bool `env:"LOG_JSON" envDefault:"false"`
	LogDebug bool `env:"LOG_DEBUG" envDefault:"false"`
}

// LoadConfig reads .env files and then the environment. Without explicit
// files a missing .env is not an error; a named file must exist. The
// result is not validated, callers apply their overrides and call Validate.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
		slog.Debug(".env file not found, using system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want mongo, sqlite or memory)", c.StoreDriver)
	}
	switch c.AdminAuthMode {
	case AuthMarker:
	case AuthJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when ADMIN_AUTH_MODE=jwt")
		}
	default:
		return fmt.Errorf("unknown ADMIN_AUTH_MODE %q (want marker or jwt)", c.AdminAuthMode)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}
