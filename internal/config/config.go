package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

type App struct {
	Port            string `env:"API_PORT" env-default:"8080"`
	DBConnectionURL string `env:"DB_CONNECTION_URL" env-required:"true"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`

	Redis   Redis
	Session Session
	Admin   Admin
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	Secret       string        `env:"SESSION_SECRET" env-required:"true"`
	TTL          time.Duration `env:"SESSION_TTL" env-default:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" env-default:"false"`
}

// Admin holds the credentials of the bootstrap administrator created when the
// users table has no admin yet.
type Admin struct {
	Username string `env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `env:"ADMIN_PASSWORD" env-default:"admin"`
}

// UsesDefaults reports whether the bootstrap admin still has the well known default credentials.
func (a Admin) UsesDefaults() bool {
	return a.Username == defaultAdminUsername && a.Password == defaultAdminPassword
}

func NewApp() (App, error) {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return App{}, fmt.Errorf("read env: %w", err)
	}

	if cfg.Session.TTL <= 0 {
		return App{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}

	return cfg, nil
}
