package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Admin    AdminConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   string
	BcryptCost string
}

// AdminConfig seeds the bootstrap account. User creation itself requires a
// valid token, so the first account has to come from the environment.
type AdminConfig struct {
	Username string
	Password string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	AllowedOrigins string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   getenv("TOKEN_TTL", "2h"),
			BcryptCost: os.Getenv("BCRYPT_COST"),
		},
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
