package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Log        LogConfig
	Pagination PaginationConfig
	Validation ValidationConfig
	Docs       DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret vacío = endpoints de escritura sin autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si la protección con Bearer Token está activa.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// PaginationConfig tamaños de página para listados y búsquedas.
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// ValidationConfig reglas opcionales de validación de entrada.
type ValidationConfig struct {
	StrictCUIT bool // además del formato, exige dígito verificador correcto
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Archivos opcionales: .env y config.env
	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:     v.GetString("APP_ENV"),
			Name:    v.GetString("APP_NAME"),
			Version: v.GetString("APP_VERSION"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			MinConns:    v.GetInt32("DB_MIN_CONNS"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host:            v.GetString("HTTP_HOST"),
			Port:            v.GetInt("HTTP_PORT"),
			ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("HTTP_IDLE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: v.GetInt("PAGE_DEFAULT_SIZE"),
			MaxPageSize:     v.GetInt("PAGE_MAX_SIZE"),
		},
		Validation: ValidationConfig{
			StrictCUIT: v.GetBool("CUIT_STRICT"),
		},
		Docs: DocsConfig{
			Enabled:  v.GetBool("DOCS_ENABLED"),
			FilePath: v.GetString("DOCS_FILE_PATH"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "clientes-api")
	v.SetDefault("APP_VERSION", "1.0.0")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "clientes")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 2)

	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "clientes-api")

	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_READ_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("PAGE_DEFAULT_SIZE", 10)
	v.SetDefault("PAGE_MAX_SIZE", 100)

	v.SetDefault("CUIT_STRICT", false)

	v.SetDefault("DOCS_ENABLED", true)
	v.SetDefault("DOCS_FILE_PATH", "./docs/swagger.json")
}

// Validate rechaza combinaciones imposibles.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT fuera de rango: %d", c.HTTP.Port))
	}
	if c.DB.DatabaseURL == "" && (c.DB.Port <= 0 || c.DB.Port > 65535) {
		errs = append(errs, fmt.Errorf("DB_PORT fuera de rango: %d", c.DB.Port))
	}
	if c.Pagination.DefaultPageSize < 1 {
		errs = append(errs, errors.New("PAGE_DEFAULT_SIZE debe ser positivo"))
	}
	if c.Pagination.MaxPageSize < 1 {
		errs = append(errs, errors.New("PAGE_MAX_SIZE debe ser positivo"))
	}
	if c.Pagination.DefaultPageSize > c.Pagination.MaxPageSize {
		errs = append(errs, errors.New("PAGE_DEFAULT_SIZE no puede superar PAGE_MAX_SIZE"))
	}
	if c.DB.MinConns > c.DB.MaxConns {
		errs = append(errs, errors.New("DB_MIN_CONNS no puede superar DB_MAX_CONNS"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuración inválida: %w", errors.Join(errs...))
	}
	return nil
}
