package utils

import (
	"errors"
	"io/fs"
	"strings"

	"secure-it/internal/data/entity"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Redis    RedisConfig
	Site     SiteConfig
	Events   EventsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type AuthConfig struct {
	SessionTTLHours     int
	DefaultRole         entity.Role
	DefaultProviderRole entity.Role
	RoleCodes           entity.RoleCodes
	BcryptRounds        int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SiteConfig struct {
	DefaultMode entity.SiteMode
}

type EventsConfig struct {
	URL   string
	Queue string
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads the given env file (a missing file is fine) and
// overlays process environment variables.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "secure-it")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_NAME", "secure_it")
	v.SetDefault("DB_USER", "secure_app")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("AUTH_SESSION_TTL_HOURS", 72)
	v.SetDefault("AUTH_DEFAULT_ROLE", string(entity.RoleBasic))
	v.SetDefault("BCRYPT_ROUNDS", 12)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SITE_DEFAULT_MODE", string(entity.SiteModeEcommerce))
	v.SetDefault("EVENTS_QUEUE", "customer.events")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	if driver != DriverMySQL {
		driver = DriverPostgres
	}
	dbPort := v.GetString("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
		if driver == DriverMySQL {
			dbPort = "3306"
		}
	}

	defaultRole := entity.ParseRole(v.GetString("AUTH_DEFAULT_ROLE"), entity.RoleBasic)
	providerRole := defaultRole
	if raw := v.GetString("AUTH_DEFAULT_PROVIDER_ROLE"); raw != "" {
		providerRole = entity.ParseRole(raw, defaultRole)
	}

	ttl := v.GetInt("AUTH_SESSION_TTL_HOURS")
	if ttl < 1 {
		ttl = 1
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:      driver,
			Host:        v.GetString("DB_HOST"),
			Port:        dbPort,
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			SessionTTLHours:     ttl,
			DefaultRole:         defaultRole,
			DefaultProviderRole: providerRole,
			RoleCodes:           loadRoleCodes(v),
			BcryptRounds:        ClampBcryptCost(v.GetInt("BCRYPT_ROUNDS")),
		},
		CORS: CORSConfig{
			AllowedOrigins: loadOrigins(v),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Site: SiteConfig{
			DefaultMode: entity.ParseSiteMode(v.GetString("SITE_DEFAULT_MODE")),
		},
		Events: EventsConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("EVENTS_QUEUE"),
		},
	}

	return config, nil
}

func loadRoleCodes(v *viper.Viper) entity.RoleCodes {
	codes := entity.RoleCodes{}
	for role, key := range map[entity.Role]string{
		entity.RoleAdmin:   "AUTH_ROLE_CODE_ADMIN",
		entity.RoleStaff:   "AUTH_ROLE_CODE_STAFF",
		entity.RoleLoyalty: "AUTH_ROLE_CODE_LOYALTY",
		entity.RoleBasic:   "AUTH_ROLE_CODE_BASIC",
	} {
		if code := strings.TrimSpace(v.GetString(key)); code != "" {
			codes[role] = code
		}
	}
	return codes
}

func loadOrigins(v *viper.Viper) []string {
	raw := v.GetString("CORS_ORIGINS")
	if raw == "" {
		raw = v.GetString("CORS_ORIGIN")
	}

	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
