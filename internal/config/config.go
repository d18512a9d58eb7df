package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string        `env:"DATABASE_DSN" envDefault:""`
	AdminID     int64         `env:"ADMIN_ID" envDefault:"0"`
	BotToken    string        `env:"BOT_TOKEN" envDefault:""`
	InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`
	CORSOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr         string
	LogLevel           string
	DatabaseDSN        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	// источники веб-интерфейса, которым разрешены запросы к API
	CORSAllowedOrigins []string
}

// AdminConfig модель настроек доступа администратора
type AdminConfig struct {
	// единственный администратор, 0 - администратор не задан
	AdminID     int64
	// токен бота для проверки init-data Telegram, пустой - проверка отключена
	BotToken    string
	InitDataTTL time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
}

func NewConfig() Config {

	// .env не обязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		admin    = pflag.Int64P("admin", "m", args.AdminID, "Administrator user id")
		token    = pflag.StringP("bot_token", "t", args.BotToken, "Telegram bot token to verify init data")
		ttl      = pflag.DurationP("init_data_ttl", "x", args.InitDataTTL, "Init data expiration, 0 disables check")
		origins  = pflag.StringSliceP("cors_origins", "o", args.CORSOrigins, "Allowed CORS origins, comma separated")
	)
	pflag.Parse()

	cfg := DefaultConfig()
	cfg.Server.ListenAddr = *server
	cfg.Server.LogLevel = *logLevel
	cfg.Server.DatabaseDSN = *DSN
	cfg.Server.CORSAllowedOrigins = *origins
	cfg.Admin = AdminConfig{
		AdminID:     *admin,
		BotToken:    *token,
		InitDataTTL: *ttl,
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:         "localhost:8080",
			LogLevel:           "info",
			DatabaseDSN:        "",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       10 * time.Second,
			ShutdownTimeout:    5 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Admin: AdminConfig{
			AdminID:     0,
			InitDataTTL: 24 * time.Hour,
		},
	}
}
