package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c HTTPClient) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Logging struct {
	Level      string `mapstructure:"level"`
	OutputFile string `mapstructure:"output_file"`
}

type MetalAPI struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Currency string `mapstructure:"currency"`
}

type OTP struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Template string `mapstructure:"template"`
}

type ObjectStore struct {
	BaseURL   string `mapstructure:"base_url"`
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type Auth struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

type Scheduler struct {
	IngestCron    string `mapstructure:"ingest_cron"`
	RetentionCron string `mapstructure:"retention_cron"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// Rates holds the defaults of the daily history endpoint.
type Rates struct {
	Timezone        string   `mapstructure:"timezone"`
	DefaultCutoff   string   `mapstructure:"default_cutoff"`
	GraceMinutes    int      `mapstructure:"grace_minutes"`
	WindowDays      int      `mapstructure:"window_days"`
	CacheTTLSeconds int      `mapstructure:"cache_ttl_seconds"`
	Metals          []string `mapstructure:"metals"`
}

func (r Rates) CacheTTL() time.Duration { return time.Duration(r.CacheTTLSeconds) * time.Second }

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	DbServer    DbServer    `mapstructure:"db_server"`
	HTTPClient  HTTPClient  `mapstructure:"http_client"`
	Logging     Logging     `mapstructure:"logging"`
	MetalAPI    MetalAPI    `mapstructure:"metal_api"`
	OTP         OTP         `mapstructure:"otp"`
	ObjectStore ObjectStore `mapstructure:"object_store"`
	Auth        Auth        `mapstructure:"auth"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Rates       Rates       `mapstructure:"rates"`
}

var envBindings = map[string]string{
	"http_server.port":            "HTTP_PORT",
	"db_server.host":              "DB_HOST",
	"db_server.port":              "DB_PORT",
	"db_server.user":              "DB_USER",
	"db_server.pass":              "DB_PASS",
	"db_server.name":              "DB_NAME",
	"db_server.max_conns":         "DB_MAX_CONNS",
	"http_client.timeout_seconds": "HTTP_CLIENT_TIMEOUT_SECONDS",
	"logging.level":               "LOG_LEVEL",
	"logging.output_file":         "LOG_OUTPUT_FILE",
	"metal_api.base_url":          "METAL_API_BASE_URL",
	"metal_api.api_key":           "METAL_API_KEY",
	"otp.base_url":                "OTP_BASE_URL",
	"otp.api_key":                 "TWO_FACTOR_API_KEY",
	"otp.template":                "OTP_TEMPLATE",
	"object_store.base_url":       "CLOUDINARY_BASE_URL",
	"object_store.cloud_name":     "CLOUDINARY_CLOUD_NAME",
	"object_store.api_key":        "CLOUDINARY_API_KEY",
	"object_store.api_secret":     "CLOUDINARY_API_SECRET",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.token_ttl_hours":        "JWT_TTL_HOURS",
	"rates.timezone":              "RATES_TIMEZONE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "5000")
	v.SetDefault("http_server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("metal_api.base_url", "https://www.goldapi.io/api")
	v.SetDefault("metal_api.currency", "INR")
	v.SetDefault("otp.base_url", "https://2factor.in/API/V1")
	v.SetDefault("otp.template", "OTP1")
	v.SetDefault("object_store.base_url", "https://api.cloudinary.com")
	v.SetDefault("auth.token_ttl_hours", 720)
	v.SetDefault("scheduler.ingest_cron", "0 * * * *")
	v.SetDefault("scheduler.retention_cron", "30 3 * * *")
	v.SetDefault("scheduler.retention_days", 7)
	v.SetDefault("rates.timezone", "Asia/Kolkata")
	v.SetDefault("rates.default_cutoff", "13:00")
	v.SetDefault("rates.grace_minutes", 30)
	v.SetDefault("rates.window_days", 7)
	v.SetDefault("rates.cache_ttl_seconds", 60)
	v.SetDefault("rates.metals", []string{"gold", "silver", "platinum"})
}

// Init loads .env (if present), then config.yaml, then environment overrides.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load("config.yaml")
}

// Load reads the yaml file at path; a missing file leaves defaults and env in charge.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.HTTPServer.AllowedOrigins = trimAll(cfg.HTTPServer.AllowedOrigins)
	return &cfg, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
