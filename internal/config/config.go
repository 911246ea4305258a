package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"inakat_backend/internal/logger"
)

// FallbackJWTSecret keeps the system functional when JWT_SECRET is not
// provisioned. Running with it is a deployment misconfiguration, not a
// user-facing error, so LoadConfig only warns.
const FallbackJWTSecret = "fallback-secret-CHANGE-IN-PRODUCTION"

const DefaultTokenTTLDays = 7

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"jwt"`

	// Seed admin provisioned at first boot when no such account exists.
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Nombre   string `yaml:"nombre"`
	} `yaml:"admin"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`      // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"` // local only
		BaseURL    string `yaml:"base_url"`  // public URL base
		Bucket     string `yaml:"bucket"`
		Region     string `yaml:"region"`
		AccessKey  string `yaml:"access_key"`
		SecretKey  string `yaml:"secret_key"`
		Endpoint   string `yaml:"endpoint"` // R2 or custom S3
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml (CONFIG_PATH override) and applies
// environment variable overrides on top.
func LoadConfig() {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			logger.Fatal("Failed to parse config file", "path", configPath, "error", err)
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_TTL_DAYS"); v != "" {
		cfg.JWT.TTLDays, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("ADMIN_NOMBRE"); v != "" {
		cfg.Admin.Nombre = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT_SECRET not set. Using fallback secret. Do not run like this in production.")
		cfg.JWT.Secret = FallbackJWTSecret
	}
	if cfg.JWT.TTLDays <= 0 {
		cfg.JWT.TTLDays = DefaultTokenTTLDays
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"application/pdf", "image/jpeg", "image/jpg", "image/png",
		}
	}
	if cfg.Admin.Nombre == "" {
		cfg.Admin.Nombre = "Administrador"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsProduction reports whether secure cookie flags and release-mode
// behavior should be enabled.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
