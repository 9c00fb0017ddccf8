package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime configuration for the API server. Values come
// from defaults, then an optional YAML file, then environment variables,
// in increasing precedence.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Server   ServerConfig   `koanf:"server"`
	Firebase FirebaseConfig `koanf:"firebase"`
	Storage  StorageConfig  `koanf:"storage"`
	CORS     CORSConfig     `koanf:"cors"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

type FirebaseConfig struct {
	ProjectID       string `koanf:"project_id"`
	CredentialsFile string `koanf:"credentials_file"`
}

// StorageConfig names the two public buckets: avatars holds one overwritable
// object per user, posts one object per uploaded work.
type StorageConfig struct {
	AvatarsBucket string `koanf:"avatars_bucket"`
	PostsBucket   string `koanf:"posts_bucket"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration. configPath may be empty to skip the file layer.
// A local .env file is honored when present; its absence is not an error.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "kalakararena-api",
		"app.environment": "development",

		"server.host":                "0.0.0.0",
		"server.port":                8080,
		"server.read_timeout":        "5s",
		"server.read_header_timeout": "2s",
		"server.write_timeout":       "10s",
		"server.idle_timeout":        "60s",
		"server.shutdown_timeout":    "10s",

		"storage.avatars_bucket": "avatars",
		"storage.posts_bucket":   "posts",

		"cors.allowed_origins": []string{},
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}
	return nil
}

// envKeyMap routes well-known environment variables into config keys.
var envKeyMap = map[string]string{
	"ENVIRONMENT":                    "app.environment",
	"HOST":                           "server.host",
	"PORT":                           "server.port",
	"FIREBASE_PROJECT_ID":            "firebase.project_id",
	"GOOGLE_CLOUD_PROJECT":           "firebase.project_id",
	"GOOGLE_APPLICATION_CREDENTIALS": "firebase.credentials_file",
	"STORAGE_AVATARS_BUCKET":         "storage.avatars_bucket",
	"STORAGE_POSTS_BUCKET":           "storage.posts_bucket",
	"CORS_ALLOWED_ORIGINS":           "cors.allowed_origins",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if c.Storage.AvatarsBucket == "" || c.Storage.PostsBucket == "" {
		return fmt.Errorf("storage bucket names must not be empty")
	}
	return nil
}
