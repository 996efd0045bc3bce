package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFileEnv names the optional YAML file. Environment variables override it.
const ConfigFileEnv = "TIMESHEETS_CONFIG"

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Auth       AuthConfig       `yaml:"auth"`
	Database   DatabaseConfig   `yaml:"database"`
	Demo       DemoConfig       `yaml:"demo"`
	Validation ValidationConfig `yaml:"validation"`
	Reconcile  ReconcileConfig  `yaml:"reconcile"`
	CORS       CORSConfig       `yaml:"cors"`
	Export     ExportConfig     `yaml:"export"`
	Slack      SlackConfig      `yaml:"slack"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8090"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
}

type AuthConfig struct {
	Name         string `yaml:"name" env:"AUTH_NAME" env-default:"Test User"`
	Email        string `yaml:"email" env:"AUTH_EMAIL" env-default:"test@example.com"`
	Password     string `yaml:"password" env:"AUTH_PASSWORD" env-default:"password"`
	PasswordHash string `yaml:"password_hash" env:"AUTH_PASSWORD_HASH"`
	// SigningSecret is base64. Empty means a random secret per process.
	SigningSecret string        `yaml:"signing_secret" env:"AUTH_SIGNING_SECRET"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`
}

type DatabaseConfig struct {
	// DSN selects the MySQL store. Empty keeps everything in memory.
	DSN            string `yaml:"dsn" env:"DATABASE_DSN"`
	MaxConnections int    `yaml:"max_connections" env:"DATABASE_MAX_CONNECTIONS" env-default:"10"`
	LogLevel       string `yaml:"log_level" env:"DATABASE_LOG_LEVEL" env-default:"warn"`
}

// DemoConfig flags default to true. cleanenv re-applies a default over a zero value, so turn
// them off with DEMO_SEED=false or DEMO_GENERATE_TASKS=false rather than in the file.
type DemoConfig struct {
	Seed          bool   `yaml:"seed" env:"DEMO_SEED" env-default:"true"`
	SeedFile      string `yaml:"seed_file" env:"DEMO_SEED_FILE"`
	GenerateTasks bool   `yaml:"generate_tasks" env:"DEMO_GENERATE_TASKS" env-default:"true"`
	RandomSeed    uint64 `yaml:"random_seed" env:"DEMO_RANDOM_SEED" env-default:"0"`
}

type ValidationConfig struct {
	StrictTaskDates bool `yaml:"strict_task_dates" env:"VALIDATION_STRICT_TASK_DATES" env-default:"false"`
}

type ReconcileConfig struct {
	Auto bool `yaml:"auto" env:"RECONCILE_AUTO" env-default:"false"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type ExportConfig struct {
	Bucket string `yaml:"bucket" env:"EXPORT_BUCKET"`
	Prefix string `yaml:"prefix" env:"EXPORT_PREFIX" env-default:"timesheets"`
}

type SlackConfig struct {
	Token   string `yaml:"token" env:"SLACK_BOT_TOKEN"`
	Channel string `yaml:"channel" env:"SLACK_INFO_CHANNEL"`
}

// Load reads the file named by TIMESHEETS_CONFIG when set, then the environment.
func Load() (Config, error) {
	var cfg Config
	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Auth.Email == "" {
		return fmt.Errorf("auth.email is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return fmt.Errorf("auth.password or auth.password_hash is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if c.Slack.Token != "" && c.Slack.Channel == "" {
		return fmt.Errorf("slack.channel is required when slack.token is set")
	}
	return nil
}
