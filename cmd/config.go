package cmd

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config is loaded from ORDERING_-prefixed environment variables and an optional
// config.yaml. A .env file, when present, is loaded into the environment first.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" yaml:"http_port" default:"8082" usage:"HTTP listen port"`
	LogMode         string        `env:"LOG_MODE" yaml:"log_mode" default:"production" usage:"production or development"`
	LogLevel        string        `env:"LOG_LEVEL" yaml:"log_level" usage:"overrides the log mode level"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" default:"15s"`
	DB              DBConfig      `env:"DB" yaml:"db"`
	Redis           RedisConfig   `env:"REDIS" yaml:"redis"`
	Outbox          OutboxConfig  `env:"OUTBOX" yaml:"outbox"`
}

type DBConfig struct {
	Host     string `env:"HOST" yaml:"host" default:"localhost"`
	Port     string `env:"PORT" yaml:"port" default:"5432"`
	User     string `env:"USER" yaml:"user" default:"postgres"`
	Password string `env:"PASSWORD" yaml:"password"`
	Name     string `env:"NAME" yaml:"name" default:"ordering"`
	SslMode  string `env:"SSLMODE" yaml:"sslmode" default:"disable"`
}

// DSN renders the keyword/value connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type RedisConfig struct {
	Addr     string `env:"ADDR" yaml:"addr" default:"localhost:6379"`
	Password string `env:"PASSWORD" yaml:"password"`
	DB       int    `env:"DB" yaml:"db" default:"0"`
	Channel  string `env:"CHANNEL" yaml:"channel" default:"ordering.order-events"`
}

type OutboxConfig struct {
	Schedule  string `env:"SCHEDULE" yaml:"schedule" default:"*/2 * * * * *" usage:"six-field cron spec"`
	BatchSize int    `env:"BATCH_SIZE" yaml:"batch_size" default:"100"`
}

// LoadConfig reads the configuration. files overrides the default config.yaml lookup.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	if len(files) == 0 {
		files = []string{"config.yaml"}
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "ORDERING",
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.HTTPPort == "":
		return errors.New("http port is required")
	case c.DB.Host == "" || c.DB.Name == "":
		return errors.New("database host and name are required")
	case c.Redis.Addr == "" || c.Redis.Channel == "":
		return errors.New("redis address and channel are required")
	case c.Outbox.BatchSize <= 0:
		return errors.Errorf("outbox batch size must be positive, got %d", c.Outbox.BatchSize)
	}
	return nil
}
