package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis     Redis     `yaml:"redis"`
	Countdown Countdown `yaml:"countdown"`
	WebSocket WebSocket `yaml:"websocket"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"1h"`
}

type Countdown struct {
	From     int           `yaml:"from" env:"COUNTDOWN_FROM" env-default:"3"`
	Interval time.Duration `yaml:"interval" env:"COUNTDOWN_INTERVAL" env-default:"1s"`
}

type WebSocket struct {
	ReadBufferSize  int           `yaml:"read-buffer-size" env:"WS_READ_BUFFER_SIZE" env-default:"1024"`
	WriteBufferSize int           `yaml:"write-buffer-size" env:"WS_WRITE_BUFFER_SIZE" env-default:"1024"`
	SendBuffer      int           `yaml:"send-buffer" env:"WS_SEND_BUFFER" env-default:"64"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"WS_WRITE_TIMEOUT" env-default:"10s"`
	PongTimeout     time.Duration `yaml:"pong-timeout" env:"WS_PONG_TIMEOUT" env-default:"60s"`
	MaxMessageSize  int64         `yaml:"max-message-size" env:"WS_MAX_MESSAGE_SIZE" env-default:"1024"`
}

// MustLoad - loads .env (when present) and then config.yml, environment variables win over the file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
