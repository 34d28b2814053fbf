package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"3000"`

	SlackBotToken        string `env:"SLACK_BOT_TOKEN"`
	SlackSigningSecret   string `env:"SLACK_SIGNING_SECRET"`
	SlackAnnounceChannel string `env:"SLACK_ANNOUNCE_CHANNEL"`

	StartShift          string        `env:"START_SHIFT" envDefault:"morning"`
	ClockPeriod         time.Duration `env:"CLOCK_PERIOD" envDefault:"1s"`
	ShiftPeriod         time.Duration `env:"SHIFT_PERIOD" envDefault:"30s"`
	DutyPeriod          time.Duration `env:"DUTY_PERIOD" envDefault:"6s"`
	WeatherPeriod       time.Duration `env:"WEATHER_PERIOD" envDefault:"60s"`
	MotivationPeriod    time.Duration `env:"MOTIVATION_PERIOD" envDefault:"1h"`
	DutyRotationModulus int           `env:"DUTY_ROTATION_MODULUS" envDefault:"0"`

	AIAPIKey  string        `env:"AI_API_KEY"`
	AIBaseURL string        `env:"AI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	AIModel   string        `env:"AI_MODEL" envDefault:"gemini-3-flash-preview"`
	AITimeout time.Duration `env:"AI_TIMEOUT" envDefault:"2500ms"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AdminRateLimit     int           `env:"ADMIN_RATE_LIMIT" envDefault:"10"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	periods := map[string]time.Duration{
		"CLOCK_PERIOD":      c.ClockPeriod,
		"SHIFT_PERIOD":      c.ShiftPeriod,
		"DUTY_PERIOD":       c.DutyPeriod,
		"WEATHER_PERIOD":    c.WeatherPeriod,
		"MOTIVATION_PERIOD": c.MotivationPeriod,
		"AI_TIMEOUT":        c.AITimeout,
	}
	for name, d := range periods {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, name)
		}
	}

	if _, ok := entity.ParseShift(c.StartShift); !ok {
		return fmt.Errorf("%w: START_SHIFT must be morning (sabah) or afternoon (ogle), got %q", ErrInvalidConfig, c.StartShift)
	}
	if c.AdminRateLimit <= 0 {
		return fmt.Errorf("%w: ADMIN_RATE_LIMIT must be positive", ErrInvalidConfig)
	}
	if c.SlackBotToken != "" && c.SlackSigningSecret == "" {
		return fmt.Errorf("%w: SLACK_SIGNING_SECRET is required with SLACK_BOT_TOKEN", ErrInvalidConfig)
	}

	return nil
}

// Shift returns the validated START_SHIFT
func (c *Config) Shift() (entity.Shift, error) {
	shift, ok := entity.ParseShift(c.StartShift)
	if !ok {
		return "", fmt.Errorf("%w: unknown START_SHIFT %q", ErrInvalidConfig, c.StartShift)
	}
	return shift, nil
}

// SlackEnabled reports whether the slash command surface can be mounted
func (c *Config) SlackEnabled() bool {
	return c.SlackSigningSecret != ""
}

// AIEnabled reports whether a real text generator should be used
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}
