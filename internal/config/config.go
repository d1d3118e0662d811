package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/energycalc/internal/energy"
)

const (
	DefaultPrecision = 2
	DefaultAddr      = ":8000"
	DefaultRoot      = "web"
	DefaultIndex     = "index.html"
)

// Environment variables applied by LoadEnv.
const (
	EnvAddr      = "ENERGYCALC_ADDR"
	EnvRoot      = "ENERGYCALC_ROOT"
	EnvGravity   = "ENERGYCALC_GRAVITY"
	EnvPrecision = "ENERGYCALC_PRECISION"
)

type Config struct {
	Gravity   float64      `yaml:"gravity" validate:"gte=0"`
	Precision int          `yaml:"precision" validate:"gte=0,lte=12"`
	Forms     FormsConfig  `yaml:"forms"`
	Server    ServerConfig `yaml:"server"`
}

// FormsConfig holds the values a form starts with.
type FormsConfig struct {
	Kinetic   KineticForm   `yaml:"kinetic"`
	Potential PotentialForm `yaml:"potential"`
	Total     TotalForm     `yaml:"total"`
}

type KineticForm struct {
	Mass     float64 `yaml:"mass" validate:"gte=0"`
	Velocity float64 `yaml:"velocity" validate:"gte=0"`
}

type PotentialForm struct {
	Mass    float64 `yaml:"mass" validate:"gte=0"`
	Height  float64 `yaml:"height" validate:"gte=0"`
	Gravity float64 `yaml:"gravity" validate:"gte=0"`
}

type TotalForm struct {
	Mass     float64 `yaml:"mass" validate:"gte=0"`
	Velocity float64 `yaml:"velocity" validate:"gte=0"`
	Height   float64 `yaml:"height" validate:"gte=0"`
	Gravity  float64 `yaml:"gravity" validate:"gte=0"`
}

type ServerConfig struct {
	Addr  string `yaml:"addr" validate:"required"`
	Root  string `yaml:"root" validate:"required"`
	Index string `yaml:"index" validate:"required"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		Gravity:   energy.StandardGravity,
		Precision: DefaultPrecision,
		Forms: FormsConfig{
			Kinetic:   KineticForm{Mass: 5, Velocity: 10},
			Potential: PotentialForm{Mass: 10, Height: 20, Gravity: energy.StandardGravity},
			Total:     TotalForm{Mass: 2, Velocity: 8, Height: 10, Gravity: energy.StandardGravity},
		},
		Server: ServerConfig{
			Addr:  DefaultAddr,
			Root:  DefaultRoot,
			Index: DefaultIndex,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LoadEnv loads .env files if present and applies ENERGYCALC_* overrides.
// ENERGYCALC_GRAVITY also sets the starting gravity of the potential and
// total forms.
// Missing .env files are not an error.
func (c *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		c.Server.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGravity)); v != "" {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGravity, err)
		}
		c.Gravity = g
		c.Forms.Potential.Gravity = g
		c.Forms.Total.Gravity = g
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrecision)); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		c.Precision = p
	}
	return c.Validate()
}
