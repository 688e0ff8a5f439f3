package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/source"
	"github.com/trknhr/personview/internal/viewmodel"
)

type Config struct {
	Delay    time.Duration `toml:"delay"`
	LogLevel string        `toml:"log_level"`
	LogFile  string        `toml:"log_file"`
	Person   PersonConfig  `toml:"person"`
}

type PersonConfig struct {
	Name       string `toml:"name"`
	Surname    string `toml:"surname"`
	NationalID string `toml:"national_id"`
}

func Default() Config {
	return Config{
		Delay:    viewmodel.DefaultDelay,
		LogLevel: "info",
		Person: PersonConfig{
			Name:       source.DefaultName,
			Surname:    source.DefaultSurname,
			NationalID: source.DefaultNationalID,
		},
	}
}

// Load reads a TOML file on top of the defaults and validates the result. An
// empty path yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg, err := Decode(path)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads a TOML file on top of the defaults without validating, for
// callers that apply further overrides first.
func Decode(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warn("ignoring unknown config keys: %v", undecoded)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	var errs []error
	if cfg.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", cfg.Delay))
	}
	if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", cfg.LogLevel))
	}
	if cfg.Person.Name == "" {
		errs = append(errs, errors.New("person.name is required"))
	}
	return errors.Join(errs...)
}

// Placeholder builds the source that serves the configured person.
func (c Config) Placeholder() source.Placeholder {
	return source.Placeholder{
		Name:       c.Person.Name,
		Surname:    c.Person.Surname,
		NationalID: c.Person.NationalID,
	}
}

// DefaultLogFile is where the TUI logs when no file is configured, so that log
// lines do not draw over the screen.
func DefaultLogFile() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache dir: %w", err)
	}
	return filepath.Join(cacheDir, "personview", "personview.log"), nil
}
