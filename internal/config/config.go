package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the alarm settings shared by the CLI and the service.
type Config struct {
	// AlarmTime is the time-of-day string handed to the parser.
	AlarmTime string `yaml:"alarm_time"`
	// SoundFile is the path to the audio file played when the alarm fires.
	SoundFile string `yaml:"sound_file"`
	// PollInterval is how often the wait loop checks the clock.
	PollInterval time.Duration `yaml:"poll_interval"`
	// LogLevel is the minimum level for operational logging.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for alarm settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultAlarmTime is used when no time argument or setting is given.
	DefaultAlarmTime = "7:00 AM"

	// DefaultSoundFile is used when no sound argument or setting is given.
	DefaultSoundFile = "alarm.aif"

	// DefaultPollInterval is the default wait-loop check interval.
	DefaultPollInterval = time.Second

	// DefaultLogLevel is the default minimum logging level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for settings files.
	DefaultFilePermissions = 0o600
)

// errConfigIsNotSet is returned when a nil configuration is provided.
var errConfigIsNotSet = errors.New("configuration is not set")

// Default returns the built-in settings used when no file is present.
func Default() *Config {
	return &Config{
		AlarmTime:    DefaultAlarmTime,
		SoundFile:    DefaultSoundFile,
		PollInterval: DefaultPollInterval,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads settings from the provided path. A missing file is not an
// error: the defaults apply. An empty path means DefaultConfigFilename.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	Normalize(cfg)

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	Normalize(cfg)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Normalize fills zero or negative fields with the built-in defaults.
func Normalize(cfg *Config) {
	if cfg.AlarmTime == "" {
		cfg.AlarmTime = DefaultAlarmTime
	}

	if cfg.SoundFile == "" {
		cfg.SoundFile = DefaultSoundFile
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
