package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
)

// defaultNotifySubject is the fallback subject template; %s receives the
// room number
const defaultNotifySubject = "Cleaning notification for room %s"

// RoomSchedule marks a set of rooms as due for cleaning on the dates an
// rrule expands to. Used by the status report only.
type RoomSchedule struct {
	RRule string   `yaml:"rrule" validate:"required"`
	Rooms []string `yaml:"rooms" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL     string            `yaml:"databaseURL" validate:"required"`
	GmailUserID     string            `yaml:"gmailUserID" validate:"required"`
	GmailSender     string            `yaml:"gmailSender,omitempty"`
	NotifyRecipient string            `yaml:"notifyRecipient" validate:"required,email"`
	NotifySubject   string            `yaml:"notifySubject,omitempty"`
	Rooms           []string          `yaml:"rooms" validate:"required,min=1"`
	RoomSuffixes    map[string]string `yaml:"roomSuffixes,omitempty"`
	RoomSchedules   []RoomSchedule    `yaml:"roomSchedules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// SuffixTable returns the special-room suffix table for this deployment,
// falling back to the built-in defaults when none is configured
func (c *Config) SuffixTable() map[string]string {
	if len(c.RoomSuffixes) > 0 {
		return c.RoomSuffixes
	}
	return rooms.DefaultSuffixes()
}

// SubjectTemplate returns the notification subject template
func (c *Config) SubjectTemplate() string {
	if c.NotifySubject != "" {
		return c.NotifySubject
	}
	return defaultNotifySubject
}

// Load loads and validates the configuration from hauswirtschaft_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix.
// For example, env="test" will look for "hauswirtschaft_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the suffix table shape,
// and the rrule syntax of every room schedule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Suffix matching is exact over the last two characters
	for suffix := range cfg.RoomSuffixes {
		if len(suffix) != 2 {
			return fmt.Errorf("invalid room suffix %q: suffixes must be exactly two characters", suffix)
		}
	}

	for i, schedule := range cfg.RoomSchedules {
		if _, err := rrule.StrToRRule(schedule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in roomSchedules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory
// and the home directory, with an optional environment suffix
func findConfigFile(env string) (string, error) {
	configFileName := "hauswirtschaft_config.yaml"
	if env != "" {
		configFileName = "hauswirtschaft_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
