package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/address-book/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Log       LogConfig       `mapstructure:"log"`
	Contacts  []ContactConfig `mapstructure:"contacts"`
}

// BirthdaysConfig represents upcoming-birthday settings
type BirthdaysConfig struct {
	LookaheadDays int    `mapstructure:"lookahead_days"`
	LeapDay       string `mapstructure:"leap_day"` // "feb28" or "mar1"
	Timezone      string `mapstructure:"timezone"` // IANA name, used to determine "today"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ContactConfig is a contact seeded into the in-memory book at startup
type ContactConfig struct {
	Name     string   `mapstructure:"name"`
	Phones   []string `mapstructure:"phones"`
	Birthday string   `mapstructure:"birthday"` // DD.MM.YYYY
}

// Load loads configuration from file. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("birthdays.lookahead_days", 7)
	v.SetDefault("birthdays.leap_day", "feb28")
	v.SetDefault("birthdays.timezone", "Local")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.address-book")
		v.AddConfigPath("/etc/address-book")
	}

	// Read environment variables
	v.SetEnvPrefix("address_book")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Birthdays.LookaheadDays < 0 {
		return fmt.Errorf("birthdays.lookahead_days must not be negative")
	}
	if _, err := dateutil.ParseLeapDayPolicy(c.Birthdays.LeapDay); err != nil {
		return fmt.Errorf("birthdays.leap_day: %w", err)
	}
	if _, err := c.Birthdays.GetLocation(); err != nil {
		return fmt.Errorf("birthdays.timezone: %w", err)
	}

	for i, contact := range c.Contacts {
		if strings.TrimSpace(contact.Name) == "" {
			return fmt.Errorf("contacts[%d].name is required", i)
		}
	}

	return nil
}

// GetLocation returns the configured timezone, defaulting to local time
func (c *BirthdaysConfig) GetLocation() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GetLeapDayPolicy returns the leap-day policy, defaulting to Feb 28
func (c *BirthdaysConfig) GetLeapDayPolicy() dateutil.LeapDayPolicy {
	policy, err := dateutil.ParseLeapDayPolicy(c.LeapDay)
	if err != nil {
		return dateutil.LeapDayFeb28
	}
	return policy
}
