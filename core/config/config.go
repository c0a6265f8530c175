package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hub-sync/core/database"
	"hub-sync/core/logger"
	"hub-sync/core/server"
	"hub-sync/core/slack"
	"hub-sync/core/storage"
	"hub-sync/core/tables"
	"hub-sync/feature/hubsync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingSecret is returned by Validate for each required secret that is unset.
var ErrMissingSecret = errors.New("missing required secret")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Sync names the roster tables and fields.
	Sync hubsync.Config `mapstructure:"sync"`
	// Source selects where roster tables are read from.
	Source tables.Config `mapstructure:"source"`
	// Airtable holds the Airtable base and token.
	Airtable tables.AirtableConfig `mapstructure:"airtable"`
	// Slack holds the Slack Web API token.
	Slack slack.Config `mapstructure:"slack"`
	// Database holds the SQL mirror connection (source driver "database").
	Database database.Config `mapstructure:"database"`
	// Storage holds the object storage holding table exports (source driver "storage").
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI, scheduled runners)
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SLACK_TOKEN -> slack.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that the secrets required by the selected source are present.
// It must pass before any network call is made.
func (c *Config) Validate() error {
	if !c.Source.IsValidDriver() {
		return fmt.Errorf("unknown source driver %q", c.Source.Driver)
	}

	var errs []error
	require := func(value, env string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingSecret, env))
		}
	}

	if c.Source.Driver == tables.DriverAirtable {
		require(c.Airtable.BaseID, "AIRTABLE_BASE_ID")
		require(c.Airtable.Token, "AIRTABLE_TOKEN")
	}
	require(c.Slack.Token, "SLACK_TOKEN")

	return errors.Join(errs...)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
