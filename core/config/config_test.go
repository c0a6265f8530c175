package config

import (
	"os"
	"path/filepath"
	"testing"

	"hub-sync/core/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Hubs", cfg.Sync.HubsTable)
	assert.Equal(t, "Coordinators", cfg.Sync.CoordinatorsTable)
	assert.Equal(t, "Group ID", cfg.Sync.HubGroupField)
	assert.Equal(t, "Coordinators", cfg.Sync.HubCoordinatorsField)
	assert.Equal(t, "Slack ID", cfg.Sync.CoordinatorUserField)
	assert.Equal(t, "Name", cfg.Sync.CoordinatorNameField)
	assert.Equal(t, tables.DriverAirtable, cfg.Source.Driver)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.Airtable.APIURL)
	assert.Equal(t, 100, cfg.Airtable.PageSize)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SYNC_HUBS_TABLE", "Chapters")
	t.Setenv("AIRTABLE_BASE_ID", "appXYZ")
	t.Setenv("AIRTABLE_PAGE_SIZE", "50")
	t.Setenv("SLACK_TOKEN", "xoxb-1")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Chapters", cfg.Sync.HubsTable)
	assert.Equal(t, "appXYZ", cfg.Airtable.BaseID)
	assert.Equal(t, 50, cfg.Airtable.PageSize)
	assert.Equal(t, "xoxb-1", cfg.Slack.Token)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SYNC_COORDINATOR_NAME_FIELD=Full Name\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SYNC_COORDINATOR_NAME_FIELD") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Full Name", cfg.Sync.CoordinatorNameField)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Source:   tables.Config{Driver: tables.DriverAirtable},
			Airtable: tables.AirtableConfig{BaseID: "app1", Token: "pat1"},
		}
	}

	t.Run("AllPresent", func(t *testing.T) {
		cfg := valid()
		cfg.Slack.Token = "xoxb"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("AllMissing", func(t *testing.T) {
		cfg := &Config{Source: tables.Config{Driver: tables.DriverAirtable}}
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrMissingSecret)
		assert.ErrorContains(t, err, "AIRTABLE_BASE_ID")
		assert.ErrorContains(t, err, "AIRTABLE_TOKEN")
		assert.ErrorContains(t, err, "SLACK_TOKEN")
	})

	t.Run("BlankSlackToken", func(t *testing.T) {
		cfg := valid()
		cfg.Slack.Token = "  "
		assert.ErrorContains(t, cfg.Validate(), "SLACK_TOKEN")
	})

	t.Run("DatabaseSourceSkipsAirtable", func(t *testing.T) {
		cfg := &Config{Source: tables.Config{Driver: tables.DriverDatabase}}
		cfg.Slack.Token = "xoxb"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		cfg := valid()
		cfg.Slack.Token = "xoxb"
		cfg.Source.Driver = "sheets"
		assert.ErrorContains(t, cfg.Validate(), "sheets")
	})
}
