// Package config provides configuration management for hub-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (via godotenv). Defaults come from the `default` struct tags
// of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sync: table and field names (SYNC_HUBS_TABLE, SYNC_COORDINATOR_USER_FIELD, ...)
//   - Source: table source driver (airtable, database, storage)
//   - Airtable: base id, token and API settings (AIRTABLE_BASE_ID, AIRTABLE_TOKEN)
//   - Slack: Web API token (SLACK_TOKEN)
//   - Database / Storage: settings for the alternative table sources
//   - Server: HTTP port and API key for the serve command
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
