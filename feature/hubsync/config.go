package hubsync

// Config names the tables and fields the sync reads.
type Config struct {
	// HubsTable is the table listing hubs.
	HubsTable string `mapstructure:"hubs_table" default:"Hubs"`
	// CoordinatorsTable is the table listing coordinators.
	CoordinatorsTable string `mapstructure:"coordinators_table" default:"Coordinators"`
	// HubGroupField holds the Slack user group id on a hub.
	HubGroupField string `mapstructure:"hub_group_field" default:"Group ID"`
	// HubCoordinatorsField holds the coordinator references or names on a hub.
	HubCoordinatorsField string `mapstructure:"hub_coordinators_field" default:"Coordinators"`
	// CoordinatorUserField holds the Slack user id on a coordinator.
	CoordinatorUserField string `mapstructure:"coordinator_user_field" default:"Slack ID"`
	// CoordinatorNameField holds the display name on a coordinator.
	CoordinatorNameField string `mapstructure:"coordinator_name_field" default:"Name"`
}

// DefaultConfig returns the configuration matching the standard base layout.
func DefaultConfig() Config {
	return Config{
		HubsTable:            "Hubs",
		CoordinatorsTable:    "Coordinators",
		HubGroupField:        "Group ID",
		HubCoordinatorsField: "Coordinators",
		CoordinatorUserField: "Slack ID",
		CoordinatorNameField: "Name",
	}
}
