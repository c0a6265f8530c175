package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	slackgo "github.com/slack-go/slack"
)

// MemberSeparator joins user ids in a usergroups.users.update call.
const MemberSeparator = ","

// GroupUpdater replaces the full membership of an external group.
type GroupUpdater interface {
	// UpdateMembers sets groupID's members to exactly userIDs.
	UpdateMembers(ctx context.Context, groupID string, userIDs []string) error
}

// Config holds the Slack Web API settings.
type Config struct {
	// Token is a bot or user token with usergroups:write. Required.
	Token string `mapstructure:"token" default:""`
	// APIURL overrides the Web API endpoint (tests, proxies).
	APIURL string `mapstructure:"api_url" default:""`
	// TimeoutSeconds bounds each API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Client updates Slack user groups.
type Client struct {
	api *slackgo.Client
}

// NewClient creates a Slack client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	opts := []slackgo.Option{
		slackgo.OptionHTTPClient(&http.Client{Timeout: time.Duration(timeout) * time.Second}),
	}
	if cfg.APIURL != "" {
		apiURL := cfg.APIURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, slackgo.OptionAPIURL(apiURL))
	}

	return &Client{api: slackgo.New(cfg.Token, opts...)}
}

// UpdateMembers calls usergroups.users.update with the full member list.
// A response with ok=false is returned as an error.
func (c *Client) UpdateMembers(ctx context.Context, groupID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("refusing to set empty membership on user group %s", groupID)
	}

	members := strings.Join(userIDs, MemberSeparator)
	if _, err := c.api.UpdateUserGroupMembersContext(ctx, groupID, members); err != nil {
		return fmt.Errorf("failed to update user group %s: %w", groupID, err)
	}
	return nil
}
