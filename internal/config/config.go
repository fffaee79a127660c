package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Config struct {
	AnthropicAPIKey string `long:"anthropic-api-key" env:"ANTHROPIC_API_KEY" description:"Anthropic API key"`
	SlackWebhookURL string `long:"slack-webhook-url" env:"SLACK_WEBHOOK_URL" description:"Slack incoming webhook URL"`

	HistoryFile string `long:"history-file" env:"HISTORY_FILE" default:"history.json" description:"Path to the story history file"`
	HistoryDays int    `long:"history-days" env:"HISTORY_DAYS" default:"3" description:"Days of history kept for deduplication"`
	TopicsFile  string `long:"topics-file" env:"TOPICS_FILE" default:"topics.yml" description:"Optional YAML file overriding search topics"`

	Port        string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (api binary only)"`
	FrontendURL string `long:"frontend-url" env:"FRONTEND_URL" description:"Additional allowed CORS origin (api binary only)"`
}

// Load parses configuration from flags and environment. Returns (nil, nil)
// when help was requested.
func Load() (*Config, error) {
	var cfg Config

	parser := flags.NewParser(&cfg, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
