package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tomekjam/ai-digest/internal/config"
	"github.com/tomekjam/ai-digest/internal/digest"
	"github.com/tomekjam/ai-digest/internal/history"
	"github.com/tomekjam/ai-digest/pkg/llm"
	"github.com/tomekjam/ai-digest/pkg/slack"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}
	if cfg == nil {
		return
	}

	if cfg.AnthropicAPIKey == "" {
		log.Fatalf("ANTHROPIC_API_KEY is not set")
	}
	if cfg.SlackWebhookURL == "" {
		log.Fatalf("SLACK_WEBHOOK_URL is not set")
	}

	topics, err := config.LoadTopics(cfg.TopicsFile)
	if err != nil {
		log.Fatalf("error loading topics: %v", err)
	}

	store := history.NewStore(cfg.HistoryFile, cfg.HistoryDays)
	fetcher := llm.NewAnthropicClient(cfg.AnthropicAPIKey, topics)
	publisher := slack.NewWebhookClient(cfg.SlackWebhookURL)

	runner := digest.NewRunner(store, fetcher, publisher)

	if err := runner.Run(context.Background()); err != nil {
		log.Fatalf("digest run failed: %v", err)
	}
}
