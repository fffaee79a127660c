package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tomekjam/ai-digest/internal/model"
	"github.com/tomekjam/ai-digest/pkg/llm"
	"github.com/tomekjam/ai-digest/pkg/slack"
)

type HistoryStore interface {
	Load() model.History
	RecentTitles(h model.History) []string
	Save(h model.History) error
}

type DigestFetcher interface {
	FetchDigest(ctx context.Context, recentTitles []string) (string, error)
}

type Publisher interface {
	Post(msg slack.Message) error
}

// Runner sequences one digest run: load history, fetch, parse, publish,
// persist. Strictly linear, no retries.
type Runner struct {
	history   HistoryStore
	fetcher   DigestFetcher
	publisher Publisher
}

func NewRunner(history HistoryStore, fetcher DigestFetcher, publisher Publisher) *Runner {
	return &Runner{
		history:   history,
		fetcher:   fetcher,
		publisher: publisher,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	slog.Info("loading story history")
	history := r.history.Load()
	recentTitles := r.history.RecentTitles(history)
	slog.Info("loaded recent titles", "count", len(recentTitles))

	slog.Info("fetching AI news digest")
	raw, err := r.fetcher.FetchDigest(ctx, recentTitles)
	if err != nil {
		return fmt.Errorf("fetching digest: %w", err)
	}

	stories := llm.ParseStories(raw)
	slog.Info("parsed stories", "count", len(stories))

	if len(stories) == 0 {
		// History stays untouched so tomorrow's dedup list is unaffected
		// by a run that produced nothing.
		slog.Warn("no stories parsed, posting raw digest as fallback")
		if err := r.publisher.Post(slack.BuildFallbackMessage(raw)); err != nil {
			return fmt.Errorf("posting fallback message: %w", err)
		}
		slog.Info("fallback digest posted")
		return nil
	}

	now := time.Now()
	refs := make([]model.StoryRef, 0, len(stories))
	for _, story := range stories {
		refs = append(refs, model.StoryRef{Title: story.Title, URL: story.URL})
	}
	history[now.Format("2006-01-02")] = refs

	if err := r.history.Save(history); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	slog.Info("saved stories to history", "count", len(refs))

	slog.Info("posting digest to slack")
	if err := r.publisher.Post(slack.BuildDigestMessage(stories, now)); err != nil {
		return fmt.Errorf("posting digest: %w", err)
	}
	slog.Info("digest posted")

	return nil
}
