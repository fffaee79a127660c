package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tomekjam/ai-digest/internal/model"
)

// Store owns the history file. No other component reads or writes it.
type Store struct {
	path          string
	retentionDays int
}

func NewStore(path string, retentionDays int) *Store {
	return &Store{
		path:          path,
		retentionDays: retentionDays,
	}
}

// Load reads the history file. A missing or unreadable file yields an
// empty history, never an error.
func (s *Store) Load() model.History {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.History{}
	}

	var h model.History
	if err := json.Unmarshal(data, &h); err != nil {
		return model.History{}
	}
	if h == nil {
		return model.History{}
	}
	return h
}

// RecentTitles flattens all non-empty titles across retained days. Order
// is map iteration order; callers only use the titles as a do-not-repeat
// set, not for ranking.
func (s *Store) RecentTitles(h model.History) []string {
	var titles []string
	for _, stories := range h {
		for _, story := range stories {
			if story.Title != "" {
				titles = append(titles, story.Title)
			}
		}
	}
	return titles
}

// Save prunes entries older than the retention window and overwrites the
// history file. Entries dated exactly at the cutoff are kept.
func (s *Store) Save(h model.History) error {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays).Format("2006-01-02")

	pruned := model.History{}
	for date, stories := range h {
		if date >= cutoff {
			pruned[date] = stories
		}
	}

	data, err := json.MarshalIndent(pruned, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}

	return nil
}
