package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomekjam/ai-digest/internal/model"
)

// Block Kit payload types, limited to the block shapes the digest uses.
type Message struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	Elements []Text `json:"elements,omitempty"`
}

type Text struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

const (
	fallbackLimit = 3000
	attribution   = "🛠️ Powered by Claude AI | Industry news 📰 + Company engineering blogs 🏢"
)

var categoryEmoji = map[string]string{
	model.CategoryIndustry: "📰",
	model.CategoryCompany:  "🏢",
}

// BuildDigestMessage renders the parsed stories as a Block Kit message.
// Pure function of its arguments; the date header comes from now.
func BuildDigestMessage(stories []model.Story, now time.Time) Message {
	today := now.Format("Monday, January 2, 2006")

	blocks := []Block{
		{
			Type: "header",
			Text: &Text{
				Type:  "plain_text",
				Text:  fmt.Sprintf("🤖 AI Daily Digest — %s", today),
				Emoji: true,
			},
		},
		{
			Type: "section",
			Text: &Text{
				Type: "mrkdwn",
				Text: "Here are today's *15 coolest AI stories* — industry news + how top tech companies are using AI 👇",
			},
		},
		{Type: "divider"},
	}

	for i, story := range stories {
		emoji, ok := categoryEmoji[strings.ToLower(story.Category)]
		if !ok {
			emoji = categoryEmoji[model.CategoryIndustry]
		}

		title := story.Title
		if title == "" {
			title = "Untitled"
		}
		titleText := title
		if story.URL != "" {
			titleText = fmt.Sprintf("<%s|%s>", story.URL, title)
		}

		summary := story.Summary
		if summary == "" {
			summary = "No summary available."
		}

		text := fmt.Sprintf("%s *#%d — %s*\n\n%s", emoji, i+1, titleText, summary)
		if story.WhyItMatters != "" {
			text += fmt.Sprintf("\n\n💡 *Why it matters:* %s", story.WhyItMatters)
		}

		blocks = append(blocks,
			Block{Type: "section", Text: &Text{Type: "mrkdwn", Text: text}},
			Block{Type: "divider"},
		)
	}

	blocks = append(blocks, Block{
		Type:     "context",
		Elements: []Text{{Type: "mrkdwn", Text: attribution}},
	})

	return Message{Blocks: blocks}
}

// BuildFallbackMessage wraps the raw digest text in a single section when
// no stories could be parsed, truncated to the first 3000 characters.
func BuildFallbackMessage(raw string) Message {
	if len(raw) > fallbackLimit {
		raw = raw[:fallbackLimit]
	}

	return Message{
		Blocks: []Block{
			{
				Type: "section",
				Text: &Text{
					Type: "mrkdwn",
					Text: fmt.Sprintf("*AI Daily Digest*\n\n%s", raw),
				},
			},
		},
	}
}
