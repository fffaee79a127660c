package llm

import (
	"strings"

	"github.com/tomekjam/ai-digest/internal/model"
)

const maxStories = 15

var storyFields = []string{"TITLE", "URL", "CATEGORY", "SUMMARY", "WHY_IT_MATTERS"}

// ParseStories extracts structured stories from the model's raw digest
// text. Parsing is best-effort: segments without an end sentinel or a
// TITLE are dropped silently, and at most 15 stories are returned in
// encounter order.
func ParseStories(raw string) []model.Story {
	var stories []model.Story

	for _, chunk := range strings.Split(raw, StoryStartSentinel) {
		if !strings.Contains(chunk, StoryEndSentinel) {
			continue
		}
		body := strings.TrimSpace(strings.SplitN(chunk, StoryEndSentinel, 2)[0])

		fields := map[string]string{}
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(line)
			for _, field := range storyFields {
				if strings.HasPrefix(line, field+":") {
					fields[field] = strings.TrimSpace(line[len(field)+1:])
					break
				}
			}
		}

		if fields["TITLE"] == "" {
			continue
		}

		stories = append(stories, model.Story{
			Title:        fields["TITLE"],
			URL:          fields["URL"],
			Category:     fields["CATEGORY"],
			Summary:      fields["SUMMARY"],
			WhyItMatters: fields["WHY_IT_MATTERS"],
		})

		if len(stories) == maxStories {
			break
		}
	}

	return stories
}
