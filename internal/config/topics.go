package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Topics holds the search queries fed into the digest prompt.
type Topics struct {
	IndustryQueries []string `yaml:"industry_queries"`
	CompanySources  []string `yaml:"company_sources"`
}

func DefaultTopics() Topics {
	return Topics{
		IndustryQueries: []string{
			"Latest AI news today",
			"AI breakthroughs announcements this week",
			"AI tools and product launches",
			"LLM and generative AI updates",
			"AI startup funding news",
			"AI regulation policy news",
		},
		CompanySources: []string{
			"Stripe engineering blog AI",
			"Spotify engineering blog AI machine learning",
			"Netflix tech blog AI",
			"Airbnb engineering AI",
			"Uber engineering blog AI ML",
			"Shopify engineering AI",
			"LinkedIn engineering blog AI",
			"Duolingo AI blog",
			"Figma AI blog",
			"Notion AI blog",
			"GitHub blog AI",
			"Vercel AI blog",
			"Datadog engineering AI",
			"Cloudflare blog AI",
			"Slack engineering blog AI",
			"Monzo engineering blog AI",
			"Klarna AI blog",
			"Meta engineering AI blog",
			"Google DeepMind blog",
			"OpenAI blog",
		},
	}
}

// LoadTopics reads a YAML topics file and merges it over the defaults.
// A missing file is not an error; a list left empty in the file keeps
// its default.
func LoadTopics(path string) (Topics, error) {
	topics := DefaultTopics()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no topics file found, using defaults", "path", path)
			return topics, nil
		}
		return topics, err
	}

	var loaded Topics
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return topics, err
	}

	if len(loaded.IndustryQueries) > 0 {
		topics.IndustryQueries = loaded.IndustryQueries
	}
	if len(loaded.CompanySources) > 0 {
		topics.CompanySources = loaded.CompanySources
	}

	return topics, nil
}
