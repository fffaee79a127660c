package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadTopics_MissingFile(t *testing.T) {
	topics, err := LoadTopics(filepath.Join(t.TempDir(), "topics.yml"))

	assert.Equal(t, nil, err)
	assert.Equal(t, len(DefaultTopics().IndustryQueries), len(topics.IndustryQueries))
	assert.Equal(t, len(DefaultTopics().CompanySources), len(topics.CompanySources))
}

func TestLoadTopics_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yml")
	content := `
industry_queries:
  - Robotics news today
company_sources:
  - Acme engineering blog AI
  - Initech tech blog ML
`
	os.WriteFile(path, []byte(content), 0644)

	topics, err := LoadTopics(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(topics.IndustryQueries))
	assert.Equal(t, "Robotics news today", topics.IndustryQueries[0])
	assert.Equal(t, 2, len(topics.CompanySources))
}

func TestLoadTopics_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yml")
	os.WriteFile(path, []byte("industry_queries:\n  - Only industry\n"), 0644)

	topics, err := LoadTopics(path)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(topics.IndustryQueries))
	assert.Equal(t, len(DefaultTopics().CompanySources), len(topics.CompanySources))
}

func TestLoadTopics_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yml")
	os.WriteFile(path, []byte("industry_queries: [unclosed"), 0644)

	_, err := LoadTopics(path)

	assert.NotEqual(t, nil, err)
}
