package model

const (
	CategoryIndustry = "industry"
	CategoryCompany  = "company"
)

// Story is one curated news item parsed from the model's digest output.
type Story struct {
	Title        string
	URL          string
	Category     string
	Summary      string
	WhyItMatters string
}

// StoryRef is the persisted shape of a story: just enough to avoid
// repeating it on later days.
type StoryRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// History maps YYYY-MM-DD date keys to the stories reported that day.
type History map[string][]StoryRef
