package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomekjam/ai-digest/internal/config"
)

// Sentinels demarcating one story block in the model's output.
const (
	StoryStartSentinel = "===STORY==="
	StoryEndSentinel   = "===END==="
)

const dedupTemplate = `
CRITICAL — DO NOT REPEAT THESE STORIES. They were already covered in previous days:
%s

If a story is an UPDATE or SIGNIFICANT NEW DEVELOPMENT on a previous topic, you may include
it but you MUST frame it as new information (e.g., "Update: ..." or "New development: ...").
Do NOT include the same announcement, launch, or event just reworded.
`

// BuildDigestPrompt assembles the full web-search instruction for one run.
// The dedup block is emitted only when recentTitles is non-empty; each
// title appears verbatim on its own line.
func BuildDigestPrompt(now time.Time, recentTitles []string, topics config.Topics) string {
	today := now.Format("January 2, 2006")

	dedupBlock := ""
	if len(recentTitles) > 0 {
		lines := make([]string, 0, len(recentTitles))
		for _, title := range recentTitles {
			lines = append(lines, "- "+title)
		}
		dedupBlock = fmt.Sprintf(dedupTemplate, strings.Join(lines, "\n"))
	}

	return fmt.Sprintf(`Today is %s. Search the web thoroughly for the most interesting and impactful
AI news from the last 24-48 hours. Cover BOTH major industry news AND how leading tech companies
are applying AI in practice.

Search for at least 8-10 different queries to get broad coverage. Include:

INDUSTRY NEWS (search for these):
%s

TECH COMPANY AI BLOGS (search for recent posts from these sources):
%s

Prioritize stories from the company blogs that describe REAL implementations,
lessons learned, architectures, or case studies — not just marketing announcements.

After gathering results, select the TOP 15 most "cool" stories. Rank by:
1. **Novelty** — Is this genuinely new or surprising?
2. **Impact** — Will this affect practitioners, businesses, or the industry?
3. **Practical relevance** — Can someone act on or learn from this?
4. **Buzz** — Is the community talking about it?

IMPORTANT RULES FOR DIVERSITY:
- NEVER include more than 2 stories about the same event, conference, or summit. Consolidate
  related announcements from the same event into a single story.
- NEVER include more than 2 stories about the same company. Pick only the most impactful one.
- Maximize TOPIC diversity: spread across model releases, company use cases, research,
  regulation, infrastructure, funding, open source, and practical applications.
- If a major event (like a summit or conference) produced many announcements, pick the
  1-2 most impactful and move on to other topics.
%s
Aim for a MIX: roughly 8-9 industry news stories and 6-7 company engineering blog posts.

For each of the 15 stories, provide EXACTLY this format (this will be parsed):

%s
TITLE: [Headline]
URL: [Source URL]
CATEGORY: [Industry or Company]
SUMMARY: [2-3 sentence summary of what happened]
WHY_IT_MATTERS: [1-2 sentences on why a practitioner should care]
%s

Be specific. Use real URLs from your search results. Do not invent or hallucinate stories.`,
		today,
		bulletList(topics.IndustryQueries),
		bulletList(topics.CompanySources),
		dedupBlock,
		StoryStartSentinel,
		StoryEndSentinel,
	)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
