package llm

import (
	"fmt"
	"strings"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

func buildClassifyPrompt(text string, categories []string) string {
	if len(categories) == 0 {
		categories = domain.DefaultCategoryNames
	}

	return fmt.Sprintf(`You are the NexusLog assistant. Analyze the user message below and respond with JSON only.

User message:
"""
%s
"""

Known categories: %s

Determine:
- intent: "note" (information to save) or "instruction" (an action to perform)
- category: reuse one of the known categories whenever it fits; suggest a new name only when nothing fits
- subcategory: an optional narrower label inside the category, or null
- is_content_idea: true if this could become a blog post, video, or social post
- title: a short title, at most %d characters
- processed_content: the message with spelling and grammar corrected, meaning unchanged
- processing_note: a brief note about what you changed

Respond ONLY with a JSON object, no markdown and no explanation:
{
  "intent": "note",
  "title": "<short title>",
  "processed_content": "<cleaned content>",
  "category": "<category name>",
  "subcategory": null,
  "is_content_idea": false,
  "processing_note": "<note>"
}`, text, strings.Join(categories, ", "), domain.MaxTitleLength)
}

func buildIdeaPrompt(idea string) string {
	return fmt.Sprintf(`You are a content strategist. Based on this idea, write a detailed brief that could be used to write a full-length article or record a video.

Idea: %s

The brief must cover:
1. Main topic and angle
2. Target audience
3. Key points to cover
4. Tone and style
5. Call to action

Make it actionable and specific.`, idea)
}

// FallbackIdeaPrompt is used when no brief could be generated.
func FallbackIdeaPrompt(idea string) string {
	return "Create content about: " + idea
}
