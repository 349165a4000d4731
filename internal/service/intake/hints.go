package intake

import (
	"strings"
	"unicode"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Hints are the flags a user can type into a message to steer intake.
type Hints struct {
	IsContentIdea bool
	OutputTypes   []domain.OutputType
}

var hintWords = map[string]domain.OutputType{
	"blog":     domain.OutputTypeBlog,
	"article":  domain.OutputTypeBlog,
	"youtube":  domain.OutputTypeYouTube,
	"video":    domain.OutputTypeYouTube,
	"linkedin": domain.OutputTypeLinkedIn,
	"shorts":   domain.OutputTypeShorts,
	"short":    domain.OutputTypeShorts,
	"reels":    domain.OutputTypeShorts,
}

// ParseHints scans text for whole-word keywords. "idea" marks a content
// idea; channel names select output types; "all", or an idea without any
// channel, selects every output type.
func ParseHints(text string) Hints {
	var h Hints
	seen := make(map[domain.OutputType]bool)
	all := false

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		switch w {
		case "idea", "ideas":
			h.IsContentIdea = true
			continue
		case "all":
			all = true
			continue
		}
		if t, ok := hintWords[w]; ok && !seen[t] {
			seen[t] = true
			h.OutputTypes = append(h.OutputTypes, t)
		}
	}

	if all || (h.IsContentIdea && len(h.OutputTypes) == 0) {
		h.OutputTypes = domain.AllOutputTypes()
	}
	return h
}
