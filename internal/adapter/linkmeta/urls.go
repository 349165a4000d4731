package linkmeta

import (
	"regexp"
	"strings"
)

// LinkKind classifies a detected URL.
type LinkKind string

const (
	KindYouTube LinkKind = "youtube"
	KindGeneric LinkKind = "generic"
)

// Link is a URL found in message text.
type Link struct {
	URL  string
	Kind LinkKind
}

var urlPattern = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")

// DetectURLs returns the URLs in text in order of appearance. Trailing
// sentence punctuation is not part of a URL.
func DetectURLs(text string) []Link {
	matches := urlPattern.FindAllString(text, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?)'")
		links = append(links, Link{URL: m, Kind: classify(m)})
	}
	return links
}

// IsYouTube reports whether u points at a YouTube video.
func IsYouTube(u string) bool {
	return classify(u) == KindYouTube
}

func classify(u string) LinkKind {
	lower := strings.ToLower(u)
	switch {
	case strings.Contains(lower, "youtube.com/watch?v="),
		strings.Contains(lower, "youtu.be/"),
		strings.Contains(lower, "youtube.com/shorts/"):
		return KindYouTube
	default:
		return KindGeneric
	}
}
