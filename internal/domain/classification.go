package domain

// MaxTitleLength bounds generated titles, in runes.
const MaxTitleLength = 50

// Classification is the structured judgement returned for one piece of text.
type Classification struct {
	Intent           Intent
	Title            string
	ProcessedContent string
	Category         string
	Subcategory      string
	IsContentIdea    bool
	ProcessingNote   string
}

// IngestResult is everything one intake run produced.
type IngestResult struct {
	Entry          *Entry
	Category       *Category
	Subcategory    *Category
	Idea           *ContentIdea
	Classification Classification
	UsedFallback   bool
}
