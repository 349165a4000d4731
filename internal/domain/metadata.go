package domain

// Well-known keys of the entry metadata bag.
const (
	MetaTitle          = "title"
	MetaIsContentIdea  = "is_content_idea"
	MetaOutputTypes    = "output_types"
	MetaSourceURL      = "source_url"
	MetaFileUniqueID   = "file_unique_id"
	MetaIntent         = "intent"
	MetaProcessingNote = "processing_note"
	MetaLinkTitle      = "link_title"
)

// Metadata is the free-form JSON bag attached to an entry. Keys this package
// does not know about are kept as-is.
type Metadata map[string]any

func (m Metadata) str(key string) string {
	s, _ := m[key].(string)
	return s
}

// Title returns the generated title, or "".
func (m Metadata) Title() string { return m.str(MetaTitle) }

// SourceURL returns the link the entry was captured from, or "".
func (m Metadata) SourceURL() string { return m.str(MetaSourceURL) }

// FileUniqueID returns the Telegram file_unique_id, or "".
func (m Metadata) FileUniqueID() string { return m.str(MetaFileUniqueID) }

// IsContentIdea reports whether the entry was flagged as a content idea.
func (m Metadata) IsContentIdea() bool {
	b, _ := m[MetaIsContentIdea].(bool)
	return b
}

// OutputTypes returns the requested output channels. It accepts both the
// in-memory form and the []any form produced by decoding JSON.
func (m Metadata) OutputTypes() []OutputType {
	switch v := m[MetaOutputTypes].(type) {
	case []OutputType:
		return v
	case []string:
		out := make([]OutputType, 0, len(v))
		for _, s := range v {
			out = append(out, OutputType(s))
		}
		return out
	case []any:
		out := make([]OutputType, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, OutputType(s))
			}
		}
		return out
	}
	return nil
}

// SetString stores value under key, skipping empty strings.
func (m Metadata) SetString(key, value string) {
	if value == "" {
		return
	}
	m[key] = value
}

// SetOutputTypes stores output types as plain strings so the bag encodes
// to a JSON array.
func (m Metadata) SetOutputTypes(types []OutputType) {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	m[MetaOutputTypes] = out
}
