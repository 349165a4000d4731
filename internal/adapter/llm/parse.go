package llm

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// rawClassification mirrors the JSON the model is asked to produce.
// Fields are raw so that wrong types are reported instead of zeroed.
type rawClassification struct {
	Intent           json.RawMessage `json:"intent"`
	Title            json.RawMessage `json:"title"`
	ProcessedContent json.RawMessage `json:"processed_content"`
	Category         json.RawMessage `json:"category"`
	Subcategory      json.RawMessage `json:"subcategory"`
	IsContentIdea    json.RawMessage `json:"is_content_idea"`
	ProcessingNote   json.RawMessage `json:"processing_note"`
}

type rawEnvelope struct {
	rawClassification
	Items []rawClassification `json:"items"`
}

// ParseClassification turns model output into a Classification. The text may
// be wrapped in a markdown code fence. A {"items": [...]} envelope is accepted
// and its first item used. Any deviation from the expected shape is returned
// as a *ClassificationError.
func ParseClassification(text string) (domain.Classification, error) {
	body := StripFence(text)
	if body == "" {
		return domain.Classification{}, parseError("empty response")
	}

	dec := json.NewDecoder(strings.NewReader(body))
	var env rawEnvelope
	if err := dec.Decode(&env); err != nil {
		return domain.Classification{}, parseError("decode json: %w", err)
	}
	if dec.More() {
		return domain.Classification{}, parseError("trailing data after json object")
	}

	raw := env.rawClassification
	if env.Items != nil {
		if len(env.Items) == 0 {
			return domain.Classification{}, parseError("items array is empty")
		}
		raw = env.Items[0]
	}

	return validate(raw)
}

func validate(raw rawClassification) (domain.Classification, error) {
	var (
		c   domain.Classification
		err error
	)

	if c.ProcessedContent, err = requiredString(raw.ProcessedContent, "processed_content"); err != nil {
		return domain.Classification{}, err
	}
	if c.Category, err = requiredString(raw.Category, "category"); err != nil {
		return domain.Classification{}, err
	}
	c.Category = domain.TruncateRunes(c.Category, domain.MaxCategoryNameLength)

	intent, err := optionalString(raw.Intent, "intent")
	if err != nil {
		return domain.Classification{}, err
	}
	c.Intent = domain.IntentNote
	if intent != "" {
		c.Intent = domain.Intent(strings.ToLower(intent))
		if !c.Intent.IsValid() {
			return domain.Classification{}, parseError("intent %q is not note or instruction", intent)
		}
	}

	if c.Subcategory, err = optionalString(raw.Subcategory, "subcategory"); err != nil {
		return domain.Classification{}, err
	}
	c.Subcategory = domain.TruncateRunes(c.Subcategory, domain.MaxCategoryNameLength)
	if c.ProcessingNote, err = optionalString(raw.ProcessingNote, "processing_note"); err != nil {
		return domain.Classification{}, err
	}

	if len(raw.IsContentIdea) > 0 && !isNull(raw.IsContentIdea) {
		if err := json.Unmarshal(raw.IsContentIdea, &c.IsContentIdea); err != nil {
			return domain.Classification{}, parseError("is_content_idea must be a boolean")
		}
	}

	title, err := optionalString(raw.Title, "title")
	if err != nil {
		return domain.Classification{}, err
	}
	if title == "" {
		title = domain.FirstLine(c.ProcessedContent)
	}
	c.Title = domain.TruncateRunes(title, domain.MaxTitleLength)

	return c, nil
}

func requiredString(raw json.RawMessage, field string) (string, error) {
	s, err := optionalString(raw, field)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", parseError("%s is required", field)
	}
	return s, nil
}

// optionalString decodes a string field. Missing and null both yield "".
func optionalString(raw json.RawMessage, field string) (string, error) {
	if len(raw) == 0 || isNull(raw) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", parseError("%s must be a string", field)
	}
	return strings.TrimSpace(s), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// StripFence removes a surrounding markdown code fence (``` or ```json) and
// any text outside it. Text without a fence is returned trimmed.
func StripFence(text string) string {
	s := strings.TrimSpace(text)

	start := strings.Index(s, "```")
	if start == -1 {
		return s
	}

	rest := s[start+3:]
	// Drop the language tag line, if any.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		tag := strings.TrimSpace(rest[:nl])
		if tag == "" || isLangTag(tag) {
			rest = rest[nl+1:]
		}
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}

	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest)
}

func isLangTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
