package domain

// ContentType is the kind of content an entry was captured from.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeAudio ContentType = "audio"
	ContentTypeVideo ContentType = "video"
	ContentTypeLink  ContentType = "link"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeText, ContentTypeImage, ContentTypeAudio, ContentTypeVideo, ContentTypeLink:
		return true
	}
	return false
}

// AllContentTypes lists every content type in display order.
var AllContentTypes = []ContentType{
	ContentTypeText, ContentTypeImage, ContentTypeAudio, ContentTypeVideo, ContentTypeLink,
}

// Source is the channel an entry arrived through.
type Source string

const (
	SourceTelegram Source = "telegram"
	SourceManual   Source = "manual"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceTelegram, SourceManual:
		return true
	}
	return false
}

// Intent is the classifier's judgement of what the user meant by a message.
type Intent string

const (
	IntentNote        Intent = "note"
	IntentInstruction Intent = "instruction"
)

func (i Intent) String() string { return string(i) }

func (i Intent) IsValid() bool {
	switch i {
	case IntentNote, IntentInstruction:
		return true
	}
	return false
}

// OutputType is a channel a content idea can be produced for.
type OutputType string

const (
	OutputTypeBlog     OutputType = "blog"
	OutputTypeYouTube  OutputType = "youtube"
	OutputTypeLinkedIn OutputType = "linkedin"
	OutputTypeShorts   OutputType = "shorts"
	OutputTypeReels    OutputType = "reels"
)

func (o OutputType) String() string { return string(o) }

func (o OutputType) IsValid() bool {
	switch o {
	case OutputTypeBlog, OutputTypeYouTube, OutputTypeLinkedIn, OutputTypeShorts, OutputTypeReels:
		return true
	}
	return false
}

// AllOutputTypes returns a fresh slice with every output type.
func AllOutputTypes() []OutputType {
	return []OutputType{
		OutputTypeBlog, OutputTypeYouTube, OutputTypeLinkedIn, OutputTypeShorts, OutputTypeReels,
	}
}

// Default status values for ideas and projects. Status is free text.
const (
	IdeaStatusIdea    = "idea"
	ProjectStatusIdea = "idea"
)
