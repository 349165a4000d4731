package telegram

// Update is one incoming Bot API update. Only the fields NexusLog reads
// are decoded.
type Update struct {
	UpdateID      int64    `json:"update_id"`
	Message       *Message `json:"message,omitempty"`
	EditedMessage *Message `json:"edited_message,omitempty"`
	ChannelPost   *Message `json:"channel_post,omitempty"`
}

// EffectiveMessage returns the message carried by the update, if any.
func (u Update) EffectiveMessage() *Message {
	switch {
	case u.Message != nil:
		return u.Message
	case u.EditedMessage != nil:
		return u.EditedMessage
	default:
		return u.ChannelPost
	}
}

// Message is a Telegram message.
type Message struct {
	MessageID int64       `json:"message_id"`
	Date      int64       `json:"date"`
	Chat      Chat        `json:"chat"`
	From      *User       `json:"from,omitempty"`
	Text      string      `json:"text,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
	Voice     *File       `json:"voice,omitempty"`
	Audio     *File       `json:"audio,omitempty"`
	Video     *File       `json:"video,omitempty"`
	VideoNote *File       `json:"video_note,omitempty"`
	Animation *File       `json:"animation,omitempty"`
	Document  *File       `json:"document,omitempty"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// User is the sender of a message.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// Entity marks a span of message text, such as a URL or a bot command.
type Entity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
}

// PhotoSize is one resolution of a photo.
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// File covers voice, audio, video, animation and document attachments, and
// the getFile result. FilePath is set only by getFile.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileName     string `json:"file_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	FileSize     int64  `json:"file_size,omitempty"`
	Duration     int    `json:"duration,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// LargestPhoto returns the highest resolution in sizes, or nil.
func LargestPhoto(sizes []PhotoSize) *PhotoSize {
	var best *PhotoSize
	for i := range sizes {
		if best == nil || sizes[i].Width*sizes[i].Height > best.Width*best.Height {
			best = &sizes[i]
		}
	}
	return best
}

// apiResponse is the envelope of every Bot API reply.
type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}
