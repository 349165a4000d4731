package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tgapi "github.com/sthacker-ai/NexusLog/internal/adapter/telegram"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Message kinds, also used as the metrics label.
const (
	kindCommand     = "command"
	kindText        = "text"
	kindPhoto       = "photo"
	kindAudio       = "audio"
	kindVideo       = "video"
	kindDocument    = "document"
	kindUnsupported = "unsupported"
	kindIgnored     = "ignored"
)

const (
	previewLength      = 2000
	errorDetailLength  = 200
	replyUnsupported   = "🤔 I don't know how to handle this type of content yet."
	replyNoCategories  = "No categories found."
	replyClassifierOff = "⚠️ AI unavailable, saved as-is."
)

const replyStart = "🧠 Welcome to NexusLog!\n\n" +
	"I'm your AI-powered idea logger. Send me:\n" +
	"- 📝 Text messages\n" +
	"- 🖼️ Images\n" +
	"- 🎤 Voice notes\n" +
	"- 🎥 Videos\n" +
	"- 🔗 Links\n\n" +
	"I'll process, categorize, and store everything for you!\n\n" +
	"Use /help to see all commands."

const replyHelp = "📚 NexusLog Commands:\n\n" +
	"/start - Start the bot\n" +
	"/help - Show this help message\n" +
	"/categories - List categories\n\n" +
	"💡 How to use:\n" +
	"- Just send me any content!\n" +
	"- Add \"idea\" to mark it as a content idea\n" +
	"- Specify output types: \"blog\", \"youtube\", \"linkedin\", \"shorts\", \"reels\"\n" +
	"- Example: \"idea for blog and youtube: How to build AI apps\"\n\n" +
	"I'll automatically categorize and process everything! 🚀"

func messageKind(msg *tgapi.Message) string {
	switch {
	case msg.Text != "":
		if strings.HasPrefix(msg.Text, "/") && isCommand(msg.Text) {
			return kindCommand
		}
		return kindText
	case len(msg.Photo) > 0:
		return kindPhoto
	case msg.Voice != nil || msg.Audio != nil:
		return kindAudio
	case msg.Video != nil || msg.VideoNote != nil || msg.Animation != nil:
		return kindVideo
	case msg.Document != nil:
		return kindDocument
	default:
		return kindUnsupported
	}
}

// commandName strips the leading slash and any @botname suffix.
func commandName(text string) string {
	first := strings.Fields(text)[0]
	name, _, _ := strings.Cut(strings.TrimPrefix(first, "/"), "@")
	return strings.ToLower(name)
}

func isCommand(text string) bool {
	switch commandName(text) {
	case "start", "help", "categories":
		return true
	}
	return false
}

func categoriesReply(list []domain.Category) string {
	if len(list) == 0 {
		return replyNoCategories
	}

	var b strings.Builder
	b.WriteString("📂 Categories\n\n")
	for _, c := range list {
		fmt.Fprintf(&b, "• %s\n", c.Name)
		for _, sub := range c.Subcategories {
			fmt.Fprintf(&b, "  - %s\n", sub.Name)
		}
	}
	return b.String()
}

// confirmation summarises a stored entry for the sender.
func confirmation(res *domain.IngestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Saved! Entry ID: %s\n", res.Entry.ID)

	if res.Category != nil {
		name := res.Category.Name
		if res.Subcategory != nil {
			name += " / " + res.Subcategory.Name
		}
		fmt.Fprintf(&b, "📁 Category: %s\n", name)
	}
	if res.Idea != nil {
		b.WriteString("💡 Marked as content idea\n")
	}
	if res.UsedFallback {
		b.WriteString(replyClassifierOff + "\n")
	}

	content := res.Entry.ProcessedContent
	if content == "" {
		content = res.Entry.RawContent
	}
	b.WriteString("\n📋 Content:\n")
	b.WriteString(truncate(content, previewLength))
	return b.String()
}

func errorReply(err error) string {
	return "❌ Error processing your message: " + truncate(err.Error(), errorDetailLength)
}

func duplicateAudioReply(id fmt.Stringer) string {
	return fmt.Sprintf("⚠️ I already processed this audio (Entry ID: %s).", id)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
