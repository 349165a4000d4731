package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/sthacker-ai/NexusLog/internal/adapter/filestore"
	"github.com/sthacker-ai/NexusLog/internal/adapter/linkmeta"
	tgapi "github.com/sthacker-ai/NexusLog/internal/adapter/telegram"
	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
)

// Placeholder content for attachments sent without a caption.
const (
	defaultImageText = "Image uploaded"
	defaultAudioText = "Voice note"
	defaultVideoText = "Video uploaded"
)

func (h *Handler) handleCommand(ctx context.Context, text string) (string, error) {
	switch commandName(text) {
	case "start":
		return replyStart, nil
	case "help":
		return replyHelp, nil
	default:
		list, err := h.deps.Categories.List(ctx)
		if err != nil {
			return "", fmt.Errorf("list categories: %w", err)
		}
		return categoriesReply(list), nil
	}
}

func (h *Handler) handleText(ctx context.Context, msg *tgapi.Message) (string, error) {
	hints := intake.ParseHints(msg.Text)
	input := intake.IngestInput{
		RawContent:    msg.Text,
		ContentType:   domain.ContentTypeText,
		Source:        domain.SourceTelegram,
		IsContentIdea: hints.IsContentIdea,
		OutputTypes:   hints.OutputTypes,
	}

	if link, ok := primaryLink(linkmeta.DetectURLs(msg.Text)); ok {
		input.SourceURL = link.URL
		input.ContentType = domain.ContentTypeLink
		if link.Kind == linkmeta.KindYouTube {
			input.ContentType = domain.ContentTypeVideo
		}
		h.attachLinkMeta(ctx, &input)
	}

	return h.ingest(ctx, input)
}

// primaryLink prefers the first YouTube link, then the first link of any kind.
func primaryLink(links []linkmeta.Link) (linkmeta.Link, bool) {
	for _, l := range links {
		if l.Kind == linkmeta.KindYouTube {
			return l, true
		}
	}
	if len(links) > 0 {
		return links[0], true
	}
	return linkmeta.Link{}, false
}

func (h *Handler) attachLinkMeta(ctx context.Context, input *intake.IngestInput) {
	if h.deps.Links == nil {
		return
	}

	meta, err := h.deps.Links.Extract(ctx, input.SourceURL)
	if err != nil {
		h.log.WarnContext(ctx, "link metadata unavailable",
			slog.String("url", input.SourceURL),
			slog.String("error", err.Error()),
		)
		return
	}

	input.LinkTitle = meta.Title
	var parts []string
	if meta.Title != "" {
		parts = append(parts, "Linked page title: "+meta.Title)
	}
	if meta.Description != "" {
		parts = append(parts, "Linked page description: "+meta.Description)
	}
	input.LinkContext = strings.Join(parts, "\n")
}

func (h *Handler) handlePhoto(ctx context.Context, msg *tgapi.Message) (string, error) {
	photo := tgapi.LargestPhoto(msg.Photo)

	saved, err := h.store(ctx, filestore.DirImages, photo.FileID, photo.FileUniqueID, "")
	if err != nil {
		return "", err
	}

	return h.ingestAttachment(ctx, msg.Caption, defaultImageText, domain.ContentTypeImage, saved, photo.FileUniqueID)
}

func (h *Handler) handleAudio(ctx context.Context, msg *tgapi.Message) (string, error) {
	f := msg.Voice
	if f == nil {
		f = msg.Audio
	}

	if f.FileUniqueID != "" && h.deps.Entries != nil {
		existing, err := h.deps.Entries.FindByFileUniqueID(ctx, f.FileUniqueID)
		switch {
		case err == nil:
			h.log.InfoContext(ctx, "duplicate audio skipped", slog.String("file_unique_id", f.FileUniqueID))
			return duplicateAudioReply(existing.ID), nil
		case !errors.Is(err, domain.ErrNotFound):
			return "", fmt.Errorf("check audio duplicate: %w", err)
		}
	}

	saved, err := h.store(ctx, filestore.DirAudio, f.FileID, f.FileUniqueID, f.FileName)
	if err != nil {
		return "", err
	}

	return h.ingestAttachment(ctx, msg.Caption, defaultAudioText, domain.ContentTypeAudio, saved, f.FileUniqueID)
}

func (h *Handler) handleVideo(ctx context.Context, msg *tgapi.Message) (string, error) {
	f := msg.Video
	if f == nil {
		f = msg.Animation
	}
	if f == nil {
		f = msg.VideoNote
	}

	saved, err := h.store(ctx, filestore.DirVideo, f.FileID, f.FileUniqueID, f.FileName)
	if err != nil {
		return "", err
	}

	return h.ingestAttachment(ctx, msg.Caption, defaultVideoText, domain.ContentTypeVideo, saved, f.FileUniqueID)
}

func (h *Handler) handleDocument(ctx context.Context, msg *tgapi.Message) (string, error) {
	f := msg.Document

	saved, err := h.store(ctx, filestore.DirDocuments, f.FileID, f.FileUniqueID, f.FileName)
	if err != nil {
		return "", err
	}

	name := f.FileName
	if name == "" {
		name = path.Base(saved)
	}
	return h.ingestAttachment(ctx, msg.Caption, "Document: "+name, domain.ContentTypeText, saved, f.FileUniqueID)
}

// store downloads a Telegram file and saves it under dir. The stored name is
// the file_unique_id plus the original name or Telegram's extension.
func (h *Handler) store(ctx context.Context, dir, fileID, uniqueID, origName string) (string, error) {
	data, tgPath, err := h.deps.Bot.DownloadFile(ctx, fileID)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", dir, err)
	}

	saved, err := h.deps.Files.Save(ctx, dir, storedName(fileID, uniqueID, origName, tgPath), data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", dir, err)
	}
	return saved, nil
}

func storedName(fileID, uniqueID, origName, tgPath string) string {
	base := uniqueID
	if base == "" {
		base = fileID
	}
	if origName != "" {
		return base + "_" + origName
	}
	return base + path.Ext(tgPath)
}

func (h *Handler) ingestAttachment(ctx context.Context, caption, placeholder string, ct domain.ContentType, filePath, uniqueID string) (string, error) {
	content := strings.TrimSpace(caption)
	if content == "" {
		content = placeholder
	}

	hints := intake.ParseHints(caption)
	return h.ingest(ctx, intake.IngestInput{
		RawContent:    content,
		ContentType:   ct,
		Source:        domain.SourceTelegram,
		FilePath:      &filePath,
		FileUniqueID:  uniqueID,
		IsContentIdea: hints.IsContentIdea,
		OutputTypes:   hints.OutputTypes,
	})
}

func (h *Handler) ingest(ctx context.Context, input intake.IngestInput) (string, error) {
	res, err := h.deps.Intake.Ingest(ctx, input)
	if err != nil {
		return "", err
	}
	return confirmation(res), nil
}
