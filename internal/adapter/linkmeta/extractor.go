// Package linkmeta finds links in message text and fetches a title and
// description for them.
package linkmeta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/sthacker-ai/NexusLog/internal/config"
)

// Metadata is what could be learned about a page.
type Metadata struct {
	URL         string
	Title       string
	Description string
	SiteName    string
}

// Extractor fetches pages and reads their metadata.
type Extractor struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
	log       *slog.Logger
}

// NewExtractor creates an Extractor from cfg.
func NewExtractor(cfg config.LinkMetaConfig, logger *slog.Logger) *Extractor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}

	return &Extractor{
		client:    &http.Client{Timeout: timeout},
		maxBytes:  maxBytes,
		userAgent: cfg.UserAgent,
		log:       logger.With("adapter", "linkmeta"),
	}
}

// Extract fetches pageURL and returns its metadata. The title comes from
// og:title, then <title>, then the first <h1>, then a readability pass over
// the body.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*Metadata, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, fmt.Errorf("linkmeta: invalid url %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("linkmeta: create request: %w", err)
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkmeta: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkmeta: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("linkmeta: read body: %w", err)
	}

	meta, err := parse(body, parsedURL)
	if err != nil {
		return nil, err
	}

	e.log.DebugContext(ctx, "link metadata extracted",
		slog.String("url", pageURL),
		slog.String("title", meta.Title),
	)

	return meta, nil
}

func parse(body []byte, pageURL *url.URL) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("linkmeta: parse html: %w", err)
	}

	meta := &Metadata{
		URL:         pageURL.String(),
		Title:       firstNonEmpty(attr(doc, "meta[property='og:title']"), text(doc, "title"), text(doc, "h1")),
		Description: firstNonEmpty(attr(doc, "meta[property='og:description']"), attr(doc, "meta[name='description']")),
		SiteName:    firstNonEmpty(attr(doc, "meta[property='og:site_name']"), pageURL.Host),
	}

	if meta.Title == "" {
		meta.Title = readabilityTitle(body, pageURL)
	}

	return meta, nil
}

func readabilityTitle(body []byte, pageURL *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.Title)
}

func attr(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

func text(doc *goquery.Document, selector string) string {
	return strings.Join(strings.Fields(doc.Find(selector).First().Text()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
