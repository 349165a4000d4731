// Package filestore keeps uploaded media on the local disk.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Subdirectories used for each kind of media.
const (
	DirImages    = "images"
	DirAudio     = "audio"
	DirVideo     = "video"
	DirDocuments = "documents"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Local stores files under a root directory.
type Local struct {
	root string
}

// NewLocal creates a Local rooted at root. The directory is created lazily.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Root returns the storage root on disk.
func (l *Local) Root() string {
	return l.root
}

// Save writes data to dir/name under the root and returns the slash-separated
// path relative to the root. name is sanitized; when it has no extension one
// is detected from the content.
func (l *Local) Save(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("filestore: empty file")
	}

	dir = SanitizeName(dir)
	if dir == "" {
		return "", errors.New("filestore: directory is required")
	}

	name = SanitizeName(name)
	if name == "" {
		name = "file"
	}
	if filepath.Ext(name) == "" {
		name += mimetype.Detect(data).Extension()
	}

	abs := filepath.Join(l.root, dir)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("filestore: create dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(abs, name), data, 0o644); err != nil {
		return "", fmt.Errorf("filestore: write %s: %w", name, err)
	}

	return path.Join(dir, name), nil
}

// Open returns the absolute path of a file previously returned by Save.
// Paths escaping the root and anything but regular files are rejected.
func (l *Local) Open(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("filestore: invalid path %q", rel)
	}

	abs := filepath.Join(l.root, clean)
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("filestore: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("filestore: %q is not a file: %w", rel, fs.ErrNotExist)
	}
	return abs, nil
}

// SanitizeName keeps letters, digits, dot, dash and underscore, replacing
// anything else with "_". Leading dots are dropped.
func SanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.TrimLeft(name, ".")
}
