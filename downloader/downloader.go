// Package downloader is the thin file-download collaborator: it stores
// generated document bytes under a filename and returns an identifier.
package downloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Downloader stores a generated document and returns an identifier for it.
type Downloader interface {
	Download(content []byte, mimeType, filename string) (string, error)
}

// FileDownloader writes downloads into a directory on local disk. The
// returned identifier is the written path.
type FileDownloader struct {
	Dir string // defaults to the current directory
}

func (d FileDownloader) Download(content []byte, mimeType, filename string) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}

	log.Info().Str("path", path).Str("mime", mimeType).Int("bytes", len(content)).
		Msg("calendar file written")
	return path, nil
}
