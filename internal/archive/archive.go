package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/nwaples/rardecode/v2"

	"github.com/subfix-io/subfix/internal/apperrors"
	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/subtitle"
)

// File is a single file carried inside an archive payload.
type File struct {
	Name    string
	Content []byte
}

// Archive magic bytes.
var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	rarMagic  = []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07}
	gzipMagic = []byte{0x1F, 0x8B}
)

// IsArchive reports whether the payload looks like a zip, rar or gzip archive.
func IsArchive(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic) ||
		bytes.HasPrefix(data, rarMagic) ||
		bytes.HasPrefix(data, gzipMagic)
}

// ExtractSubtitles unwraps an archive payload and returns the contained files
// with a recognized subtitle extension, in archive order. A payload that is
// not an archive is returned as-is as a single unnamed file.
func ExtractSubtitles(data []byte) ([]File, error) {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return extractZip(data)
	case bytes.HasPrefix(data, rarMagic):
		return extractRar(data)
	case bytes.HasPrefix(data, gzipMagic):
		return extractGzip(data)
	}
	return []File{{Content: data}}, nil
}

func extractZip(data []byte) ([]File, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open ZIP archive: %w", err)
	}

	logger := config.GetLogger()
	logger.Debug().Int("fileCount", len(reader.File)).Msg("Searching for subtitles in ZIP archive")

	var files []File
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !isSubtitleFilename(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s in ZIP: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s from ZIP: %w", file.Name, err)
		}

		files = append(files, File{Name: filepath.Base(file.Name), Content: content})
	}

	if len(files) == 0 {
		return nil, apperrors.NewNoSubtitleInArchiveError(len(reader.File))
	}
	return files, nil
}

func extractRar(data []byte) ([]File, error) {
	reader, err := rardecode.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open RAR archive: %w", err)
	}

	var files []File
	total := 0
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read RAR archive: %w", err)
		}
		total++

		if header.IsDir || !isSubtitleFilename(header.Name) {
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s from RAR: %w", header.Name, err)
		}
		files = append(files, File{Name: filepath.Base(header.Name), Content: content})
	}

	if len(files) == 0 {
		return nil, apperrors.NewNoSubtitleInArchiveError(total)
	}
	return files, nil
}

func extractGzip(data []byte) ([]File, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip payload: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip payload: %w", err)
	}

	// gzip wraps a single file; the embedded name is optional.
	name := reader.Header.Name
	if name != "" {
		if !isSubtitleFilename(name) {
			return nil, apperrors.NewNoSubtitleInArchiveError(1)
		}
		name = filepath.Base(name)
	}
	return []File{{Name: name, Content: content}}, nil
}

func isSubtitleFilename(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range subtitle.SubtitleExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
