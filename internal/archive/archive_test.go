package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/subfix-io/subfix/internal/apperrors"
)

const srtPayload = "1\n00:00:01,000 --> 00:00:02,000\nHello\n"

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Create(%s) unexpected error: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Write(%s) unexpected error: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	return buf.Bytes()
}

func buildGzip(t *testing.T, name string, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Header.Name = name
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	return buf.Bytes()
}

func TestIsArchive(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"zip", buildZip(t, map[string]string{"a.srt": srtPayload}), true},
		{"gzip", buildGzip(t, "", srtPayload), true},
		{"rar magic", []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00}, true},
		{"plain text", []byte(srtPayload), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArchive(tt.data); got != tt.want {
				t.Errorf("IsArchive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractSubtitles_Passthrough(t *testing.T) {
	files, err := ExtractSubtitles([]byte(srtPayload))
	if err != nil {
		t.Fatalf("ExtractSubtitles() unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Name != "" {
		t.Errorf("Name = %q, want empty for a passthrough payload", files[0].Name)
	}
	if string(files[0].Content) != srtPayload {
		t.Error("passthrough content changed")
	}
}

func TestExtractSubtitles_Zip(t *testing.T) {
	data := buildZip(t, map[string]string{
		"subs/movie.srt": srtPayload,
		"readme.nfo":     "release notes",
	})

	files, err := ExtractSubtitles(data)
	if err != nil {
		t.Fatalf("ExtractSubtitles() unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Name != "movie.srt" {
		t.Errorf("Name = %q, want %q", files[0].Name, "movie.srt")
	}
	if string(files[0].Content) != srtPayload {
		t.Error("extracted content does not match the archived content")
	}
}

func TestExtractSubtitles_ZipWithoutSubtitle(t *testing.T) {
	data := buildZip(t, map[string]string{"readme.nfo": "release notes"})

	_, err := ExtractSubtitles(data)
	if err == nil {
		t.Fatal("ExtractSubtitles() expected an error")
	}
	if !errors.Is(err, &apperrors.ErrNoSubtitleInArchive{}) {
		t.Errorf("error = %v, want ErrNoSubtitleInArchive", err)
	}
}

func TestExtractSubtitles_Gzip(t *testing.T) {
	t.Run("named subtitle", func(t *testing.T) {
		files, err := ExtractSubtitles(buildGzip(t, "movie.srt", srtPayload))
		if err != nil {
			t.Fatalf("ExtractSubtitles() unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].Name != "movie.srt" {
			t.Fatalf("files = %+v, want one file named movie.srt", files)
		}
		if string(files[0].Content) != srtPayload {
			t.Error("decompressed content does not match")
		}
	})

	t.Run("unnamed payload kept", func(t *testing.T) {
		files, err := ExtractSubtitles(buildGzip(t, "", srtPayload))
		if err != nil {
			t.Fatalf("ExtractSubtitles() unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].Name != "" {
			t.Fatalf("files = %+v, want one unnamed file", files)
		}
	})

	t.Run("named non-subtitle rejected", func(t *testing.T) {
		_, err := ExtractSubtitles(buildGzip(t, "movie.nfo", "release notes"))
		if !errors.Is(err, &apperrors.ErrNoSubtitleInArchive{}) {
			t.Errorf("error = %v, want ErrNoSubtitleInArchive", err)
		}
	})
}

func TestIsSubtitleFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"movie.srt", true},
		{"movie.SRT", true},
		{"movie.ass", true},
		{"movie.sub", true},
		{"movie.nfo", false},
		{"movie", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSubtitleFilename(tt.name); got != tt.want {
				t.Errorf("isSubtitleFilename(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
