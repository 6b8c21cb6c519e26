package services

import (
	"context"

	"github.com/subfix-io/subfix/internal/language"
	"github.com/subfix-io/subfix/internal/subtitle"
	"github.com/subfix-io/subfix/internal/video"
)

// NormalizeOptions controls a normalization run.
type NormalizeOptions struct {
	// Video the subtitle belongs to; when set, the result carries the derived
	// subtitle path.
	Video *video.Video

	// Single drops the language suffix from the derived path.
	Single bool

	// LanguageFormat selects the code scheme of the language suffix.
	LanguageFormat language.Format

	// LanguageTypeSuffix adds ".hi"/".forced" to the derived path.
	LanguageTypeSuffix bool

	// AutoFix replaces the subtitle text with the recomposed SubRip form.
	AutoFix bool

	// TargetEncoding overrides the configured re-encode target ("" uses it).
	TargetEncoding string
}

// NormalizeResult is the outcome of a normalization run.
type NormalizeResult struct {
	// Valid reports whether the content parsed as a recognized format.
	// Invalid content is not an error: the remaining fields are zero.
	Valid bool

	// Content is the normalized raw content.
	Content []byte

	// Encoding the content ended up in.
	Encoding string

	// Format detected for the subtitle.
	Format string

	// Path is the derived subtitle path, empty without a video.
	Path string

	// FromCache is true when the content came from the cache.
	FromCache bool
}

// Normalizer turns a raw subtitle payload into validated, consistently
// encoded content with a derived on-disk path.
type Normalizer interface {
	// Normalize unwraps raw (extracting it from an archive if needed),
	// assigns it to the subtitle and runs the encoding/validation pipeline.
	Normalize(ctx context.Context, sub *subtitle.Subtitle, raw []byte, opts NormalizeOptions) (*NormalizeResult, error)
}
