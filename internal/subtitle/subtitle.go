package subtitle

import (
	"fmt"
	"hash/fnv"

	"github.com/subfix-io/subfix/internal/apperrors"
	"github.com/subfix-io/subfix/internal/charenc"
	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/format"
	"github.com/subfix-io/subfix/internal/language"
	"github.com/subfix-io/subfix/internal/video"
)

// DefaultExtension is used when a subtitle's format maps to no extension.
const DefaultExtension = ".srt"

// FormatToExtension maps subtitle format names to file extensions.
var FormatToExtension = map[string]string{
	"srt":      ".srt",
	"ass":      ".ass",
	"ssa":      ".ssa",
	"microdvd": ".sub",
	"mpl2":     ".mpl",
	"tmp":      ".txt",
	"vtt":      ".vtt",
}

// SubtitleExtensions lists every extension recognized as a subtitle file.
var SubtitleExtensions = []string{".srt", ".ass", ".ssa", ".sub", ".mpl", ".txt", ".vtt", ".smi"}

// Subtitle models a single subtitle resource: its language, raw bytes, text
// encoding and validity. Raw content is owned exclusively by the entity; the
// decoded text, detected format and validity are derived lazily and cached.
type Subtitle struct {
	// ProviderName identifies the subtitle source.
	ProviderName string

	// ID is the source-assigned subtitle id.
	ID string

	// Language of the subtitle
	Language language.Language

	// LanguageType classifies the track (normal, forced, hearing impaired).
	LanguageType LanguageType

	// PageLink is the URL of the web page the subtitle can be obtained from.
	PageLink string

	// Encoding is the name used to decode Content into Text. Reassigning it
	// directly does not invalidate previously decoded text; only SetContent
	// clears derived state.
	Encoding string

	// Format is the subtitle format, empty until detected.
	Format string

	// FPS is the frame rate for frame-based formats, 0 when unknown.
	FPS float64

	// Embedded is true for subtitles extracted from a video container.
	Embedded bool

	guessEncoding bool
	content       []byte
	text          string
	decoded       bool
	valid         *bool
}

// Options carries the optional attributes of a subtitle.
type Options struct {
	HearingImpaired *bool
	Forced          *bool
	PageLink        string
	Encoding        string
	Format          string
	FPS             float64
	Embedded        bool

	// DisableGuessEncoding turns off automatic encoding detection when
	// content is assigned without an explicit encoding.
	DisableGuessEncoding bool
}

// New creates a subtitle for the given provider, language and id. An invalid
// encoding name in opts is dropped (and logged), never an error: a subtitle
// with an undetermined encoding is still usable.
func New(provider string, lang language.Language, id string, opts Options) *Subtitle {
	s := &Subtitle{
		ProviderName:  provider,
		ID:            id,
		Language:      lang,
		LanguageType:  LanguageTypeFromFlags(opts.HearingImpaired, opts.Forced),
		PageLink:      opts.PageLink,
		Format:        opts.Format,
		FPS:           opts.FPS,
		Embedded:      opts.Embedded,
		guessEncoding: !opts.DisableGuessEncoding,
	}

	if opts.Encoding != "" {
		if _, canonical, err := charenc.Resolve(opts.Encoding); err != nil {
			logger := config.GetLogger()
			logger.Debug().Str("encoding", opts.Encoding).Msg("Unsupported encoding, leaving it undetermined")
		} else {
			s.Encoding = canonical
		}
	}

	return s
}

// ExternalID is the composite identifier of the subtitle across providers.
func (s *Subtitle) ExternalID() string {
	return s.ProviderName + "-" + s.ID
}

// Hash returns a stable hash of the subtitle identity. Two subtitles with the
// same provider and id hash identically regardless of content.
func (s *Subtitle) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.ExternalID()))
	return h.Sum64()
}

// Equal reports whether two subtitles share the same identity.
func (s *Subtitle) Equal(other *Subtitle) bool {
	return other != nil && s.ProviderName == other.ProviderName && s.ID == other.ID
}

// Info is the human readable label of the subtitle, used for display.
func (s *Subtitle) Info() string {
	return s.ID
}

// HearingImpaired reports whether the subtitle is for the hearing impaired
// (nil when unknown).
func (s *Subtitle) HearingImpaired() *bool {
	return s.LanguageType.IsHearingImpaired()
}

// Forced reports whether the subtitle is a forced track (nil when unknown).
func (s *Subtitle) Forced() *bool {
	return s.LanguageType.IsForced()
}

// Content returns the raw bytes of the subtitle.
func (s *Subtitle) Content() []byte {
	return s.content
}

// SetContent assigns the raw bytes of the subtitle. All derived state (decoded
// text, validity) is invalidated. When no encoding is set and guessing is
// enabled, the encoding is inferred from the new content immediately.
func (s *Subtitle) SetContent(content []byte) {
	s.resetDerived()
	s.content = content

	if s.guessEncoding && s.Encoding == "" {
		s.Encoding = s.GuessEncoding()
	}
}

// resetDerived clears every cache computed from content.
func (s *Subtitle) resetDerived() {
	s.text = ""
	s.decoded = false
	s.valid = nil
}

// Text returns the decoded content. Decoding happens on first access and the
// result is cached even when it fails: an empty or undecodable subtitle stays
// empty until content is reassigned.
func (s *Subtitle) Text() string {
	if !s.decoded {
		s.text = s.decodeContent()
	}
	return s.text
}

func (s *Subtitle) decodeContent() string {
	s.decoded = true

	if len(s.content) == 0 {
		return ""
	}

	if s.Encoding == "" {
		logger := config.GetLogger()
		logger.Warn().Str("subtitle", s.ExternalID()).Msg("Cannot decode subtitle content without an encoding")
		return ""
	}

	text, err := charenc.Decode(s.content, s.Encoding)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("encoding", s.Encoding).Msg("Failed to decode subtitle content")
		return ""
	}
	return text
}

// GuessEncoding infers the encoding of the raw content from its byte order
// mark and the subtitle language, falling back to statistical detection.
func (s *Subtitle) GuessEncoding() string {
	return charenc.Guess(s.content, s.Language)
}

// Reencode re-encodes the raw content under the given encoding ("" means
// utf-8). On success both Encoding and the raw content are replaced together.
// On failure (empty text, or text the target encoding cannot represent)
// nothing changes and false is returned.
func (s *Subtitle) Reencode(encoding string) bool {
	if encoding == "" {
		encoding = "utf-8"
	}

	// Force the lazy decode. Empty text means there is nothing to re-encode;
	// proceeding would destroy the content.
	text := s.Text()
	if text == "" {
		return false
	}

	content, err := charenc.Encode(text, encoding)
	if err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("encoding", encoding).Msg("Cannot encode subtitle text")
		return false
	}

	s.Encoding = encoding
	s.content = content
	return true
}

// IsValid reports whether the decoded text parses as a recognized subtitle
// format. The result is cached after the first check. For SubRip text a full
// parse/compose round trip is performed; with autoFix the cached text is
// replaced by the recomposed, normalized form.
func (s *Subtitle) IsValid(autoFix bool) bool {
	if s.valid == nil {
		v := s.checkValid(autoFix)
		s.valid = &v
	}
	return *s.valid
}

func (s *Subtitle) checkValid(autoFix bool) bool {
	logger := config.GetLogger()

	if s.Text() == "" {
		return false
	}

	if s.Format == "" {
		detected, err := format.Detect(s.Text(), "", s.FPS)
		if err != nil {
			logger.Debug().Err(err).Str("subtitle", s.ExternalID()).Msg("Cannot detect subtitle format")
			return false
		}
		s.Format = detected
	}

	if s.Format == format.SRT {
		normalized, err := format.RoundTripSRT(s.Text())
		if err != nil {
			logger.Warn().Err(err).Str("subtitle", s.ExternalID()).Msg("SRT parsing failed, subtitle is invalid")
			return false
		}
		if autoFix {
			s.text = normalized
		}
		return true
	}

	// Other recognized formats pass without deeper structural checks.
	return true
}

// Path derives the on-disk subtitle filename for a video.
func (s *Subtitle) Path(v *video.Video, opts PathOptions) string {
	extension := opts.Extension
	if extension == "" {
		extension = FormatToExtension[s.Format]
		if extension == "" {
			extension = DefaultExtension
		}
	}

	var suffix string
	if !opts.Single {
		languageFormat := opts.LanguageFormat
		if languageFormat == "" {
			languageFormat = language.FormatAlpha2
		}
		suffix = SubtitleSuffix(s.Language, languageFormat, s.LanguageType, opts.LanguageTypeSuffix)
	}

	return SubtitlePath(v.Name, suffix, extension)
}

// PathOptions controls subtitle filename derivation.
type PathOptions struct {
	// Single drops the language suffix so one file is shared across languages.
	Single bool

	// Extension overrides the extension derived from the subtitle format.
	Extension string

	// LanguageTypeSuffix adds ".hi" or ".forced" when applicable.
	LanguageTypeSuffix bool

	// LanguageFormat selects the code scheme of the language suffix
	// (default alpha2).
	LanguageFormat language.Format
}

// Matcher is implemented by subtitle sources that can score a subtitle
// against a video's metadata.
type Matcher interface {
	// Matches returns the set of reasons the subtitle matches the video.
	Matches(v *video.Video) map[string]struct{}
}

// Matches on the base entity always fails: matching logic belongs to the
// concrete subtitle source and calling it here is a programming error.
func (s *Subtitle) Matches(v *video.Video) (map[string]struct{}, error) {
	return nil, apperrors.NewMatcherNotImplementedError(s.ProviderName)
}

// String implements fmt.Stringer for log output.
func (s *Subtitle) String() string {
	return fmt.Sprintf("<Subtitle %q [%s]>", s.ID, s.Language)
}
