package subtitle

import (
	"github.com/subfix-io/subfix/internal/language"
)

// EmbeddedSubtitle is a subtitle track extracted from within a video container
// rather than obtained as a standalone file.
type EmbeddedSubtitle struct {
	Subtitle
}

// NewEmbedded creates an embedded subtitle. Its id is synthesized from the
// language since container tracks carry no source-assigned id.
func NewEmbedded(provider string, lang language.Language, opts Options) *EmbeddedSubtitle {
	opts.Embedded = true
	id := "Embedded <" + lang.String() + ">"
	return &EmbeddedSubtitle{
		Subtitle: *New(provider, lang, id, opts),
	}
}

// Info appends a bracketed quality label to the human readable label when the
// track is hearing impaired or forced.
func (e *EmbeddedSubtitle) Info() string {
	extra := ""
	switch e.LanguageType {
	case LanguageTypeHearingImpaired:
		extra = " [hi]"
	case LanguageTypeForced:
		extra = " [forced]"
	}
	return e.ID + extra
}
