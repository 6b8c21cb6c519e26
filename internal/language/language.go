package language

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Format selects the rendering scheme for a language code.
type Format string

const (
	FormatAlpha2  Format = "alpha2"  // ISO 639-1 two-letter code
	FormatAlpha3  Format = "alpha3"  // ISO 639-3 code
	FormatAlpha3B Format = "alpha3b" // ISO 639-2/B bibliographic code
	FormatAlpha3T Format = "alpha3t" // ISO 639-2/T terminological code
	FormatName    Format = "name"    // English display name
)

// Language wraps a BCP 47 tag and exposes the code schemes used for subtitle
// filename suffixes. The zero value is the undefined language.
type Language struct {
	tag language.Tag
}

// Parse parses a BCP 47 tag like "en", "pt-BR" or "sr-Cyrl".
func Parse(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, fmt.Errorf("parse language %q: %w", s, err)
	}
	return Language{tag: tag}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for static
// language tags and tests.
func MustParse(s string) Language {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// FromTag wraps an existing x/text tag.
func FromTag(tag language.Tag) Language {
	return Language{tag: tag}
}

// Tag returns the underlying x/text tag.
func (l Language) Tag() language.Tag {
	return l.tag
}

// IsDefined reports whether the language is something more specific than "und".
func (l Language) IsDefined() bool {
	base, _, _ := l.tag.Raw()
	return base.String() != "und"
}

// Alpha2 returns the ISO 639-1 code, or "" when the language has none.
func (l Language) Alpha2() string {
	base, _, _ := l.tag.Raw()
	if code := base.String(); len(code) == 2 {
		return code
	}
	return ""
}

// Alpha3 returns the ISO 639-3 code.
func (l Language) Alpha3() string {
	base, _, _ := l.tag.Raw()
	return base.ISO3()
}

// Alpha3T returns the ISO 639-2/T terminological code, which matches ISO 639-3
// for every language with a two-letter code.
func (l Language) Alpha3T() string {
	return l.Alpha3()
}

// Alpha3B returns the ISO 639-2/B bibliographic code. Only twenty languages
// have a bibliographic code differing from the terminological one.
func (l Language) Alpha3B() string {
	code := l.Alpha3()
	if bib, ok := bibliographic[code]; ok {
		return bib
	}
	return code
}

// Name returns the English display name of the language.
func (l Language) Name() string {
	return display.English.Languages().Name(l.tag)
}

// Country returns the explicit region subtag ("BR" in "pt-BR"), or "" when the
// tag carries none. Inferred regions are never reported.
func (l Language) Country() string {
	_, _, region := l.tag.Raw()
	if code := region.String(); code != "ZZ" {
		return code
	}
	return ""
}

// Script returns the explicit script subtag ("Cyrl" in "sr-Cyrl"), or "" when
// the tag carries none. Inferred scripts are never reported.
func (l Language) Script() string {
	_, script, _ := l.tag.Raw()
	if code := script.String(); code != "Zzzz" {
		return code
	}
	return ""
}

// Render returns the language code under the requested scheme. It fails when
// the scheme is unknown or the language has no code under it; callers are
// expected to fall back to String().
func (l Language) Render(format Format) (string, error) {
	switch format {
	case FormatAlpha2:
		if code := l.Alpha2(); code != "" {
			return code, nil
		}
		return "", fmt.Errorf("language %s has no ISO 639-1 code", l)
	case FormatAlpha3:
		return l.Alpha3(), nil
	case FormatAlpha3B:
		return l.Alpha3B(), nil
	case FormatAlpha3T:
		return l.Alpha3T(), nil
	case FormatName:
		return l.Name(), nil
	}
	return "", fmt.Errorf("unknown language format %q", format)
}

// String returns the BCP 47 form of the tag.
func (l Language) String() string {
	return l.tag.String()
}

// bibliographic maps ISO 639-2/T codes to their ISO 639-2/B counterparts for
// the languages where the two differ.
var bibliographic = map[string]string{
	"bod": "tib", // Tibetan
	"ces": "cze", // Czech
	"cym": "wel", // Welsh
	"deu": "ger", // German
	"ell": "gre", // Greek
	"eus": "baq", // Basque
	"fas": "per", // Persian
	"fra": "fre", // French
	"hye": "arm", // Armenian
	"isl": "ice", // Icelandic
	"kat": "geo", // Georgian
	"mkd": "mac", // Macedonian
	"mri": "mao", // Maori
	"msa": "may", // Malay
	"mya": "bur", // Burmese
	"nld": "dut", // Dutch
	"ron": "rum", // Romanian
	"slk": "slo", // Slovak
	"sqi": "alb", // Albanian
	"zho": "chi", // Chinese
}
