package charenc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/transform"

	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/language"
	"github.com/subfix-io/subfix/internal/metrics"
)

// candidate is an encoding to probe together with the heuristic that proposed it.
type candidate struct {
	name   string
	method string
}

// Guess determines the encoding of raw subtitle content. Candidates are tried
// in order: utf-8, the encoding matching a leading BOM, then the per-language
// table. A candidate wins when the content decodes without substitutions and
// the result survives the printability gate. When every candidate fails the
// statistical detector gets the final word; an empty string means no encoding
// could be determined.
func Guess(content []byte, lang language.Language) string {
	logger := config.GetLogger()
	if len(content) == 0 {
		return ""
	}

	logger.Debug().Str("language", lang.String()).Msg("Guessing encoding")

	candidates := []candidate{{"utf-8", "utf-8"}}
	for _, name := range FindEncodingWithBOM(content) {
		candidates = append(candidates, candidate{name, "bom"})
	}
	for _, name := range PotentialEncodings(lang) {
		candidates = append(candidates, candidate{name, "language"})
	}

	for _, cand := range candidates {
		enc, canonical, err := Resolve(cand.name)
		if err != nil {
			logger.Debug().Str("encoding", cand.name).Msg("Skipping unsupported candidate encoding")
			continue
		}

		decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
		if err != nil {
			continue
		}
		text := string(decoded)

		// x/text decoders substitute U+FFFD instead of failing; a substitution
		// means the bytes were not valid under this encoding.
		if strings.ContainsRune(text, utf8.RuneError) {
			continue
		}

		// A decode can "succeed" under the wrong legacy codec and still yield
		// control-character garbage. Strip line breaks and tabs, then require
		// every remaining rune to be printable.
		stripped := strings.NewReplacer("\r", "", "\n", "", "\t", "").Replace(text)
		if !isPrintable(stripped) {
			continue
		}

		logger.Debug().Str("encoding", canonical).Str("method", cand.method).Msg("Guessed encoding")
		metrics.EncodingGuessesTotal.WithLabelValues(cand.method).Inc()
		return canonical
	}

	logger.Warn().Str("language", lang.String()).Msg("Could not guess encoding from language, falling back to statistical detection")

	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil || result == nil || result.Charset == "" {
		logger.Warn().Msg("Statistical detection found no encoding")
		metrics.EncodingGuessesTotal.WithLabelValues("none").Inc()
		return ""
	}

	name := strings.ToLower(result.Charset)
	logger.Debug().Str("encoding", name).Int("confidence", result.Confidence).Msg("Statistical detection found encoding")
	metrics.EncodingGuessesTotal.WithLabelValues("chardet").Inc()
	return name
}

// isPrintable reports whether every rune in s is printable.
func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
