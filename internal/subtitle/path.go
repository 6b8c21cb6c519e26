package subtitle

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/language"
)

// SubtitleSuffix builds the filename suffix for a subtitle: an optional
// language type part (".hi"/".forced") followed by an optional language part
// (".en", ".pt-BR", ...). The type part comes first.
func SubtitleSuffix(lang language.Language, languageFormat language.Format, languageType LanguageType, includeTypeSuffix bool) string {
	languagePart := ""
	if lang.IsDefined() {
		rendered, err := lang.Render(languageFormat)
		if err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("language", lang.String()).Str("format", string(languageFormat)).Msg("Cannot render language, using its default form")
			rendered = lang.String()
		}

		languagePart = "." + rendered
		if isCodeOrNameFormat(languageFormat) {
			// Add country and script if present
			if country := lang.Country(); country != "" {
				languagePart += "-" + country
			}
			if script := lang.Script(); script != "" {
				languagePart += "-" + script
			}
		}
	}

	typePart := ""
	if includeTypeSuffix {
		switch languageType {
		case LanguageTypeHearingImpaired:
			typePart = ".hi"
		case LanguageTypeForced:
			typePart = ".forced"
		}
	}

	return typePart + languagePart
}

func isCodeOrNameFormat(f language.Format) bool {
	switch f {
	case language.FormatAlpha2, language.FormatAlpha3, language.FormatAlpha3B, language.FormatAlpha3T, language.FormatName:
		return true
	}
	return false
}

// SubtitlePath builds a subtitle path from a video path by stripping the
// video extension and appending the suffix and subtitle extension.
func SubtitlePath(videoPath string, suffix string, extension string) string {
	root := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	return root + suffix + extension
}

// FixLineEnding normalizes Windows line endings to \n at the byte level. No
// other transformation is applied.
func FixLineEnding(content []byte) []byte {
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}
