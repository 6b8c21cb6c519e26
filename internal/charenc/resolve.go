package charenc

import (
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/subfix-io/subfix/internal/apperrors"
)

// aliases maps encoding spellings commonly seen in subtitle metadata to labels
// the IANA/WHATWG indexes understand.
var aliases = map[string]string{
	"ascii":       "us-ascii",
	"big5hkscs":   "big5", // the WHATWG big5 table includes the HKSCS extensions
	"cp874":       "windows-874",
	"cp932":       "shift_jis",
	"cp936":       "gbk",
	"cp950":       "big5",
	"cp1253":      "windows-1253",
	"hz":          "hz-gb-2312",
	"iso2022-jp":  "iso-2022-jp",
	"iso8859-7":   "iso-8859-7",
	"latin1":      "iso-8859-1",
	"shift-jis":   "shift_jis",
}

// Resolve validates an encoding name and returns the matching x/text encoding
// together with the canonical (normalized) name to store. Unknown names yield
// an ErrUnsupportedEncoding.
func Resolve(name string) (encoding.Encoding, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")

	// The UTF family is handled directly so that byte order marks are consumed
	// on decode instead of surfacing as U+FEFF in the text.
	switch normalized {
	case "utf-8", "utf8":
		return unicode.UTF8, "utf-8", nil
	case "utf-8-sig":
		return unicode.UTF8BOM, "utf-8-sig", nil
	case "utf-16", "utf-16-le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "utf-16-le", nil
	case "utf-16-be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), "utf-16-be", nil
	case "utf-32", "utf-32-le", "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), "utf-32-le", nil
	case "utf-32-be", "utf-32be":
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), "utf-32-be", nil
	}

	label := normalized
	if alias, ok := aliases[normalized]; ok {
		label = alias
	}

	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, label, nil
	}

	// The WHATWG index resolves browser-style labels the IANA index rejects.
	if enc, _ := htmlcharset.Lookup(label); enc != nil {
		return enc, label, nil
	}

	return nil, "", apperrors.NewUnsupportedEncodingError(name)
}

// Decode converts raw bytes to a string using the named encoding. Decoding is
// lossy: byte sequences with no mapping come out as U+FFFD instead of failing,
// since garbled subtitle text is more useful downstream than none.
func Decode(content []byte, name string) (string, error) {
	enc, _, err := Resolve(name)
	if err != nil {
		return "", err
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode converts text to raw bytes under the named encoding. Unlike Decode it
// is strict: runes the target encoding cannot represent make it fail.
func Encode(text string, name string) ([]byte, error) {
	enc, _, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	encoded, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return encoded, nil
}
