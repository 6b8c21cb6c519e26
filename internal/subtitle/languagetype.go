package subtitle

import "strings"

// LanguageType classifies a subtitle track as normal, forced, hearing impaired
// or unknown.
type LanguageType int

const (
	LanguageTypeUnknown LanguageType = iota
	LanguageTypeForced
	LanguageTypeNormal
	LanguageTypeHearingImpaired
)

// LanguageTypeFromFlags derives the language type from two optional flags.
// A set hearing-impaired flag wins over a set forced flag; when either flag is
// explicitly false the subtitle is known to be normal; two unset flags leave
// the type unknown.
func LanguageTypeFromFlags(hearingImpaired, forced *bool) LanguageType {
	switch {
	case hearingImpaired != nil && *hearingImpaired:
		return LanguageTypeHearingImpaired
	case forced != nil && *forced:
		return LanguageTypeForced
	case hearingImpaired != nil || forced != nil:
		return LanguageTypeNormal
	}
	return LanguageTypeUnknown
}

// IsHearingImpaired projects the type back to an optional flag. Unknown maps
// to nil, not false.
func (t LanguageType) IsHearingImpaired() *bool {
	switch t {
	case LanguageTypeHearingImpaired:
		return boolPtr(true)
	case LanguageTypeUnknown:
		return nil
	}
	return boolPtr(false)
}

// IsForced projects the type back to an optional flag. Unknown maps to nil,
// not false.
func (t LanguageType) IsForced() *bool {
	switch t {
	case LanguageTypeForced:
		return boolPtr(true)
	case LanguageTypeUnknown:
		return nil
	}
	return boolPtr(false)
}

// String returns the string representation of the language type
func (t LanguageType) String() string {
	switch t {
	case LanguageTypeForced:
		return "forced"
	case LanguageTypeNormal:
		return "normal"
	case LanguageTypeHearingImpaired:
		return "hearing_impaired"
	default:
		return "unknown"
	}
}

// ParseLanguageType converts a language type string to a LanguageType
func ParseLanguageType(s string) LanguageType {
	switch strings.ToLower(s) {
	case "forced":
		return LanguageTypeForced
	case "normal":
		return LanguageTypeNormal
	case "hearing_impaired":
		return LanguageTypeHearingImpaired
	default:
		return LanguageTypeUnknown
	}
}

// MarshalJSON implements json.Marshaler interface
func (t LanguageType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (t *LanguageType) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	*t = ParseLanguageType(str)
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
