package subtitle

import (
	"encoding/json"
	"testing"
)

func boolp(b bool) *bool { return &b }

func TestLanguageTypeFromFlags(t *testing.T) {
	tests := []struct {
		name            string
		hearingImpaired *bool
		forced          *bool
		want            LanguageType
	}{
		{"both unset", nil, nil, LanguageTypeUnknown},
		{"hearing impaired true", boolp(true), nil, LanguageTypeHearingImpaired},
		{"forced true", nil, boolp(true), LanguageTypeForced},
		{"hearing impaired wins over forced", boolp(true), boolp(true), LanguageTypeHearingImpaired},
		{"hearing impaired false", boolp(false), nil, LanguageTypeNormal},
		{"forced false", nil, boolp(false), LanguageTypeNormal},
		{"both false", boolp(false), boolp(false), LanguageTypeNormal},
		{"hearing impaired false, forced true", boolp(false), boolp(true), LanguageTypeForced},
		{"hearing impaired true, forced false", boolp(true), boolp(false), LanguageTypeHearingImpaired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LanguageTypeFromFlags(tt.hearingImpaired, tt.forced)
			if got != tt.want {
				t.Errorf("LanguageTypeFromFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLanguageType_Projections(t *testing.T) {
	tests := []struct {
		name        string
		langType    LanguageType
		wantHearing *bool
		wantForced  *bool
	}{
		{"unknown maps to nil, not false", LanguageTypeUnknown, nil, nil},
		{"hearing impaired", LanguageTypeHearingImpaired, boolp(true), boolp(false)},
		{"forced", LanguageTypeForced, boolp(false), boolp(true)},
		{"normal", LanguageTypeNormal, boolp(false), boolp(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkOptionalBool(t, "IsHearingImpaired", tt.langType.IsHearingImpaired(), tt.wantHearing)
			checkOptionalBool(t, "IsForced", tt.langType.IsForced(), tt.wantForced)
		})
	}
}

func checkOptionalBool(t *testing.T, name string, got, want *bool) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s() nil-ness = %v, want %v", name, got == nil, want == nil)
	}
	if got != nil && *got != *want {
		t.Errorf("%s() = %v, want %v", name, *got, *want)
	}
}

func TestLanguageType_String(t *testing.T) {
	tests := []struct {
		langType LanguageType
		want     string
	}{
		{LanguageTypeUnknown, "unknown"},
		{LanguageTypeForced, "forced"},
		{LanguageTypeNormal, "normal"},
		{LanguageTypeHearingImpaired, "hearing_impaired"},
		{LanguageType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.langType.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanguageType_JSONRoundTrip(t *testing.T) {
	types := []LanguageType{
		LanguageTypeUnknown,
		LanguageTypeForced,
		LanguageTypeNormal,
		LanguageTypeHearingImpaired,
	}

	for _, original := range types {
		t.Run(original.String(), func(t *testing.T) {
			data, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("Marshal() unexpected error: %v", err)
			}

			var decoded LanguageType
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", data, err)
			}

			if decoded != original {
				t.Errorf("roundtrip failed: original=%d, decoded=%d (json=%s)", original, decoded, data)
			}
		})
	}
}
