package charenc

import (
	"testing"

	"github.com/subfix-io/subfix/internal/language"
)

func TestGuess(t *testing.T) {
	cyrillic, err := Encode("Привет, мир! Как дела?", "windows-1251")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	greek, err := Encode("Γειά σου κόσμε", "windows-1253")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	french, err := Encode("un café très chaud", "windows-1252")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		content []byte
		lang    language.Language
		want    string
	}{
		{"empty content", nil, language.MustParse("en"), ""},
		{"plain ascii is utf-8", []byte("Hello, world"), language.MustParse("en"), "utf-8"},
		{"valid utf-8 wins before the language table", []byte("Привет, мир"), language.MustParse("ru"), "utf-8"},
		{"utf-8 signature", []byte{0xEF, 0xBB, 0xBF, 'H', 'i'}, language.MustParse("en"), "utf-8-sig"},
		{"utf-16 le mark", []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}, language.MustParse("en"), "utf-16-le"},
		{"utf-32 le mark", []byte{0xFF, 0xFE, 0x00, 0x00, 'H', 0x00, 0x00, 0x00, 'i', 0x00, 0x00, 0x00}, language.MustParse("en"), "utf-32-le"},
		{"russian legacy codepage", cyrillic, language.MustParse("ru"), "windows-1251"},
		{"greek legacy codepage", greek, language.MustParse("el"), "windows-1253"},
		{"western european fallback table", french, language.MustParse("fr"), "windows-1252"},
		{"serbian cyrillic script", cyrillic, language.MustParse("sr-Cyrl"), "windows-1251"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guess(tt.content, tt.lang); got != tt.want {
				t.Errorf("Guess() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPotentialEncodings(t *testing.T) {
	tests := []struct {
		name      string
		lang      language.Language
		wantFirst string
	}{
		{"russian", language.MustParse("ru"), "windows-1251"},
		{"bulgarian", language.MustParse("bg"), "windows-1251"},
		{"greek", language.MustParse("el"), "windows-1253"},
		{"turkish", language.MustParse("tr"), "windows-1254"},
		{"hebrew", language.MustParse("he"), "windows-1255"},
		{"arabic", language.MustParse("ar"), "windows-1256"},
		{"thai", language.MustParse("th"), "tis-620"},
		{"japanese", language.MustParse("ja"), "shift-jis"},
		{"chinese", language.MustParse("zh"), "cp936"},
		{"polish", language.MustParse("pl"), "windows-1250"},
		{"serbian latin", language.MustParse("sr-Latn"), "windows-1250"},
		{"serbian cyrillic", language.MustParse("sr-Cyrl"), "windows-1251"},
		{"english default", language.MustParse("en"), "windows-1252"},
		{"undefined language default", language.Language{}, "windows-1252"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PotentialEncodings(tt.lang)
			if len(got) == 0 {
				t.Fatal("PotentialEncodings() returned no candidates")
			}
			if got[0] != tt.wantFirst {
				t.Errorf("PotentialEncodings()[0] = %q, want %q", got[0], tt.wantFirst)
			}
		})
	}
}

func TestPotentialEncodings_SerbianWithoutScript(t *testing.T) {
	got := PotentialEncodings(language.MustParse("sr"))
	want := []string{"windows-1250", "windows-1251", "iso-8859-2", "iso-8859-5"}

	if len(got) != len(want) {
		t.Fatalf("PotentialEncodings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PotentialEncodings() = %v, want %v", got, want)
		}
	}
}
