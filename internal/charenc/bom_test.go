package charenc

import (
	"testing"
)

func TestFindEncodingWithBOM(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"utf-8 mark", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "utf-8-sig"},
		{"utf-16 be mark", []byte{0xFE, 0xFF, 0x00, 'h'}, "utf-16-be"},
		{"utf-16 le mark", []byte{0xFF, 0xFE, 'h', 0x00}, "utf-16-le"},
		{"utf-32 be mark", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'h'}, "utf-32-be"},
		{"utf-32 le mark wins over utf-16 le", []byte{0xFF, 0xFE, 0x00, 0x00, 'h', 0x00, 0x00, 0x00}, "utf-32-le"},
		{"no mark", []byte("plain ascii"), ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindEncodingWithBOM(tt.data)

			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("FindEncodingWithBOM() = %v, want none", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("FindEncodingWithBOM() = %v, want [%s]", got, tt.want)
			}
		})
	}
}
