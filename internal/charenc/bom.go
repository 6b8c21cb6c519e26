package charenc

import "bytes"

// bomEntry associates a byte order mark with the encoding it signals.
type bomEntry struct {
	mark     []byte
	encoding string
}

// boms lists the UTF byte order marks in detection order. The UTF-32 marks
// must be checked before UTF-16: the UTF-16LE mark is a byte prefix of the
// UTF-32LE mark.
var boms = []bomEntry{
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8-sig"},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
	{[]byte{0xFE, 0xFF}, "utf-16-be"},
	{[]byte{0xFF, 0xFE}, "utf-16-le"},
}

// FindEncodingWithBOM returns the encoding matching the byte order mark the
// data starts with. At most one encoding is returned; data without a
// recognized mark yields an empty list.
func FindEncodingWithBOM(data []byte) []string {
	for _, entry := range boms {
		if bytes.HasPrefix(data, entry.mark) {
			return []string{entry.encoding}
		}
	}
	return nil
}
