package charenc

import (
	"github.com/subfix-io/subfix/internal/language"
)

// PotentialEncodings returns candidate encodings for a language, ordered by
// real-world likelihood. Languages without a curated list fall back to the
// Western/Northern European default.
//
// See https://scratchpad.wikia.com/wiki/Character_Encoding_Recommendation_for_Languages
func PotentialEncodings(lang language.Language) []string {
	alpha3 := lang.Alpha3()

	switch alpha3 {
	case "zho":
		return []string{"cp936", "gb2312", "gbk", "hz", "iso2022_jp_2", "cp950", "big5hkscs", "big5", "gb18030", "utf-16"}

	case "jpn":
		return []string{
			"shift-jis",
			"cp932",
			"euc_jp",
			"iso2022_jp",
			"iso2022_jp_1",
			"iso2022_jp_2",
			"iso2022_jp_2004",
			"iso2022_jp_3",
			"iso2022_jp_ext",
		}

	case "tha":
		return []string{"tis-620", "cp874"}

	case "ara", "fas", "per":
		return []string{"windows-1256", "utf-16", "utf-16le", "ascii", "iso-8859-6"}

	case "heb":
		return []string{"windows-1255", "iso-8859-8"}

	case "tur":
		return []string{"windows-1254", "iso-8859-9", "iso-8859-3"}

	case "grc", "gre", "ell":
		return []string{"windows-1253", "cp1253", "cp737", "iso8859-7", "cp875", "cp869", "iso2022_jp_2", "mac_greek"}

	case "pol", "cze", "ces", "slk", "slo", "slv", "hun", "bos", "hbs", "hrv", "rsb", "ron", "rum", "sqi", "alb":
		encodings := []string{"windows-1250", "iso-8859-2"}
		switch alpha3 {
		case "slv":
			encodings = append(encodings, "iso-8859-4")
		case "sqi", "alb":
			encodings = append(encodings, "windows-1252", "iso-8859-15", "iso-8859-1", "iso-8859-9")
		}
		return encodings

	case "bul", "mkd", "mac", "rus", "ukr":
		return []string{"windows-1251", "iso-8859-5"}

	case "srp":
		switch lang.Script() {
		case "Latn":
			return []string{"windows-1250", "iso-8859-2"}
		case "Cyrl":
			return []string{"windows-1251", "iso-8859-5"}
		}
		return []string{"windows-1250", "windows-1251", "iso-8859-2", "iso-8859-5"}
	}

	// Western European (windows-1252) / Northern European
	return []string{"windows-1252", "iso-8859-15", "iso-8859-9", "iso-8859-4", "iso-8859-1"}
}
