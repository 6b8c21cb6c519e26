package format

import (
	"regexp"
	"strconv"
	"strings"
)

// Frame- and line-timed formats have no parser in go-astisub, so they are
// recognized by shape: every cue sits on a single line with a fixed prefix.
var (
	microDVDLine = regexp.MustCompile(`^\{(\d+)\}\{(\d+)\}(.*)$`)
	mpl2Line     = regexp.MustCompile(`^\[\d+\]\[\d+\]`)
	tmpLine      = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}:`)
)

// firstLine returns the first non-blank line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func isMicroDVD(text string) bool {
	return microDVDLine.MatchString(firstLine(text))
}

// microDVDFrameRate extracts the frame rate some MicroDVD files embed as the
// payload of their first cue, e.g. "{1}{1}23.976".
func microDVDFrameRate(text string) (float64, bool) {
	m := microDVDLine.FindStringSubmatch(firstLine(text))
	if m == nil {
		return 0, false
	}
	fps, err := strconv.ParseFloat(strings.TrimSpace(m[3]), 64)
	if err != nil || fps <= 0 {
		return 0, false
	}
	return fps, true
}

func isMPL2(text string) bool {
	return mpl2Line.MatchString(firstLine(text))
}

func isTMP(text string) bool {
	return tmpLine.MatchString(firstLine(text))
}
