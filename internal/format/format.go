package format

import (
	"bytes"
	"errors"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/subfix-io/subfix/internal/config"
)

// Recognized subtitle format names.
const (
	SRT      = "srt"
	SSA      = "ssa"
	ASS      = "ass"
	WebVTT   = "vtt"
	MicroDVD = "microdvd"
	MPL2     = "mpl2"
	TMP      = "tmp"
)

// DefaultFrameRate is assumed for frame-based formats when no frame rate is
// available from the caller or the content itself.
const DefaultFrameRate = 24.0

// ErrUnknownFrameRate is returned when a frame-based format is recognized but
// no frame rate is available to time it.
var ErrUnknownFrameRate = errors.New("unknown frame rate for frame-based subtitle")

// ErrUnrecognized is returned when text matches no known subtitle format.
var ErrUnrecognized = errors.New("unrecognized subtitle format")

// Detect determines the subtitle format of text. When expected is non-empty
// only that format is probed. An unknown-frame-rate condition is retried once
// with DefaultFrameRate before giving up.
func Detect(text string, expected string, fps float64) (string, error) {
	retry := retrypolicy.NewBuilder[string]().
		HandleErrors(ErrUnknownFrameRate).
		WithMaxRetries(1).
		Build()

	attempt := 0
	return failsafe.With[string](retry).Get(func() (string, error) {
		effectiveFPS := fps
		if attempt > 0 {
			logger := config.GetLogger()
			logger.Debug().Float64("fps", DefaultFrameRate).Msg("Retrying format detection with default frame rate")
			effectiveFPS = DefaultFrameRate
		}
		attempt++
		return detectOnce(text, expected, effectiveFPS)
	})
}

func detectOnce(text string, expected string, fps float64) (string, error) {
	if expected != "" {
		ok, err := matches(text, expected, fps)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrUnrecognized
		}
		return expected, nil
	}

	// WebVTT and SSA carry headers and must be probed before SRT: their cue
	// blocks are close enough to SRT blocks to fool a lenient SRT parse.
	if isWebVTT(text) {
		return WebVTT, nil
	}
	if flavor := ssaFlavor(text); flavor != "" {
		return flavor, nil
	}
	if isSRT(text) {
		return SRT, nil
	}
	if isMicroDVD(text) {
		if fps <= 0 {
			if _, ok := microDVDFrameRate(text); !ok {
				return "", ErrUnknownFrameRate
			}
		}
		return MicroDVD, nil
	}
	if isMPL2(text) {
		return MPL2, nil
	}
	if isTMP(text) {
		return TMP, nil
	}
	return "", ErrUnrecognized
}

func matches(text string, name string, fps float64) (bool, error) {
	switch name {
	case SRT:
		return isSRT(text), nil
	case SSA, ASS:
		return ssaFlavor(text) != "", nil
	case WebVTT:
		return isWebVTT(text), nil
	case MicroDVD:
		if !isMicroDVD(text) {
			return false, nil
		}
		if fps <= 0 {
			if _, ok := microDVDFrameRate(text); !ok {
				return false, ErrUnknownFrameRate
			}
		}
		return true, nil
	case MPL2:
		return isMPL2(text), nil
	case TMP:
		return isTMP(text), nil
	}
	return false, ErrUnrecognized
}

// ParseSRT parses SubRip text into structured subtitles.
func ParseSRT(text string) (*astisub.Subtitles, error) {
	subs, err := astisub.ReadFromSRT(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	if len(subs.Items) == 0 {
		return nil, errors.New("srt text contains no subtitle items")
	}
	return subs, nil
}

// ComposeSRT renders structured subtitles back to SubRip text.
func ComposeSRT(subs *astisub.Subtitles) (string, error) {
	var buf bytes.Buffer
	if err := subs.WriteToSRT(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RoundTripSRT parses SubRip text and composes it again, yielding a normalized
// form. Failure on either leg means the text is not valid SubRip.
func RoundTripSRT(text string) (string, error) {
	subs, err := ParseSRT(text)
	if err != nil {
		return "", err
	}
	return ComposeSRT(subs)
}

func isSRT(text string) bool {
	subs, err := astisub.ReadFromSRT(strings.NewReader(text))
	return err == nil && len(subs.Items) > 0
}

func isWebVTT(text string) bool {
	trimmed := strings.TrimPrefix(text, "\uFEFF")
	if !strings.HasPrefix(strings.TrimLeft(trimmed, " \t\r\n"), "WEBVTT") {
		return false
	}
	_, err := astisub.ReadFromWebVTT(strings.NewReader(text))
	return err == nil
}

// ssaFlavor reports "ass", "ssa" or "" for text in the SubStation Alpha family.
func ssaFlavor(text string) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "[script info]") && !strings.Contains(lower, "[events]") {
		return ""
	}
	if _, err := astisub.ReadFromSSA(strings.NewReader(text)); err != nil {
		return ""
	}
	if strings.Contains(lower, "v4.00+") || strings.Contains(lower, "[v4+ styles]") {
		return ASS
	}
	return SSA
}
