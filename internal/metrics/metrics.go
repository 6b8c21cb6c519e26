package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Subtitle pipeline metrics
var (
	// EncodingGuessesTotal counts successful encoding guesses by the heuristic
	// that produced them (utf-8, bom, language, chardet) plus "none" failures.
	EncodingGuessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_encoding_guesses_total",
			Help: "Total number of subtitle encoding guesses by method.",
		},
		[]string{"method"},
	)

	// ValidationsTotal counts subtitle validity checks by outcome.
	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_validations_total",
			Help: "Total number of subtitle validations.",
		},
		[]string{"status"},
	)

	// ReencodesTotal counts re-encode attempts by outcome.
	ReencodesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_reencodes_total",
			Help: "Total number of subtitle re-encode attempts.",
		},
		[]string{"status"},
	)

	// NormalizationsTotal counts end-to-end normalization runs by outcome.
	NormalizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subtitle_normalizations_total",
			Help: "Total number of subtitle normalization runs.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		EncodingGuessesTotal,
		ValidationsTotal,
		ReencodesTotal,
		NormalizationsTotal,
	)
}
