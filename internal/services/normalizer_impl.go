package services

import (
	"context"

	"github.com/subfix-io/subfix/internal/archive"
	"github.com/subfix-io/subfix/internal/cache"
	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/language"
	"github.com/subfix-io/subfix/internal/metrics"
	"github.com/subfix-io/subfix/internal/subtitle"
)

// DefaultNormalizer is the default implementation of Normalizer.
type DefaultNormalizer struct {
	cache cache.Cache
}

// NewNormalizer creates a normalizer. The cache may be nil to disable caching
// of normalized content.
func NewNormalizer(c cache.Cache) Normalizer {
	return &DefaultNormalizer{cache: c}
}

// Normalize implements the Normalizer interface.
func (n *DefaultNormalizer) Normalize(ctx context.Context, sub *subtitle.Subtitle, raw []byte, opts NormalizeOptions) (*NormalizeResult, error) {
	logger := config.GetLogger()

	target := opts.TargetEncoding
	if target == "" {
		target = config.GetConfig().TargetEncoding
	}

	key := sub.ExternalID() + ":" + target

	if n.cache != nil {
		if content, ok := n.cache.Get(key); ok {
			logger.Debug().Str("subtitle", sub.ExternalID()).Msg("Normalized content served from cache")
			sub.Encoding = target
			sub.SetContent(content)
			return &NormalizeResult{
				Valid:     true,
				Content:   content,
				Encoding:  target,
				Format:    sub.Format,
				Path:      n.derivePath(sub, opts),
				FromCache: true,
			}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := raw
	if archive.IsArchive(raw) {
		files, err := archive.ExtractSubtitles(raw)
		if err != nil {
			metrics.NormalizationsTotal.WithLabelValues("archive_error").Inc()
			return nil, err
		}
		logger.Debug().Int("count", len(files)).Str("name", files[0].Name).Msg("Extracted subtitle from archive")
		payload = files[0].Content
	}

	payload = subtitle.FixLineEnding(payload)
	sub.SetContent(payload)

	if !sub.IsValid(opts.AutoFix) {
		logger.Warn().Str("subtitle", sub.ExternalID()).Msg("Subtitle content is not valid")
		metrics.ValidationsTotal.WithLabelValues("invalid").Inc()
		metrics.NormalizationsTotal.WithLabelValues("invalid").Inc()
		return &NormalizeResult{Valid: false}, nil
	}
	metrics.ValidationsTotal.WithLabelValues("valid").Inc()

	if sub.Reencode(target) {
		metrics.ReencodesTotal.WithLabelValues("success").Inc()
	} else {
		// The content stays in its original encoding; still usable.
		logger.Warn().Str("subtitle", sub.ExternalID()).Str("target", target).Msg("Could not re-encode subtitle, keeping original encoding")
		metrics.ReencodesTotal.WithLabelValues("failure").Inc()
	}

	if n.cache != nil && sub.Encoding == target {
		n.cache.Set(key, sub.Content())
	}

	metrics.NormalizationsTotal.WithLabelValues("success").Inc()
	return &NormalizeResult{
		Valid:    true,
		Content:  sub.Content(),
		Encoding: sub.Encoding,
		Format:   sub.Format,
		Path:     n.derivePath(sub, opts),
	}, nil
}

func (n *DefaultNormalizer) derivePath(sub *subtitle.Subtitle, opts NormalizeOptions) string {
	if opts.Video == nil {
		return ""
	}

	languageFormat := opts.LanguageFormat
	if languageFormat == "" {
		languageFormat = language.Format(config.GetConfig().LanguageFormat)
	}

	return sub.Path(opts.Video, subtitle.PathOptions{
		Single:             opts.Single,
		LanguageTypeSuffix: opts.LanguageTypeSuffix,
		LanguageFormat:     languageFormat,
	})
}
