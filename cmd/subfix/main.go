package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/subfix-io/subfix/internal/cache"
	"github.com/subfix-io/subfix/internal/config"
	"github.com/subfix-io/subfix/internal/language"
	"github.com/subfix-io/subfix/internal/metrics"
	"github.com/subfix-io/subfix/internal/services"
	"github.com/subfix-io/subfix/internal/subtitle"
	"github.com/subfix-io/subfix/internal/video"
)

var (
	flagVideo          string
	flagLanguage       string
	flagOutput         string
	flagEncoding       string
	flagLanguageFormat string
	flagSingle         bool
	flagTypeSuffix     bool
	flagHearing        bool
	flagForced         bool
	flagAutoFix        bool
	flagFPS            float64
)

func main() {
	root := &cobra.Command{
		Use:   "subfix",
		Short: "Normalize subtitle files: detect encoding, validate, re-encode",
	}

	normalize := &cobra.Command{
		Use:   "normalize <subtitle-file>",
		Short: "Normalize a subtitle file and write it next to its video",
		Args:  cobra.ExactArgs(1),
		RunE:  runNormalize,
	}
	normalize.Flags().StringVar(&flagVideo, "video", "", "path of the video the subtitle belongs to")
	normalize.Flags().StringVar(&flagLanguage, "language", "", "BCP 47 language tag of the subtitle (e.g. en, pt-BR, sr-Cyrl)")
	normalize.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: derived from the video)")
	normalize.Flags().StringVar(&flagEncoding, "encoding", "", "encoding of the input, skipping detection")
	normalize.Flags().StringVar(&flagLanguageFormat, "language-format", "", "language suffix scheme: alpha2, alpha3, alpha3b, alpha3t or name")
	normalize.Flags().BoolVar(&flagSingle, "single", false, "omit the language suffix from the output name")
	normalize.Flags().BoolVar(&flagTypeSuffix, "type-suffix", false, "add .hi/.forced to the output name when applicable")
	normalize.Flags().BoolVar(&flagHearing, "hi", false, "mark the subtitle as hearing impaired")
	normalize.Flags().BoolVar(&flagForced, "forced", false, "mark the subtitle as forced")
	normalize.Flags().BoolVar(&flagAutoFix, "auto-fix", false, "rewrite the text to the normalized SubRip form")
	normalize.Flags().Float64Var(&flagFPS, "fps", 0, "frame rate for frame-based formats")
	root.AddCommand(normalize)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	logger := config.GetLogger()
	cfg := config.GetConfig()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.Metrics.Enabled {
		server := metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port)
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn().Err(err).Msg("Metrics server stopped")
			}
		}()
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read subtitle file: %w", err)
	}

	lang := language.Language{}
	if flagLanguage != "" {
		lang, err = language.Parse(flagLanguage)
		if err != nil {
			return err
		}
	}

	opts := subtitle.Options{
		Encoding: flagEncoding,
		FPS:      flagFPS,
	}
	if cmd.Flags().Changed("hi") {
		opts.HearingImpaired = &flagHearing
	}
	if cmd.Flags().Changed("forced") {
		opts.Forced = &flagForced
	}

	sub := subtitle.New("local", lang, args[0], opts)

	store, err := newCache(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Cache unavailable, continuing without it")
	} else {
		defer store.Close()
	}

	normalizeOpts := services.NormalizeOptions{
		Single:             flagSingle,
		LanguageFormat:     language.Format(flagLanguageFormat),
		LanguageTypeSuffix: flagTypeSuffix,
		AutoFix:            flagAutoFix,
	}
	if flagVideo != "" {
		normalizeOpts.Video = video.New(flagVideo)
	}

	result, err := services.NewNormalizer(store).Normalize(cmd.Context(), sub, raw, normalizeOpts)
	if err != nil {
		sentry.CaptureException(err)
		return err
	}
	if !result.Valid {
		return fmt.Errorf("subtitle %s is not a valid subtitle file", args[0])
	}

	output := flagOutput
	if output == "" {
		if result.Path == "" {
			return fmt.Errorf("no output path: pass --video or --output")
		}
		output = result.Path
	}

	if err := os.WriteFile(output, result.Content, 0o644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}

	logger.Info().
		Str("output", output).
		Str("format", result.Format).
		Str("encoding", result.Encoding).
		Bool("fromCache", result.FromCache).
		Msg("Subtitle normalized")
	return nil
}

func newCache(cfg *config.Config) (cache.Cache, error) {
	ttl, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil {
		ttl = time.Hour
	}
	return cache.New(cfg.Cache.Provider, cache.Settings{
		Size:          cfg.Cache.Size,
		TTL:           ttl,
		Logger:        config.GetLogger(),
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Name:          "normalized",
	})
}
