package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nunnu1028/kkutu-korea-hack/internal/config"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Fetch and inspect the word corpus cache",
	}

	cmd.AddCommand(newCorpusFetchCmd())
	cmd.AddCommand(newCorpusStatsCmd())

	return cmd
}

func corpusOrigin(cfg *config.Config) string {
	if cfg.Corpus.File != "" {
		return cfg.Corpus.File
	}
	return cfg.Corpus.URL
}

func newCorpusFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the corpus and replace the cached copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			words, err := upstreamSource(cfg).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: %w", model.ErrCorpusLoad, err)
			}
			if err := app.Storage.SaveCorpusWords(cmd.Context(), words); err != nil {
				return fmt.Errorf("caching corpus: %w", err)
			}
			logger.Debug("corpus cached",
				slog.String("storage", cfg.Storage.Type),
				slog.Int("words", len(words)))

			output(cmd).Print(CorpusStats{
				Source: corpusOrigin(cfg),
				Words:  len(words),
				Cached: len(words) > 0,
			})
			return nil
		},
	}
}

func newCorpusStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the size of the cached corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			stats := CorpusStats{Source: corpusOrigin(cfg)}
			words, err := app.Storage.GetCorpusWords(cmd.Context())
			switch {
			case errors.Is(err, model.ErrCorpusNotLoaded):
			case err != nil:
				return err
			default:
				stats.Words = len(words)
				stats.Cached = true
			}

			output(cmd).Print(stats)
			return nil
		},
	}
}
