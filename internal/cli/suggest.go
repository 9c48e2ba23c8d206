package cli

import (
	"github.com/spf13/cobra"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/ranking"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/selector"
)

func newSuggestCmd() *cobra.Command {
	var (
		used  []string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "suggest <fragment>",
		Short: "Rank corpus words for a fragment without a game page",
		Example: `  kkutu suggest 사
  kkutu suggest '녘(역)' --used 녘새,녘바람 --limit 20`,
		Args: cobra.ExactArgs(1),
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

			if err := app.Corpus.Load(cmd.Context()); err != nil {
				return err
			}

			fragment := model.Fragment(args[0])
			words := ranking.Rank(selector.Select(app.Corpus.Words(), used, fragment), cfg.RankingOptions())
			total := len(words)
			if limit > 0 && len(words) > limit {
				words = words[:limit]
			}
			if words == nil {
				words = []string{}
			}

			output(cmd).Print(response.Suggestions{
				Fragment: string(fragment),
				Prefix:   fragment.Prefix(),
				Total:    total,
				Words:    words,
			})
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&used, "used", nil, "Words already played this round")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n words (0 shows all)")

	return cmd
}
