package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
)

func newLoopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Control the automation loop of a running `kkutu run --listen`",
	}

	cmd.AddCommand(newLoopStatusCmd())
	cmd.AddCommand(newLoopTransitionCmd("start", "Start or restart the loop"))
	cmd.AddCommand(newLoopTransitionCmd("stop", "Stop the loop"))
	cmd.AddCommand(newLoopResetCmd())
	cmd.AddCommand(newLoopSuggestCmd())

	return cmd
}

func newLoopStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the loop state and used words",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.LoopStatus
			if err := client.Get("/api/v1/loop", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newLoopTransitionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.LoopStatus
			if err := client.Post("/api/v1/loop/"+action, nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newLoopResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the words used this round",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/loop/used-words"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Used words cleared")
			return nil
		},
	}
}

func newLoopSuggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <fragment>",
		Short: "Rank words for a fragment, excluding the loop's used words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{"fragment": {args[0]}}
			if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}

			var result response.Suggestions
			if err := client.Get("/api/v1/suggestions?"+query.Encode(), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n words")

	return cmd
}
