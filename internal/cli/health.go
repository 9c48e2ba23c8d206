package cli

import (
	"github.com/spf13/cobra"

	"github.com/nunnu1028/kkutu-korea-hack/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the control API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
