package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settings *Settings
	client   *Client
	logger   *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	settings = DefaultSettings()
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "kkutu",
		Short: "Word suggestions and turn automation for KKuTu",
		Long: `kkutu suggests words for the KKuTu word-chain game.

It ranks corpus words that start with the current fragment, can drive an
open game page turn by turn, and exposes a small control API while doing so.

Every global flag can also be set through a KKUTU_ environment variable,
for example KKUTU_STORAGE=redis.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.resolve(v); err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), settings)
			client = NewClient(settings.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", settings.ConfigPath, "Config file path")
	flags.String("server", settings.ServerURL, "Control API URL for loop and health commands")
	flags.StringP("output", "o", settings.Output, "Output format: text, json")
	flags.String("log-format", settings.LogFormat, "Log format: text, json")
	flags.BoolP("verbose", "v", settings.Verbose, "Verbose logging")
	flags.String("storage", "", "Corpus cache: memory, redis (overrides config)")
	flags.String("redis-url", "", "Redis URL (overrides config)")

	for _, name := range []string{"config", "server", "output", "log-format", "verbose", "storage", "redis-url"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix("KKUTU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCorpusCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoopCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(settings.Output, cmd.OutOrStdout())
}
