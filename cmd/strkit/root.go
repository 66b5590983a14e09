package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "strkit",
		Short:         "String sanitising, similarity and generation helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.envFile, "env-file", "", "Read STRKIT_* defaults from this .env file")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOutput, "json", false, "Write results as JSON")
	rootCmd.PersistentFlags().BoolVar(&ctx.yamlOutput, "yaml", false, "Write results as YAML")

	rootCmd.AddCommand(newSanitizeCommand(ctx))
	rootCmd.AddCommand(newSimilarityCommand(ctx))
	rootCmd.AddCommand(newRandomCommand(ctx))
	rootCmd.AddCommand(newPasswordCommand(ctx))
	rootCmd.AddCommand(newShuffleCommand(ctx))
	rootCmd.AddCommand(newReverseCommand(ctx))
	rootCmd.AddCommand(newUUID5Command(ctx))
	rootCmd.AddCommand(newUUIDCommand(ctx))
	rootCmd.AddCommand(newAgeCommand(ctx))

	return rootCmd
}
