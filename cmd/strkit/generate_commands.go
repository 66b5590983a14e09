package main

import (
	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/strutil"
	"github.com/swindon/laravel-helpers/pkg/validator"
)

type valueOutput struct {
	Value string `json:"value" yaml:"value"`
}

func newRandomCommand(ctx *commandContext) *cobra.Command {
	var (
		length  int
		charset string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = ctx.cfg.RandomLength
			}
			if err := checkLength(length); err != nil {
				return err
			}
			value := strutil.Random(length, charset)
			return ctx.writeResult(cmd, value, valueOutput{Value: value})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", strutil.DefaultRandomLength, "Number of characters (default from STRKIT_RANDOM_LENGTH)")
	cmd.Flags().StringVar(&charset, "charset", strutil.AlphaNumeric, "Characters to draw from")
	return cmd
}

func newPasswordCommand(ctx *commandContext) *cobra.Command {
	var (
		length      int
		charset     string
		noAmbiguous bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = ctx.cfg.PasswordLength
			}
			if err := checkLength(length); err != nil {
				return err
			}

			opts := []strutil.PasswordOption{strutil.WithCharset(charset)}
			if noAmbiguous {
				opts = append(opts, strutil.WithoutAmbiguous())
			}
			value := strutil.Password(length, opts...)
			return ctx.writeResult(cmd, value, valueOutput{Value: value})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", strutil.DefaultPasswordLength, "Number of characters (default from STRKIT_PASSWORD_LENGTH)")
	cmd.Flags().StringVar(&charset, "charset", strutil.PasswordCharset, "Characters to draw from")
	cmd.Flags().BoolVar(&noAmbiguous, "no-ambiguous", false, "Leave out easily confused characters")
	return cmd
}

func newShuffleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle <text>",
		Short: "Shuffle the characters of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strutil.Shuffle(args[0])
			return ctx.writeResult(cmd, value, valueOutput{Value: value})
		},
	}
}

func newReverseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text>",
		Short: "Reverse the characters of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strutil.Reverse(args[0])
			return ctx.writeResult(cmd, value, valueOutput{Value: value})
		},
	}
}

func checkLength(length int) error {
	return validator.Apply(validator.IntBetween("length", length, 1, maxGeneratedLength))
}
