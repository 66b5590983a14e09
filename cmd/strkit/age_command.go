package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/validator"
)

var errAgeBoundRequired = errors.New("at least one of --min or --max is required")

func newAgeCommand(ctx *commandContext) *cobra.Command {
	var minAge, maxAge int

	cmd := &cobra.Command{
		Use:   "age <date>",
		Short: "Check a birth date against minimum and maximum ages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rules []validator.Rule
			if cmd.Flags().Changed("min") {
				rules = append(rules, validator.MinAgeString("date", args[0], minAge))
			}
			if cmd.Flags().Changed("max") {
				rules = append(rules, validator.MaxAgeString("date", args[0], maxAge))
			}
			if len(rules) == 0 {
				return errAgeBoundRequired
			}

			for _, rule := range rules {
				if result := validator.Validate(rule); !result.Valid {
					return ctx.writeValidation(cmd, result)
				}
			}
			return ctx.writeValidation(cmd, validator.Result{Valid: true})
		},
	}

	cmd.Flags().IntVar(&minAge, "min", 0, "Minimum age in full years")
	cmd.Flags().IntVar(&maxAge, "max", 0, "Maximum age in full years")
	return cmd
}
