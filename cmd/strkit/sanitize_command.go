package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/logger"
	"github.com/swindon/laravel-helpers/pkg/sanitizer"
)

type sanitizeOutput struct {
	Policy      sanitizer.Policy `json:"policy" yaml:"policy"`
	InputLength int              `json:"input_length" yaml:"input_length"`
	Output      string           `json:"output" yaml:"output"`
}

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	names := make([]string, len(sanitizer.Policies))
	for i, p := range sanitizer.Policies {
		names[i] = p.String()
	}
	policy := newEnumValue("", names...)

	cmd := &cobra.Command{
		Use:   "sanitize [text]",
		Short: "Remove XSS vectors from text (reads stdin without an argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStdin := len(args) == 0
			var input string
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			} else {
				input = args[0]
			}

			p := ctx.cfg.SanitizePolicy
			if cmd.Flags().Changed("policy") {
				p = sanitizer.Policy(policy.String())
			}

			out := sanitizer.Sanitize(p, input)
			ctx.log.DebugContext(cmd.Context(), "sanitized input",
				logger.Policy(p.String()),
				logger.InputLength(len(input)),
			)

			if ctx.structured() {
				return ctx.writeStructured(cmd, sanitizeOutput{Policy: p, InputLength: len(input), Output: out})
			}
			if fromStdin {
				_, err := io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().Var(policy, "policy", "Sanitizer policy: regex, strict or ugc (default from STRKIT_SANITIZE_POLICY)")
	return cmd
}
