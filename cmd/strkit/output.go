package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swindon/laravel-helpers/pkg/validator"
)

// errReported marks failures whose details were already written out.
var errReported = errors.New("validation failed")

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (c *commandContext) structured() bool {
	return c.jsonOutput || c.yamlOutput
}

// writeStructured encodes v as YAML with --yaml and as JSON otherwise.
func (c *commandContext) writeStructured(cmd *cobra.Command, v any) error {
	if c.yamlOutput {
		return writeYAML(cmd, v)
	}
	return writeJSON(cmd, v)
}

// writeResult prints plain, or v when --json or --yaml is set.
func (c *commandContext) writeResult(cmd *cobra.Command, plain string, v any) error {
	if c.structured() {
		return c.writeStructured(cmd, v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), plain)
	return err
}

// wantsTable reports whether detailed output should be a table: only for
// terminals and only without --json or --yaml.
func (c *commandContext) wantsTable(cmd *cobra.Command) bool {
	return !c.structured() && isTerminal(cmd.OutOrStdout())
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type validationOutput struct {
	Valid          bool   `json:"valid" yaml:"valid"`
	Field          string `json:"field,omitempty" yaml:"field,omitempty"`
	Message        string `json:"message,omitempty" yaml:"message,omitempty"`
	TranslationKey string `json:"translation_key,omitempty" yaml:"translation_key,omitempty"`
}

// writeValidation prints the outcome of a rule and returns errReported for
// failures so the process exits non-zero without repeating the message.
func (c *commandContext) writeValidation(cmd *cobra.Command, result validator.Result) error {
	out := validationOutput{Valid: result.Valid}
	plain := "valid"
	if !result.Valid {
		out.Field = result.Error.Field
		out.Message = result.Error.Message
		out.TranslationKey = result.Error.TranslationKey
		plain = result.Error.Message
	}

	if err := c.writeResult(cmd, plain, out); err != nil {
		return err
	}
	if !result.Valid {
		return errReported
	}
	return nil
}
