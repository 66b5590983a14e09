package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/config"
	"github.com/swindon/laravel-helpers/pkg/logger"
	"github.com/swindon/laravel-helpers/pkg/validator"
)

type commandKey struct{}

var errOutputConflict = errors.New("--json and --yaml cannot be combined")

type commandContext struct {
	envFile    string
	jsonOutput bool
	yamlOutput bool

	cfg *Config
	log *slog.Logger
}

// setup loads configuration and builds the logger before any subcommand runs.
func (c *commandContext) setup(cmd *cobra.Command) error {
	if c.jsonOutput && c.yamlOutput {
		return errOutputConflict
	}

	if path := strings.TrimSpace(c.envFile); path != "" {
		if err := config.LoadEnv(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
			writeConfigErrors(cmd.ErrOrStderr(), errs)
			return errors.Join(errReported, err)
		}
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	c.cfg = &cfg
	c.log = logger.New(
		logger.WithEnvironment(cfg.Env, "strkit"),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	cmd.SetContext(context.WithValue(parent, commandKey{}, cmd.CommandPath()))

	c.log.DebugContext(cmd.Context(), "configuration loaded",
		logger.Component("cli"),
		slog.String("env", cfg.Env),
		slog.String("policy", cfg.SanitizePolicy.String()),
	)
	return nil
}

// writeConfigErrors lists invalid settings one variable per line.
func writeConfigErrors(w io.Writer, errs validator.ValidationErrors) {
	fmt.Fprintln(w, "invalid configuration:")
	for _, field := range errs.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", field, strings.Join(errs.Get(field), "; "))
	}
}
