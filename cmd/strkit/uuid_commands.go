package main

import (
	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/strutil"
	"github.com/swindon/laravel-helpers/pkg/validator"
)

type uuid5Output struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	UUID      string `json:"uuid" yaml:"uuid"`
}

func newUUID5Command(ctx *commandContext) *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "uuid5 <name>",
		Short: "Generate a name based version 5 UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("namespace") {
				namespace = ctx.cfg.UUIDNamespace
			}
			ns, err := strutil.Namespace(namespace)
			if err != nil {
				return err
			}
			id, err := strutil.UUID5(args[0], ns.String())
			if err != nil {
				return err
			}
			return ctx.writeResult(cmd, id, uuid5Output{Name: args[0], Namespace: ns.String(), UUID: id})
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "dns, url, oid, x500 or a UUID (default from STRKIT_UUID_NAMESPACE, else dns)")
	return cmd
}

func newUUIDCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "UUID helpers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newUUIDValidateCommand(ctx))
	return cmd
}

func newUUIDValidateCommand(ctx *commandContext) *cobra.Command {
	var version int

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check that value is a canonical UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := validator.ValidUUID("uuid", args[0])
			if version > 0 {
				if result := validator.Validate(rule); !result.Valid {
					return ctx.writeValidation(cmd, result)
				}
				rule = validator.ValidUUIDVersionString("uuid", args[0], version)
			}
			return ctx.writeValidation(cmd, validator.Validate(rule))
		},
	}

	cmd.Flags().IntVar(&version, "version", 0, "Also require this UUID version")
	return cmd
}
