package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gatekeeperctl",
		Short:        "Maintenance tasks for the gatekeeper service",
		SilenceUsage: true,
	}

	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewEmailTemplateCmd(newSESTemplateClient))

	return cmd
}
