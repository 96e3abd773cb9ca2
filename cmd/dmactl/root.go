package main

import (
	"github.com/peaceoutommy/DMA-API/internal/app"
	"github.com/peaceoutommy/DMA-API/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type cli struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dmactl",
		Short:         "DMA API maintenance commands",
		SilenceUsage: true,
	}

	// version needs no environment
	root.AddCommand(newVersionCmd())

	setup := func(_ *cobra.Command, _ []string) error {
		cfg, err := app.Setup()
		if err != nil {
			return err
		}
		c.cfg = cfg
		return nil
	}

	migrateCmd := c.newMigrateCmd()
	migrateCmd.PersistentPreRunE = setup
	adminCmd := c.newCreateAdminCmd()
	adminCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cmd.ValidateRequiredFlags(); err != nil {
			return err
		}
		return setup(cmd, args)
	}

	root.AddCommand(migrateCmd, adminCmd)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dmactl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("dmactl " + version)
		},
	}
}
