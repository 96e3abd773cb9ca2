package main

import (
	"errors"

	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/spf13/cobra"
)

func (c *cli) newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database migrations",
	}

	cmd.AddCommand(
		newMigrateDirectionCmd(db.MigrateUp, "Apply all pending migrations"),
		newMigrateDirectionCmd(db.MigrateDown, "Roll back all migrations"),
	)

	return cmd
}

func newMigrateDirectionCmd(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := db.CredentialsFromEnv()
			if err != nil {
				return err
			}

			if err := db.Migrate(creds, direction); err != nil {
				if errors.Is(err, db.ErrNoChange) {
					cmd.Println("No migrations to apply.")
					return nil
				}
				return err
			}

			cmd.Printf("Migrations %s applied.\n", direction)
			return nil
		},
	}
}
