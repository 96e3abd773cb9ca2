package main

import (
	"fmt"
	"os"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/hash"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/user"
	"github.com/spf13/cobra"
)

const minPasswordLength = 8

type adminFlags struct {
	email       string
	username    string
	password    string
	phoneNumber string
	address     string
	firstName   string
	lastName    string
}

func (c *cli) newCreateAdminCmd() *cobra.Command {
	var f adminFlags

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an ADMIN user, or promote an existing one by email",
		Long: "Create an ADMIN user. When a user with --email already exists it is promoted\n" +
			"to ADMIN and its username and password are replaced with the given ones.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(f.password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}

			key, ok := os.LookupEnv("KEY")
			if !ok {
				return fmt.Errorf("environment variable is not set: %s", "KEY")
			}

			hasher, err := hash.New(c.cfg.Hash, key)
			if err != nil {
				return err
			}
			passwordHash, err := hasher.Hash(f.password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			creds, err := db.CredentialsFromEnv()
			if err != nil {
				return err
			}
			conn, err := db.Connect(cmd.Context(), c.cfg.DB, creds)
			if err != nil {
				return err
			}
			defer conn.Close()

			// admins are created without uploads
			files := file.NewService(file.NewRepository(conn), &media.StubStore{})
			svc := user.NewService(user.NewRepository(conn), files)

			u, err := svc.CreateAdmin(cmd.Context(), user.CreateParams{
				Email:        f.email,
				Username:     f.username,
				PasswordHash: passwordHash,
				PhoneNumber:  f.phoneNumber,
				Address:      f.address,
				FirstName:    f.firstName,
				LastName:     f.lastName,
			})
			if err != nil {
				return err
			}

			cmd.Printf("Admin %s (id %d) is ready.\n", u.Username, u.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.email, "email", "", "admin email (required)")
	flags.StringVar(&f.username, "username", "", "admin username (required)")
	flags.StringVar(&f.password, "password", "", "admin password, at least 8 characters (required)")
	flags.StringVar(&f.phoneNumber, "phone", "", "phone number (required)")
	flags.StringVar(&f.address, "address", "", "postal address")
	flags.StringVar(&f.firstName, "first-name", "Admin", "first name")
	flags.StringVar(&f.lastName, "last-name", "Admin", "last name")
	for _, name := range []string{"email", "username", "password", "phone"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
