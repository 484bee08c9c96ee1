package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/services"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var (
	adminFullName string
	adminPassword string
)

var errAdminExists = errors.New("user already exists")

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <username>",
	Short: "Create an admin account",
	Long: `Creates an active admin account. The password is read from --password
or the HUB_ADMIN_PASSWORD environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := adminPassword
		if password == "" {
			password = os.Getenv("HUB_ADMIN_PASSWORD")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := createAdmin(ctx, sqlDB, args[0], password, adminFullName); err != nil {
			return err
		}
		cmd.Printf("Admin %q created\n", args[0])
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminFullName, "full-name", "", "Display name")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password (min 8 characters)")
}

func createAdmin(ctx context.Context, sqlDB *sqlx.DB, username, password, fullName string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	repo := repositories.NewAdminRepository(sqlDB)
	existing, err := repo.FindUser(ctx, username)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s (role %s)", errAdminExists, existing.Username, existing.Role)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := repo.InsertAdmin(ctx, username, hash, fullName); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
