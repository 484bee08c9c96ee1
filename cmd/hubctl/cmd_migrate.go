package main

import (
	"context"

	"dare/enterprisehub/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema",
	Long: `Creates every table, the constraint indexes, and folds the legacy
single-valued mentor district column into the district list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := db.Migrate(ctx, gormDB); err != nil {
			return err
		}
		cmd.Println("Schema is up to date")
		return nil
	},
}
