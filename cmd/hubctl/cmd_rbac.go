package main

import (
	"context"

	"dare/enterprisehub/internal/services"

	"github.com/spf13/cobra"
)

var seedRBACCmd = &cobra.Command{
	Use:   "seed-rbac",
	Short: "Create default roles, permissions and grants",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		rbac := services.NewRBACService(gormDB, nil, 0, nil)
		if err := rbac.SeedDefaults(ctx); err != nil {
			return err
		}
		cmd.Println("RBAC defaults seeded")
		return nil
	},
}
