// Command hubctl runs maintenance tasks against the Enterprise Hub database.
package main

import (
	"fmt"
	"os"
	"time"

	"dare/enterprisehub/internal/config"
	"dare/enterprisehub/internal/db"
	"dare/enterprisehub/internal/logging"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string
	timeout    time.Duration

	cfg   *config.Config
	gormDB *gorm.DB
	sqlDB *sqlx.DB
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "Enterprise Hub maintenance CLI",
	Long: `Maintenance tasks for the Enterprise Hub database.

Connection settings come from the config file (--config or HUB_CONFIG) and
the same environment overrides the server reads.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := logging.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		gormDB, sqlDB, err = db.Connect(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("HUB_CONFIG"), "Path to YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(seedRBACCmd)
	rootCmd.AddCommand(importYouthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
