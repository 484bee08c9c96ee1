package main

import (
	"context"
	"fmt"
	"os"

	"dare/enterprisehub/internal/services"

	"github.com/spf13/cobra"
)

var importDryRun bool

var importYouthCmd = &cobra.Command{
	Use:   "import-youth <file.csv>",
	Short: "Bulk-create youth profiles from CSV",
	Long: `Reads a CSV with a header row. Required columns: first_name, last_name,
district. Optional: gender, phone_number, email, date_of_birth (YYYY-MM-DD),
national_id, subcounty, village, education_level, skills (separated by ';'),
training_status, program_status, dare_model.

Rows that fail validation are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		report, err := services.NewYouthService(gormDB).ImportCSV(ctx, f, importDryRun)
		if err != nil {
			return err
		}

		for _, failure := range report.Failed {
			cmd.PrintErrf("line %d: %s\n", failure.Line, failure.Error)
		}
		verb := "Imported"
		if importDryRun {
			verb = "Validated"
		}
		cmd.Println(fmt.Sprintf("%s %d rows, %d rejected", verb, report.Imported, len(report.Failed)))
		return nil
	},
}

func init() {
	importYouthCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate rows without inserting")
}
