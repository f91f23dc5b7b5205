package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mintgene/allocation-ledger/models"
)

func init() {
	sweepsCmd.AddCommand(sweepsImportCmd)
	rootCmd.AddCommand(sweepsCmd)
}

var sweepsCmd = &cobra.Command{
	Use:   "sweeps",
	Short: "Manage sweep records",
}

var sweepsImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Upsert sweep records from a JSON array",
	Long: `Reads a JSON array of sweeps in the same shape as POST /api/sweeps:

  [{"id": "sw-1", "usd_value": "1000.00", "chain": "solana", "status": "confirmed"}]

Every record is validated before any is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSweepsImport,
}

func readSweepForms(path string) ([]models.SweepForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var forms []models.SweepForm
	if err := json.Unmarshal(data, &forms); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range forms {
		if errs := forms[i].Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("record %d (%q): %w", i, forms[i].ID, &models.ValidationError{Messages: errs})
		}
	}
	return forms, nil
}

func runSweepsImport(cmd *cobra.Command, args []string) error {
	forms, err := readSweepForms(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, form := range forms {
		if _, err := a.services.Allocation.IngestSweep(cmd.Context(), form); err != nil {
			return fmt.Errorf("failed to import sweep %s: %w", form.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sweeps\n", len(forms))
	return nil
}
