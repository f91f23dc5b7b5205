package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mintgene/allocation-ledger/allocconfig"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configVerifyCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the allocation table",
}

var configShowCmd = &cobra.Command{
	Use:   "show [file.yaml]",
	Short: "Print the percentages, strategy table and config digest",
	Long: `Prints the allocation table loaded from the given file, or from
ALLOCATION_CONFIG_PATH, or the built-in defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigShow,
}

var configVerifyCmd = &cobra.Command{
	Use:   "verify [file.yaml]",
	Short: "Validate an allocation table and print its digest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigVerify,
}

func loadAllocationConfig(args []string) (*allocconfig.Config, string, error) {
	path := os.Getenv("ALLOCATION_CONFIG_PATH")
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := allocconfig.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("invalid allocation config: %w", err)
	}
	return cfg, path, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadAllocationConfig(args)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), cfg.Snapshot())
}

func runConfigVerify(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadAllocationConfig(args)
	if err != nil {
		return err
	}
	if err := cfg.CheckIntegrity(); err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK %s\nconfig_digest %s\n", source, cfg.Digest())
	return nil
}
