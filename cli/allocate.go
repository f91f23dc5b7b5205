package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(executeCmd)
}

var allocateCmd = &cobra.Command{
	Use:   "allocate <sweep-id>",
	Short: "Split one confirmed sweep into its category allocations",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllocate,
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Allocate every recent confirmed sweep that has no allocations yet",
	Long: `Runs one unallocated-sweep scan. Each sweep is allocated independently;
failures are reported per sweep and do not stop the batch.`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

var executeCmd = &cobra.Command{
	Use:   "execute <allocation-id>",
	Short: "Hand one allocation to the strategy executor and mark it executed",
	Args:  cobra.ExactArgs(1),
	RunE:  runExecute,
}

func runAllocate(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.services.Allocation.AllocateProfits(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to allocate sweep %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sweep %s (%s USD)\n", result.SweepID, result.Total.StringFixed(2))
	fmt.Fprintf(out, "%-12s %4s %12s  %s\n", "CATEGORY", "PCT", "AMOUNT", "STRATEGY")
	for _, row := range result.Allocations {
		fmt.Fprintf(out, "%-12s %3d%% %12s  %s\n", row.Category, row.Percentage, row.Amount.StringFixed(2), row.Strategy)
	}
	if result.AuditDegraded {
		fmt.Fprintf(out, "WARNING: audit entry not written: %s\n", result.AuditError)
	} else {
		fmt.Fprintf(out, "Audit entry #%d\n", result.AuditEntryID)
	}
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.services.Allocation.ProcessUnallocatedSweeps(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to process sweeps: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d, allocated %d, failed %d\n", result.Processed, result.Succeeded, result.Failed)
	for _, f := range result.Failures {
		fmt.Fprintf(out, "  %s: %s\n", f.SweepID, f.Reason)
	}
	return nil
}

func runExecute(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid allocation id %q", args[0])
	}

	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.services.Allocation.ExecuteAllocation(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to execute allocation %d: %w", id, err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
