package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mintgene/allocation-ledger/models"
	"github.com/mintgene/allocation-ledger/services"
)

var trailLimit int

func init() {
	auditTrailCmd.Flags().IntVar(&trailLimit, "limit", services.DefaultTrailLimit, "maximum number of entries")

	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTrailCmd)
	auditCmd.AddCommand(auditChainCmd)
	rootCmd.AddCommand(auditCmd)
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect and verify the audit ledger",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify <entry-id>",
	Short: "Recompute one entry's digest and compare it to the stored one",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditVerify,
}

var auditTrailCmd = &cobra.Command{
	Use:   "trail <entity-type> <entity-id>",
	Short: "List the audit entries of one entity, newest first",
	Args:  cobra.ExactArgs(2),
	RunE:  runAuditTrail,
}

var auditChainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Verify every entry and the links between them",
	Args:  cobra.NoArgs,
	RunE:  runAuditChain,
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[0])
	}

	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.services.Audit.VerifyEntry(cmd.Context(), id)
	if err != nil {
		return err
	}
	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("entry %d failed verification: %s", id, result.Reason)
	}
	return nil
}

func runAuditTrail(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	trail, err := a.services.Audit.GetAuditTrail(cmd.Context(), args[0], args[1], trailLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(trail) == 0 {
		fmt.Fprintln(out, "No audit entries.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-30s %-16s %s\n", "ID", "OPERATION", "CREATED", "USER", "STATUS")
	for _, item := range trail {
		status := "ok"
		if !item.Verification.Valid {
			status = string(item.Verification.Reason)
		}
		fmt.Fprintf(out, "%-6d %-20s %-30s %-16s %s\n",
			item.ID,
			item.Operation,
			models.FormatTimestamp(item.CreatedAt),
			item.UserID,
			status,
		)
	}
	return nil
}

func runAuditChain(cmd *cobra.Command, args []string) error {
	a, err := newApp(logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.services.Audit.VerifyChain(cmd.Context())
	if err != nil {
		return err
	}
	if err := printJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("audit chain broken at entry %d: %s", result.BrokenAt, result.Reason)
	}
	return nil
}
