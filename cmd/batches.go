package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/problemgen"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "Browse stored batches",
}

var batchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.BatchRepo().List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list batches: %w", err)
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No batches stored yet.")
			return nil
		}
		return newRenderer(cmd).BatchList(cmd.OutOrStdout(), recs)
	},
}

var batchesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the problems of a stored batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.BatchRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("batch %s not found", args[0])
		}

		items, err := problemgen.ItemsFromRecord(rec)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(items)
		}
		return newRenderer(cmd).Items(cmd.OutOrStdout(), items)
	},
}

func init() {
	batchesListCmd.Flags().IntP("limit", "n", 20, "Number of batches to show")
	batchesShowCmd.Flags().Bool("json", false, "Print the items as JSON")
	batchesCmd.PersistentFlags().Bool("plain", false, "Disable colors")

	batchesCmd.AddCommand(batchesListCmd)
	batchesCmd.AddCommand(batchesShowCmd)
}
