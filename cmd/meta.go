package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/server"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "List branches, school levels and scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(server.Meta())
		}
		return newRenderer(cmd).Catalog(cmd.OutOrStdout())
	},
}

func init() {
	metaCmd.Flags().Bool("json", false, "Print as JSON (same shape as GET /meta)")
	metaCmd.Flags().Bool("plain", false, "Disable colors")
}
