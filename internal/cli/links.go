package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conflink-labs/conflink/internal/host"
	"github.com/conflink-labs/conflink/internal/resolver"
)

func init() {
	rootCmd.AddCommand(linksCmd)
}

var linksCmd = &cobra.Command{
	Use:   "links <file>",
	Short: "Print the document links for a config file",
	Long: `Scan a config file for "extends" references and print each reference's
source range together with the file it resolves to. References that name a
package not found in any ancestor package directory produce no link.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving path %s: %w", args[0], err)
		}

		h := newHost()
		result, err := h.Execute(cmd.Context(), host.CommandExecuteLinkProvider, abs)
		if err != nil {
			return err
		}

		links := result.([]resolver.Link)
		if len(links) == 0 {
			fmt.Println(color.YellowString("no links"))
			return nil
		}

		for _, link := range links {
			fmt.Printf("%s  %s\n", color.CyanString(link.Range.String()), color.GreenString(link.Target))
		}
		return nil
	},
}
