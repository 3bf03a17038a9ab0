package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conflink-labs/conflink/internal/resolver"
)

func init() {
	rootCmd.AddCommand(chainCmd)
}

var chainCmd = &cobra.Command{
	Use:   "chain <file>",
	Short: "Print the inheritance chain of a config file",
	Long: `Follow "extends" references transitively and print every config file in
the inheritance chain, indented by depth. Dangling references and cycles are
marked instead of followed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving path %s: %w", args[0], err)
		}

		chain, err := newResolver().Chain(abs)
		if err != nil {
			return err
		}

		for _, entry := range chain {
			fmt.Println(formatChainEntry(entry))
		}
		return nil
	},
}

// formatChainEntry renders one chain node, indented by depth.
func formatChainEntry(entry resolver.ChainEntry) string {
	indent := strings.Repeat("  ", entry.Depth)

	if !entry.Resolved {
		if entry.Path == "" {
			return fmt.Sprintf("%s%s %s", indent, color.RedString("✗"), entry.Ref)
		}
		// A config seen earlier in the chain: a cycle.
		return fmt.Sprintf("%s%s %s", indent, color.YellowString("↺"), entry.Path)
	}
	return indent + entry.Path
}
