package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conflink-labs/conflink/internal/manifest"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest...>",
	Short: "Validate package manifests against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			result, err := manifest.ValidateFile(path)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}

			if result.Valid {
				fmt.Printf("%s %s\n", color.GreenString("✓"), path)
				continue
			}

			failed++
			fmt.Printf("%s %s\n", color.RedString("✗"), path)
			for _, issue := range result.Issues {
				location := issue.Path
				if location == "" {
					location = "/"
				}
				fmt.Printf("    %s: %s\n", color.CyanString(location), issue.Message)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d manifest(s) failed validation", failed)
		}
		return nil
	},
}
