package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/scan"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/ui"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/config"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/version"
)

var (
	jsonOutput bool
	filePath   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "analyzer [target]",
	Short: "Audits a web page for accessibility (WCAG) and SEO issues, scores it 0-100 per category, and suggests fixes.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && filePath == "" {
			return cmd.Help()
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		target := ""
		if len(args) > 0 {
			target = args[0]
		}

		err = scan.Run(cfg, scan.Options{
			Target:     target,
			File:       filePath,
			JSONOutput: jsonOutput,
		})
		if err != nil {
			fmt.Printf("%s\n", ui.Colorize(ui.ColorRed, fmt.Sprintf("Scan failed: %v", err)))
			os.Exit(1)
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.Value

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Save the report as JSON")
	rootCmd.Flags().StringVar(&filePath, "file", "", "Audit a local HTML file instead of fetching a URL")

	rootCmd.Long = ui.Banner + `
Audits a page against a fixed battery of accessibility and SEO rules,
classifies each issue by severity, and converts the result into 0-100
scores with grades, a performance tier, and remediation suggestions.

Example:
  analyzer https://example.com
  analyzer https://example.com --json
  analyzer --file page.html
  analyzer serve
`
}
