// Package scan drives a single CLI audit: input resolution, cancellation,
// pipeline execution, and output selection.
package scan

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/output"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/app/ui"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/audit"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/config"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/suggest"
)

type Options struct {
	Target     string // URL to fetch
	File       string // local HTML file; takes precedence over Target
	JSONOutput bool
}

// Providers assembles the ordered suggestion strategies from configuration.
// Unconfigured providers are skipped entirely; the composer appends the
// local fallback itself.
func Providers(cfg *config.Config) []suggest.Provider {
	var providers []suggest.Provider
	if cfg.Suggest.HFToken != "" {
		providers = append(providers, suggest.NewHuggingFaceProvider(cfg.Suggest.HFToken, cfg.Suggest.HFModel))
	}
	if cfg.Suggest.OpenAIKey != "" {
		providers = append(providers, suggest.NewOpenAIProvider(cfg.Suggest.OpenAIKey, cfg.Suggest.OpenAIModel))
	}
	return providers
}

func Run(cfg *config.Config, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			fmt.Println(ui.Colorize(ui.ColorYellow, "Scan cancelled."))
			cancel()
		case <-ctx.Done():
		}
	}()

	in := audit.Input{URL: opts.Target}
	if opts.File != "" {
		content, err := os.ReadFile(opts.File)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.File, err)
		}
		in = audit.Input{FileContent: string(content)}
	}

	runner := audit.NewRunner(nil, suggest.NewComposer(Providers(cfg)...), cfg.Scan.CheckRobots)

	result, err := runner.Run(ctx, in)
	if err != nil {
		return err
	}

	output.PrintReport(result)

	if opts.JSONOutput {
		filename, err := output.SaveJSONReport(result)
		if err != nil {
			return fmt.Errorf("failed to save JSON report: %w", err)
		}
		fmt.Printf("\n%s\n", ui.Colorize(ui.ColorGreen, "JSON report saved to "+filename))
	}

	return nil
}
