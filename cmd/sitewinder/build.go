package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sitewinder-dev/sitewinder/internal/build"
	"github.com/sitewinder-dev/sitewinder/internal/config"
)

func buildCmd() *cobra.Command {
	var (
		output      string
		baseURL     string
		fingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the production site",
		Long: `Build the site for production deployment.

This command:
  • Cleans the output directory
  • Copies static files into it
  • Fingerprints assets for cache busting
  • Rewrites pages against the asset manifest and base URL

Examples:
  sitewinder build
  sitewinder build --output=dist
  sitewinder build --base-url=https://cdn.example.com/site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, baseURL, fingerprint)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from "+config.ConfigFileName+")")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL prefixed to asset references")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", true, "Rename assets with a content hash")

	return cmd
}

func runBuild(output, baseURL string, fingerprint bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}

	builder := build.New(cfg, build.Options{
		Fingerprint: fingerprint,
		BaseURL:     baseURL,
		OnProgress:  func(step string) { info(step) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	success("Built %d files (%s) in %s", len(result.Files), formatBytes(result.TotalSize), result.Duration.Round(1000000))
	info("Output: %s/", cfg.Build.Output)
	return nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
