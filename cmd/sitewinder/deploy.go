package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sitewinder-dev/sitewinder/internal/config"
	"github.com/sitewinder-dev/sitewinder/internal/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the built site to object storage",
		Long: `Upload the build output to the configured S3 bucket.

Credentials come from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
The target bucket, region and key prefix come from the deploy
section of ` + config.ConfigFileName + `.

Examples:
  sitewinder deploy
  sitewinder deploy --bucket=my-site --prefix=staging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, prefix)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from "+config.ConfigFileName+")")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")

	return cmd
}

func runDeploy(bucket, prefix string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if prefix != "" {
		cfg.Deploy.Prefix = prefix
	}

	uploader, err := deploy.NewS3Uploader(cfg.Deploy)
	if err != nil {
		return err
	}
	deployer := deploy.NewDeployer(uploader, cfg.Deploy.Prefix, func(format string, args ...any) {
		info(format, args...)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	keys, err := deployer.Deploy(ctx, cfg.OutputPath())
	if err != nil {
		return err
	}

	success("Deployed %d files to s3://%s/%s", len(keys), cfg.Deploy.Bucket, cfg.Deploy.Prefix)
	return nil
}
