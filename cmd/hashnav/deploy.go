package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/hashnav/internal/config"
	"github.com/vango-dev/hashnav/pkg/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		appDir string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the built app to S3",
		Long: `Upload the built wasm app directory to an S3 bucket.

Credentials come from the standard AWS resolution chain (environment,
shared config, instance role).

Examples:
  hashnav deploy
  hashnav deploy --bucket=my-app-bucket --prefix=releases/v2`,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if region != "" {
				cfg.Deploy.Region = region
			}
			if appDir != "" {
				cfg.App = appDir
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			var optFns []func(*awsconfig.LoadOptions) error
			if cfg.Deploy.Region != "" {
				optFns = append(optFns, awsconfig.WithRegion(cfg.Deploy.Region))
			}
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
			if err != nil {
				return err
			}

			uploader := deploy.NewUploader(
				s3.NewFromConfig(awsCfg),
				cfg.Deploy.Bucket,
				cfg.Deploy.Prefix,
			)

			info("deploying %s to s3://%s/%s", cfg.AppDir(), cfg.Deploy.Bucket, cfg.Deploy.Prefix)
			n, err := uploader.UploadDir(ctx, cfg.AppDir())
			if err != nil {
				return err
			}

			success("uploaded %d file(s)", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from hashnav.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().StringVarP(&appDir, "app", "a", "", "Built app directory (default from hashnav.json)")

	return cmd
}
