package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/starter/client"
	"github.com/vango-dev/starter/internal/config"
	"github.com/vango-dev/starter/internal/export"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/pkg/render"
)

func exportCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page as static HTML",
		Long: `Render every registered page into the export directory.

The home page is written as index.html and every other page as
<name>.html. Files in the static directory are copied to static/ with
a content hash in their names, and pages link the hashed files. When an S3 bucket is configured each file is uploaded
after it is written. Credentials come from AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY.

Examples:
  starter export
  starter export --dir=public
  starter export --bucket=my-site --prefix=preview --region=eu-west-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			cfg, err := flags.loadConfig(
				config.WithFlag("export.dir", f.Lookup("dir")),
				config.WithFlag("export.s3.bucket", f.Lookup("bucket")),
				config.WithFlag("export.s3.prefix", f.Lookup("prefix")),
				config.WithFlag("export.s3.region", f.Lookup("region")),
				config.WithFlag("export.s3.endpoint", f.Lookup("endpoint")),
			)
			if err != nil {
				return err
			}
			logger := flags.logger(cfg, cmd.ErrOrStderr())

			exp := &export.Exporter{
				Registry: pages.Default(),
				Renderer: render.NewRenderer(render.RendererConfig{
					Logger:       logger,
					Lang:         cfg.Render.Lang,
					ClientScript: cfg.Render.ClientScript,
				}),
				Dir:       cfg.Export.Dir,
				Logger:    logger,
				StaticDir: filepath.Join(projectDir(cfg), cfg.Server.StaticDir),
				Ignore:    cfg.Dev.Ignore,
			}
			if cfg.Render.ClientScript == client.Path {
				exp.Extra = map[string][]byte{strings.TrimPrefix(client.Path, "/"): client.JS}
			}
			if s3cfg := cfg.Export.S3; s3cfg.Bucket != "" {
				exp.Publisher = export.NewS3Publisher(export.NewS3Client(s3cfg), s3cfg.Bucket, s3cfg.Prefix)
			}

			results, err := exp.Export(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pageCount := 0
			for _, res := range results {
				name := res.Page
				if name == "" {
					name = res.Asset
				} else {
					pageCount++
				}
				suffix := ""
				if res.Published {
					suffix = " (published)"
				}
				info(out, "%s → %s%s", name, res.File, suffix)
			}
			success(out, "Exported %d pages and %d assets to %s", pageCount, len(results)-pageCount, cfg.Export.Dir)
			return nil
		},
	}

	cmd.Flags().String("dir", config.DefaultExportDir, "Output directory")
	cmd.Flags().String("bucket", "", "S3 bucket to publish to")
	cmd.Flags().String("prefix", "", "Key prefix inside the bucket")
	cmd.Flags().String("region", "", "S3 region")
	cmd.Flags().String("endpoint", "", "Custom S3 endpoint (S3-compatible stores)")

	return cmd
}
