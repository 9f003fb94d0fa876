package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/starter/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template string
		cfg      templates.Config
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a new project",
		Long: fmt.Sprintf(`Write a starter.yaml and static files into a directory.

Templates: %s

Examples:
  starter init
  starter init blog --template=s3 --bucket=my-blog`, strings.Join(templates.List(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}
			files, err := tmpl.Create(dir, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				info(out, "%s", f)
			}
			success(out, "Created %s project in %s", tmpl.Name, dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "site", "Project template")
	cmd.Flags().StringVar(&cfg.ProjectName, "name", "", "Project name (default directory name)")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", 3000, "Server port")
	cmd.Flags().StringVar(&cfg.Bucket, "bucket", "", "S3 bucket (s3 template)")
	cmd.Flags().StringVar(&cfg.Region, "region", "", "S3 region (s3 template)")

	return cmd
}
