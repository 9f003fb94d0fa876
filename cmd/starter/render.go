package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/starter/internal/errors"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		output  string
		content bool
	)

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render one page to stdout",
		Long: `Render a registered page as HTML.

Examples:
  starter render home
  starter render about -o about.html
  starter render components --content`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return pages.Default().Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := flags.logger(cfg, cmd.ErrOrStderr())

			reg := pages.Default()
			p, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{
				Logger:       logger,
				Lang:         cfg.Render.Lang,
				ClientScript: cfg.Render.ClientScript,
			})

			var buf bytes.Buffer
			if content {
				err = r.RenderToWriter(cmd.Context(), &buf, p.Content(cmd.Context()))
			} else {
				err = r.RenderPage(cmd.Context(), &buf, reg.PageData(cmd.Context(), p))
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.New("E301").WithDetail(output).Wrap(err)
			}
			success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", output, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&content, "content", false, "Render only the page content, without the document and layout")

	return cmd
}
