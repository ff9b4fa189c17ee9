package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/theme"
	"github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
)

type renderOptions struct {
	tab   string
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of the showcase without a terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.tab != showcase.TabInputField && opts.tab != showcase.TabDataTable {
				return newCommandError("render", fmt.Sprintf("unknown tab %q", opts.tab), fmt.Errorf("tab must be %s or %s", showcase.TabInputField, showcase.TabDataTable), "Pass --tab inputfield or --tab datatable.")
			}

			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			log, closeLog, err := openLogger(cfg)
			if err != nil {
				return newCommandError("open log", cfg.Log.File, err, "Choose a writable --log-file path.")
			}
			defer closeLog()

			return renderFrame(cmd.OutOrStdout(), cfg, log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tab, "tab", "t", showcase.TabInputField, "Tab to render (inputfield, datatable)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 120, "Frame width in columns")

	return cmd
}

func renderFrame(out io.Writer, cfg *config.Config, log *logger.Logger, opts renderOptions) error {
	renderer := lipgloss.NewRenderer(out)
	m, err := showcase.NewModel(showcase.Options{
		Config:  *cfg,
		Logger:  log,
		Adapter: theme.RendererAdapter{Renderer: renderer},
		Tab:     opts.tab,
		Width:   opts.width,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, m.View())
	return err
}
