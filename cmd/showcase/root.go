package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/theme"
	"github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
)

// programRunner runs the interactive page. Tests replace it.
var programRunner = runProgram

// isTerminal reports whether out is an interactive terminal.
var isTerminal = func(out io.Writer) bool {
	if file, ok := out.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Interactive showcase for the InputField and DataTable components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			log, closeLog, err := openLogger(cfg)
			if err != nil {
				return newCommandError("open log", cfg.Log.File, err, "Choose a writable --log-file path.")
			}
			defer closeLog()

			// Without a terminal there is nothing to interact with; print one frame.
			if !isTerminal(cmd.OutOrStdout()) {
				log.Info("stdout is not a terminal, rendering a static frame")
				return renderFrame(cmd.OutOrStdout(), cfg, log, renderOptions{})
			}

			log.WithFields(map[string]any{"dark": cfg.Theme.Dark, "policy": cfg.Table.SelectionPolicy}).Info("launching showcase")
			if err := programRunner(cfg, log); err != nil {
				log.Error(err, "showcase exited with error")
				return err
			}
			return nil
		},
	}

	flags.register(cmd.PersistentFlags())

	cmd.AddCommand(newSnippetCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runProgram(cfg *config.Config, log *logger.Logger) error {
	m, err := showcase.NewModel(showcase.Options{
		Config:  *cfg,
		Logger:  log,
		Adapter: theme.RendererAdapter{Renderer: lipgloss.DefaultRenderer()},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running showcase: %w", err)
	}
	return nil
}

// openLogger returns the file logger configured by cfg, or a discarding one.
// The page owns the terminal, so logs never go to stdout or stderr.
func openLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logger.Nop(), func() {}, nil
	}

	file, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        file,
		Component:     "showcase",
	})
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return log, func() { _ = file.Close() }, nil
}
