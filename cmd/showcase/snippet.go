package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/snippet"
	"github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
)

func newSnippetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "snippet <inputfield|datatable>",
		Short:     "Print the code snippet for the configured controls",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{showcase.TabInputField, showcase.TabDataTable},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := generateSnippet(args[0], cfg)
			if err != nil {
				return newCommandError("generate snippet", args[0], err, "Check the control flags and try again.")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

func generateSnippet(component string, cfg *config.Config) (string, error) {
	if component == showcase.TabDataTable {
		store := playground.NewDataTableStore()
		if err := cfg.SeedTable(store); err != nil {
			return "", err
		}
		return snippet.Generate(snippet.DataTable, store.Snapshot()), nil
	}

	store := playground.NewInputFieldStore()
	if err := cfg.SeedInput(store); err != nil {
		return "", err
	}
	return snippet.Generate(snippet.InputField, store.Snapshot()), nil
}
