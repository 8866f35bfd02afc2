package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"flipd/internal/browse"
	"flipd/internal/config"
)

func buildBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Short:   "Step through the items directory interactively in the terminal",
		Example: "  flipd browse --items-dir ~/pictures --items-ext .jpg --window 5 --offset 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			pool, _, err := newPool(cfg, nil)
			if err != nil {
				return err
			}
			p := tea.NewProgram(browse.New(pool),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().String("items-dir", config.DefaultItemsDir, "Directory whose files form the sequence")
	cmd.Flags().String("items-ext", "", "Only include files with this extension")
	return cmd
}
