package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dkoosis/unitbl/internal/browse"
	"github.com/dkoosis/unitbl/internal/gallery"
	"github.com/dkoosis/unitbl/pkg/table"
)

var errNotTerminal = errors.New("browse needs a terminal on stdout")

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse a table interactively through every style",
		Long: `Browse shows a table and lets you cycle styles, toggle the interior
separators, the header rule and the padding policy. Without a file the
sample table is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !isTTYWriter(a.stdout) {
				return errNotTerminal
			}
			var (
				t   *table.Table
				err error
			)
			s := a.resolved.Style
			if len(args) == 0 {
				t, err = gallery.Sample(a.cfg)
				if err == nil {
					t.SetInterior(a.resolved.InteriorVertical, a.resolved.InteriorHorizontal)
					t.SetHeaderLine(a.resolved.HeaderLine)
				}
			} else {
				t, s, err = a.loadTable(args, "")
			}
			if err != nil {
				return err
			}
			return browse.Run(t, s, tea.WithAltScreen(), tea.WithInput(a.stdin), tea.WithOutput(a.stdout))
		},
	}
}
