package main

import (
	"github.com/spf13/cobra"

	"github.com/dkoosis/unitbl/internal/gallery"
	"github.com/dkoosis/unitbl/pkg/style"
)

func (a *app) stylesCmd() *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "styles [name...]",
		Short: "List the border styles, or show a sample table in each",
		RunE: func(_ *cobra.Command, args []string) error {
			styles, err := parseStyles(args)
			if err != nil {
				return err
			}
			theme := gallery.ThemeFor(a.color(a.stdout))
			if !show {
				return gallery.List(a.stdout, styles, theme)
			}
			return gallery.Write(a.stdout, gallery.Options{
				Styles:     styles,
				Vertical:   a.resolved.InteriorVertical,
				Horizontal: a.resolved.InteriorHorizontal,
				Config:     a.cfg,
				Theme:      theme,
			})
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "render a sample table in every listed style")
	return cmd
}

// parseStyles returns nil, meaning every style, when names is empty.
func parseStyles(names []string) ([]style.Style, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]style.Style, 0, len(names))
	for _, n := range names {
		s, err := style.Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
