package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
)

type scenario struct {
	name  string
	about string
	run   func(w io.Writer, cfg *table.Config) error
}

var scenarios = []scenario{
	{"ut1", "spans, fixed and minimum widths, padding and a title", demoLayout},
	{"ut2", "multi-byte text in a single column", demoMultibyte},
	{"ut3", "one table stroked in every style", demoStyles},
	{"ut4", "column titles and cell callbacks", demoCallbacks},
}

func (a *app) demoCmd() *cobra.Command {
	names := make([]string, 0, len(scenarios))
	var about strings.Builder
	for _, s := range scenarios {
		names = append(names, s.name)
		fmt.Fprintf(&about, "  %s  %s\n", s.name, s.about)
	}
	return &cobra.Command{
		Use:       "demo [" + strings.Join(names, "|") + "|all]",
		Short:     "Render the built-in demonstration tables",
		Long:      "Demo renders one of the built-in scenarios, or all of them:\n\n" + about.String(),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(names, "all"),
		RunE: func(_ *cobra.Command, args []string) error {
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			ran := false
			for _, s := range scenarios {
				if which != "all" && which != s.name {
					continue
				}
				if ran {
					if _, err := io.WriteString(a.stdout, "\n\n"); err != nil {
						return err
					}
				}
				if err := s.run(a.stdout, a.cfg); err != nil {
					return fmt.Errorf("demo %s: %w", s.name, err)
				}
				ran = true
			}
			if !ran {
				return fmt.Errorf("unknown demo %q (expected %s or all)", which, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func demoLayout(w io.Writer, cfg *table.Config) error {
	t, err := table.New(7, 7, table.WithConfig(cfg))
	if err != nil {
		return err
	}
	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			if err := t.SetCell(r, c, fmt.Sprintf(" (%d,%d) ", r, c)); err != nil {
				return err
			}
		}
	}
	if err := t.SetTableAlign(table.AlignCenter); err != nil {
		return err
	}
	if err := t.SetAlign(2, 2, table.AlignRight); err != nil {
		return err
	}
	if err := t.SetColWidth(0, 20); err != nil {
		return err
	}
	if err := t.SetColSpan(2, 2, 3); err != nil {
		return err
	}
	if err := t.SetTableMinColWidth(12); err != nil {
		return err
	}
	if err := t.SetTablePadding(2, 2); err != nil {
		return err
	}
	t.SetInterior(true, true)
	if err := t.SetCell(0, 0, " Much longer text than column width "); err != nil {
		return err
	}
	if err := t.SetTitle("Table title", table.TitleLine); err != nil {
		return err
	}
	_, err = t.Stroke(w, style.DoubleV4)
	return err
}

const longAddress = "ÖVERJÄRVÅ TÅRNE 32, 134 34 LÅNGJÄRVI NUMÅENDE"

func demoMultibyte(w io.Writer, cfg *table.Config) error {
	t, err := table.NewFromData(3, 1, []string{"Titel 1", longAddress, longAddress}, table.WithConfig(cfg))
	if err != nil {
		return err
	}
	_, err = t.Stroke(w, style.SingleV1)
	return err
}

// pass is one stroke of the styles demo.
type pass struct {
	styles   []style.Style
	vertical bool
	header   bool
	padding  int
	suffix   string
}

func demoStyles(w io.Writer, cfg *table.Config) error {
	t, err := table.NewFromData(3, 6, []string{
		"Title 1", "Title 2", "Title 3", "Title 4", "Title 5", "Title 6",
		"2012-12-12 12:12", "3000000001", "30.345678", "17.676767", longAddress, "olle",
		"2012-12-12 12:12", "3000000001", "30.345678", "17.676767", longAddress, "olle",
	}, table.WithConfig(cfg))
	if err != nil {
		return err
	}
	if err := t.SetRowAlign(0, table.AlignCenter); err != nil {
		return err
	}

	simple := []style.Style{style.SimpleV1, style.SimpleV2, style.SimpleV3, style.SimpleV4, style.SimpleV5, style.SimpleV6}
	passes := []pass{
		{styles: []style.Style{style.ASCIIV0, style.ASCIIV4}, header: true, padding: 1},
		{styles: []style.Style{style.ASCIIV0, style.ASCIIV4}, vertical: true, header: true, padding: 1, suffix: " + vertical interior"},
		{styles: append([]style.Style{
			style.ASCIIV1, style.ASCIIV2, style.ASCIIV3,
			style.DoubleV1, style.DoubleV2, style.DoubleV3, style.DoubleV4,
			style.SingleV1, style.SingleV2,
			style.HeavyV1, style.HeavyV2, style.HeavyV3,
		}, simple...), header: true, padding: 1},
		{styles: simple, vertical: true, header: true, padding: 1, suffix: " + vertical interior"},
		{styles: []style.Style{style.SimpleV3}, vertical: true, padding: 2, suffix: " + vertical interior, no header line"},
		{styles: []style.Style{style.SimpleV3}, padding: 2, suffix: ", no header line"},
	}

	first := true
	for _, p := range passes {
		t.SetInterior(p.vertical, false)
		t.SetHeaderLine(p.header)
		if err := t.SetTablePadding(p.padding, p.padding); err != nil {
			return err
		}
		for _, s := range p.styles {
			if !first {
				if _, err := io.WriteString(w, "\n\n"); err != nil {
					return err
				}
			}
			first = false
			if err := t.SetTitle(s.String()+p.suffix, table.TitleLine); err != nil {
				return err
			}
			if _, err := t.Stroke(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func demoCallbacks(w io.Writer, cfg *table.Config) error {
	t, err := table.New(5, 6, table.WithConfig(cfg))
	if err != nil {
		return err
	}
	if err := t.SetColumnTitles([]string{"Title 1", "Title 2", "Title 3", "Title 4", "Title 5", "Title 6"}); err != nil {
		return err
	}
	if err := t.SetRowAlign(0, table.AlignCenter); err != nil {
		return err
	}
	t.SetInterior(true, false)
	if err := t.SetTitle("Table title", table.TitleLine); err != nil {
		return err
	}
	t.SetTableCallback(func(row, col int, _ any) (string, bool) {
		return fmt.Sprintf("(%d, %d)", row, col), true
	})
	_, err = t.Stroke(w, style.ASCIIV4)
	return err
}
