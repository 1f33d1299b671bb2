// Package gallery renders a sample table in each built-in style, grouped by
// family, and lists the style names with their descriptions.
package gallery

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
)

// Options controls a gallery run.
type Options struct {
	// Styles to show; nil means every style.
	Styles []style.Style
	// Interior separators of the sample table.
	Vertical   bool
	Horizontal bool
	// Config is shared by the sample table; nil means table defaults.
	Config *table.Config
	Theme  *Theme
}

// Sample returns the table shown for every style: a title, a header row,
// right-aligned numbers, multi-byte text and a spanning total row.
func Sample(cfg *table.Config) (*table.Table, error) {
	t, err := table.NewFromData(5, 3, []string{
		"Lake", "Depth m", "Area km²",
		"Vänern", "106", "5650",
		"Vättern", "128", "1912",
		"Mälaren", "64", "1140",
		"Total area", "", "8702",
	}, table.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	if err := t.SetTablePadding(1, 1); err != nil {
		return nil, err
	}
	if err := t.SetColSpan(4, 0, 2); err != nil {
		return nil, err
	}
	for _, col := range []int{1, 2} {
		if err := t.SetColAlign(col, table.AlignRight); err != nil {
			return nil, err
		}
	}
	if err := t.SetTitle("Swedish lakes", table.TitleLine); err != nil {
		return nil, err
	}
	return t, nil
}

// Write renders the sample table once per selected style.
func Write(w io.Writer, opts Options) error {
	theme := opts.Theme
	if theme == nil {
		theme = PlainTheme()
	}
	styles := opts.Styles
	if styles == nil {
		styles = style.All()
	}

	t, err := Sample(opts.Config)
	if err != nil {
		return fmt.Errorf("building sample table: %w", err)
	}
	t.SetInterior(opts.Vertical, opts.Horizontal)

	caser := cases.Title(language.English)
	width := labelWidth(styles)
	family := style.Family(-1)
	for _, s := range styles {
		if f := s.Family(); f != family {
			family = f
			heading := caser.String(f.String()) + " family"
			if _, err := fmt.Fprintf(w, "\n%s\n\n", theme.Heading.Render(heading)); err != nil {
				return err
			}
		}
		out, err := t.Render(s)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", s, err)
		}
		label := theme.Label.Render(runewidth.FillRight(s.String(), width))
		if _, err := fmt.Fprintf(w, "%s%s\n%s\n", label, theme.Muted.Render(s.Description()), out); err != nil {
			return err
		}
	}
	return nil
}

// List writes one line per style: its name and description.
func List(w io.Writer, styles []style.Style, theme *Theme) error {
	if theme == nil {
		theme = PlainTheme()
	}
	if styles == nil {
		styles = style.All()
	}
	width := labelWidth(styles)
	var sb strings.Builder
	for _, s := range styles {
		sb.WriteString(theme.Label.Render(runewidth.FillRight(s.String(), width)))
		sb.WriteString(theme.Muted.Render(s.Description()))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func labelWidth(styles []style.Style) int {
	width := 0
	for _, s := range styles {
		width = max(width, runewidth.StringWidth(s.String()))
	}
	return width + 2
}
