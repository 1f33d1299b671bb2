package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
	"github.com/dkoosis/unitbl/pkg/xstr"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func mustTable(t *testing.T, rows, cols int, data ...string) *table.Table {
	t.Helper()
	tbl, err := table.NewFromData(rows, cols, data)
	require.NoError(t, err)
	return tbl
}

func TestRender_MatchesGolden_When_SingleBoxedWithVerticals(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 2, 2, "ab", "c", "d", "efg")
	tbl.SetInterior(true, false)

	got, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)

	want := "" +
		"┌──┬───┐\n" +
		"│ab│c  │\n" +
		"├──┼───┤\n" +
		"│d │efg│\n" +
		"└──┴───┘\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected render (-want +got):\n%s", diff)
	}
}

func TestRender_MatchesGolden_When_TitleIsSet(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 1, 2, "a", "b")
	tbl.SetInterior(true, false)
	require.NoError(t, tbl.SetTitle("T", table.TitleLine))

	got, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)

	want := "" +
		"┌───┐\n" +
		"│ T │\n" +
		"├─┬─┤\n" +
		"│a│b│\n" +
		"├─┴─┤\n" +
		"└─┴─┘\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected render (-want +got):\n%s", diff)
	}
}

func TestRender_OmitsTitleRule_When_TitleNoLine(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 1, 2, "a", "b")
	tbl.SetInterior(true, false)
	require.NoError(t, tbl.SetTitle("T", table.TitleNoLine))

	got, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)

	ls := lines(got)
	require.Len(t, ls, 5)
	assert.Equal(t, "│ T │", ls[1])
	assert.Equal(t, "│a│b│", ls[2])
}

func TestRender_DrawsOnlyPlainRuns_When_InteriorVerticalDisabled(t *testing.T) {
	t.Parallel()

	for _, s := range style.All() {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			tbl := mustTable(t, 3, 3, "a", "bb", "ccc", "dddd", "e", "f", "g", "h", "i")
			require.NoError(t, tbl.SetColSpan(1, 0, 2))
			tbl.SetInterior(false, true)

			out, err := tbl.Render(s)
			require.NoError(t, err)

			ls := lines(out)
			// top, row, header, row, rule, row [, bottom]
			for _, i := range []int{0, 2, 4, 6} {
				if i >= len(ls) {
					continue
				}
				runes := []rune(ls[i])
				inner := runes[1 : len(runes)-1]
				for _, r := range inner {
					assert.Equal(t, inner[0], r, "line %d %q has a junction", i, ls[i])
				}
			}
		})
	}
}

func TestRender_UsesHeaderGlyphs_When_HeaderLineEnabled(t *testing.T) {
	t.Parallel()

	for _, s := range style.All() {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			d := style.Resolve(s, false)
			want := d.HeaderLeft + strings.Repeat(d.HeaderHorizontal, 5) + d.HeaderRight

			tbl := mustTable(t, 3, 2, "ab", "c", "d", "ef", "g", "h")
			tbl.SetInterior(false, true)
			out, err := tbl.Render(s)
			require.NoError(t, err)
			assert.Equal(t, want, lines(out)[2])

			require.NoError(t, tbl.SetTitle("Title", table.TitleLine))
			out, err = tbl.Render(s)
			require.NoError(t, err)
			ls := lines(out)
			// top, title, title rule, header row, header rule
			assert.Equal(t, want, ls[4])
			mid := d.MiddleLeft + strings.Repeat(d.MiddleHorizontal, 5) + d.MiddleRight
			assert.Equal(t, mid, ls[2])
		})
	}
}

func TestRender_KeepsEveryLineTheSameWidth_When_StylesSpansAndTitlesVary(t *testing.T) {
	t.Parallel()

	for _, s := range style.All() {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			tbl := mustTable(t, 4, 4,
				"Name", "Ort", "Län", "Kod",
				"Åsa", "Göteborg", "", "1",
				"span", "", "", "2",
				"x", "y", "z", "3")
			require.NoError(t, tbl.SetColSpan(2, 0, 3))
			require.NoError(t, tbl.SetColSpan(3, 1, 2))
			require.NoError(t, tbl.SetTablePadding(1, 1))
			require.NoError(t, tbl.SetTitle("Städer", table.TitleLine))

			for _, v := range []bool{true, false} {
				for _, h := range []bool{true, false} {
					tbl.SetInterior(v, h)
					out, err := tbl.Render(s)
					require.NoError(t, err)
					assert.NotContains(t, out, style.ErrorGlyph)

					want := 0
					for _, w := range tbl.Widths() {
						want += w
					}
					want += tbl.Cols() + 1
					for _, l := range lines(out) {
						assert.Equal(t, want, xstr.Len(l), "line %q", l)
					}
				}
			}
		})
	}
}

func TestRender_PadsMultiByteText_When_PlainSingleStyle(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 3, 1, "Titel 1", "ÖVERJÄRVÅ...", "ÖVERJÄRVÅ...")
	require.NoError(t, tbl.SetTablePadding(1, 1))
	tbl.SetInterior(true, true)

	out, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)

	ls := lines(out)
	require.NotEmpty(t, ls)
	for _, l := range ls {
		assert.Equal(t, runewidth.StringWidth(ls[0]), runewidth.StringWidth(l), "line %q", l)
		assert.Equal(t, 16, xstr.Len(l), "line %q", l)
	}
	assert.Equal(t, "│ Titel 1      │", ls[1])
}

func TestRender_WidensSpan_When_CellSpansThreeColumns(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 2, 3, "a", "bb", "ccc", "x", "", "")
	require.NoError(t, tbl.SetColSpan(1, 0, 3))
	tbl.SetInterior(true, false)

	out, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)

	w := tbl.Widths()
	require.Equal(t, []int{1, 2, 3}, w)
	ls := lines(out)
	assert.Equal(t, "│x"+strings.Repeat(" ", w[0]+w[1]+w[2]+2-1)+"│", ls[3])
	assert.Equal(t, "├─┴──┴───┤", ls[2])
	assert.Equal(t, "└────────┘", ls[4])
}

func TestRender_KeepsGridHeight_When_StrokedTwiceWithTitle(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 2, 2, "a", "b", "c", "d")
	require.NoError(t, tbl.SetTitle("first", table.TitleLine))

	first, err := tbl.Render(style.ASCIIV2)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Height())

	require.NoError(t, tbl.SetTitle("second", table.TitleLine))
	second, err := tbl.Render(style.ASCIIV2)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Height())
	assert.Equal(t, 2, tbl.Rows())
	assert.Len(t, lines(second), len(lines(first)))
	assert.Contains(t, second, "second")
	assert.NotContains(t, second, "first")

	// data rows stay addressable by their original index
	got, err := tbl.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestSetTitle_ReturnsError_When_RemovingPromotedTitle(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 1, 1, "a")
	require.NoError(t, tbl.SetTitle("t", table.TitleLine))
	require.NoError(t, tbl.SetTitle("", table.TitleLine))
	require.NoError(t, tbl.SetTitle("t", table.TitleLine))

	_, err := tbl.Render(style.ASCIIV1)
	require.NoError(t, err)
	assert.ErrorIs(t, tbl.SetTitle("", table.TitleLine), table.ErrTitleLocked)
	assert.Equal(t, "t", tbl.Title())
}

func TestRenderLimit_ReturnsBufferFull_When_OutputDoesNotFit(t *testing.T) {
	t.Parallel()

	var logged []string
	cfg := table.NewConfig()
	cfg.SetLogFunc(func(_ table.Level, msg string) { logged = append(logged, msg) }, table.LevelError, "unitbl")

	tbl, err := table.NewFromData(2, 2, []string{"a", "b", "c", "d"}, table.WithConfig(cfg))
	require.NoError(t, err)

	out, err := tbl.RenderLimit(style.SingleV2, 10)
	assert.ErrorIs(t, err, table.ErrBufferFull)
	assert.Empty(t, out)
	require.Len(t, logged, 1)
	assert.True(t, strings.HasPrefix(logged[0], "unitbl : "))

	full, err := tbl.RenderLimit(style.SingleV2, 0)
	require.NoError(t, err)
	exact, err := tbl.RenderLimit(style.SingleV2, len(full))
	require.NoError(t, err)
	assert.Equal(t, full, exact)
}

func TestRenderInto_LeavesDestinationUntouched_When_TooSmall(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 1, 1, "abc")
	dst := []byte("xxxx")
	n, err := tbl.RenderInto(dst, style.ASCIIV2)
	assert.True(t, errors.Is(err, table.ErrBufferFull))
	assert.Zero(t, n)
	assert.Equal(t, "xxxx", string(dst))

	big := make([]byte, 256)
	n, err = tbl.RenderInto(big, style.ASCIIV2)
	require.NoError(t, err)
	assert.Equal(t, "+===+\n|abc|\n+===+\n+===+\n", string(big[:n]))
}

func TestStroke_WritesRenderedTable(t *testing.T) {
	t.Parallel()

	tbl := mustTable(t, 1, 2, "a", "b")
	var sb strings.Builder
	n, err := tbl.Stroke(&sb, style.ASCIIV1)
	require.NoError(t, err)
	want, err := tbl.Render(style.ASCIIV1)
	require.NoError(t, err)
	assert.Equal(t, want, sb.String())
	assert.Equal(t, len(want), n)
}

func TestRender_FillsCells_When_CallbackRegistered(t *testing.T) {
	t.Parallel()

	type tag struct{ name string }
	tg := &tag{name: "t1"}
	tbl, err := table.New(2, 2, table.WithTag(tg))
	require.NoError(t, err)
	require.NoError(t, tbl.SetTitle("calls", table.TitleNoLine))

	calls := 0
	tbl.SetTableCallback(func(row, col int, v any) (string, bool) {
		calls++
		if v.(*tag) != tg {
			return "", false
		}
		return v.(*tag).name + ":" + string(rune('0'+row)) + string(rune('0'+col)), true
	})
	require.NoError(t, tbl.SetCell(1, 1, "fixed"))

	out, err := tbl.Render(style.ASCIIV1)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, out, "t1:00")
	assert.Contains(t, out, "t1:10")
	assert.Contains(t, out, "fixed")

	got, err := tbl.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "t1:01", got)

	_, err = tbl.Render(style.ASCIIV1)
	require.NoError(t, err)
	assert.Equal(t, 6, calls, "callbacks run again on every stroke")
}
