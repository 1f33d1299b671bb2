package tabledoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
	"github.com/dkoosis/unitbl/pkg/tabledoc"
)

const lakes = `
title: Lakes
style: single-v2
interior: {vertical: true, horizontal: false}
columns:
  - {align: left}
  - {align: right, min_width: 6}
rows:
  - [Name, Area]
  - [Vänern, "5650"]
  - [Vättern and Mälaren]
spans:
  - {row: 2, col: 0, span: 2}
`

func TestParse_BuildsTable_When_DocumentIsYAML(t *testing.T) {
	t.Parallel()

	doc, err := tabledoc.Parse([]byte(lakes))
	require.NoError(t, err)
	assert.Equal(t, "single-v2", doc.StyleName("ascii-v2"))

	tbl, err := doc.Build(tabledoc.Defaults{HeaderLine: true})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())
	assert.Equal(t, "Lakes", tbl.Title())

	a, err := tbl.Align(1, 1)
	require.NoError(t, err)
	assert.Equal(t, table.AlignRight, a)

	merged, err := tbl.IsMerged(2, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	out, err := tbl.Render(style.SingleV2)
	require.NoError(t, err)
	// a span owner's text widens only its own column
	assert.Contains(t, out, "│Vänern             │  5650│")
	assert.Contains(t, out, "│Vättern and Mälaren       │")
}

func TestParse_AcceptsJSON(t *testing.T) {
	t.Parallel()

	doc, err := tabledoc.Parse([]byte(`{"rows": [["a", "b"], ["c"]], "header_line": false, "padding": {"left": 1, "right": 1}}`))
	require.NoError(t, err)

	rows, cols := doc.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	tbl, err := doc.Build(tabledoc.Defaults{HeaderLine: true})
	require.NoError(t, err)
	assert.False(t, tbl.HeaderLine())

	l, r, err := tbl.Padding(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, l)
	assert.Equal(t, 1, r)

	text, err := tbl.Cell(1, 1)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestParse_ReturnsError_When_DocumentIsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "no rows", input: "title: x\n"},
		{name: "malformed yaml", input: "rows: [[a, b]\n"},
		{name: "rows of wrong type", input: "rows: 3\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tabledoc.Parse([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestBuild_ReportsFieldPath_When_SettingFails(t *testing.T) {
	t.Parallel()

	doc, err := tabledoc.Parse([]byte("rows: [[a, b]]\nspans: [{row: 0, col: 1, span: 2}]\n"))
	require.NoError(t, err)

	_, err = doc.Build(tabledoc.Defaults{})
	require.ErrorIs(t, err, table.ErrSpan)
	assert.Contains(t, err.Error(), "spans[0]")

	doc, err = tabledoc.Parse([]byte("rows: [[a]]\ncolumns: [{align: sideways}]\n"))
	require.NoError(t, err)
	_, err = doc.Build(tabledoc.Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns[0]")
}

func TestBuild_UsesDefaults_When_DocumentIsSilent(t *testing.T) {
	t.Parallel()

	doc, err := tabledoc.Parse([]byte("rows: [[a, b]]\n"))
	require.NoError(t, err)
	assert.Equal(t, "ascii-v2", doc.StyleName("ascii-v2"))

	tbl, err := doc.Build(tabledoc.Defaults{InteriorVertical: true, InteriorHorizontal: true, HeaderLine: false})
	require.NoError(t, err)
	v, h := tbl.Interior()
	assert.True(t, v)
	assert.True(t, h)
	assert.False(t, tbl.HeaderLine())
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	doc, err := tabledoc.ReadCSV(strings.NewReader("name, city\nÅsa, Göteborg\nBo\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "city"}, {"Åsa", "Göteborg"}, {"Bo"}}, doc.Rows)

	_, err = tabledoc.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, tabledoc.ErrNoRows)

	_, err = tabledoc.ReadCSV(strings.NewReader("a,\"b\n"))
	assert.Error(t, err)
}
