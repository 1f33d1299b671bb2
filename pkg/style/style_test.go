package style

import (
	"encoding/json"
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ReturnsTwentyDistinctStyles(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	seen := map[string]bool{}
	for _, s := range all {
		assert.True(t, s.Valid())
		assert.False(t, seen[s.String()], "duplicate name %s", s)
		seen[s.String()] = true
		assert.NotEmpty(t, s.Description())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{in: "single-v2", want: SingleV2},
		{in: "SINGLE_V2", want: SingleV2},
		{in: "TSTYLE_DOUBLE_V4", want: DoubleV4},
		{in: "  ascii-v0 ", want: ASCIIV0},
		{in: "heavy_v3", want: HeavyV3},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("triple-v1")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestParse_RoundTripsEveryName(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestStyle_TextMarshalingInJSON(t *testing.T) {
	var doc struct {
		Style Style `json:"style"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"style":"double-v3"}`), &doc))
	assert.Equal(t, DoubleV3, doc.Style)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"style":"double-v3"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"style":"nope"}`), &doc))
}

func TestFamily(t *testing.T) {
	assert.Equal(t, FamilySimple, SimpleV6.Family())
	assert.Equal(t, FamilyASCII, ASCIIV0.Family())
	assert.Equal(t, FamilyASCII, ASCIIV3.Family())
	assert.Equal(t, FamilyDouble, DoubleV4.Family())
	assert.Equal(t, FamilySingle, SingleV1.Family())
	assert.Equal(t, FamilyHeavy, HeavyV2.Family())
	assert.Equal(t, "heavy", FamilyHeavy.String())
}

func TestResolve_PanicsOnUnknownStyle(t *testing.T) {
	assert.Panics(t, func() { Resolve(Style(Count), true) })
	assert.Panics(t, func() { Resolve(Style(-1), false) })
}

func TestResolve_IsDeterministic(t *testing.T) {
	for _, s := range All() {
		for _, v := range []bool{true, false} {
			assert.Equal(t, Resolve(s, v), Resolve(s, v), "%s interior=%t", s, v)
		}
	}
}

// Every glyph slot must hold exactly one code point so rendered lines
// keep the width the layout computed.
func TestResolve_EverySlotIsOneCodePoint(t *testing.T) {
	for _, s := range All() {
		for _, v := range []bool{true, false} {
			d := Resolve(s, v)
			rv := reflect.ValueOf(d)
			for i := 0; i < rv.NumField(); i++ {
				f := rv.Field(i)
				if f.Kind() != reflect.String {
					continue
				}
				name := rv.Type().Field(i).Name
				assert.Equal(t, 1, utf8.RuneCountInString(f.String()),
					"%s interior=%t slot %s = %q", s, v, name, f.String())
			}
		}
	}
}

func TestResolve_NoInteriorVerticalCollapsesJunctions(t *testing.T) {
	for _, s := range All() {
		d := Resolve(s, false)
		assert.Equal(t, " ", d.MiddleVertical, s.String())
		assert.Equal(t, d.TopHorizontal, d.TopDown, s.String())
		assert.Equal(t, d.BottomHorizontal, d.BottomUp, s.String())
		for _, j := range []Junction{JunctionBelow, JunctionAbove, JunctionCross} {
			assert.Equal(t, d.HeaderHorizontal, d.Line(LineHeader).Glyph(j), s.String())
			assert.Equal(t, d.MiddleHorizontal, d.Line(LineMiddle).Glyph(j), s.String())
		}
	}
}

func TestResolve_BottomBorderPresence(t *testing.T) {
	without := map[Style]bool{SimpleV1: true, SimpleV2: true, SimpleV3: true, ASCIIV0: true}
	for _, s := range All() {
		assert.Equal(t, !without[s], Resolve(s, true).HasBottomBorder, s.String())
	}
}

func TestResolve_SelectedGlyphs(t *testing.T) {
	single := Resolve(SingleV2, true)
	assert.Equal(t, "┌", single.TopLeft)
	assert.Equal(t, "┬", single.TopDown)
	assert.Equal(t, "┼", single.HeaderCross)
	assert.Equal(t, "┘", single.BottomRight)
	assert.Equal(t, "│", single.BorderVertical)

	double := Resolve(DoubleV2, true)
	assert.Equal(t, "╔", double.TopLeft)
	assert.Equal(t, "╠", double.HeaderLeft)
	assert.Equal(t, "╪", double.HeaderCross)
	assert.Equal(t, "╟", double.MiddleLeft)
	assert.Equal(t, "║", double.BorderVertical)

	double4 := Resolve(DoubleV4, true)
	assert.Equal(t, double4.MiddleLeft, double4.HeaderLeft)
	assert.Equal(t, double4.MiddleCross, double4.HeaderCross)

	heavy := Resolve(HeavyV3, true)
	assert.Equal(t, "┠", heavy.HeaderLeft)
	assert.Equal(t, "─", heavy.HeaderHorizontal)

	ascii := Resolve(ASCIIV2, true)
	assert.Equal(t, "+", ascii.TopLeft)
	assert.Equal(t, "|", ascii.BorderVertical)
	assert.Equal(t, "=", ascii.TopHorizontal)

	simple := Resolve(SimpleV2, true)
	assert.Equal(t, "═", simple.HeaderHorizontal)
	assert.Equal(t, "╪", simple.HeaderCross)
	assert.Equal(t, " ", simple.TopHorizontal)
}

func TestLineGlyphs_MissingJunctionUsesErrorGlyph(t *testing.T) {
	top := Resolve(SingleV2, true).Line(LineTop)
	assert.Equal(t, "┬", top.Glyph(JunctionBelow))
	assert.Equal(t, ErrorGlyph, top.Glyph(JunctionAbove))

	bottom := Resolve(SingleV2, true).Line(LineBottom)
	assert.Equal(t, "┴", bottom.Glyph(JunctionAbove))
	assert.Equal(t, ErrorGlyph, bottom.Glyph(JunctionCross))
}

func TestLineGlyphs_HeaderAndMiddleAreComplete(t *testing.T) {
	for _, s := range All() {
		d := Resolve(s, true)
		for _, k := range []LineKind{LineHeader, LineMiddle} {
			g := d.Line(k)
			for _, j := range []Junction{JunctionNone, JunctionBelow, JunctionAbove, JunctionCross} {
				assert.NotEqual(t, ErrorGlyph, g.Glyph(j), "%s line %d junction %d", s, k, j)
			}
		}
	}
}
