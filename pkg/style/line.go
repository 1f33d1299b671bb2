package style

// ErrorGlyph is emitted where a line needs a junction its descriptor does
// not define. No built-in style ever produces it.
const ErrorGlyph = "#ERR#"

// Junction describes what meets a horizontal rule at one character column.
// It is a bit set: JunctionBelow marks a vertical continuing into the row
// under the rule, JunctionAbove one coming from the row over it.
type Junction uint8

const (
	JunctionNone  Junction = 0
	JunctionBelow Junction = 1
	JunctionAbove Junction = 2
	JunctionCross          = JunctionBelow | JunctionAbove
)

// LineKind selects one of the four horizontal rules a table is drawn with.
type LineKind int

const (
	LineTop LineKind = iota
	LineHeader
	LineMiddle
	LineBottom
)

// LineGlyphs is the slice of a Descriptor needed to draw one rule.
// Down is the T opening towards the row below, Up the one opening above.
type LineGlyphs struct {
	Left, Run, Down, Up, Cross, Right string
}

// Line returns the glyphs for the given rule. Junctions that cannot occur
// on a rule (a vertical above the top border, say) are left empty.
func (d Descriptor) Line(k LineKind) LineGlyphs {
	switch k {
	case LineTop:
		return LineGlyphs{Left: d.TopLeft, Run: d.TopHorizontal, Down: d.TopDown, Right: d.TopRight}
	case LineHeader:
		return LineGlyphs{
			Left: d.HeaderLeft, Run: d.HeaderHorizontal, Down: d.HeaderDown,
			Up: d.HeaderUp, Cross: d.HeaderCross, Right: d.HeaderRight,
		}
	case LineMiddle:
		return LineGlyphs{
			Left: d.MiddleLeft, Run: d.MiddleHorizontal, Down: d.MiddleDown,
			Up: d.MiddleUp, Cross: d.MiddleCross, Right: d.MiddleRight,
		}
	default:
		return LineGlyphs{Left: d.BottomLeft, Run: d.BottomHorizontal, Up: d.BottomUp, Right: d.BottomRight}
	}
}

// Glyph returns the glyph for junction j, or ErrorGlyph if the line has none.
func (g LineGlyphs) Glyph(j Junction) string {
	var s string
	switch j {
	case JunctionNone:
		s = g.Run
	case JunctionBelow:
		s = g.Down
	case JunctionAbove:
		s = g.Up
	case JunctionCross:
		s = g.Cross
	}
	if s == "" {
		return ErrorGlyph
	}
	return s
}
