package style

import "fmt"

// Descriptor is the complete glyph set for one style. It holds no table
// state and is safe to copy.
type Descriptor struct {
	// outer top rule
	TopLeft, TopHorizontal, TopDown, TopRight string

	// rule under the header row
	HeaderLeft, HeaderHorizontal, HeaderDown, HeaderUp, HeaderCross, HeaderRight string

	// interior rules (between body rows and under a title)
	MiddleLeft, MiddleHorizontal, MiddleDown, MiddleUp, MiddleCross, MiddleRight string

	// MiddleVertical separates cells, BorderVertical closes rows on both sides.
	MiddleVertical, BorderVertical string

	// outer bottom rule
	BottomLeft, BottomHorizontal, BottomUp, BottomRight string

	HasBottomBorder bool
}

// Resolve returns the descriptor for s. When interiorVertical is false the
// column separator collapses to a space and every junction glyph becomes
// the plain run of its line.
//
// Resolve panics if s is not a member of the enumeration.
func Resolve(s Style, interiorVertical bool) Descriptor {
	if !s.Valid() {
		panic(fmt.Sprintf("style: resolve of unknown style %d", int(s)))
	}
	d := blankDescriptor()
	switch s.Family() {
	case FamilySimple:
		simpleBody(s, &d)
	case FamilyASCII:
		asciiBody(s, &d)
	case FamilyDouble:
		doubleBody(s, &d)
	case FamilySingle:
		singleBody(s, &d)
	case FamilyHeavy:
		heavyBody(s, &d)
	}

	if !interiorVertical {
		d.TopDown = d.TopHorizontal
		d.HeaderDown = d.HeaderHorizontal
		d.HeaderUp = d.HeaderHorizontal
		d.HeaderCross = d.HeaderHorizontal
		d.MiddleVertical = blank
		d.MiddleDown = d.MiddleHorizontal
		d.MiddleUp = d.MiddleHorizontal
		d.MiddleCross = d.MiddleHorizontal
		d.BottomUp = d.BottomHorizontal
	}
	return d
}

func blankDescriptor() Descriptor {
	return Descriptor{
		TopLeft: blank, TopHorizontal: blank, TopDown: blank, TopRight: blank,
		HeaderLeft: blank, HeaderHorizontal: blank, HeaderDown: blank,
		HeaderUp: blank, HeaderCross: blank, HeaderRight: blank,
		MiddleLeft: blank, MiddleHorizontal: blank, MiddleDown: blank,
		MiddleUp: blank, MiddleCross: blank, MiddleRight: blank,
		MiddleVertical: blank, BorderVertical: blank,
		BottomLeft: blank, BottomHorizontal: blank, BottomUp: blank, BottomRight: blank,
		HasBottomBorder: true,
	}
}

func simpleBody(s Style, d *Descriptor) {
	switch s {
	case SimpleV1, SimpleV2, SimpleV3:
		d.HasBottomBorder = false
	}

	switch s {
	case SimpleV1, SimpleV4:
		d.HeaderHorizontal, d.HeaderDown, d.HeaderUp, d.HeaderCross = lightH, lightDH, lightUH, lightCross
	case SimpleV2, SimpleV5:
		d.HeaderHorizontal, d.HeaderDown, d.HeaderUp, d.HeaderCross = doubleH, dhDH, dhUH, dhCross
	default:
		d.HeaderHorizontal, d.HeaderDown, d.HeaderUp, d.HeaderCross = heavyH, hbDH, hbUH, hbCross
	}

	d.MiddleVertical = lightV
	if d.HasBottomBorder {
		d.BottomHorizontal = lightH
		d.BottomUp = lightUH
	}
}

func asciiBody(s Style, d *Descriptor) {
	if s == ASCIIV0 || s == ASCIIV4 {
		d.HeaderHorizontal = "="
		d.HeaderLeft, d.HeaderRight = "=", "="
		d.HeaderDown, d.HeaderUp, d.HeaderCross = "+", "+", "+"
		d.MiddleVertical = "|"
		d.BottomHorizontal = "-"
		d.BottomLeft, d.BottomRight = "-", "-"
		d.BottomUp = "+"
		d.HasBottomBorder = s == ASCIIV4
		return
	}

	boxed := s == ASCIIV2
	corner := func(fallback string) string {
		if boxed {
			return "+"
		}
		return fallback
	}

	rule := "="
	if s == ASCIIV3 {
		rule = "-"
	}
	d.TopHorizontal, d.TopDown = rule, "+"
	d.BottomHorizontal, d.BottomUp = rule, "+"
	d.TopLeft, d.TopRight = corner(rule), corner(rule)
	d.BottomLeft, d.BottomRight = corner(rule), corner(rule)

	d.HeaderHorizontal = rule
	d.HeaderLeft, d.HeaderRight = corner(rule), corner(rule)
	d.HeaderDown, d.HeaderUp, d.HeaderCross = "+", "+", "+"

	d.MiddleHorizontal = "-"
	d.MiddleLeft, d.MiddleRight = corner("-"), corner("-")
	d.MiddleDown, d.MiddleUp, d.MiddleCross = "+", "+", "+"
	d.MiddleVertical = "|"
	if boxed {
		d.BorderVertical = "|"
	}
}

func doubleBody(s Style, d *Descriptor) {
	d.TopHorizontal, d.TopDown = doubleH, dhDH
	d.BottomHorizontal, d.BottomUp = doubleH, dhUH

	switch s {
	case DoubleV2, DoubleV4:
		d.TopLeft, d.TopRight = doubleDR, doubleDL
		d.BottomLeft, d.BottomRight = doubleUR, doubleUL
		d.BorderVertical = doubleV
		d.MiddleLeft, d.MiddleRight = dvVR, dvVL
	case DoubleV3:
		d.TopLeft, d.TopRight = dhDR, dhDL
		d.BottomLeft, d.BottomRight = dhUR, dhUL
		d.BorderVertical = lightV
		d.MiddleLeft, d.MiddleRight = lightVR, lightVL
	default:
		d.TopLeft, d.TopRight = doubleH, doubleH
		d.BottomLeft, d.BottomRight = doubleH, doubleH
		d.MiddleLeft, d.MiddleRight = lightH, lightH
	}

	d.HeaderHorizontal = doubleH
	d.HeaderDown, d.HeaderUp, d.HeaderCross = dhDH, dhUH, dhCross
	switch s {
	case DoubleV2:
		d.HeaderLeft, d.HeaderRight = doubleVR, doubleVL
	case DoubleV3:
		d.HeaderLeft, d.HeaderRight = dhVR, dhVL
	default:
		d.HeaderLeft, d.HeaderRight = doubleH, doubleH
	}

	d.MiddleHorizontal, d.MiddleVertical = lightH, lightV
	d.MiddleDown, d.MiddleUp, d.MiddleCross = lightDH, lightUH, lightCross

	if s == DoubleV4 {
		// only the outer frame is double; the header rule is an ordinary interior rule
		d.HeaderLeft, d.HeaderRight = d.MiddleLeft, d.MiddleRight
		d.HeaderHorizontal = d.MiddleHorizontal
		d.HeaderDown, d.HeaderUp, d.HeaderCross = d.MiddleDown, d.MiddleUp, d.MiddleCross
	}
}

func singleBody(s Style, d *Descriptor) {
	boxed := s == SingleV2

	d.TopHorizontal, d.TopDown = lightH, lightDH
	d.BottomHorizontal, d.BottomUp = lightH, lightUH
	d.TopLeft, d.TopRight = lightH, lightH
	d.BottomLeft, d.BottomRight = lightH, lightH
	d.HeaderLeft, d.HeaderRight = lightH, lightH
	d.MiddleLeft, d.MiddleRight = lightH, lightH
	if boxed {
		d.TopLeft, d.TopRight = lightDR, lightDL
		d.BottomLeft, d.BottomRight = lightUR, lightUL
		d.HeaderLeft, d.HeaderRight = lightVR, lightVL
		d.MiddleLeft, d.MiddleRight = lightVR, lightVL
		d.BorderVertical = lightV
	}

	d.HeaderHorizontal = lightH
	d.HeaderDown, d.HeaderUp, d.HeaderCross = lightDH, lightUH, lightCross

	d.MiddleHorizontal, d.MiddleVertical = lightH, lightV
	d.MiddleDown, d.MiddleUp, d.MiddleCross = lightDH, lightUH, lightCross
}

func heavyBody(s Style, d *Descriptor) {
	d.TopHorizontal, d.TopDown = heavyH, hbDH
	d.BottomHorizontal, d.BottomUp = heavyH, hbUH

	switch s {
	case HeavyV1:
		d.TopLeft, d.TopRight = heavyH, heavyH
		d.BottomLeft, d.BottomRight = heavyH, heavyH
		d.HeaderLeft, d.HeaderRight = heavyH, heavyH
		d.MiddleLeft, d.MiddleRight = lightH, lightH
	case HeavyV2:
		d.TopLeft, d.TopRight = heavyDR, heavyDL
		d.BottomLeft, d.BottomRight = heavyUR, heavyUL
		d.HeaderLeft, d.HeaderRight = heavyVR, heavyVL
		d.MiddleLeft, d.MiddleRight = hbVR, hbVL
		d.BorderVertical = heavyV
	default:
		d.TopLeft, d.TopRight = heavyDR, heavyDL
		d.BottomLeft, d.BottomRight = heavyUR, heavyUL
		d.HeaderLeft, d.HeaderRight = hbVR, hbVL
		d.MiddleLeft, d.MiddleRight = hbVR, hbVL
		d.BorderVertical = heavyV
	}

	if s == HeavyV3 {
		d.HeaderHorizontal = lightH
		d.HeaderDown, d.HeaderUp, d.HeaderCross = lightDH, lightUH, lightCross
	} else {
		d.HeaderHorizontal = heavyH
		d.HeaderDown, d.HeaderUp, d.HeaderCross = hbDH, hbUH, hbCross
	}

	d.MiddleHorizontal, d.MiddleVertical = lightH, lightV
	d.MiddleDown, d.MiddleUp, d.MiddleCross = lightDH, lightUH, lightCross
}
