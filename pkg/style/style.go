// Package style maps table style identifiers to the border glyphs used to
// draw them.
//
// Styles form a closed enumeration of twenty members in five families:
// simple (only a rule under the header), ascii (7-bit characters), and
// double, single and heavy Unicode box styles. Resolve is a pure lookup:
// the same identifier and interior flag always yield the same Descriptor.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Style identifies one of the built-in border styles.
type Style int

const (
	SimpleV1 Style = iota // single rule under the header
	SimpleV2              // double rule under the header
	SimpleV3              // heavy rule under the header
	SimpleV4              // single rule under the header, single bottom rule
	SimpleV5              // double rule under the header, single bottom rule
	SimpleV6              // heavy rule under the header, single bottom rule

	ASCIIV0 // "=" rule under the header, no bottom rule
	ASCIIV4 // "=" rule under the header, "-" bottom rule
	ASCIIV1 // horizontal rules only, "=" top and bottom
	ASCIIV2 // full box, "=" top and bottom
	ASCIIV3 // horizontal rules only, "-" throughout

	DoubleV1 // double horizontal rules, no vertical border
	DoubleV2 // double box
	DoubleV3 // double horizontal, single vertical box
	DoubleV4 // double box, header rule same as interior rules

	SingleV1 // single horizontal rules, no vertical border
	SingleV2 // single box

	HeavyV1 // heavy horizontal rules, no vertical border
	HeavyV2 // heavy box with heavy header rule
	HeavyV3 // heavy box with light header rule
)

// Count is the number of built-in styles.
const Count = 20

// ErrUnknownStyle is returned when a style name cannot be parsed.
var ErrUnknownStyle = errors.New("unknown table style")

var names = [Count]string{
	SimpleV1: "simple-v1",
	SimpleV2: "simple-v2",
	SimpleV3: "simple-v3",
	SimpleV4: "simple-v4",
	SimpleV5: "simple-v5",
	SimpleV6: "simple-v6",
	ASCIIV0:  "ascii-v0",
	ASCIIV4:  "ascii-v4",
	ASCIIV1:  "ascii-v1",
	ASCIIV2:  "ascii-v2",
	ASCIIV3:  "ascii-v3",
	DoubleV1: "double-v1",
	DoubleV2: "double-v2",
	DoubleV3: "double-v3",
	DoubleV4: "double-v4",
	SingleV1: "single-v1",
	SingleV2: "single-v2",
	HeavyV1:  "heavy-v1",
	HeavyV2:  "heavy-v2",
	HeavyV3:  "heavy-v3",
}

var descriptions = [Count]string{
	SimpleV1: "single rule under the header",
	SimpleV2: "double rule under the header",
	SimpleV3: "heavy rule under the header",
	SimpleV4: "single rule under the header and at the bottom",
	SimpleV5: "double rule under the header, single rule at the bottom",
	SimpleV6: "heavy rule under the header, single rule at the bottom",
	ASCIIV0:  "plain ASCII, double rule under the header",
	ASCIIV4:  "plain ASCII, double rule under the header, single bottom rule",
	ASCIIV1:  "plain ASCII horizontal rules, double top and bottom",
	ASCIIV2:  "plain ASCII box, double top and bottom",
	ASCIIV3:  "plain ASCII horizontal rules, single lines only",
	DoubleV1: "double horizontal rules, no vertical border",
	DoubleV2: "double box",
	DoubleV3: "double horizontal, single vertical box",
	DoubleV4: "double box, no special header rule",
	SingleV1: "single horizontal rules",
	SingleV2: "single box",
	HeavyV1:  "heavy horizontal rules, no vertical border",
	HeavyV2:  "full heavy box",
	HeavyV3:  "heavy box, light header rule",
}

// All returns every built-in style in declaration order.
func All() []Style {
	out := make([]Style, Count)
	for i := range out {
		out[i] = Style(i)
	}
	return out
}

// Valid reports whether s is a member of the enumeration.
func (s Style) Valid() bool {
	return s >= 0 && s < Count
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return names[s]
}

// Description returns a one-line summary of the style.
func (s Style) Description() string {
	if !s.Valid() {
		return ""
	}
	return descriptions[s]
}

// Parse converts a style name such as "single-v2", "SINGLE_V2" or
// "TSTYLE_SINGLE_V2" into a Style.
func Parse(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	n = strings.TrimPrefix(n, "tstyle-")
	for i, candidate := range names {
		if candidate == n {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Family groups styles that share a glyph vocabulary.
type Family int

const (
	FamilySimple Family = iota
	FamilyASCII
	FamilyDouble
	FamilySingle
	FamilyHeavy
)

func (f Family) String() string {
	switch f {
	case FamilySimple:
		return "simple"
	case FamilyASCII:
		return "ascii"
	case FamilyDouble:
		return "double"
	case FamilySingle:
		return "single"
	case FamilyHeavy:
		return "heavy"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Family returns the family s belongs to.
func (s Style) Family() Family {
	switch {
	case s >= SimpleV1 && s <= SimpleV6:
		return FamilySimple
	case s >= ASCIIV0 && s <= ASCIIV3:
		return FamilyASCII
	case s >= DoubleV1 && s <= DoubleV4:
		return FamilyDouble
	case s >= SingleV1 && s <= SingleV2:
		return FamilySingle
	case s >= HeavyV1 && s <= HeavyV3:
		return FamilyHeavy
	}
	panic(fmt.Sprintf("style: no family for %v", s))
}
