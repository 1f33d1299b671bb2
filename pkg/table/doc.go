// Package table renders a grid of text cells as a bordered table for a
// character terminal.
//
// A Table is populated through setters (text, alignment, padding, column
// spans, widths, callbacks) and then stroked in one of the styles from
// package style. Stroking runs in a fixed order:
//
//  1. a pending title is promoted into a full-width, centred first row
//  2. cell callbacks fill cells that hold no explicit text
//  3. auto column widths are resolved from the current content
//  4. the top rule, each row with the rule under it, and the bottom rule
//     are written into one buffer
//
// Widths are measured in UTF-8 code points. Every line of a rendered table
// holds exactly sum(widths) + columns + 1 code points.
//
// Row and column arguments always address data cells. Once a title has been
// promoted it occupies an internal row of its own that setters cannot reach.
//
// A Table is not safe for concurrent use. It may be stroked any number of
// times, but must not be mutated while a stroke is in progress.
package table
