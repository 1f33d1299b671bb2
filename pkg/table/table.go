package table

import (
	"fmt"
	"strings"
)

// Callback produces the text of a cell at render time. It receives the
// data row and column and the table's tag; returning ok == false leaves
// the cell unchanged.
type Callback func(row, col int, tag any) (text string, ok bool)

// cell is one slot of the grid. A merged cell belongs to the span owned by
// the cell at (parentRow, parentCol); it contributes neither text nor width.
type cell struct {
	text     string
	explicit bool // text came from SetCell rather than a callback
	cb       Callback
	align    Align
	lpad     int
	rpad     int
	cspan    int
	merged   bool

	parentRow, parentCol int
}

func newCell(g, c int) cell {
	return cell{cspan: 1, parentRow: g, parentCol: c}
}

// TitleStyle selects whether a rule is drawn under the title row.
type TitleStyle int

const (
	TitleLine TitleStyle = iota
	TitleNoLine
)

// Table is a rectangular grid of cells plus the settings used to stroke it.
type Table struct {
	cfg *Config
	tag any

	rows, cols int
	height     int    // grid rows, including a promoted title
	grid       []cell // row-major, height*cols

	widths    []int // explicit widths, 0 = auto
	minWidths []int
	resolved  []int

	title      string
	titleStyle TitleStyle
	promoted   bool

	interiorV, interiorH bool
	headerLine           bool
}

// Option configures a Table at construction.
type Option func(*Table)

// WithConfig makes the table use cfg instead of a private default.
func WithConfig(cfg *Config) Option {
	return func(t *Table) {
		if cfg != nil {
			t.cfg = cfg
		}
	}
}

// WithTag attaches a value passed through to cell callbacks.
func WithTag(tag any) Option {
	return func(t *Table) { t.tag = tag }
}

// New creates an empty table with the given number of data rows and columns.
// The header rule under the first row is enabled.
func New(rows, cols int, opts ...Option) (*Table, error) {
	t := &Table{cfg: NewConfig(), headerLine: true}
	for _, opt := range opts {
		opt(t)
	}
	if rows < 1 || cols < 1 {
		t.cfg.logf(LevelError, "cannot create a %d x %d table", rows, cols)
		return nil, fmt.Errorf("%w: %d x %d", ErrInvalidSize, rows, cols)
	}

	t.rows, t.cols, t.height = rows, cols, rows
	// one spare row of capacity for a title promoted later
	t.grid = make([]cell, rows*cols, (rows+1)*cols)
	for g := 0; g < rows; g++ {
		for c := 0; c < cols; c++ {
			t.grid[g*cols+c] = newCell(g, c)
		}
	}
	t.widths = make([]int, cols)
	t.minWidths = make([]int, cols)
	t.resolved = make([]int, cols)
	return t, nil
}

// NewFromData creates a table and fills it from data, given row-major with
// exactly rows*cols entries.
func NewFromData(rows, cols int, data []string, opts ...Option) (*Table, error) {
	t, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err := t.SetAll(data); err != nil {
		return nil, err
	}
	return t, nil
}

// SetAll replaces the text of every cell from row-major data.
func (t *Table) SetAll(data []string) error {
	if len(data) != t.rows*t.cols {
		t.cfg.logf(LevelWarn, "got %d values for a %d x %d table", len(data), t.rows, t.cols)
		return fmt.Errorf("%w: got %d values for %d x %d", ErrDataSize, len(data), t.rows, t.cols)
	}
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols; c++ {
			if err := t.SetCell(r, c, data[r*t.cols+c]); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetRow sets the text of the cells of row, starting at column 0.
func (t *Table) SetRow(row int, values ...string) error {
	if len(values) > t.cols {
		return fmt.Errorf("%w: %d values for %d columns", ErrDataSize, len(values), t.cols)
	}
	for c, v := range values {
		if err := t.SetCell(row, c, v); err != nil {
			return err
		}
	}
	return nil
}

// SetColumnTitles fills the header row, one title per column.
func (t *Table) SetColumnTitles(titles []string) error {
	if len(titles) != t.cols {
		return fmt.Errorf("%w: %d titles for %d columns", ErrDataSize, len(titles), t.cols)
	}
	return t.SetRow(0, titles...)
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Height returns the number of grid rows, which includes the title row
// once the title has been promoted by a stroke.
func (t *Table) Height() int { return t.height }

// Tag returns the value passed to cell callbacks.
func (t *Table) Tag() any { return t.tag }

// SetTag replaces the value passed to cell callbacks.
func (t *Table) SetTag(tag any) { t.tag = tag }

// Config returns the configuration the table renders with.
func (t *Table) Config() *Config { return t.cfg }

// SetCell copies text into the cell, replacing any earlier text.
func (t *Table) SetCell(row, col int, text string) error {
	c, err := t.addressable(row, col, "set text of")
	if err != nil {
		return err
	}
	c.text = strings.Clone(text)
	c.explicit = true
	return nil
}

// Cell returns the text of a cell. A merged cell reports its span owner's text.
func (t *Table) Cell(row, col int) (string, error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return "", err
	}
	return t.owner(c).text, nil
}

// ClearCell removes the text of a cell so a registered callback may fill
// it again on the next stroke.
func (t *Table) ClearCell(row, col int) error {
	c, err := t.addressable(row, col, "clear")
	if err != nil {
		return err
	}
	c.text = ""
	c.explicit = false
	return nil
}

// offset is the grid row of data row 0.
func (t *Table) offset() int {
	if t.promoted {
		return 1
	}
	return 0
}

func (t *Table) at(g, c int) *cell {
	return &t.grid[g*t.cols+c]
}

func (t *Table) owner(c *cell) *cell {
	if c.merged {
		return t.at(c.parentRow, c.parentCol)
	}
	return c
}

// lookup validates a data-cell address and returns the cell.
func (t *Table) lookup(row, col int) (*cell, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		t.cfg.logf(LevelWarn, "table cell specified is out of range [%d, %d]", row, col)
		return nil, fmt.Errorf("%w: [%d, %d]", ErrOutOfRange, row, col)
	}
	return t.at(row+t.offset(), col), nil
}

// addressable is lookup that also rejects merged cells.
func (t *Table) addressable(row, col int, op string) (*cell, error) {
	c, err := t.lookup(row, col)
	if err != nil {
		return nil, err
	}
	if c.merged {
		t.cfg.logf(LevelWarn, "cannot %s merged cell [%d, %d]", op, row, col)
		return nil, fmt.Errorf("%w: [%d, %d]", ErrMerged, row, col)
	}
	return c, nil
}
