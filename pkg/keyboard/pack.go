package keyboard

import (
	"slices"

	"tgobjects/pkg/collection"
)

// RowWidthTolerance absorbs floating point error when summing widths such as
// 1/3 + 1/3 + 1/3. A button starts a new row only when the row would exceed
// 1 by more than this amount.
const RowWidthTolerance = 1e-13

// Pack groups buttons into rows by their widths and returns the button indexes
// of every row. A row is closed as soon as adding the next width would push
// its total past 1+tolerance; the last non-empty row is always emitted.
func Pack(widths []float64, tolerance float64) [][]int {
	var (
		rows [][]int
		row  []int
		sum  float64
	)
	for i, w := range widths {
		if len(row) > 0 && sum+w > 1+tolerance {
			rows = append(rows, row)
			row = nil
			sum = 0
		}
		row = append(row, i)
		sum += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// sized is the part of Button and ReplyButton the grid works with.
type sized[B any] interface {
	Label() string
	Width() float64
	HasWidth() bool
	WithWidth(float64) B
	ToArray() map[string]any
}

// grid holds the ordered buttons of a keyboard. Every method returns a new
// grid; list operations always allocate, so grids derived from the same
// parent never observe each other's changes.
type grid[B sized[B]] struct {
	list collection.List[B]
	rtl  bool
}

func (g grid[B]) row(buttons []B) (grid[B], error) {
	if len(buttons) == 0 {
		return g, ErrEmptyRow
	}
	w := 1 / float64(len(buttons))
	resized := make([]B, len(buttons))
	for i, b := range buttons {
		resized[i] = b.WithWidth(w)
	}
	g.list = g.list.Append(resized...)
	return g, nil
}

func (g grid[B]) chunk(n int) (grid[B], error) {
	if n <= 0 {
		return g, ErrInvalidChunk
	}
	w := 1 / float64(n)
	g.list = g.list.Map(func(b B) B { return b.WithWidth(w) })
	return g, nil
}

func (g grid[B]) add(buttons []B) grid[B] {
	g.list = g.list.Append(buttons...)
	return g
}

func (g grid[B]) replace(label string, nb B) grid[B] {
	g.list = g.list.Map(func(b B) B {
		if b.Label() != label {
			return b
		}
		if !nb.HasWidth() {
			return nb.WithWidth(b.Width())
		}
		return nb
	})
	return g
}

func (g grid[B]) remove(label string) grid[B] {
	g.list = g.list.Filter(func(b B) bool { return b.Label() != label })
	return g
}

func (g grid[B]) flatten() grid[B] {
	g.list = g.list.Map(func(b B) B { return b.WithWidth(1) })
	return g
}

func (g grid[B]) mapButtons(fn func(B) B) grid[B] {
	g.list = g.list.Map(fn)
	return g
}

// rows packs the buttons and applies right-to-left ordering inside each row.
func (g grid[B]) rows() [][]B {
	buttons := g.list.All()
	widths := make([]float64, len(buttons))
	for i, b := range buttons {
		widths[i] = b.Width()
	}
	packed := Pack(widths, RowWidthTolerance)
	out := make([][]B, len(packed))
	for i, idx := range packed {
		row := make([]B, len(idx))
		for j, k := range idx {
			row[j] = buttons[k]
		}
		if g.rtl {
			slices.Reverse(row)
		}
		out[i] = row
	}
	return out
}

func (g grid[B]) export() [][]map[string]any {
	rows := g.rows()
	out := make([][]map[string]any, len(rows))
	for i, row := range rows {
		cells := make([]map[string]any, len(row))
		for j, b := range row {
			cells[j] = b.ToArray()
		}
		out[i] = cells
	}
	return out
}
