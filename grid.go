package squares

// Grid is a board of objects indexed [row][col]. Every cell must hold an
// object with a shape.
type Grid [][]*GameObject

// NewGrid allocates an empty rows×cols grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]*GameObject, cols)
	}
	return g
}

// Cell identifies one grid position and the object in it.
type Cell struct {
	Row, Col int
	Object   *GameObject
}

// TouchDown presses every object containing (x, y) and returns the last
// one found in row-major order.
func (g Grid) TouchDown(x, y float64) (Cell, bool) {
	var hit Cell
	found := false
	for i, row := range g {
		for j, obj := range row {
			if obj.TouchDown(x, y) {
				hit = Cell{Row: i, Col: j, Object: obj}
				found = true
			}
		}
	}
	return hit, found
}

// TouchUp releases every object, returning the cells whose press completed
// inside their own rectangle.
func (g Grid) TouchUp(x, y float64) []Cell {
	var hits []Cell
	for i, row := range g {
		for j, obj := range row {
			if obj.TouchUp(x, y) {
				hits = append(hits, Cell{Row: i, Col: j, Object: obj})
			}
		}
	}
	return hits
}

// Each calls fn for every cell in row-major order.
func (g Grid) Each(fn func(c Cell)) {
	for i, row := range g {
		for j, obj := range row {
			fn(Cell{Row: i, Col: j, Object: obj})
		}
	}
}

// Swap exchanges the objects in two cells.
func (g Grid) Swap(a, b Cell) {
	g[a.Row][a.Col], g[b.Row][b.Col] = g[b.Row][b.Col], g[a.Row][a.Col]
}

// Neighbor returns the cell one step from c in direction d. Row 0 is the
// bottom row, so Up increases the row index.
func (g Grid) Neighbor(c Cell, d Direction) (Cell, bool) {
	r, col := c.Row, c.Col
	switch d {
	case DirRight:
		col++
	case DirLeft:
		col--
	case DirUp:
		r++
	case DirDown:
		r--
	default:
		return Cell{}, false
	}
	if r < 0 || r >= len(g) || col < 0 || col >= len(g[r]) {
		return Cell{}, false
	}
	return Cell{Row: r, Col: col, Object: g[r][col]}, true
}
