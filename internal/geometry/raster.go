package geometry

import "math"

// Glyphs used by Rasterize
const (
	GlyphEmpty   = ' '
	GlyphOutline = '·'
	GlyphEdge    = '•'
	GlyphVertex  = '●'
	GlyphCenter  = '+'
)

type cell struct {
	col, row int
}

// Rasterize draws the reference outline, a centre mark and the closed
// stat polygon onto a cols x rows grid. Later layers overwrite earlier ones,
// so the stat polygon is always visible over the outline.
func Rasterize(points []Point, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = GlyphEmpty
		}
	}

	set := func(p cell, glyph rune) {
		if p.row >= 0 && p.row < rows && p.col >= 0 && p.col < cols {
			grid[p.row][p.col] = glyph
		}
	}

	drawPolygon(Outline(), cols, rows, func(p cell) { set(p, GlyphOutline) })
	set(toCell(Point{X: CenterX, Y: CenterY}, cols, rows), GlyphCenter)
	drawPolygon(points, cols, rows, func(p cell) { set(p, GlyphEdge) })
	for _, p := range points {
		set(toCell(p, cols, rows), GlyphVertex)
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = string(row)
	}
	return lines
}

// toCell maps a view box point onto the grid, clamping to its edges
func toCell(p Point, cols, rows int) cell {
	col := int(math.Round(p.X / 100 * float64(cols-1)))
	row := int(math.Round(p.Y / 100 * float64(rows-1)))
	return cell{col: clamp(col, 0, cols-1), row: clamp(row, 0, rows-1)}
}

func drawPolygon(points []Point, cols, rows int, plot func(cell)) {
	if len(points) == 0 {
		return
	}
	for i := range points {
		a := toCell(points[i], cols, rows)
		b := toCell(points[(i+1)%len(points)], cols, rows)
		line(a, b, plot)
	}
}

// line plots the cells between a and b using Bresenham's algorithm
func line(a, b cell, plot func(cell)) {
	dx := abs(b.col - a.col)
	dy := -abs(b.row - a.row)
	sx, sy := 1, 1
	if a.col > b.col {
		sx = -1
	}
	if a.row > b.row {
		sy = -1
	}

	err := dx + dy
	for {
		plot(a)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.col += sx
		}
		if e2 <= dx {
			err += dx
			a.row += sy
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
