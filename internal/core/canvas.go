package core

import (
	"math"
)

// Texture is a drawable image with a fixed size in arena units.
// Implementations are read-only after loading and may be shared freely.
type Texture interface {
	// Width returns the texture width in arena units.
	Width() float64
	// Height returns the texture height in arena units.
	Height() float64
	// Sample returns the glyph at normalized coordinates (u, v) in [0, 1).
	// ok is false for transparent texels.
	Sample(u, v float64) (r rune, fg Color, ok bool)
}

// Surface accepts draw calls in arena coordinates and flips them to the
// display on Present.
type Surface interface {
	Clear(bg Color)
	// DrawTexture draws tex with its top-left corner at (x, y), rotated by
	// rotation radians about its center.
	DrawTexture(tex Texture, x, y, rotation float64)
	// DrawRect tints the area under r, keeping whatever is drawn there.
	DrawRect(r Rect, tint Color)
	// DrawText writes text with the top of the line at y.
	DrawText(text string, x, y float64, fg Color)
	DrawCircleOutline(cx, cy, radius float64, fg Color)
	// LineHeight is the height of one text line in arena units.
	LineHeight() float64
	Present()
}

// MarkerRune is drawn for circle outlines.
const MarkerRune = 'o'

// Canvas is a Surface that maps a fixed-size arena onto a terminal cell grid.
// Drawing goes to a back buffer; Present copies it to the front buffer.
type Canvas struct {
	arenaW, arenaH float64
	back, front    *Screen
}

// NewCanvas creates a canvas for an arena of the given size shown on
// cols x rows cells.
func NewCanvas(arenaW, arenaH float64, cols, rows int) *Canvas {
	return &Canvas{
		arenaW: arenaW,
		arenaH: arenaH,
		back:   NewScreen(cols, rows),
		front:  NewScreen(cols, rows),
	}
}

// Resize changes the cell grid. The arena size stays fixed.
func (c *Canvas) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
}

// Frame returns the last presented buffer.
func (c *Canvas) Frame() *Screen {
	return c.front
}

// CellSize returns the arena units covered by one cell.
func (c *Canvas) CellSize() (w, h float64) {
	cols := math.Max(1, float64(c.back.Width()))
	rows := math.Max(1, float64(c.back.Height()))
	return c.arenaW / cols, c.arenaH / rows
}

// toCell maps an arena point to the cell containing it.
func (c *Canvas) toCell(x, y float64) (int, int) {
	cw, ch := c.CellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// ToArena maps a cell to the arena point at its center.
func (c *Canvas) ToArena(col, row int) Vec2 {
	cw, ch := c.CellSize()
	return Vec2{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

// Clear fills the back buffer with blank cells on the given background.
func (c *Canvas) Clear(bg Color) {
	c.back.Fill(Cell{Rune: ' ', Bg: bg})
}

// DrawTexture samples tex for every cell whose center falls inside the
// rotated texture rectangle (nearest neighbour).
func (c *Canvas) DrawTexture(tex Texture, x, y, rotation float64) {
	w, h := tex.Width(), tex.Height()
	if w <= 0 || h <= 0 {
		return
	}
	center := Vec2{X: x + w/2, Y: y + h/2}
	reach := math.Hypot(w, h) / 2
	col0, row0 := c.toCell(center.X-reach, center.Y-reach)
	col1, row1 := c.toCell(center.X+reach, center.Y+reach)
	sin, cos := math.Sincos(rotation)

	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !c.back.inBounds(col, row) {
				continue
			}
			d := c.ToArena(col, row).Sub(center)
			// Undo the clockwise (y-down) rotation to get texture-local coordinates.
			lx := d.X*cos + d.Y*sin
			ly := -d.X*sin + d.Y*cos
			u := (lx + w/2) / w
			v := (ly + h/2) / h
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			c.plot(col, row, tex, u, v)
			drawn = true
		}
	}

	// Textures smaller than a cell still show up in the cell holding their center.
	if !drawn {
		col, row := c.toCell(center.X, center.Y)
		c.plot(col, row, tex, 0.5, 0.5)
	}
}

func (c *Canvas) plot(col, row int, tex Texture, u, v float64) {
	r, fg, ok := tex.Sample(u, v)
	if !ok {
		return
	}
	cell := c.back.GetCell(col, row)
	cell.Rune = r
	cell.Fg = fg
	c.back.SetCell(col, row, cell)
}

// DrawRect tints every cell whose center lies inside r.
func (c *Canvas) DrawRect(r Rect, tint Color) {
	col0, row0 := c.toCell(r.X, r.Y)
	col1, row1 := c.toCell(r.Right(), r.Bottom())

	tinted := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			p := c.ToArena(col, row)
			if !r.Contains(p.X, p.Y) {
				continue
			}
			c.back.Tint(col, row, tint)
			tinted = true
		}
	}
	if !tinted {
		center := r.Center()
		col, row := c.toCell(center.X, center.Y)
		c.back.Tint(col, row, tint)
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(text string, x, y float64, fg Color) {
	col, row := c.toCell(x, y)
	c.back.DrawText(col, row, text, fg)
}

// DrawCircleOutline plots points along the circle's circumference.
func (c *Canvas) DrawCircleOutline(cx, cy, radius float64, fg Color) {
	cw, ch := c.CellSize()
	step := math.Min(cw, ch) / 2
	n := int(math.Ceil(2 * math.Pi * radius / step))
	if n < 8 {
		n = 8
	}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		col, row := c.toCell(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		cell := c.back.GetCell(col, row)
		cell.Rune = MarkerRune
		cell.Fg = fg
		c.back.SetCell(col, row, cell)
	}
}

// LineHeight returns the height of one cell row in arena units.
func (c *Canvas) LineHeight() float64 {
	_, ch := c.CellSize()
	return ch
}

// Present copies the back buffer to the front buffer.
func (c *Canvas) Present() {
	c.front.CopyFrom(c.back)
}
