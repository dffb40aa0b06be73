package viz

import "github.com/Storm00212/Solar-system/internal/orbit"

// Braille patterns pack 2x4 dots per terminal cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot-matrix of Width x Height terminal cells, giving a
// (Width*2) x (Height*4) sub-pixel grid.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = 0x2800
		}
	}
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Disc lights a filled circle of sub-pixels, used for body markers.
func (c *Canvas) Disc(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	out := make([]rune, 0, (c.Width+1)*c.Height)
	for y := range c.grid {
		out = append(out, c.grid[y]...)
		if y < c.Height-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Viewport maps AU coordinates onto the canvas sub-pixel grid, centered on
// the origin. The y scale is halved relative to x to compensate for the
// 2:1 cell aspect of most terminals.
type Viewport struct {
	halfW, halfH   int
	scaleX, scaleY float64
}

// NewViewport fits a square region of the given AU radius into the canvas.
func NewViewport(c *Canvas, radiusAU float64) Viewport {
	subW, subH := c.Width*2, c.Height*4
	sx := float64(subW/2-2) / radiusAU
	if fromH := 2 * float64(subH/2-2) / radiusAU; fromH < sx {
		sx = fromH
	}
	return Viewport{halfW: subW / 2, halfH: subH / 2, scaleX: sx, scaleY: sx * 0.5}
}

// Project converts an AU position to sub-pixel coordinates, y growing
// downward.
func (v Viewport) Project(p orbit.Vec2) (int, int) {
	x := v.halfW + int(p.X*v.scaleX)
	y := v.halfH - int(p.Y*v.scaleY)
	return x, y
}
