package view

import (
	"math"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/arcanaland/cardfan/internal/hand"
	"github.com/arcanaland/cardfan/internal/preload"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	DefaultPixelsPerColumn = 10.0
	cellAspect             = 2.0
)

// LoadingText replaces the fan until every image has resolved.
const LoadingText = "Loading..."

var hotColor = color.New(color.FgHiYellow, color.Bold)

// Fan draws a hand onto a character canvas.
type Fan struct {
	// PixelsPerColumn scales layout pixels to terminal columns.
	PixelsPerColumn float64
	// Label returns the text printed on a card face.
	Label func(p hand.Placement) string
}

// NewFan returns a fan sized to fit maxColumns, never denser than the
// default scale.
func NewFan(maxColumns int) *Fan {
	ppc := DefaultPixelsPerColumn
	need := float64(hand.MaxCards)*hand.CardSpacing + hand.CardWidth
	if maxColumns > 0 && need/ppc > float64(maxColumns) {
		ppc = need / float64(maxColumns)
	}
	return &Fan{PixelsPerColumn: ppc, Label: defaultLabel}
}

func defaultLabel(p hand.Placement) string {
	return p.Card.String()
}

func (f *Fan) pixelsPerRow() float64 {
	return f.PixelsPerColumn * cellAspect
}

func (f *Fan) cols(px float64) int {
	return int(math.Round(px / f.PixelsPerColumn))
}

func (f *Fan) rows(px float64) int {
	return int(math.Round(px / f.pixelsPerRow()))
}

// Render draws the placements. While state is Loading only LoadingText
// is returned. The canvas always reserves room for a popped-out card,
// so hovering never changes its height.
func (f *Fan) Render(placements []hand.Placement, state preload.State) string {
	if state == preload.Loading {
		return LoadingText + "\n"
	}
	if len(placements) == 0 {
		return ""
	}

	cardCols := max(f.cols(hand.CardWidth), 4)
	cardRows := max(f.rows(hand.CardHeight), 3)
	liftRows := f.rows(hand.HoverLift)
	reserved := int(math.Ceil((hand.HoveredHeight + hand.ShadowPadding) / f.pixelsPerRow()))

	maxDrop, maxShear, minX, maxX := 0, 0, math.Inf(1), math.Inf(-1)
	for _, p := range placements {
		maxDrop = max(maxDrop, arcDrop(p.Rotation))
		maxShear = max(maxShear, absInt(shear(p.Rotation, cardRows-1)))
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	height := max(reserved, liftRows+cardRows) + maxDrop
	left := f.cols(minX-hand.CardWidth/2) - maxShear
	width := f.cols(maxX+hand.CardWidth/2) + maxShear - left + 1
	c := newCanvas(width, height)

	ordered := make([]hand.Placement, len(placements))
	copy(ordered, placements)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	for _, p := range ordered {
		x := f.cols(p.X-hand.CardWidth/2) - left
		y := liftRows + arcDrop(p.Rotation) + f.rows(p.Y)
		c.box(x, y, cardCols, cardRows, p.Rotation, f.Label(p), p.Hovered)
	}

	return c.String()
}

// arcDrop lowers tilted cards so the fan follows an arc.
func arcDrop(rotation float64) int {
	return int(math.Round(math.Abs(rotation) / 5))
}

// shear is the column offset of a row r rows above a card's base, which
// stands in for rotation about the bottom edge.
func shear(rotation float64, r int) int {
	return int(math.Round(math.Tan(rotation*math.Pi/180) * float64(r) * cellAspect))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type cell struct {
	r   rune
	hot bool
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, hot bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, hot: hot}
}

// box paints an opaque card outline with its top at row y.
func (c *canvas) box(x, y, w, h int, rotation float64, label string, hot bool) {
	tl, tr, bl, br, hz, vt := '┌', '┐', '└', '┘', '─', '│'
	if hot {
		tl, tr, bl, br, hz, vt = '╔', '╗', '╚', '╝', '═', '║'
	}

	for row := 0; row < h; row++ {
		off := shear(rotation, h-1-row)
		for col := 0; col < w; col++ {
			r := ' '
			switch {
			case row == 0 && col == 0:
				r = tl
			case row == 0 && col == w-1:
				r = tr
			case row == h-1 && col == 0:
				r = bl
			case row == h-1 && col == w-1:
				r = br
			case row == 0 || row == h-1:
				r = hz
			case col == 0 || col == w-1:
				r = vt
			}
			c.set(x+col+off, y+row, r, hot)
		}
	}

	off := shear(rotation, h-2)
	for i, r := range []rune(label) {
		if i >= w-2 {
			break
		}
		c.set(x+1+i+off, y+1, r, hot)
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		line := strings.TrimRight(renderRow(row), " ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	hot := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if hot {
			b.WriteString(hotColor.Sprint(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for _, cl := range row {
		if cl.hot != hot {
			flush()
			hot = cl.hot
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}
