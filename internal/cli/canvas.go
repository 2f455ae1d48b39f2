package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/deck"
)

// cellAspect is the height of a terminal cell in column widths.
const cellAspect = 2.0

// cornerRadius of an unscaled card, in column widths.
const cornerRadius = 2.0

// cell is one character of the card canvas.
type cell struct {
	card  int    // deck index of the topmost card, -1 when empty
	color string // background, "#rrggbb"
	r     rune   // foreground glyph, 0 for a blank
}

// canvas rasterizes a frame into terminal cells. Frame coordinates are in
// column widths; one row is cellAspect units tall.
type canvas struct {
	cols, rows int
	cells      []cell
}

// paintFrame draws the cards of f back to front.
func paintFrame(f carousel.Frame, cols, rows int) *canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	cv := &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range cv.cells {
		cv.cells[i].card = -1
	}
	if cols == 0 || rows == 0 {
		return cv
	}
	for _, c := range f.Cards {
		cv.fillCard(c)
	}
	for _, c := range f.Cards {
		cv.label(c)
	}
	return cv
}

// fillCard paints the cells whose centers fall inside the rotated card.
func (cv *canvas) fillCard(c carousel.CardFrame) {
	r := c.Rect
	if r.W <= 0 || r.H <= 0 {
		return
	}
	theta := c.Transform.Rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)
	hw, hh := r.W/2, r.H/2
	radius := math.Min(cornerRadius*c.Transform.Scale, math.Min(hw, hh))
	cx, cy := r.CenterX(), r.CenterY()

	// Bounding box of the rotated rectangle.
	ex := math.Abs(hw*cos) + math.Abs(hh*sin)
	ey := math.Abs(hw*sin) + math.Abs(hh*cos)
	x0, x1 := cv.clampCol(cx-ex), cv.clampCol(cx+ex)
	y0, y1 := cv.clampRow((cy-ey)/cellAspect), cv.clampRow((cy+ey)/cellAspect)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := (float64(y)+0.5)*cellAspect - cy
			u := dx*cos + dy*sin
			v := -dx*sin + dy*cos
			if !insideRounded(u, v, hw, hh, radius) {
				continue
			}
			cv.cells[y*cv.cols+x] = cell{
				card:  c.Card.Index,
				color: shade(c.Card, (v+hh)/(2*hh)),
			}
		}
	}
}

// label centers the card label on the card if the center is visible.
func (cv *canvas) label(c carousel.CardFrame) {
	row := int(math.Floor(c.Rect.CenterY() / cellAspect))
	text := []rune(c.Card.Label)
	start := int(math.Round(c.Rect.CenterX() - float64(len(text))/2))
	if row < 0 || row >= cv.rows {
		return
	}
	for i, r := range text {
		x := start + i
		if x < 0 || x >= cv.cols {
			continue
		}
		if cl := &cv.cells[row*cv.cols+x]; cl.card == c.Card.Index {
			cl.r = r
		}
	}
}

func (cv *canvas) clampCol(v float64) int {
	return clampInt(int(math.Floor(v)), 0, cv.cols-1)
}

func (cv *canvas) clampRow(v float64) int {
	return clampInt(int(math.Floor(v)), 0, cv.rows-1)
}

// String renders the canvas with one lipgloss style per run of equal cells.
func (cv *canvas) String() string {
	var b strings.Builder
	for y := 0; y < cv.rows; y++ {
		row := cv.cells[y*cv.cols : (y+1)*cv.cols]
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && row[end].color == row[x].color && row[end].card == row[x].card {
				end++
			}
			b.WriteString(renderRun(row[x:end]))
			x = end
		}
		if y < cv.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderRun(run []cell) string {
	text := make([]rune, len(run))
	for i, c := range run {
		text[i] = c.r
		if c.r == 0 {
			text[i] = ' '
		}
	}
	if run[0].card < 0 {
		return string(text)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(run[0].color)).
		Foreground(colorWhite).
		Bold(true).
		Render(string(text))
}

// insideRounded reports whether (u, v) lies in the rectangle of half-extents
// hw, hh centered on the origin with corners rounded by r.
func insideRounded(u, v, hw, hh, r float64) bool {
	au, av := math.Abs(u), math.Abs(v)
	if au > hw || av > hh {
		return false
	}
	cu, cv := au-(hw-r), av-(hh-r)
	if cu > 0 && cv > 0 {
		return cu*cu+cv*cv <= r*r
	}
	return true
}

// shade returns the card colour lightened towards the top edge; t runs from
// 0 at the top to 1 at the bottom.
func shade(c deck.Card, t float64) string {
	r, g, b := c.RGB()
	amount := 0.35 * (1 - math.Max(0, math.Min(1, t)))
	// Quantize so neighbouring cells share a style.
	amount = math.Round(amount*20) / 20
	lighten := func(v uint8) uint8 {
		return v + uint8(math.Round(float64(255-v)*amount))
	}
	return fmt.Sprintf("#%02x%02x%02x", lighten(r), lighten(g), lighten(b))
}

// indicatorBar renders the scroll position as a track with a thumb.
func indicatorBar(fraction float64, cards, cols int) string {
	track := cols / 2
	if cards <= 0 || track <= 0 {
		return ""
	}
	thumb := max(1, track/cards)
	pos := int(math.Round(fraction * float64(track-thumb)))
	pos = clampInt(pos, 0, track-thumb)

	pad := strings.Repeat(" ", (cols-track)/2)
	return pad +
		StyleDim.Render(strings.Repeat("─", pos)) +
		StyleHighlight.Render(strings.Repeat("━", thumb)) +
		StyleDim.Render(strings.Repeat("─", track-thumb-pos))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
