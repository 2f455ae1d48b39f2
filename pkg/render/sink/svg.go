package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/deck"
)

const (
	defaultCornerRadius = 20.0
	indicatorHeight     = 12.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	indicator  bool
	labels     bool
	background string
	radius     float64
}

// WithIndicator draws the scroll indicator.
func WithIndicator() SVGOption { return func(r *svgRenderer) { r.indicator = true } }

// WithLabels prints card labels.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithBackground fills the viewport with color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithCornerRadius sets the corner radius of an unscaled card.
func WithCornerRadius(radius float64) SVGOption {
	return func(r *svgRenderer) { r.radius = radius }
}

// RenderSVG renders f as a standalone SVG document.
func RenderSVG(f carousel.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{radius: defaultCornerRadius}
	for _, opt := range opts {
		opt(&r)
	}

	width, height := f.Viewport.Width, f.Viewport.Height
	totalHeight := height
	if r.indicator {
		totalHeight += indicatorHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, totalHeight, width, totalHeight)

	renderDefs(&buf, f)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			width, totalHeight, html.EscapeString(r.background))
	}

	buf.WriteString(`  <g class="cards">` + "\n")
	for _, c := range f.Cards {
		renderCard(&buf, c, r)
	}
	buf.WriteString("  </g>\n")

	if r.indicator {
		renderIndicator(&buf, f, height)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, f carousel.Frame) {
	buf.WriteString("  <defs>\n")
	for _, c := range f.Cards {
		top, bottom := gradientStops(c.Card)
		fmt.Fprintf(buf, `    <linearGradient id="grad-%d" x1="0" y1="0" x2="0" y2="1">`+"\n", c.Card.Index)
		fmt.Fprintf(buf, `      <stop offset="0%%" stop-color="%s"/>`+"\n", top)
		fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s"/>`+"\n", bottom)
		buf.WriteString("    </linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderCard(buf *bytes.Buffer, c carousel.CardFrame, r svgRenderer) {
	rect := c.Rect
	rx := r.radius * c.Transform.Scale
	fmt.Fprintf(buf,
		`    <rect id="card-%d" class="card" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="url(#grad-%d)" transform="rotate(%.3f %.2f %.2f)" data-z="%d" data-progress="%.4f"/>`+"\n",
		c.Card.Index, rect.X, rect.Y, rect.W, rect.H, rx, c.Card.Index,
		c.Transform.Rotation, rect.CenterX(), rect.CenterY(), c.ZIndex, c.Transform.Progress)

	if r.labels {
		fmt.Fprintf(buf,
			`    <text class="card-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" fill="#ffffff" transform="rotate(%.3f %.2f %.2f)">%s</text>`+"\n",
			rect.CenterX(), rect.CenterY(), c.Transform.Rotation, rect.CenterX(), rect.CenterY(),
			html.EscapeString(c.Card.Label))
	}
}

func renderIndicator(buf *bytes.Buffer, f carousel.Frame, top float64) {
	n := len(f.Cards)
	if n == 0 {
		return
	}
	width := f.Viewport.Width
	track := width * 0.5
	thumb := track / float64(n)
	x0 := (width - track) / 2
	x := x0 + f.ScrollFraction()*(track-thumb)
	y := top + indicatorHeight/2 - 2

	fmt.Fprintf(buf, `  <rect class="indicator-track" x="%.2f" y="%.2f" width="%.2f" height="4" rx="2" fill="#000000" fill-opacity="0.1"/>`+"\n",
		x0, y, track)
	fmt.Fprintf(buf, `  <rect class="indicator-thumb" x="%.2f" y="%.2f" width="%.2f" height="4" rx="2" fill="#000000" fill-opacity="0.4"/>`+"\n",
		x, y, thumb)
}

// gradientStops returns a lighter top and the base colour at the bottom.
func gradientStops(c deck.Card) (top, bottom string) {
	r, g, b := c.RGB()
	lighten := func(v uint8) uint8 { return v + uint8((255-int(v))*35/100) }
	return fmt.Sprintf("#%02x%02x%02x", lighten(r), lighten(g), lighten(b)), c.Color
}
