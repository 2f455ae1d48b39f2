package sink

import (
	"encoding/json"

	"github.com/matzehuels/stackedcards/pkg/carousel"
)

type jsonOutput struct {
	Width          float64    `json:"width"`
	Height         float64    `json:"height"`
	ScrollX        float64    `json:"scroll_x"`
	ScrollFraction float64    `json:"scroll_fraction"`
	Current        int        `json:"current"`
	Direction      string     `json:"direction"`
	Cards          []jsonCard `json:"cards"`
}

type jsonCard struct {
	ID       string   `json:"id"`
	Index    int      `json:"index"`
	Color    string   `json:"color"`
	Label    string   `json:"label"`
	MinX     float64  `json:"min_x"`
	MaxX     float64  `json:"max_x"`
	Progress float64  `json:"progress"`
	Scale    float64  `json:"scale"`
	Rotation float64  `json:"rotation"`
	Offset   float64  `json:"offset"`
	Excess   float64  `json:"excess"`
	ZIndex   int      `json:"z_index"`
	Focused  bool     `json:"focused,omitempty"`
	Rect     jsonRect `json:"rect"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the frame as a pretty-printed JSON document.
func RenderJSON(f carousel.Frame) ([]byte, error) {
	out := jsonOutput{
		Width:          f.Viewport.Width,
		Height:         f.Viewport.Height,
		ScrollX:        f.ScrollX,
		ScrollFraction: f.ScrollFraction(),
		Current:        f.Current,
		Direction:      f.Direction.String(),
		Cards:          make([]jsonCard, 0, len(f.Cards)),
	}
	for _, c := range f.Cards {
		out.Cards = append(out.Cards, jsonCard{
			ID:       c.Card.ID.String(),
			Index:    c.Card.Index,
			Color:    c.Card.Color,
			Label:    c.Card.Label,
			MinX:     c.Geometry.MinX,
			MaxX:     c.Geometry.MaxX,
			Progress: c.Transform.Progress,
			Scale:    c.Transform.Scale,
			Rotation: c.Transform.Rotation,
			Offset:   c.Transform.Offset,
			Excess:   c.Transform.Excess,
			ZIndex:   c.ZIndex,
			Focused:  c.Focused,
			Rect: jsonRect{
				X:      c.Rect.X,
				Y:      c.Rect.Y,
				Width:  c.Rect.W,
				Height: c.Rect.H,
			},
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
