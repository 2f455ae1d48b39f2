// Package pkg provides the core libraries for stackedcards.
//
// # Overview
//
// Stackedcards is a horizontally paged carousel in which cards scale, rotate
// and stack on top of each other as they scroll. The pkg directory is
// organized into three areas:
//
//  1. Core math - [progress], [transform] and [zindex]: pure functions from a
//     card's position to its visual state and paint order
//  2. State - [deck] (the cards), [scroll] (drag and paging state) and
//     [carousel] (frames combining all of the above)
//  3. Edges - [config], [pipeline], [render], [observability], [errors] and
//     [buildinfo]
//
// # Architecture
//
// The data flow for one frame:
//
//	scroll offset + deck
//	         ↓
//	    [progress] (card geometry → scroll progress in [-2, 2])
//	         ↓
//	    [transform] (progress → scale, rotation, offset)
//	         ↓
//	    [zindex] (focus + drag direction → paint order)
//	         ↓
//	    [carousel] Frame
//	         ↓
//	    render/sink (SVG, JSON, PNG, PDF) or the terminal view
//
// # Quick Start
//
//	d := deck.Default()
//	st := scroll.NewState(d)
//	vp := carousel.Viewport{Width: 390, Height: 400, Padding: 88}
//
//	f := carousel.Layout(ctx, d, vp, 195, st, carousel.DefaultOptions())
//	svg := sink.RenderSVG(f, sink.WithIndicator())
package pkg
