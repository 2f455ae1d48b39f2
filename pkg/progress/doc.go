// Package progress converts a card's on-screen geometry into a normalized
// scroll progress value.
//
// Progress is a signed scalar describing how far a card's frame has scrolled
// away from the snapped position:
//
//	raw = MaxX/Width - 1
//
// A card whose trailing edge sits exactly on the container's trailing edge has
// progress 0 (it is centered and snapped). Cards further along the deck have
// positive progress; cards that have scrolled past have negative progress.
//
// # Clamping
//
// The result is clamped to a limit (default 2) so that scale and rotation
// cannot run away at the scroll extremes. [ClampSymmetric] bounds both sides
// and is the default; [ClampUpper] only caps the upper side, matching the
// simpler variant of the carousel.
//
// # Fallbacks
//
// The calculator never returns NaN or ±Inf. A container width that is zero,
// negative or not finite is treated as width 1, and NaN frame coordinates
// produce progress 0.
package progress
