// Package transform maps scroll progress to the visual parameters of a card.
//
// Given a card's progress (see package progress) and its frame's leading edge,
// the mapper produces four values:
//
//   - Scale: 1 - |p|*amount, so cards shrink symmetrically as they leave the
//     snapped position. The signed form 1 - p*amount is available by turning
//     SymmetricScale off.
//   - Rotation: p*maxDegrees, or 0 when rotation is disabled.
//   - Offset: the "pin" offset that keeps a card at the viewport edge instead
//     of letting it scroll away. When Focused is set the offset is dampened by
//     [EdgeGain], giving a tighter snap around the center.
//   - Excess: an extra offset proportional to progress, exaggerated by
//     BackwardMultiplier for cards with negative progress.
//
// All functions are pure: the same inputs always yield the same outputs.
//
// # Configuration
//
// [Config] replaces the toggles of the interactive view (rotation on/off,
// focused variant) with an immutable value passed to [Apply]:
//
//	cfg := transform.DefaultConfig()
//	cfg.RotationEnabled = false
//	t := transform.Apply(0.5, 150, cfg)
//	fmt.Println(t.Scale, t.Rotation)
package transform
