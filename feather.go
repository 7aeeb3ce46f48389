package ribbon

import "math"

// FeatherMode selects how the strip width tapers near a path end.
type FeatherMode int

const (
	// FeatherNone leaves the width untouched.
	FeatherNone FeatherMode = iota

	// FeatherShrink ramps the width from (almost) zero up to full over
	// the feather length.
	FeatherShrink

	// FeatherGrow starts the width slightly past full (1.2x) and settles
	// to full over the feather length.
	FeatherGrow
)

// featherGrowPeak is the width overshoot at the very end of a grow
// feather.
const featherGrowPeak = 1.2

// FeatherConfig tapers the strip width over arc length at each end of a
// path. Lengths are in world units; a non-positive length disables that
// end regardless of mode.
type FeatherConfig struct {
	StartMode   FeatherMode
	EndMode     FeatherMode
	StartLength float64
	EndLength   float64
}

// OpacityFeatherConfig applies an independent linear alpha ramp at each
// end of a path, decoupled from width feathering.
type OpacityFeatherConfig struct {
	StartEnabled bool
	EndEnabled   bool
	StartLength  float64
	EndLength    float64
}

// featherMultiplier returns the width multiplier at the given arc-length
// position. The result is clamped to the same [0.01, 5] range as sample
// width multipliers, so a shrink feather bottoms out at the 0.01 floor
// instead of producing degenerate zero-width quads.
func featherMultiplier(distance, totalLength float64, f *FeatherConfig) float64 {
	if f == nil {
		return 1
	}
	m := 1.0
	m *= featherRamp(f.StartMode, distance, f.StartLength)
	m *= featherRamp(f.EndMode, totalLength-distance, f.EndLength)
	return clampWidth(m)
}

// featherRamp evaluates one end's taper given the distance from that end.
func featherRamp(mode FeatherMode, fromEnd, length float64) float64 {
	if mode == FeatherNone || length <= 0 {
		return 1
	}
	t := math.Max(0, math.Min(1, fromEnd/length))
	switch mode {
	case FeatherShrink:
		return t
	case FeatherGrow:
		return featherGrowPeak - (featherGrowPeak-1)*t
	}
	return 1
}

// opacityMultiplier returns the per-vertex alpha at the given arc-length
// position: the product of the two end ramps, clamped to [0, 1].
func opacityMultiplier(distance, totalLength float64, f *OpacityFeatherConfig) float64 {
	if f == nil {
		return 1
	}
	a := 1.0
	if f.StartEnabled && f.StartLength > 0 {
		a *= math.Max(0, math.Min(1, distance/f.StartLength))
	}
	if f.EndEnabled && f.EndLength > 0 {
		a *= math.Max(0, math.Min(1, (totalLength-distance)/f.EndLength))
	}
	return math.Max(0, math.Min(1, a))
}
