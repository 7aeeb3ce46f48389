package ribbon

// JoinStyle selects the corner treatment where two segments meet.
type JoinStyle int

const (
	// JoinMitre extends the two offset edges toward their intersection,
	// clamped by the mitre limit. This is the default.
	JoinMitre JoinStyle = iota

	// JoinBevel skips the mitre extension and offsets along the outgoing
	// edge's normal only.
	JoinBevel
)

// Style defines how a polyline or spline is expanded into strip geometry.
// It encapsulates all width and texture-mapping properties in a single
// struct, mirroring the unified stroke-configuration pattern.
type Style struct {
	// Width is the full strip width in world units. Default: 10.0
	Width float64

	// Join is the corner treatment at sharp vertices. Default: JoinMitre
	Join JoinStyle

	// MitreLimit caps mitre spike length as a multiple of the half-width.
	// Values below 1.5 are raised to 1.5. Default: 4.0 (SVG convention)
	MitreLimit float64

	// TextureRepeatDistance is the arc length covered by one horizontal
	// texture repeat. Must be positive; non-positive values fall back to
	// 1. Default: 64.0
	TextureRepeatDistance float64

	// TextureOffset shifts texture coordinates. X is in U units (one unit
	// = one repeat), Y is a lateral world-space shift of the centerline.
	TextureOffset Point

	// FlipHorizontal mirrors the texture along the path direction.
	FlipHorizontal bool

	// FlipVertical mirrors the texture across the path.
	FlipVertical bool

	// MaxSegmentLength is the coarsest sample spacing along straight
	// segments. Curved spans subdivide three times finer. Default: 32.0
	MaxSegmentLength float64

	// CornerSampleRadius drops interior subdivision samples closer than
	// this to a mitred corner, so the corner offset never fights a
	// near-coincident perpendicular offset. Default: 2.0
	CornerSampleRadius float64
}

// DefaultStyle returns a Style with default settings.
func DefaultStyle() Style {
	return Style{
		Width:                 10.0,
		Join:                  JoinMitre,
		MitreLimit:            4.0,
		TextureRepeatDistance: 64.0,
		MaxSegmentLength:      32.0,
		CornerSampleRadius:    2.0,
	}
}

// WithWidth returns a copy of the Style with the given strip width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithJoin returns a copy of the Style with the given join style.
func (s Style) WithJoin(join JoinStyle) Style {
	s.Join = join
	return s
}

// WithMitreLimit returns a copy of the Style with the given mitre limit.
// The mitre limit controls when mitre joins are clamped; values below 1.5
// are treated as 1.5.
func (s Style) WithMitreLimit(limit float64) Style {
	s.MitreLimit = limit
	return s
}

// WithTextureRepeatDistance returns a copy of the Style with the given
// horizontal repeat distance.
func (s Style) WithTextureRepeatDistance(d float64) Style {
	s.TextureRepeatDistance = d
	return s
}

// WithTextureOffset returns a copy of the Style with the given texture
// offset.
func (s Style) WithTextureOffset(x, y float64) Style {
	s.TextureOffset = Pt(x, y)
	return s
}

// WithFlip returns a copy of the Style with the given texture mirroring.
func (s Style) WithFlip(horizontal, vertical bool) Style {
	s.FlipHorizontal = horizontal
	s.FlipVertical = vertical
	return s
}

// WithMaxSegmentLength returns a copy of the Style with the given coarse
// sample spacing.
func (s Style) WithMaxSegmentLength(l float64) Style {
	s.MaxSegmentLength = l
	return s
}

// WithCornerSampleRadius returns a copy of the Style with the given
// corner exclusion radius.
func (s Style) WithCornerSampleRadius(r float64) Style {
	s.CornerSampleRadius = r
	return s
}
