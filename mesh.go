package ribbon

import "math"

// MeshOptions configures mesh assembly. The zero value builds a plain
// mitred strip with no feathering and the full texture height.
type MeshOptions struct {
	// Join and MitreLimit control corner offset resolution.
	Join       JoinStyle
	MitreLimit float64

	// Feather tapers the strip width near the path ends.
	Feather *FeatherConfig

	// OpacityFeather ramps per-vertex alpha near the path ends.
	OpacityFeather *OpacityFeatherConfig

	// Band remaps V coordinates into the texture's visible row span.
	Band *VisibleBand

	// LateralOffset shifts the whole centerline sideways (texture-Y
	// offset in world units).
	LateralOffset float64

	// UOffset shifts U coordinates, in repeat units.
	UOffset float64

	// EdgeMargin remaps the fractional part of U into
	// [EdgeMargin, 1-EdgeMargin] to avoid bilinear bleed at repeat seams
	// (path-ribbon mode).
	EdgeMargin float64

	// FlipHorizontal negates the U axis; FlipVertical swaps the V edges.
	FlipHorizontal bool
	FlipVertical   bool
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Min, Max Point
}

// MeshGeometry is the flat buffer description of a built strip:
// interleavable positions and UVs (xy/uv pairs), per-vertex alpha, a
// triangle index list, and the per-sample arc-length distances.
//
// Invariants: len(Positions) == len(UVs) == 2*len(Alphas); every index is
// < len(Positions)/2.
type MeshGeometry struct {
	Positions   []float64
	UVs         []float64
	Alphas      []float64
	Indices     []uint32
	Distances   []float64
	TotalLength float64
}

// IsEmpty reports whether the geometry has no vertices.
func (g MeshGeometry) IsEmpty() bool {
	return len(g.Positions) == 0
}

// VertexCount returns the number of emitted vertices.
func (g MeshGeometry) VertexCount() int {
	return len(g.Positions) / 2
}

// Bounds returns the axis-aligned bounds of the emitted positions, for
// renderer-side placement. The zero Rect is returned for empty geometry.
func (g MeshGeometry) Bounds() Rect {
	if g.IsEmpty() {
		return Rect{}
	}
	r := Rect{
		Min: Pt(g.Positions[0], g.Positions[1]),
		Max: Pt(g.Positions[0], g.Positions[1]),
	}
	for i := 2; i < len(g.Positions); i += 2 {
		x, y := g.Positions[i], g.Positions[i+1]
		r.Min.X = math.Min(r.Min.X, x)
		r.Min.Y = math.Min(r.Min.Y, y)
		r.Max.X = math.Max(r.Max.X, x)
		r.Max.Y = math.Max(r.Max.Y, y)
	}
	return r
}

// BuildMesh assembles strip geometry from ordered samples. baseWidth is
// the full strip width; repeatSpacing is the arc length of one horizontal
// texture repeat (non-positive falls back to 1).
//
// Fewer than 2 samples produce empty geometry. Corner samples resolve
// their lateral offsets through ResolveJoinOffset (and, when a lateral
// shift is configured, ResolveCenterOffset); tangential samples offset
// along the perpendicular of their tangent, falling back to the previous
// sample's normal when the tangent is degenerate.
func BuildMesh(samples []Sample, baseWidth, repeatSpacing float64, opts MeshOptions) MeshGeometry {
	if len(samples) < 2 {
		return MeshGeometry{}
	}
	if repeatSpacing <= 0 {
		repeatSpacing = 1
	}

	totalLength := samples[len(samples)-1].Distance

	vTop, vBottom := 0.0, 1.0
	if opts.FlipVertical {
		vTop, vBottom = 1.0, 0.0
	}
	bandLo, bandSpan := 0.0, 1.0
	if b := opts.Band; b != nil && b.TotalHeight > 0 {
		h := float64(b.TotalHeight)
		bandLo = float64(b.TopRow) / h
		bandSpan = float64(b.BottomRow+1)/h - bandLo
	}

	g := MeshGeometry{
		Positions:   make([]float64, 0, len(samples)*4),
		UVs:         make([]float64, 0, len(samples)*4),
		Alphas:      make([]float64, 0, len(samples)*2),
		Indices:     make([]uint32, 0, (len(samples)-1)*6),
		Distances:   make([]float64, 0, len(samples)),
		TotalLength: totalLength,
	}

	prevNormal := Pt(0, 1)
	var prevCenter Point
	offsetDistance := 0.0

	for i, s := range samples {
		tangent := s.Tangent.Normalize()
		normal := tangent.Normal()
		if normal.LengthSquared() == 0 {
			normal = prevNormal
		}
		prevNormal = normal

		widthMult := s.WidthMultiplier
		if widthMult == 0 {
			widthMult = 1
		}
		widthMult *= featherMultiplier(s.Distance, totalLength, opts.Feather)
		halfWidth := baseWidth / 2 * clampWidth(widthMult)

		var shift Point
		if opts.LateralOffset != 0 {
			if c := s.Corner; c != nil {
				shift = ResolveCenterOffset(c.PrevDir, c.NextDir, opts.LateralOffset)
			} else {
				shift = normal.Mul(opts.LateralOffset)
			}
		}

		var left, right Point
		if c := s.Corner; c != nil && (c.PrevDir != nil || c.NextDir != nil) {
			left = ResolveJoinOffset(c.PrevDir, c.NextDir, halfWidth, opts.Join, opts.MitreLimit)
			right = ResolveJoinOffset(c.PrevDir, c.NextDir, -halfWidth, opts.Join, opts.MitreLimit)
		} else {
			left = normal.Mul(halfWidth)
			right = normal.Mul(-halfWidth)
		}

		// U runs along the shifted centerline, so a lateral offset does
		// not stretch the texture around corners.
		center := s.Pos.Add(shift)
		if i > 0 {
			offsetDistance += center.Distance(prevCenter)
		}
		prevCenter = center

		u := offsetDistance / repeatSpacing
		if opts.FlipHorizontal {
			u = -u
		}
		u += opts.UOffset
		if opts.EdgeMargin > 0 {
			whole := math.Floor(u)
			frac := u - whole
			u = whole + opts.EdgeMargin + frac*(1-2*opts.EdgeMargin)
		}

		alpha := opacityMultiplier(s.Distance, totalLength, opts.OpacityFeather)

		posL := center.Add(left)
		posR := center.Add(right)
		g.Positions = append(g.Positions, posL.X, posL.Y, posR.X, posR.Y)
		g.UVs = append(g.UVs,
			u, bandLo+vTop*bandSpan,
			u, bandLo+vBottom*bandSpan)
		g.Alphas = append(g.Alphas, alpha, alpha)
		g.Distances = append(g.Distances, s.Distance)
	}

	for i := 0; i+1 < len(samples); i++ {
		a := uint32(2 * i)
		b := a + 1
		c := a + 2
		d := a + 3
		g.Indices = append(g.Indices, a, b, c, b, d, c)
	}
	return g
}
