package ribbon

import "math"

const (
	// linearTensionThreshold is the tension at and above which spline
	// evaluation degenerates to plain linear interpolation.
	linearTensionThreshold = 0.999

	// minKnotStep floors centripetal knot spacing and tangent
	// denominators so coincident control points cannot produce
	// singularities.
	minKnotStep = 1e-4

	// Width multiplier clamp range.
	minWidthMultiplier = 0.01
	maxWidthMultiplier = 5.0
)

// ControlPoint is a spline control point with optional asymmetric width
// multipliers. WidthLeft scales the half-width of the span arriving at
// the point, WidthRight the span leaving it; zero means unset and
// defaults to 1.
type ControlPoint struct {
	Point
	WidthLeft  float64
	WidthRight float64
}

// Cp is a convenience function to create a ControlPoint with default
// widths.
func Cp(x, y float64) ControlPoint {
	return ControlPoint{Point: Pt(x, y)}
}

// outgoingWidth resolves the width multiplier for the span leaving the
// point: WidthRight, falling back to WidthLeft, falling back to 1.
func (c ControlPoint) outgoingWidth() float64 {
	return clampWidth(firstSet(c.WidthRight, c.WidthLeft))
}

// incomingWidth resolves the width multiplier for the span arriving at
// the point: WidthLeft, falling back to WidthRight, falling back to 1.
func (c ControlPoint) incomingWidth() float64 {
	return clampWidth(firstSet(c.WidthLeft, c.WidthRight))
}

func firstSet(a, b float64) float64 {
	if a != 0 {
		return a
	}
	if b != 0 {
		return b
	}
	return 1
}

func clampWidth(w float64) float64 {
	return math.Min(maxWidthMultiplier, math.Max(minWidthMultiplier, w))
}

// SampleSpline evaluates a centripetal Catmull-Rom spline through the
// control points and returns samples with tangent, accumulated Euclidean
// arc length and interpolated width multiplier.
//
// tension is clamped to [-1, 1]. At linearTensionThreshold and above the
// spline degenerates to straight segments sampled by sampleLinearSegment,
// with the 15-degree corner rule applied so sharp linear paths still get
// exact join offsets downstream. samplesPerSegment is raised to at least
// 2. Fewer than 2 control points yield no samples.
func SampleSpline(controlPoints []ControlPoint, samplesPerSegment int, tension float64, closed bool) []Sample {
	n := len(controlPoints)
	if n < 2 || (closed && n < 3) {
		return nil
	}
	if samplesPerSegment < 2 {
		samplesPerSegment = 2
	}
	tension = math.Max(-1, math.Min(1, tension))

	if tension >= linearTensionThreshold {
		return sampleLinear(controlPoints, samplesPerSegment, closed)
	}

	segCount := n - 1
	if closed {
		segCount = n
	}

	var samples []Sample
	distance := 0.0
	emit := func(pos, tangent Point, width float64) {
		if len(samples) > 0 {
			distance += samples[len(samples)-1].Pos.Distance(pos)
		}
		samples = append(samples, Sample{
			Pos:             pos,
			Distance:        distance,
			Tangent:         tangent,
			WidthMultiplier: width,
		})
	}

	neighbor := func(i int) ControlPoint {
		if closed {
			return controlPoints[((i%n)+n)%n]
		}
		if i < 0 {
			return controlPoints[0]
		}
		if i >= n {
			return controlPoints[n-1]
		}
		return controlPoints[i]
	}

	for i := 0; i < segCount; i++ {
		p0 := neighbor(i - 1).Point
		p1 := neighbor(i).Point
		p2 := neighbor(i + 1).Point
		p3 := neighbor(i + 2).Point

		// Centripetal knot spacing: chord length to the power 0.5.
		dt01 := math.Max(math.Sqrt(p0.Distance(p1)), minKnotStep)
		dt12 := math.Max(math.Sqrt(p1.Distance(p2)), minKnotStep)
		dt23 := math.Max(math.Sqrt(p2.Distance(p3)), minKnotStep)
		dt02 := math.Max(dt01+dt12, minKnotStep)
		dt13 := math.Max(dt12+dt23, minKnotStep)

		scale := 1 - tension
		m1 := p2.Sub(p0).Mul(scale * dt12 / dt02)
		m2 := p3.Sub(p1).Mul(scale * dt12 / dt13)

		startWidth := neighbor(i).outgoingWidth()
		endWidth := neighbor(i + 1).incomingWidth()

		last := i == segCount-1
		end := samplesPerSegment - 1
		if last {
			end = samplesPerSegment
		}
		for j := 0; j < end; j++ {
			t := float64(j) / float64(samplesPerSegment-1)
			pos := hermitePoint(p1, p2, m1, m2, t)
			tangent := hermiteDeriv(p1, p2, m1, m2, t).Mul(1 / dt12)
			width := startWidth + (endWidth-startWidth)*t
			emit(pos, tangent, clampWidth(width))
		}
	}
	return samples
}

// sampleLinear samples each chord at maximum tension, tagging corners via
// the shared 15-degree rule so downstream join resolution matches the
// perimeter sampler's behavior.
func sampleLinear(controlPoints []ControlPoint, samplesPerSegment int, closed bool) []Sample {
	n := len(controlPoints)
	segCount := n - 1
	if closed {
		segCount = n
	}

	dirs := make([]Point, segCount)
	for i := 0; i < segCount; i++ {
		dirs[i] = controlPoints[(i+1)%n].Sub(controlPoints[i].Point).Normalize()
	}
	prevDirAt := func(v int) *Point {
		if v == 0 && !closed {
			return nil
		}
		d := dirs[((v-1)+segCount)%segCount]
		return &d
	}
	nextDirAt := func(v int) *Point {
		if v >= segCount {
			return nil
		}
		d := dirs[v]
		return &d
	}
	cornerTag := func(v int) *CornerInfo {
		prev, next := prevDirAt(v), nextDirAt(v)
		if prev != nil && next != nil && !isCornerDot(prev.Dot(*next)) {
			return nil
		}
		return &CornerInfo{VertexIndex: v, PrevDir: prev, NextDir: next}
	}

	var samples []Sample
	distance := 0.0
	emit := func(pos, tangent Point, corner *CornerInfo, width float64) {
		if len(samples) > 0 {
			distance += samples[len(samples)-1].Pos.Distance(pos)
		}
		samples = append(samples, Sample{
			Pos:             pos,
			Distance:        distance,
			Tangent:         tangent,
			Corner:          corner,
			WidthMultiplier: width,
		})
	}

	for i := 0; i < segCount; i++ {
		sampleLinearSegment(controlPoints, i, samplesPerSegment, closed, dirs, cornerTag, emit)
	}
	return samples
}

// sampleLinearSegment emits one chord's samples, ending with the wrap or
// endpoint sample on the final segment.
func sampleLinearSegment(
	controlPoints []ControlPoint,
	i, samplesPerSegment int,
	closed bool,
	dirs []Point,
	cornerTag func(int) *CornerInfo,
	emit func(Point, Point, *CornerInfo, float64),
) {
	n := len(controlPoints)
	segCount := len(dirs)
	a := controlPoints[i]
	b := controlPoints[(i+1)%n]
	startWidth := a.outgoingWidth()
	endWidth := b.incomingWidth()

	last := i == segCount-1
	end := samplesPerSegment - 1
	if last {
		end = samplesPerSegment
	}
	for j := 0; j < end; j++ {
		t := float64(j) / float64(samplesPerSegment-1)
		var tag *CornerInfo
		if j == 0 {
			tag = cornerTag(i)
		} else if last && j == samplesPerSegment-1 {
			tag = cornerTag((i + 1) % n)
		}
		width := startWidth + (endWidth-startWidth)*t
		emit(a.Lerp(b.Point, t), dirs[i], tag, clampWidth(width))
	}
}

// hermitePoint evaluates the cubic Hermite basis at t for endpoints p1,p2
// with tangents m1,m2.
func hermitePoint(p1, p2, m1, m2 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return p1.Mul(h00).Add(m1.Mul(h10)).Add(p2.Mul(h01)).Add(m2.Mul(h11))
}

// hermiteDeriv evaluates the derivative of the Hermite basis at t. The
// caller scales by 1/dt to recover the tangent in knot space.
func hermiteDeriv(p1, p2, m1, m2 Point, t float64) Point {
	t2 := t * t
	h00 := 6*t2 - 6*t
	h10 := 3*t2 - 4*t + 1
	h01 := -6*t2 + 6*t
	h11 := 3*t2 - 2*t
	return p1.Mul(h00).Add(m1.Mul(h10)).Add(p2.Mul(h01)).Add(m2.Mul(h11))
}
