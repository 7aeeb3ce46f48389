package ribbon

// coincidentEpsilon is the distance below which two adjacent polyline
// points are considered the same point and deduplicated.
const coincidentEpsilon = 1e-3

// LoopRef identifies where a loop came from: the shape it belongs to and,
// for holes, which hole. HoleIndex is -1 for the outer boundary.
type LoopRef struct {
	ShapeIndex int
	HoleIndex  int
}

// Loop is an ordered sequence of points, optionally closed. Ref associates
// the loop with its originating shape so gap intervals can be matched to
// it.
//
// After Normalize, no two adjacent points (including the wrap pair of a
// closed loop) are within coincidentEpsilon of each other.
type Loop struct {
	Points []Point
	Closed bool
	Ref    *LoopRef
}

// NormalizePoints removes every point within coincidentEpsilon of its
// immediate predecessor. If closed and the first and last surviving points
// coincide, the duplicate closing point is dropped.
//
// Too-short input is passed through shortened; downstream stages treat it
// as non-renderable.
func NormalizePoints(points []Point, closed bool) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if p.Distance(out[len(out)-1]) < coincidentEpsilon {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Distance(out[len(out)-1]) < coincidentEpsilon {
		out = out[:len(out)-1]
	}
	return out
}

// Normalize returns a copy of the loop with near-coincident points removed.
func (l Loop) Normalize() Loop {
	return Loop{
		Points: NormalizePoints(l.Points, l.Closed),
		Closed: l.Closed,
		Ref:    l.Ref,
	}
}

// Renderable reports whether the loop has enough points to produce
// geometry: at least 2 for open loops, 3 for closed ones.
func (l Loop) Renderable() bool {
	if l.Closed {
		return len(l.Points) >= 3
	}
	return len(l.Points) >= 2
}

// segmentCount returns the number of segments the loop walks: n-1 for an
// open loop, n for a closed one (including the wrap segment).
func (l Loop) segmentCount() int {
	if len(l.Points) < 2 {
		return 0
	}
	if l.Closed {
		return len(l.Points)
	}
	return len(l.Points) - 1
}

// LoopMetrics holds per-vertex cumulative arc length for a loop.
// Cumulative[i] is the distance from the loop start to vertex i; Total
// includes the wrap segment of closed loops.
type LoopMetrics struct {
	Cumulative []float64
	Total      float64
}

// ComputeLoopMetrics walks the loop once and accumulates Euclidean
// segment lengths.
func ComputeLoopMetrics(l Loop) LoopMetrics {
	n := len(l.Points)
	m := LoopMetrics{Cumulative: make([]float64, n)}
	if n < 2 {
		return m
	}
	d := 0.0
	for i := 1; i < n; i++ {
		d += l.Points[i-1].Distance(l.Points[i])
		m.Cumulative[i] = d
	}
	m.Total = d
	if l.Closed {
		m.Total += l.Points[n-1].Distance(l.Points[0])
	}
	return m
}

// segmentStart returns the arc length at which segment i begins.
func (m LoopMetrics) segmentStart(i int) float64 {
	return m.Cumulative[i]
}

// segmentEnd returns the arc length at which segment i ends. For a closed
// loop's wrap segment that is the total length.
func (m LoopMetrics) segmentEnd(i int) float64 {
	if i+1 < len(m.Cumulative) {
		return m.Cumulative[i+1]
	}
	return m.Total
}

// PointAt returns the point at arc length d along the loop, interpolating
// linearly within the containing segment. d is clamped to [0, Total].
func (l Loop) PointAt(m LoopMetrics, d float64) Point {
	n := len(l.Points)
	if n == 0 {
		return Point{}
	}
	if n == 1 || d <= 0 {
		return l.Points[0]
	}
	if d >= m.Total {
		if l.Closed {
			return l.Points[0]
		}
		return l.Points[n-1]
	}
	segs := l.segmentCount()
	for i := 0; i < segs; i++ {
		start, end := m.segmentStart(i), m.segmentEnd(i)
		if d > end {
			continue
		}
		segLen := end - start
		if segLen <= 0 {
			return l.Points[i]
		}
		a := l.Points[i]
		b := l.Points[(i+1)%n]
		return a.Lerp(b, (d-start)/segLen)
	}
	return l.Points[n-1]
}
