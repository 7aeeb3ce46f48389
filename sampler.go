package ribbon

import "math"

// CornerInfo carries the join context of a corner sample. PrevDir and
// NextDir are the unit tangents into and out of the tagged vertex; either
// may be nil at an open-path endpoint.
type CornerInfo struct {
	VertexIndex int
	PrevDir     *Point
	NextDir     *Point
}

// Sample is a point along a sampled perimeter or spline. Distance is the
// accumulated Euclidean arc length from the first sample. A non-nil Corner
// marks a true polyline vertex whose join offset must be resolved exactly;
// tangential samples use a plain perpendicular offset.
type Sample struct {
	Pos             Point
	Distance        float64
	Tangent         Point
	Corner          *CornerInfo
	WidthMultiplier float64
}

// PerimeterResult is the output of SamplePerimeter.
type PerimeterResult struct {
	Samples       []Sample
	TotalDistance float64
}

// SamplePerimeter walks a normalized polyline and emits evenly spaced
// samples along each segment, tagging true-vertex samples as corners so
// the mesh builder can reuse exact join offsets.
//
// Each segment subdivides into max(2, ceil(len/base)) sample positions.
// base is maxSampleDistance, reduced to a third when the segment's
// adjacent tangents diverge (the span is curved). Interior samples within
// cornerSampleRadius of a corner vertex are dropped. Zero-length segments
// emit a single corner sample.
//
// Closed loops wrap: the final emitted sample duplicates the start vertex
// position and carries the wrap vertex's corner tag. Input shorter than 2
// points (open) or 3 points (closed) yields no samples.
func SamplePerimeter(points []Point, closed bool, maxSampleDistance, cornerSampleRadius float64) PerimeterResult {
	n := len(points)
	if n < 2 || (closed && n < 3) {
		return PerimeterResult{}
	}
	if maxSampleDistance <= 0 {
		maxSampleDistance = 1
	}

	segCount := n - 1
	if closed {
		segCount = n
	}

	// Unit direction of each segment; zero for degenerate segments.
	dirs := make([]Point, segCount)
	for i := 0; i < segCount; i++ {
		dirs[i] = points[(i+1)%n].Sub(points[i]).Normalize()
	}

	prevDirAt := func(v int) *Point {
		if v == 0 {
			if !closed {
				return nil
			}
			d := dirs[segCount-1]
			return &d
		}
		d := dirs[v-1]
		return &d
	}
	nextDirAt := func(v int) *Point {
		if v >= segCount {
			// Final vertex of an open path has no outgoing segment.
			return nil
		}
		d := dirs[v]
		return &d
	}
	cornerAt := func(v int) bool {
		prev, next := prevDirAt(v), nextDirAt(v)
		if prev == nil || next == nil {
			return true
		}
		return isCornerDot(prev.Dot(*next))
	}

	var samples []Sample
	distance := 0.0
	emit := func(pos, tangent Point, corner *CornerInfo) {
		if len(samples) > 0 {
			distance += samples[len(samples)-1].Pos.Distance(pos)
		}
		samples = append(samples, Sample{
			Pos:             pos,
			Distance:        distance,
			Tangent:         tangent,
			Corner:          corner,
			WidthMultiplier: 1,
		})
	}
	cornerInfo := func(v int) *CornerInfo {
		return &CornerInfo{VertexIndex: v, PrevDir: prevDirAt(v), NextDir: nextDirAt(v)}
	}

	for i := 0; i < segCount; i++ {
		a := points[i]
		b := points[(i+1)%n]
		segLen := a.Distance(b)

		startIsCorner := cornerAt(i)
		var startTag *CornerInfo
		if startIsCorner {
			startTag = cornerInfo(i)
		}

		if segLen < 1e-9 {
			// Degenerate segment: a single corner sample stands in for it.
			emit(a, dirs[i], cornerInfo(i))
			continue
		}

		base := maxSampleDistance
		if segmentIsCurved(dirs, i, closed) {
			base /= 3
		}
		count := int(math.Ceil(segLen / base))
		if count < 2 {
			count = 2
		}

		endIsCorner := true
		if i+1 < segCount || closed {
			endIsCorner = cornerAt((i + 1) % n)
		}

		// Emit t in [0,1); the segment end belongs to the next segment.
		for j := 0; j < count-1; j++ {
			t := float64(j) / float64(count-1)
			if j > 0 {
				s := t * segLen
				if (startIsCorner && s < cornerSampleRadius) ||
					(endIsCorner && segLen-s < cornerSampleRadius) {
					continue
				}
			}
			var tag *CornerInfo
			if j == 0 {
				tag = startTag
			}
			emit(a.Lerp(b, t), dirs[i], tag)
		}

		lastSegment := i == segCount-1
		if lastSegment {
			// Open paths end at the final vertex; closed loops duplicate
			// the start vertex so the strip can wrap.
			wrapVertex := (i + 1) % n
			var tag *CornerInfo
			if cornerAt(wrapVertex) {
				tag = cornerInfo(wrapVertex)
			}
			emit(b, dirs[i], tag)
		}
	}

	total := 0.0
	if len(samples) > 0 {
		total = samples[len(samples)-1].Distance
	}
	return PerimeterResult{Samples: samples, TotalDistance: total}
}

// segmentIsCurved reports whether segment i belongs to a curved span:
// its tangent diverges from either neighboring segment's tangent.
func segmentIsCurved(dirs []Point, i int, closed bool) bool {
	segCount := len(dirs)
	check := func(j int) bool {
		if j < 0 || j >= segCount {
			if !closed {
				return false
			}
			j = (j + segCount) % segCount
		}
		dot := dirs[i].Dot(dirs[j])
		return math.Abs(dot) < curvedDotThreshold
	}
	return check(i-1) || check(i+1)
}
