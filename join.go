package ribbon

import "math"

// Join thresholds. These values were tuned against visible artifacts
// (faceting, flipped quads, mitre spikes) and must not drift.
const (
	// cornerAngleDegrees is the tangent deviation above which a vertex is
	// treated as a corner rather than a smooth continuation.
	cornerAngleDegrees = 15.0

	// nearReverseDot marks a near-180-degree reversal where the mitre
	// degenerates and the join falls back to a bevel.
	nearReverseDot = -0.99

	// curvedDotThreshold marks adjacent segment tangents as diverging
	// enough that the span is sampled three times finer.
	curvedDotThreshold = 0.9

	// parallelCross is the cross-product magnitude below which two
	// directions are treated as parallel for line intersection.
	parallelCross = 1e-6

	// minMitreLimit is the floor applied to caller-provided mitre limits.
	minMitreLimit = 1.5
)

// cornerDotThreshold is cos(cornerAngleDegrees): a vertex whose tangents
// satisfy dot <= this threshold is a corner.
var cornerDotThreshold = math.Cos(cornerAngleDegrees * math.Pi / 180)

// ResolveJoinOffset computes the lateral offset vector at a vertex given
// the unit tangents into (prevDir) and out of (nextDir) the vertex, a
// signed offset magnitude, the join style and the mitre limit.
//
// Either direction may be nil at an open-path endpoint; with both nil the
// offset is zero. Colinear and near-reversed tangents degrade to a simple
// perpendicular offset along nextDir's normal, as does JoinBevel. The
// general mitre case offsets along the bisector of the two perpendicular
// normals, with the mitre length clamped to
// max(minMitreLimit, mitreLimit) * |offset|.
func ResolveJoinOffset(prevDir, nextDir *Point, offset float64, join JoinStyle, mitreLimit float64) Point {
	if prevDir == nil && nextDir == nil {
		return Point{}
	}
	if prevDir == nil {
		return nextDir.Normal().Mul(offset)
	}
	if nextDir == nil {
		return prevDir.Normal().Mul(offset)
	}

	prev, next := *prevDir, *nextDir
	cross := prev.Cross(next)
	dot := prev.Dot(next)

	// Colinear continuation: no corner to resolve.
	if math.Abs(cross) < parallelCross || dot > 1-1e-9 {
		return next.Normal().Mul(offset)
	}
	// Near-total reversal: the mitre intersection runs away, bevel.
	if dot < nearReverseDot {
		return next.Normal().Mul(offset)
	}
	if join == JoinBevel {
		return next.Normal().Mul(offset)
	}

	prevNormal := prev.Normal()
	nextNormal := next.Normal()
	bisector := prevNormal.Add(nextNormal).Normalize()
	if bisector.LengthSquared() == 0 {
		return nextNormal.Mul(offset)
	}

	projection := bisector.Dot(nextNormal)
	if math.Abs(projection) < parallelCross {
		return nextNormal.Mul(offset)
	}

	mitreLength := offset / projection
	limit := math.Max(minMitreLimit, mitreLimit) * math.Abs(offset)
	if math.Abs(mitreLength) > limit {
		if mitreLength < 0 {
			mitreLength = -limit
		} else {
			mitreLength = limit
		}
	}
	return bisector.Mul(mitreLength)
}

// ResolveCenterOffset computes a lateral shift of the centerline itself,
// used when a texture-Y offset moves the whole strip sideways. It
// intersects the two lines parallel to prevDir and nextDir at the given
// offset distance from the corner.
//
// Near-parallel directions and non-finite intersections fall back to the
// simple normal-scaled shift.
func ResolveCenterOffset(prevDir, nextDir *Point, offset float64) Point {
	if prevDir == nil && nextDir == nil {
		return Point{}
	}
	if prevDir == nil {
		return nextDir.Normal().Mul(offset)
	}
	if nextDir == nil {
		return prevDir.Normal().Mul(offset)
	}

	prev, next := *prevDir, *nextDir
	cross := prev.Cross(next)
	if math.Abs(cross) < parallelCross {
		return next.Normal().Mul(offset)
	}

	// Offset lines: through prevNormal*offset with direction prev, and
	// through nextNormal*offset with direction next. Solve
	// a + t*prev = b + s*next for t.
	a := prev.Normal().Mul(offset)
	b := next.Normal().Mul(offset)
	t := b.Sub(a).Cross(next) / cross
	intersection := a.Add(prev.Mul(t))
	if !intersection.IsFinite() {
		return next.Normal().Mul(offset)
	}
	return intersection
}

// isCornerDot reports whether tangents with the given dot product meet at
// a corner (deviation of 15 degrees or more).
func isCornerDot(dot float64) bool {
	return dot <= cornerDotThreshold
}
