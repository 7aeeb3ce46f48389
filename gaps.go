package ribbon

import (
	"math"
	"sort"
)

const (
	// minGapHalfLength is the smallest half-length a gap may carve;
	// shorter requests are widened to it so openings stay usable.
	minGapHalfLength = 8.0

	// gapMergeTolerance is the arc-length slack within which intervals
	// merge and residual slivers are dropped.
	gapMergeTolerance = 0.5
)

// GapInterval is an arc-length span to remove from the loop identified by
// Key, centered at CenterDistance with the given half-length. Used to
// carve door and window openings out of wall loops.
type GapInterval struct {
	Key            LoopRef
	CenterDistance float64
	HalfLength     float64
}

// arcInterval is a closed arc-length range [Start, End] on a single loop.
type arcInterval struct {
	Start, End float64
}

func (iv arcInterval) length() float64 { return iv.End - iv.Start }

// ApplyGaps removes the gapped arc-length spans from each loop and
// returns the remaining open sub-loops. Loops with no matching gap pass
// through unchanged. A closed loop whose merged gaps cover its whole
// length vanishes. Sub-loops shorter than 2 points are dropped.
func ApplyGaps(loops []Loop, gaps []GapInterval) []Loop {
	if len(gaps) == 0 {
		return loops
	}
	var out []Loop
	for _, loop := range loops {
		matched := matchGaps(loop, gaps)
		if len(matched) == 0 {
			out = append(out, loop)
			continue
		}
		out = append(out, splitLoop(loop, matched)...)
	}
	return out
}

// matchGaps returns the gaps whose key matches the loop's Ref.
func matchGaps(loop Loop, gaps []GapInterval) []GapInterval {
	if loop.Ref == nil {
		return nil
	}
	var matched []GapInterval
	for _, g := range gaps {
		if g.Key == *loop.Ref {
			matched = append(matched, g)
		}
	}
	return matched
}

// splitLoop carves the matched gap spans out of one loop.
func splitLoop(loop Loop, gaps []GapInterval) []Loop {
	metrics := ComputeLoopMetrics(loop)
	total := metrics.Total
	if total <= 0 || !loop.Renderable() {
		return nil
	}

	intervals := gapIntervals(gaps, total, loop.Closed)
	if len(intervals) == 0 {
		return []Loop{loop}
	}
	merged := mergeIntervals(intervals)

	if loop.Closed {
		covered := 0.0
		for _, iv := range merged {
			covered += iv.length()
		}
		if covered >= total-gapMergeTolerance {
			// The openings consume the entire loop.
			return nil
		}
	}

	keeps := keepIntervals(merged, total, loop.Closed)
	var out []Loop
	for _, keep := range keeps {
		sub := extractSubLoop(loop, metrics, keep)
		if len(sub.Points) >= 2 {
			out = append(out, sub)
		}
	}
	if dropped := len(keeps) - len(out); dropped > 0 {
		Logger().Debug("dropped degenerate wall sections",
			"count", dropped, "loopTotal", total)
	}
	return out
}

// gapIntervals converts gaps into sorted arc-length intervals on a loop of
// the given total length. Closed loops wrap modulo total, splitting at the
// 0/total seam; spans of a full loop or more are normalized to cover
// everything. Open loops clamp to [0, total].
func gapIntervals(gaps []GapInterval, total float64, closed bool) []arcInterval {
	var intervals []arcInterval
	for _, g := range gaps {
		half := math.Max(g.HalfLength, minGapHalfLength)
		span := 2 * half
		if closed {
			if span >= total {
				// Defensive multi-wrap normalization: the gap laps the
				// loop at least once, so nothing survives.
				intervals = append(intervals, arcInterval{0, total})
				continue
			}
			start := math.Mod(g.CenterDistance-half, total)
			if start < 0 {
				start += total
			}
			end := start + span
			if end > total {
				intervals = append(intervals,
					arcInterval{start, total},
					arcInterval{0, end - total})
			} else {
				intervals = append(intervals, arcInterval{start, end})
			}
		} else {
			start := math.Max(0, g.CenterDistance-half)
			end := math.Min(total, g.CenterDistance+half)
			if end > start {
				intervals = append(intervals, arcInterval{start, end})
			}
		}
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
	return intervals
}

// mergeIntervals collapses overlapping or near-adjacent sorted intervals.
func mergeIntervals(intervals []arcInterval) []arcInterval {
	if len(intervals) == 0 {
		return nil
	}
	merged := []arcInterval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End+gapMergeTolerance {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// keepIntervals returns the complement of the merged gap intervals. For
// closed loops the keeps run from each gap's end to the next gap's start,
// wrapping past the seam; for open loops they include the leading and
// trailing stubs. Slivers within the merge tolerance are dropped.
func keepIntervals(merged []arcInterval, total float64, closed bool) []arcInterval {
	var keeps []arcInterval
	if closed {
		for i := range merged {
			start := merged[i].End
			end := merged[(i+1)%len(merged)].Start
			if end <= start {
				end += total
			}
			if end-start > gapMergeTolerance {
				keeps = append(keeps, arcInterval{start, end})
			}
		}
		return keeps
	}
	prev := 0.0
	for _, iv := range merged {
		if iv.Start-prev > gapMergeTolerance {
			keeps = append(keeps, arcInterval{prev, iv.Start})
		}
		prev = iv.End
	}
	if total-prev > gapMergeTolerance {
		keeps = append(keeps, arcInterval{prev, total})
	}
	return keeps
}

// extractSubLoop materializes one keep interval into an open loop: the
// interpolated start point, every original vertex strictly inside the
// interval in walk order, and the interpolated end point. Intervals whose
// End exceeds the loop total wrap past the seam. Points landing within the
// merge tolerance of the previously added point are deduplicated.
func extractSubLoop(loop Loop, metrics LoopMetrics, keep arcInterval) Loop {
	total := metrics.Total
	var points []Point
	push := func(p Point) {
		if len(points) > 0 && p.Distance(points[len(points)-1]) < gapMergeTolerance {
			return
		}
		points = append(points, p)
	}

	push(loop.PointAt(metrics, math.Mod(keep.Start, total)))

	n := len(loop.Points)
	// Walk vertices in arc order, unwrapping positions past the seam so a
	// wrap-crossing keep sees them in sequence.
	for step := 0; step < 2*n; step++ {
		v := step % n
		d := metrics.Cumulative[v] + float64(step/n)*total
		if d <= keep.Start {
			continue
		}
		if d >= keep.End {
			break
		}
		push(loop.Points[v])
	}

	end := keep.End
	if end > total {
		end -= total
	}
	push(loop.PointAt(metrics, end))

	return Loop{Points: points, Closed: false, Ref: loop.Ref}
}
