package gamemath

import (
	"math"

	"github.com/automoto/stonedelve/shared/tilemap"
)

const (
	// Gravity is added to vertical velocity each frame, in tiles/frame².
	Gravity = 0.0070
	// TerminalVelocity caps downward speed in tiles/frame.
	TerminalVelocity = 0.90

	// sweepIterations bisection steps give sub-pixel convergence at the
	// coordinate magnitudes the game uses.
	sweepIterations = 16
	// SweepEpsilon backs a clamped sweep off the surface so bodies never rest
	// exactly flush with it.
	SweepEpsilon = 0.001
)

// KinematicResult is the outcome of one integration step.
type KinematicResult struct {
	Body BoundingBox

	OnLeft   bool
	OnRight  bool
	OnTop    bool
	OnBottom bool
}

// Integrate computes the maximal safe displacement of bb through world,
// horizontal axis first, then vertical. Gravity, when enabled, is added to
// vertical velocity before the vertical sweep and clamped to terminal
// velocity; a blocked vertical sweep zeroes it. Horizontal velocity is
// consumed by the step, so the returned body carries VX 0.
//
// A body that already overlaps a solid (an external teleport, say) is not
// resolved: the step reports blocked along its direction of travel and leaves
// the position unchanged. De-penetration is the caller's problem.
func Integrate(world tilemap.TileWorld, bb BoundingBox, gravity bool) KinematicResult {
	res := KinematicResult{Body: bb}

	if world.OverlapsAnySolid(bb.X, bb.Y, bb.W, bb.H) {
		res.OnLeft = bb.VX < 0
		res.OnRight = bb.VX > 0
		res.OnTop = bb.VY < 0
		res.OnBottom = bb.VY > 0
		res.Body.VX = 0
		res.Body.VY = 0
		return res
	}

	out := bb
	if out.VX != 0 {
		moved, blocked := sweepAxis(world, out, out.VX, true)
		out.X += moved
		if blocked {
			if out.VX > 0 {
				res.OnRight = true
			} else {
				res.OnLeft = true
			}
		}
	}

	if gravity {
		out.VY = math.Min(out.VY+Gravity, TerminalVelocity)
	}
	if out.VY != 0 {
		moved, blocked := sweepAxis(world, out, out.VY, false)
		out.Y += moved
		if blocked {
			if out.VY > 0 {
				res.OnBottom = true
			} else {
				res.OnTop = true
			}
			out.VY = 0
		}
	}

	out.VX = 0
	res.Body = out
	return res
}

// sweepAxis returns the safe signed displacement along one axis and whether
// the motion was clamped short of the full delta. The common case — the full
// delta lands clear — costs a single overlap probe.
func sweepAxis(world tilemap.TileWorld, bb BoundingBox, delta float64, horizontal bool) (float64, bool) {
	probe := func(d float64) bool {
		if horizontal {
			return world.OverlapsAnySolid(bb.X+d, bb.Y, bb.W, bb.H)
		}
		return world.OverlapsAnySolid(bb.X, bb.Y+d, bb.W, bb.H)
	}

	if !probe(delta) {
		return delta, false
	}

	// Bisect between 0 (the start is known clear) and the full delta (known
	// to overlap). The loop count is fixed, so the search cannot hang; its
	// only failure mode is imprecision bounded by the epsilon back-off.
	lo, hi := 0.0, delta
	for i := 0; i < sweepIterations; i++ {
		mid := (lo + hi) / 2
		if probe(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	if delta > 0 {
		lo = math.Max(0, lo-SweepEpsilon)
	} else {
		lo = math.Min(0, lo+SweepEpsilon)
	}
	return lo, true
}
