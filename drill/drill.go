package drill

import (
	"math"
	"math/rand"
	"time"
)

// ---------- World constants ----------
// World units are meters. Y is negative below the surface, so MaxDepth is
// the deepest point a drill may reach before the attempt is abandoned.

const (
	SurfaceY     = 0.0
	MaxDepth     = -900.0
	LateralBound = 1100.0

	OriginXMin = 100.0
	OriginXMax = 900.0

	TargetXMin      = 250.0
	TargetXMax      = 900.0
	TargetYShallow  = -500.0 // shallowest possible orebody center
	TargetRadiusMin = 5.0
	TargetRadiusMax = 20.0

	DrillSpeed   = 900.0 // m/s
	CostPerMeter = 300.0 // $/m
	Budget       = 500000.0

	AngleMin     = -180.0
	AngleMax     = 0.0
	AngleDefault = -90.0 // straight down

	TriesPerRound = 3

	// Length of the surface handle drawn by the frontend while aiming.
	HandleLength = 20.0
)

// ---------- Phase ----------

// Phase is the attempt state tag. Commands issued outside their valid
// phase are silently ignored.
type Phase int

const (
	PhaseAim Phase = iota
	PhaseDrilling
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhaseAim:
		return "aim"
	case PhaseDrilling:
		return "drilling"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	}
	return "unknown"
}

// ---------- Game engine ----------

// Game owns all mutable state: the current round, the attempt in flight and
// the session accounting. It is driven from a single goroutine: input
// commands and the per-frame Update never overlap.
type Game struct {
	Round Round
	Phase Phase
	Angle float64 // degrees, AngleMin..AngleMax

	Tip         Point
	ResultPoint *Point // non-nil only in PhaseWin
	PathLength  float64

	TotalCost       float64 // cost of the last completed attempt
	AccumulatedCost float64 // running sum across all attempts this round
	TriesRemaining  int

	rng *rand.Rand
}

// NewGame creates an engine with the first round already generated.
// Seed 0 means seed from the clock; any other value gives a reproducible
// round sequence.
func NewGame(seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		Angle: AngleDefault,
		rng:   rand.New(rand.NewSource(seed)),
	}
	g.ResetRound()
	return g
}

// Origin returns the drill pivot on the surface.
func (g *Game) Origin() Point {
	return Point{g.Round.OriginX, SurfaceY}
}

// Heading returns the unit direction of the current angle.
func (g *Game) Heading() (vx, vy float64) {
	theta := deg2rad(g.Angle)
	return math.Cos(theta), math.Sin(theta)
}

// ResetRound replaces the round wholesale and resets attempt and session
// state. Ignored while a drill is in flight. The angle is kept.
func (g *Game) ResetRound() {
	if g.Phase == PhaseDrilling {
		return
	}
	g.Round = newRound(g.rng)
	g.Phase = PhaseAim
	g.Tip = g.Origin()
	g.ResultPoint = nil
	g.PathLength = 0
	g.TotalCost = 0
	g.AccumulatedCost = 0
	g.TriesRemaining = TriesPerRound
}

// AdjustAngle rotates the drill by delta degrees, clamped to the legal arc.
// Only valid while aiming.
func (g *Game) AdjustAngle(delta float64) {
	if g.Phase != PhaseAim {
		return
	}
	g.Angle = clamp(g.Angle+delta, AngleMin, AngleMax)
}

// StartDrill begins an attempt from the surface origin.
func (g *Game) StartDrill() {
	if g.Phase != PhaseAim {
		return
	}
	g.Phase = PhaseDrilling
	g.Tip = g.Origin()
	g.ResultPoint = nil
	g.PathLength = 0
}

// ResumeAim returns to aiming after a miss, keeping the angle. Rejected
// once the round is out of tries.
func (g *Game) ResumeAim() {
	if g.Phase != PhaseLose || g.TriesRemaining <= 0 {
		return
	}
	g.Phase = PhaseAim
}

// Update advances the drill tip by one frame of dt seconds. The step is
// taken as given, unclamped: a very slow frame produces a long segment that
// can tunnel past a thin target without detection. An attempt always runs
// to a win or lose conclusion; it cannot be cancelled mid-flight.
func (g *Game) Update(dt float64) {
	if g.Phase != PhaseDrilling {
		return
	}

	vx, vy := g.Heading()
	step := DrillSpeed * dt
	next := Point{g.Tip.X + vx*step, g.Tip.Y + vy*step}

	// The target gets exact-contact treatment: on a hit the tip snaps to
	// the intersection point, not the stepped endpoint.
	center := Point{g.Round.TargetX, g.Round.TargetY}
	if ipt, ok := SegmentCircleIntersection(g.Tip, next, center, g.Round.TargetRadius); ok {
		g.PathLength += dist(g.Tip, ipt)
		g.Tip = ipt
		g.ResultPoint = &ipt
		g.Phase = PhaseWin
		g.TotalCost = g.PathLength * CostPerMeter
		g.AccumulatedCost += g.TotalCost
		return
	}

	g.PathLength += dist(g.Tip, next)
	g.Tip = next

	// The world boundary is an abstract limit: the attempt ends on the
	// stepped endpoint, with no backtracking to the exact crossing.
	if g.Tip.Y <= MaxDepth || g.Tip.X > LateralBound {
		g.TotalCost = g.PathLength * CostPerMeter
		g.AccumulatedCost += g.TotalCost
		g.Phase = PhaseLose
		g.ResultPoint = nil
		g.TriesRemaining--
	}
}

// MissDistance is the display-only analytic miss: how far the aimed ray
// passes from the target center. Near vertical the horizontal offset is
// used; otherwise the vertical offset at the target's X, via the tangent.
// This deliberately disagrees (slightly) with the stepped simulation.
func (g *Game) MissDistance() float64 {
	if math.Abs(g.Angle-AngleDefault) < 0.001 {
		return math.Abs(g.Round.TargetX - g.Round.OriginX)
	}
	yAtTarget := SurfaceY + math.Tan(deg2rad(g.Angle))*(g.Round.TargetX-g.Round.OriginX)
	return math.Abs(yAtTarget - g.Round.TargetY)
}

// OneDegreeMiss is the HUD helper: how many meters a one degree aiming
// error translates to at the target's depth.
func (g *Game) OneDegreeMiss() float64 {
	return math.Tan(deg2rad(1.0)) * math.Abs(g.Round.TargetY)
}

// RemainingBudget may go negative; the budget is informational and never
// ends a round.
func (g *Game) RemainingBudget() float64 {
	return Budget - g.AccumulatedCost
}
