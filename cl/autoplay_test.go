package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/BurtsevAnton/go-core-drilling-game/drill"
)

func TestSolveAngle(t *testing.T) {
	tests := []struct {
		name   string
		origin drill.Point
		target drill.Point
		want   float64
	}{
		{"straight down", drill.Point{X: 100}, drill.Point{X: 100, Y: -500}, -90},
		{"down-right diagonal", drill.Point{X: 100}, drill.Point{X: 600, Y: -500}, -45},
		{"down-left diagonal", drill.Point{X: 600}, drill.Point{X: 100, Y: -500}, -135},
		{"level right clamps to arc edge", drill.Point{X: 100}, drill.Point{X: 600, Y: 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := solveAngle(tc.origin, tc.target)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("solveAngle = %.4f, want %.4f", got, tc.want)
			}
		})
	}
}

func TestAimClampsToArc(t *testing.T) {
	g := drill.NewGame(1)
	aim(g, -400)
	if g.Angle != drill.AngleMin {
		t.Errorf("angle = %.2f, want %.2f", g.Angle, drill.AngleMin)
	}
	aim(g, 90)
	if g.Angle != drill.AngleMax {
		t.Errorf("angle = %.2f, want %.2f", g.Angle, drill.AngleMax)
	}
}

func TestSolvedAngleHits(t *testing.T) {
	rounds := []drill.Round{
		{OriginX: 100, TargetX: 300, TargetY: -600, TargetRadius: 8},
		{OriginX: 900, TargetX: 250, TargetY: -850, TargetRadius: 5},
		{OriginX: 500, TargetX: 500, TargetY: -500, TargetRadius: 20},
	}

	for _, r := range rounds {
		g := drill.NewGame(1)
		g.Round = r
		aim(g, solveAngle(g.Origin(), drill.Point{X: r.TargetX, Y: r.TargetY}))
		playAttempt(g)
		if g.Phase != drill.PhaseWin {
			t.Errorf("round %+v: solved angle missed, phase %v, tip (%.1f, %.1f)",
				r, g.Phase, g.Tip.X, g.Tip.Y)
		}
	}
}

func TestPlayRoundRetriesAfterMiss(t *testing.T) {
	g := drill.NewGame(3)
	rng := rand.New(rand.NewSource(3))

	won, attempts := playRound(g, rng)
	if attempts < 1 || attempts > drill.TriesPerRound {
		t.Fatalf("attempts = %d, want 1..%d", attempts, drill.TriesPerRound)
	}
	if won && g.Phase != drill.PhaseWin {
		t.Errorf("won but phase is %v", g.Phase)
	}
	if !won && g.TriesRemaining != 0 {
		t.Errorf("lost round with %d tries left", g.TriesRemaining)
	}
}

func TestAutoPlayDeterministic(t *testing.T) {
	run := func() (wins, attempts int, cost float64) {
		g := drill.NewGame(seed)
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < 50; i++ {
			won, n := playRound(g, rng)
			if won {
				wins++
			}
			attempts += n
			cost += g.AccumulatedCost
			g.ResetRound()
		}
		return
	}

	w1, a1, c1 := run()
	w2, a2, c2 := run()
	if w1 != w2 || a1 != a2 || c1 != c2 {
		t.Errorf("runs diverged: (%d, %d, %.4f) vs (%d, %d, %.4f)", w1, a1, c1, w2, a2, c2)
	}
}
