// Headless balance check: auto-plays rounds with an analytic aiming solver
// plus angular noise and reports hit-rate and cost statistics, so tuning
// changes (speed, radius ranges, cost per meter) can be judged without the
// game window.
package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/BurtsevAnton/go-core-drilling-game/drill"
)

const (
	numRounds = 1000
	simDT     = 1.0 / 60.0
	aimNoise  = 1.5 // degrees, uniform either side of the solved angle
	seed      = 42
)

// solveAngle returns the angle (degrees) that points straight at the target
// center, clamped to the legal arc.
func solveAngle(origin, target drill.Point) float64 {
	deg := math.Atan2(target.Y-origin.Y, target.X-origin.X) * 180 / math.Pi
	if deg < drill.AngleMin {
		deg = drill.AngleMin
	}
	if deg > drill.AngleMax {
		deg = drill.AngleMax
	}
	return deg
}

// aim rotates the drill to the wanted angle through the public command. The
// engine clamps, so overshooting the arc is harmless.
func aim(g *drill.Game, want float64) {
	g.AdjustAngle(want - g.Angle)
}

// playAttempt drives one started attempt to its win/lose conclusion.
func playAttempt(g *drill.Game) {
	g.StartDrill()
	for g.Phase == drill.PhaseDrilling {
		g.Update(simDT)
	}
}

// playRound plays one round to completion and reports whether it was won
// and in how many attempts.
func playRound(g *drill.Game, rng *rand.Rand) (won bool, attempts int) {
	for {
		target := drill.Point{X: g.Round.TargetX, Y: g.Round.TargetY}
		noise := (rng.Float64()*2 - 1) * aimNoise
		aim(g, solveAngle(g.Origin(), target)+noise)

		playAttempt(g)
		attempts++

		if g.Phase == drill.PhaseWin {
			return true, attempts
		}
		if g.TriesRemaining == 0 {
			return false, attempts
		}
		g.ResumeAim()
	}
}

func main() {
	g := drill.NewGame(seed)
	rng := rand.New(rand.NewSource(seed))

	var wins, attempts, overBudget int
	var totalCost float64

	for i := 0; i < numRounds; i++ {
		won, n := playRound(g, rng)
		attempts += n
		totalCost += g.AccumulatedCost
		if won {
			wins++
		}
		if g.RemainingBudget() < 0 {
			overBudget++
		}

		outcome := "MISS"
		if won {
			outcome = "HIT"
		}
		fmt.Printf("[ROUND %4d] %s in %d tries, cost $%.2f, target depth %.0f m, radius %.1f m\n",
			i+1, outcome, n, g.AccumulatedCost, -g.Round.TargetY, g.Round.TargetRadius)

		g.ResetRound()
	}

	fmt.Printf("\n[SUMMARY] rounds: %d\n", numRounds)
	fmt.Printf("[SUMMARY] hit rate: %.1f%%\n", 100*float64(wins)/numRounds)
	fmt.Printf("[SUMMARY] avg attempts per round: %.2f\n", float64(attempts)/numRounds)
	fmt.Printf("[SUMMARY] avg round cost: $%.2f (budget $%.2f)\n", totalCost/numRounds, drill.Budget)
	fmt.Printf("[SUMMARY] rounds over budget: %.1f%%\n", 100*float64(overBudget)/numRounds)
}
