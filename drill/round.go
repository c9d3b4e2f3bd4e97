package drill

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Round is one randomized scenario: where the rig stands and where the
// orebody hides. Immutable once generated; ResetRound replaces it wholesale.
type Round struct {
	ID           uuid.UUID
	OriginX      float64
	TargetX      float64
	TargetY      float64 // negative: depth below the surface
	TargetRadius float64
	CreatedAt    time.Time
}

// newRound draws four independent uniform values inside the fixed bounds.
// No solvability check: a target that no legal angle can reach within the
// drilling envelope is still valid game content. Parameters are reproducible
// under a seeded source; the ID is identity only.
func newRound(rng *rand.Rand) Round {
	return Round{
		ID:           uuid.New(),
		OriginX:      uniform(rng, OriginXMin, OriginXMax),
		TargetX:      uniform(rng, TargetXMin, TargetXMax),
		TargetY:      uniform(rng, MaxDepth, TargetYShallow),
		TargetRadius: uniform(rng, TargetRadiusMin, TargetRadiusMax),
		CreatedAt:    time.Now(),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
