package recommend

import (
	"math"
	"time"
)

// Scorable is the minimal surface the scorer needs from a post: its tag
// names and its creation time. It decouples scoring from the persistence
// Post type.
type Scorable interface {
	TagNames() []string
	CreationTime() time.Time
}

// decayPerDay is the linear recency penalty: 1% of the base score per whole
// day of age, floored at minRecencyMultiplier so decay saturates after ~90
// days and age stops penalizing further.
const (
	decayPerDay          = 0.01
	minRecencyMultiplier = 0.1
)

// Score computes the relevance of a post for a tag-weight map at a reference
// time. The base score sums the weights of the post's tags that appear in
// the map (absent tags contribute zero), then a recency multiplier scales it
// down by age. A post with no matching tags scores exactly 0 regardless of
// age.
//
// Both timestamps are normalized to UTC before subtraction, and age is
// floored in whole days: a post seconds old is day 0, a post dated slightly
// in the future is day -1 (multiplier 1.01).
func Score(p Scorable, tagWeights map[string]float64, now time.Time) float64 {
	base := 0.0
	for _, name := range p.TagNames() {
		base += tagWeights[name]
	}

	age := now.UTC().Sub(p.CreationTime().UTC())
	daysOld := math.Floor(age.Hours() / 24)
	multiplier := math.Max(minRecencyMultiplier, 1-decayPerDay*daysOld)

	return base * multiplier
}
