// Package assess maps a four-question self check-in onto the nearest
// predefined emotional prototype.
package assess

import (
	"math"

	"github.com/alexanderramin/emopath/internal/domain"
)

// Prototype is a named reference point in rating space.
type Prototype struct {
	Name      string
	Stress    float64
	Overwhelm float64
	Anger     float64
	Sadness   float64
}

// Prototypes is the fixed reference table. Order matters: ties resolve to
// the earlier entry.
var Prototypes = []Prototype{
	{Name: "anxious", Stress: 7, Overwhelm: 6, Anger: 2, Sadness: 3},
	{Name: "sad", Stress: 3, Overwhelm: 3, Anger: 1, Sadness: 8},
	{Name: "angry", Stress: 4, Overwhelm: 2, Anger: 8, Sadness: 2},
	{Name: "overwhelmed", Stress: 8, Overwhelm: 9, Anger: 3, Sadness: 6},
	{Name: "lonely", Stress: 2, Overwhelm: 3, Anger: 1, Sadness: 6},
	{Name: "calm", Stress: 1, Overwhelm: 1, Anger: 0, Sadness: 0},
	{Name: "hopeful", Stress: 1, Overwhelm: 1, Anger: 0, Sadness: 1},
	{Name: "happy", Stress: 0, Overwhelm: 0, Anger: 0, Sadness: 0},
}

func (p Prototype) distance(stress, overwhelm, anger, sadness float64) float64 {
	ds := stress - p.Stress
	do := overwhelm - p.Overwhelm
	da := anger - p.Anger
	dsd := sadness - p.Sadness
	return ds*ds + do*do + da*da + dsd*dsd
}

// Classify returns the prototype name closest to the given ratings by
// squared Euclidean distance.
func Classify(stress, overwhelm, anger, sadness float64) string {
	return nearest(Prototypes, stress, overwhelm, anger, sadness).Name
}

// ClassifyRatings is Classify over integer check-in answers.
func ClassifyRatings(r domain.Ratings) string {
	return Classify(float64(r.Stress), float64(r.Overwhelm), float64(r.Anger), float64(r.Sadness))
}

func nearest(protos []Prototype, stress, overwhelm, anger, sadness float64) Prototype {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range protos {
		if d := p.distance(stress, overwhelm, anger, sadness); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return protos[best]
}
