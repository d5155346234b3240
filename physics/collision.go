// @lixen: #focus{physics[collision,impulse]}
package physics

import (
	"math"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

// CollisionProfile defines car-to-car response parameters
// Profiles are pre-defined as package variables for zero allocation
type CollisionProfile struct {
	Restitution float64 // Normal impulse bounciness, < 1 dissipates
	Damping     float64 // Post-impulse forward speed multiplier
}

// VehicleCollision is the default car-to-car profile
var VehicleCollision = CollisionProfile{
	Restitution: parameter.CollisionRestitution,
	Damping:     parameter.CollisionDamping,
}

// ResolveCollisions resolves every pair once, i<j, in slice order
// Resolution is sequential: later pairs see positions corrected by earlier ones
// Returns the number of contacts resolved
func ResolveCollisions(vehicles []*component.Vehicle, profile *CollisionProfile) int {
	contacts := 0
	for i := 0; i < len(vehicles); i++ {
		for j := i + 1; j < len(vehicles); j++ {
			if ResolvePair(vehicles[i], vehicles[j], profile) {
				contacts++
			}
		}
	}
	return contacts
}

// ResolvePair separates two overlapping cars and exchanges speed along the contact normal
// Returns false when the circles do not overlap or the centers coincide
func ResolvePair(a, b *component.Vehicle, profile *CollisionProfile) bool {
	d := vmath.V2Sub(b.Pos, a.Pos)
	distSq := vmath.V2MagSq(d)
	minDist := a.Tuning.Radius() + b.Tuning.Radius()
	if distSq == 0 || distSq >= minDist*minDist {
		return false
	}

	dist := math.Sqrt(distSq)
	n := vmath.V2Scale(d, 1/dist)

	// Positional correction, split evenly
	push := vmath.V2Scale(n, (minDist-dist)/2)
	a.Pos = vmath.V2Sub(a.Pos, push)
	b.Pos = vmath.V2Add(b.Pos, push)

	// Forward speed projected on the normal
	ca := vmath.V2Dot(a.Forward(), n)
	cb := vmath.V2Dot(b.Forward(), n)
	closing := a.Speed*ca - b.Speed*cb
	if closing <= 0 {
		return true // Already separating
	}

	// Equal-mass 1D impulse, fed back through the projection onto each heading
	j := (1 + profile.Restitution) * closing / 2
	sa := (a.Speed - j*ca) * profile.Damping
	sb := (b.Speed + j*cb) * profile.Damping

	// Contact never adds speed to the pair
	before := math.Abs(a.Speed) + math.Abs(b.Speed)
	if after := math.Abs(sa) + math.Abs(sb); after > before {
		k := before / after
		sa *= k
		sb *= k
	}

	a.Speed = vmath.Clamp(sa, a.Tuning.MinSpeed(), a.Tuning.MaxSpeed)
	b.Speed = vmath.Clamp(sb, b.Tuning.MinSpeed(), b.Tuning.MaxSpeed)
	return true
}
