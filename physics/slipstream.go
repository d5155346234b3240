// @lixen: #focus{physics[slipstream],gameplay[boost]}
package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/vmath"
)

var slipstreamConeCos = math.Cos(parameter.SlipstreamConeHalfAngle)

// ApplySlipstream refreshes wake detection and applies active boosts
// A follower takes the first qualifying leader; boosts do not stack
func ApplySlipstream(vehicles []*component.Vehicle, now time.Time, dt time.Duration) {
	for _, f := range vehicles {
		if leader := findLeader(f, vehicles); leader != nil {
			f.SlipstreamUntil = now.Add(parameter.SlipstreamDuration)
		}
	}

	sec := dt.Seconds()
	for _, v := range vehicles {
		if !v.Boosted(now) || v.Speed <= 0 {
			continue
		}
		ceiling := v.Tuning.MaxSpeed * parameter.SlipstreamSpeedFactor
		if v.Speed < ceiling {
			v.Speed = math.Min(v.Speed+parameter.SlipstreamAccel*sec, ceiling)
		}
	}
}

// findLeader returns the first car ahead of f inside range and heading cone
func findLeader(f *component.Vehicle, vehicles []*component.Vehicle) *component.Vehicle {
	fwd := f.Forward()
	for _, l := range vehicles {
		if l == f || l.Speed <= parameter.SlipstreamMinLeaderSpeed {
			continue
		}
		d := vmath.V2Sub(l.Pos, f.Pos)
		dist := vmath.V2Mag(d)
		if dist == 0 || dist > parameter.SlipstreamRange {
			continue
		}
		if vmath.V2Dot(fwd, d)/dist >= slipstreamConeCos {
			return l
		}
	}
	return nil
}
