// @lixen: #focus{engine[race,tick,countdown],gameplay[lap,ghost]}
package engine

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/event"
	"github.com/lixenwraith/vi-racer/ghost"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/timing"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// NoWinner is the winner index before any vehicle completes the lap target
const NoWinner = -1

// Race orchestrates one race: track, vehicles, lap gates, ghost and countdown
// Not thread-safe, Tick and Snapshot are called from the frame loop only
type Race struct {
	cfg   Config
	track *track.Track
	gates timing.Gates

	vehicles  []*component.Vehicle
	recorders []*ghost.Recorder

	best      *ghost.BestLap
	ghost     *ghost.Player
	ghostPose ghost.LapSample
	ghostOn   bool

	countdown *Countdown
	started   bool
	startedAt time.Time // Gate release, race time zero
	lastTick  time.Time
	now       time.Time

	winner   int
	finished time.Time

	store ghost.Store
	queue *event.Queue
	log   *zap.Logger
}

// Option configures a Race at construction
type Option func(*Race)

// WithStore sets best lap persistence, default is in-memory
func WithStore(s ghost.Store) Option {
	return func(r *Race) {
		if s != nil {
			r.store = s
		}
	}
}

// WithLogger sets the race logger, default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Race) {
		if l != nil {
			r.log = l
		}
	}
}

// WithQueue sets the event queue consumed by the frame loop
func WithQueue(q *event.Queue) Option {
	return func(r *Race) {
		if q != nil {
			r.queue = q
		}
	}
}

// NewRace builds the track, grid and ghost for cfg
func NewRace(cfg Config, opts ...Option) *Race {
	cfg = cfg.Normalize()
	r := &Race{
		cfg:       cfg,
		countdown: NewCountdown(),
		winner:    NoWinner,
		store:     ghost.NewMemoryStore(),
		queue:     event.NewQueue(),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.track = track.Generate(cfg.Seed, cfg.Feature)
	r.gates = timing.NewGates(r.track)
	r.log = r.log.With(zap.String("track", r.track.ID()))

	r.vehicles = make([]*component.Vehicle, cfg.Players)
	r.recorders = make([]*ghost.Recorder, cfg.Players)
	heading := r.track.DirectionAt(0)
	for i := range cfg.Players {
		r.vehicles[i] = component.NewVehicle(i, r.gridSlot(i), heading)
		r.recorders[i] = ghost.NewRecorder()
	}

	r.loadBest()

	r.log.Debug("race created",
		zap.Int("players", cfg.Players),
		zap.Int("laps", cfg.Laps),
		zap.String("feature", r.track.Name()),
		zap.Bool("ghost", r.ghost != nil),
	)
	return r
}

// gridSlot places slot i in its own row behind the line, alternating sides
func (r *Race) gridSlot(i int) vmath.Vec2 {
	behind := float64(i+1) * parameter.GridRowSpacing
	t := 1 - behind/r.track.Length()

	lateral := parameter.GridLaneOffset
	if i%2 == 1 {
		lateral = -lateral
	}
	right := vmath.V2Perp(vmath.HeadingVector(r.track.DirectionAt(t)))
	return vmath.V2Add(r.track.PointAt(t), vmath.V2Scale(right, lateral))
}

// loadBest reads the stored best lap; it is kept for comparison even with the ghost disabled
func (r *Race) loadBest() {
	best, err := r.store.Load(r.track.ID())
	switch {
	case errors.Is(err, ghost.ErrNoBestLap):
		r.log.Debug("no best lap stored")
		return
	case err != nil:
		r.log.Debug("best lap unavailable", zap.Error(err))
		return
	}

	r.best = best
	if r.cfg.Ghost {
		r.ghost = ghost.NewPlayer(best)
	}
	r.log.Debug("best lap loaded",
		zap.Duration("time", time.Duration(best.TimeMs)*time.Millisecond),
		zap.Int("samples", len(best.Samples)),
	)
}

// Start arms the countdown; vehicles stay frozen until it releases
func (r *Race) Start(now time.Time) {
	r.started = true
	r.lastTick = now
	r.now = now
	r.countdown.Arm(now)
	r.countdown.Update(now, r.emitCountdown)
}

func (r *Race) emitCountdown(remaining int) {
	r.queue.Emit(event.EventCountdownTick, -1, &event.CountdownPayload{Remaining: remaining}, r.now)
}

// release opens the gate: lap epochs, recorders and ghost restart together
func (r *Race) release(now time.Time) {
	r.startedAt = now
	for i, v := range r.vehicles {
		r.gates.Arm(v, now)
		r.recorders[i].Reset()
	}
	if r.ghost != nil {
		r.ghost.Start(now)
	}
	r.queue.Emit(event.EventRaceStart, -1, nil, now)
	r.log.Info("race started")
}

// Tick advances the race to now with one control per vehicle, missing controls are neutral
// Order: countdown gate, controls, contact, dynamics, laps and ghost, slipstream, collisions
func (r *Race) Tick(now time.Time, controls []component.Control) {
	if !r.started {
		return
	}
	dt := r.delta(now)
	r.now = now

	if r.countdown.Active() {
		if !r.countdown.Update(now, r.emitCountdown) {
			return
		}
		r.release(now)
		return
	}

	for i, v := range r.vehicles {
		if i < len(controls) {
			v.Control = controls[i]
		} else {
			v.Control = component.Control{}
		}
	}

	for _, v := range r.vehicles {
		v.TiresOnTrack = r.track.TireContactRatio(v.Pos, v.Heading, v.Tuning.BodyWidth, v.Tuning.BodyLength)
	}

	for _, v := range r.vehicles {
		physics.Step(v, dt, now)
	}

	r.updateLaps(now)

	physics.ApplySlipstream(r.vehicles, now, dt)
	physics.ResolveCollisions(r.vehicles, &physics.VehicleCollision)

	r.ghostOn = false
	if r.ghost != nil {
		r.ghostPose, r.ghostOn = r.ghost.PoseAt(now)
	}
}

// delta returns time since the previous tick, clamped to the maximum step
func (r *Race) delta(now time.Time) time.Duration {
	dt := now.Sub(r.lastTick)
	r.lastTick = now
	return min(max(dt, 0), parameter.MaxTickDelta)
}

// updateLaps records ghost samples and evaluates lap gates until a winner exists
func (r *Race) updateLaps(now time.Time) {
	for i, v := range r.vehicles {
		if r.winner != NoWinner {
			return
		}
		r.recorders[i].Record(now, v.Lap.LapStart, v.Pose)
		if lap, ok := r.gates.Update(v, now); ok {
			r.completeLap(i, lap, now)
		}
	}
}

func (r *Race) completeLap(i int, lap timing.Lap, now time.Time) {
	v := r.vehicles[i]
	samples := r.recorders[i].Len()

	r.queue.Emit(event.EventLapCompleted, i, &event.LapPayload{
		Lap:      lap.Number,
		Time:     lap.Time,
		Best:     lap.Best,
		TrackID:  r.track.ID(),
		Samples:  samples,
		LapsLeft: max(r.cfg.Laps-lap.Number, 0),
	}, now)
	r.log.Info("lap completed",
		zap.Int("player", i),
		zap.Int("lap", lap.Number),
		zap.Duration("time", lap.Time),
	)

	if best, improved := r.recorders[i].Complete(lap.Time, r.best); improved {
		r.setBest(i, best, now)
	}

	if v.Lap.Laps >= r.cfg.Laps {
		r.winner = i
		r.finished = now
		raceTime := now.Sub(r.startedAt)
		r.queue.Emit(event.EventRaceWon, i, &event.WinPayload{Winner: i, RaceTime: raceTime}, now)
		r.log.Info("race won", zap.Int("player", i), zap.Duration("race_time", raceTime))
	}
}

// setBest replaces the track best, persists it and restarts the ghost on it
func (r *Race) setBest(player int, best *ghost.BestLap, now time.Time) {
	r.best = best
	if err := r.store.Save(r.track.ID(), best); err != nil {
		r.log.Warn("best lap not saved", zap.Error(err))
		r.queue.Emit(event.EventGhostSaveFailed, player, &event.ErrorPayload{Err: err}, now)
	}
	if r.cfg.Ghost {
		r.ghost = ghost.NewPlayer(best)
		r.ghost.Start(now)
	}
	lapTime := time.Duration(best.TimeMs) * time.Millisecond
	r.queue.Emit(event.EventBestLap, player, &event.LapPayload{
		Lap:     r.vehicles[player].Lap.Laps,
		Time:    lapTime,
		Best:    true,
		TrackID: r.track.ID(),
		Samples: len(best.Samples),
	}, now)
	r.log.Info("new best lap", zap.Int("player", player), zap.Duration("time", lapTime))
}

// Track returns the race track
func (r *Race) Track() *track.Track {
	return r.track
}

// Config returns the normalized race configuration
func (r *Race) Config() Config {
	return r.cfg
}

// Queue returns the event queue
func (r *Race) Queue() *event.Queue {
	return r.queue
}

// Vehicles exposes the live vehicles, mutate only between ticks
func (r *Race) Vehicles() []*component.Vehicle {
	return r.vehicles
}

// Winner returns the winning player or NoWinner
func (r *Race) Winner() int {
	return r.winner
}

// Best returns the current track best lap, nil when none
func (r *Race) Best() *ghost.BestLap {
	return r.best
}

// Finished reports whether a winner exists
func (r *Race) Finished() bool {
	return r.winner != NoWinner
}

// Leader returns the player furthest along, counting gates passed then distance to the next gate
func (r *Race) Leader() int {
	leader, bestProgress, bestDist := 0, -1, math.Inf(1)
	for i, v := range r.vehicles {
		target := r.gates.Finish
		if r.gates.State(v) == timing.AwaitingCheckpoint {
			target = r.gates.Checkpoint
		}
		progress := v.Lap.Laps * 2
		if r.gates.State(v) == timing.CheckpointCrossed {
			progress++
		}
		dist := vmath.V2Dist(v.Pos, target)
		if progress > bestProgress || (progress == bestProgress && dist < bestDist) {
			leader, bestProgress, bestDist = i, progress, dist
		}
	}
	return leader
}
