package sim

import (
	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/simtime"
)

// ColonyConfig tunes a colony's ant production.
type ColonyConfig struct {
	AntCost      float64
	RestInterval simtime.Duration
	SpawnRadius  int
}

// DefaultColonyConfig returns reasonable colony tunables.
func DefaultColonyConfig() ColonyConfig {
	return ColonyConfig{
		AntCost:      50,
		RestInterval: simtime.MillisecondsToDuration(200),
		SpawnRadius:  2,
	}
}

// ColonyBrain spends budget to spawn ants on a cadence, and receives
// deposited food back into that budget.
type ColonyBrain struct {
	cfg       ColonyConfig
	antCfg    AntConfig
	budget    float64
	lastSpawn simtime.Moment
	pauseAcc  simtime.Duration
}

// NewColonyBrain returns a colony brain seeded with the given budget,
// spawning ants configured per antCfg.
func NewColonyBrain(cfg ColonyConfig, budget float64, antCfg AntConfig) *ColonyBrain {
	return &ColonyBrain{cfg: cfg, antCfg: antCfg, budget: budget}
}

// Init backdates lastSpawn by a full rest interval, so a freshly placed
// colony is immediately eligible to spawn rather than waiting out one
// interval first.
func (c *ColonyBrain) Init(info *Info) {
	c.lastSpawn = info.Moment.Sub(c.cfg.RestInterval)
}

func (c *ColonyBrain) Step(info *Info) {
	if c.budget < c.cfg.AntCost {
		return
	}
	if info.Moment.Since(c.lastSpawn) < c.cfg.RestInterval {
		return
	}

	r := c.cfg.SpawnRadius
	attempts := (2 * r) * (2 * r)
	if attempts <= 0 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		dx := info.RNG.Intn(2*r+1) - r
		dy := info.RNG.Intn(2*r+1) - r
		cand := info.Pos.Add(grid.Point2i{X: dx, Y: dy})
		if cand.Eq(info.Pos) || info.Locator.Obstructed(cand, true) {
			continue
		}
		info.Spawn(Animat{Pos: cand, Brain: NewAntBrain(c.antCfg)})
		c.budget -= c.cfg.AntCost
		c.lastSpawn = info.Moment
		return
	}
	// no free cell within spawn radius this tick; try again next tick.
}

// Influence applies a FoodInteraction only in the receiver role: an ant
// depositing food adds to budget. In the emitter role it is accepted as
// a no-op.
func (c *ColonyBrain) Influence(inf Influence, asEmitter bool) bool {
	fi, ok := inf.(FoodInteraction)
	if !ok {
		return false
	}
	if !asEmitter {
		c.budget += fi.Amount
	}
	return true
}

func (c *ColonyBrain) Pause(now simtime.Moment)  { c.pauseAcc = now.Since(c.lastSpawn) }
func (c *ColonyBrain) Resume(now simtime.Moment) { c.lastSpawn = now.Sub(c.pauseAcc) }
