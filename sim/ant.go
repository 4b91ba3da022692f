package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/nav"
	"github.com/pthm-cable/formicary/simtime"
)

// AntConfig tunes how an ant senses, plans, and emits scent.
type AntConfig struct {
	VisionRadius     float64
	PheromonInterval simtime.Duration
	CargoSize        float64
	EvaporationBase  float64
}

// DefaultAntConfig returns reasonable ant tunables.
func DefaultAntConfig() AntConfig {
	return AntConfig{
		VisionRadius:     5,
		PheromonInterval: simtime.MillisecondsToDuration(500),
		CargoSize:        5,
		EvaporationBase:  0.15,
	}
}

// AntBrain drives the Wander -> Food -> Return -> Deposit cycle: search
// for food (directly or by following Food-scent trails), carry it back
// to the colony (directly or by following Home-scent trails), deposit,
// repeat. Along the way it drops its own scent: Home scent while
// searching, Food scent while carrying.
type AntBrain struct {
	cfg      AntConfig
	planner  *nav.Planner
	behavior grid.Behavior

	target       *grid.Point2i
	randomTarget bool

	lastPos grid.Point2i
	forward grid.Point2i

	foodCarried float64

	lastPheromonTime   simtime.Moment
	pheromonPauseAccum simtime.Duration
}

// NewAntBrain returns an ant brain in the Wander state.
func NewAntBrain(cfg AntConfig) *AntBrain {
	return &AntBrain{cfg: cfg, planner: nav.NewPlanner(), behavior: grid.BehaviorWander}
}

func (a *AntBrain) Data() grid.DataBlob {
	return grid.AntData{Behavior: a.behavior}
}

func (a *AntBrain) Init(info *Info) {
	a.lastPos = info.Pos
	a.lastPheromonTime = info.Moment
}

func (a *AntBrain) Step(info *Info) {
	if !info.Pos.Eq(a.lastPos) {
		a.forward = info.Pos.Sub(a.lastPos)
	} else {
		a.forward = grid.Point2i{}
	}

	switch a.behavior {
	case grid.BehaviorWander:
		a.search(info, grid.TileFood, grid.ScentFood, grid.BehaviorFood)
	case grid.BehaviorFood:
		a.approach(info, a.take)
	case grid.BehaviorReturn:
		a.search(info, grid.TileColony, grid.ScentHome, grid.BehaviorDeposit)
	case grid.BehaviorDeposit:
		a.approach(info, a.deposit)
	}

	a.maybeEmitPheromon(info)
	a.lastPos = info.Pos
}

// search drives the Wander/Return states: a direct sighting of the goal
// tile always wins and transitions immediately; otherwise an existing
// pheromon-derived path is followed to completion, and only once it
// (or a random one) runs dry does target selection run again.
func (a *AntBrain) search(info *Info, goalTile grid.Tile, goalScent grid.Scent, nextBehavior grid.Behavior) {
	if _, pos, ok := a.findClosest(info, goalTile); ok {
		a.target = &pos
		a.randomTarget = false
		a.plan(info, pos)
		a.behavior = nextBehavior
		return
	}

	if !info.Path.Empty() && !a.randomTarget {
		return
	}

	a.pickTarget(info, goalScent)
}

// findClosest returns the index and position of the nearest visible
// element carrying tile, if any.
func (a *AntBrain) findClosest(info *Info, tile grid.Tile) (int, grid.Point2i, bool) {
	best := -1
	var bestPos grid.Point2i
	bestDist := math.Inf(1)
	for _, idx := range info.Locator.Visible(info.Pos, a.cfg.VisionRadius) {
		view, ok := info.Locator.Get(idx)
		if !ok || view.Tile != tile {
			continue
		}
		if d := info.Pos.Distance(view.Pos); d < bestDist {
			bestDist, best, bestPos = d, idx, view.Pos
		}
	}
	if best < 0 {
		return 0, grid.Point2i{}, false
	}
	return best, bestPos, true
}

// pickTarget implements the no-direct-sight target selection: gather
// visible pheromons matching scent (excluding the ant's own cell),
// discard those behind the ant's forward direction, average what
// remains. If everything was behind, flip forward and keep the current
// path. If nothing matched at all, pick a random nearby target.
func (a *AntBrain) pickTarget(info *Info, scent grid.Scent) {
	all := a.matchingPheromons(info, scent)
	if len(all) == 0 {
		t := a.randomNearbyTarget(info)
		a.target = &t
		a.randomTarget = true
		a.plan(info, t)
		return
	}

	hasForward := !a.forward.Eq(grid.Point2i{})
	var ahead []grid.Point2i
	for _, p := range all {
		rel := p.Sub(info.Pos)
		if !hasForward || rel.Dot(a.forward) > 0 {
			ahead = append(ahead, p)
		}
	}

	if len(ahead) == 0 {
		a.forward = grid.Point2i{X: -a.forward.X, Y: -a.forward.Y}
		return
	}

	xs := make([]float64, len(ahead))
	ys := make([]float64, len(ahead))
	for i, p := range ahead {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
	}
	target := grid.Point2i{
		X: int(math.Round(stat.Mean(xs, nil))),
		Y: int(math.Round(stat.Mean(ys, nil))),
	}
	if info.Locator.Obstructed(target, false) {
		target = a.spiralNearestFree(info, target)
	}

	a.target = &target
	a.randomTarget = false
	a.plan(info, target)
}

func (a *AntBrain) matchingPheromons(info *Info, scent grid.Scent) []grid.Point2i {
	var out []grid.Point2i
	for _, idx := range info.Locator.Visible(info.Pos, a.cfg.VisionRadius) {
		view, ok := info.Locator.Get(idx)
		if !ok || view.Tile != grid.TilePheromon {
			continue
		}
		pd, ok := view.Data.(grid.PheromonData)
		if !ok || pd.Scent != scent {
			continue
		}
		if view.Pos.Eq(info.Pos) {
			continue
		}
		out = append(out, view.Pos)
	}
	return out
}

// spiralNearestFree searches outward in growing rings for the nearest
// unobstructed cell around target.
func (a *AntBrain) spiralNearestFree(info *Info, target grid.Point2i) grid.Point2i {
	for r := 1; r < 32; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				cand := grid.Point2i{X: target.X + dx, Y: target.Y + dy}
				if !info.Locator.Obstructed(cand, false) {
					return cand
				}
			}
		}
	}
	return target
}

func (a *AntBrain) randomNearbyTarget(info *Info) grid.Point2i {
	r := a.cfg.VisionRadius
	for attempt := 0; attempt < 20; attempt++ {
		angle := info.RNG.Float64() * 2 * math.Pi
		dist := info.RNG.Float64() * r
		dx := int(math.Round(math.Cos(angle) * dist))
		dy := int(math.Round(math.Sin(angle) * dist))
		cand := info.Pos.Add(grid.Point2i{X: dx, Y: dy})
		if !info.Locator.Obstructed(cand, false) {
			return cand
		}
	}
	return info.Pos
}

func (a *AntBrain) plan(info *Info, target grid.Point2i) {
	path, ok := a.planner.FindPath(info.Pos, target, info.Locator, -1)
	if !ok {
		return
	}
	info.Path.Clear()
	for _, p := range path.Points() {
		info.Path.Add(p, false)
	}
}

// approach drives the Food/Deposit states: follow the existing path
// toward a.target, replanning if it ran dry early, and fire onArrive
// once the ant reaches it.
func (a *AntBrain) approach(info *Info, onArrive func(info *Info)) {
	if a.target == nil {
		return
	}
	if info.Pos.Eq(*a.target) {
		onArrive(info)
		return
	}
	if info.Path.Empty() {
		a.plan(info, *a.target)
	}
}

// resolveIndexAt finds the index of a live element of the given tile at
// the ant's current position, resolved fresh this tick so the Influence
// it feeds never carries a stale index.
func (a *AntBrain) resolveIndexAt(info *Info, tile grid.Tile) (int, bool) {
	for _, idx := range info.Locator.Visible(info.Pos, 0.5) {
		view, ok := info.Locator.Get(idx)
		if ok && view.Tile == tile && view.Pos.Eq(info.Pos) {
			return idx, true
		}
	}
	return 0, false
}

func (a *AntBrain) take(info *Info) {
	if idx, ok := a.resolveIndexAt(info, grid.TileFood); ok {
		info.Emit(FoodInteraction{Emitter: idx, Receiver: info.Self, Amount: a.cfg.CargoSize})
	}
	a.target = nil
	info.Path.Clear()
	a.behavior = grid.BehaviorReturn
}

func (a *AntBrain) deposit(info *Info) {
	if idx, ok := a.resolveIndexAt(info, grid.TileColony); ok && a.foodCarried > 0 {
		info.Emit(FoodInteraction{Emitter: info.Self, Receiver: idx, Amount: a.foodCarried})
	}
	a.target = nil
	info.Path.Clear()
	a.behavior = grid.BehaviorWander
}

func (a *AntBrain) maybeEmitPheromon(info *Info) {
	if info.Moment.Since(a.lastPheromonTime) < a.cfg.PheromonInterval {
		return
	}
	scent := grid.ScentHome
	if a.behavior == grid.BehaviorReturn || a.behavior == grid.BehaviorDeposit {
		scent = grid.ScentFood
	}
	amount := 1 + info.RNG.Float64()*0.1
	rate := a.cfg.EvaporationBase * (1 + info.RNG.Float64()*0.1)
	info.Spawn(Animat{Pos: info.Pos, Brain: NewPheromonBrain(scent, info.Moment, amount, rate)})
	a.lastPheromonTime = info.Moment
}

// Influence applies a FoodInteraction to the ant's carried cargo:
// negative in the emitter role (depositing), positive in the receiver
// role (taking). Cargo never drops below zero.
func (a *AntBrain) Influence(inf Influence, asEmitter bool) bool {
	fi, ok := inf.(FoodInteraction)
	if !ok {
		return false
	}
	a.foodCarried += fi.SignedAmount(asEmitter)
	if a.foodCarried < 0 {
		a.foodCarried = 0
	}
	return true
}

func (a *AntBrain) Pause(now simtime.Moment) {
	a.pheromonPauseAccum = now.Since(a.lastPheromonTime)
}

func (a *AntBrain) Resume(now simtime.Moment) {
	a.lastPheromonTime = now.Sub(a.pheromonPauseAccum)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
