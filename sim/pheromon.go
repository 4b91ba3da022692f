package sim

import (
	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/simtime"
)

// PheromonBrain is a decaying scent marker dropped by an ant. Its amount
// evaporates at evaporationRate per simulated second; once it reaches
// zero the element self-destructs.
type PheromonBrain struct {
	scent           grid.Scent
	created         simtime.Moment
	amount          float64
	evaporationRate float64
}

// NewPheromonBrain returns a Pheromon brain.
func NewPheromonBrain(scent grid.Scent, created simtime.Moment, amount, evaporationRate float64) *PheromonBrain {
	return &PheromonBrain{scent: scent, created: created, amount: amount, evaporationRate: evaporationRate}
}

func (p *PheromonBrain) Data() grid.DataBlob {
	return grid.PheromonData{
		Scent:           p.scent,
		Created:         p.created,
		Amount:          p.amount,
		EvaporationRate: p.evaporationRate,
	}
}

func (p *PheromonBrain) Init(info *Info) {}

func (p *PheromonBrain) Step(info *Info) {
	p.amount -= p.evaporationRate * info.Elapsed
	if p.amount <= 0 {
		info.Destroy()
	}
}

// Influence always succeeds as a no-op: pheromons never participate in
// a FoodInteraction, but nothing in the simulation ever targets one
// with one either.
func (p *PheromonBrain) Influence(inf Influence, asEmitter bool) bool {
	return true
}

// Merge absorbs other into p: amounts sum, evaporation rates average,
// and the earlier of the two creation moments is kept, so a trail
// refreshed by a second ant does not reset its own age.
func (p *PheromonBrain) Merge(other Brain) bool {
	op, ok := other.(*PheromonBrain)
	if !ok {
		return false
	}
	p.amount += op.amount
	p.evaporationRate = (p.evaporationRate + op.evaporationRate) / 2
	if op.created < p.created {
		p.created = op.created
	}
	return true
}
