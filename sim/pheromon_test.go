package sim

import (
	"testing"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/simtime"
)

func TestPheromonMergeSumsAmountAveragesRateKeepsEarlierCreated(t *testing.T) {
	earlier := simtime.Moment(100)
	later := simtime.Moment(500)

	a := NewPheromonBrain(grid.ScentFood, earlier, 2, 0.1)
	b := NewPheromonBrain(grid.ScentFood, later, 4, 0.3)

	if !a.Merge(b) {
		t.Fatal("expected merge of matching pheromons to succeed")
	}
	if a.amount != 6 {
		t.Errorf("expected summed amount 6, got %v", a.amount)
	}
	if a.evaporationRate != 0.2 {
		t.Errorf("expected averaged rate 0.2, got %v", a.evaporationRate)
	}
	if a.created != earlier {
		t.Errorf("expected created to remain the earlier moment, got %v", a.created)
	}
}

func TestPheromonMergeRejectsOtherBrainKinds(t *testing.T) {
	a := NewPheromonBrain(grid.ScentFood, simtime.Zero, 1, 0.1)
	if a.Merge(NewFoodBrain(1)) {
		t.Error("expected merge to reject a non-pheromon brain")
	}
}

func TestPheromonEvaporatesAndSelfDestructs(t *testing.T) {
	p := NewPheromonBrain(grid.ScentHome, simtime.Zero, 1, 0.5)
	step := &StepInfo{RNG: &fixedRNG{}, Elapsed: 1}
	info := &Info{Elapsed: step.Elapsed, step: step}

	p.Step(info)
	if info.SelfDestruct {
		t.Fatal("expected pheromon with remaining amount not to self-destruct yet")
	}
	if p.amount != 0.5 {
		t.Errorf("expected amount to decay by rate*elapsed, got %v", p.amount)
	}

	info2 := &Info{Elapsed: step.Elapsed, step: step}
	p.Step(info2)
	if !info2.SelfDestruct {
		t.Fatal("expected pheromon to self-destruct once amount reaches zero")
	}
}
