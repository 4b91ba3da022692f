package sim

import (
	"testing"

	"github.com/pthm-cable/formicary/grid"
)

func TestAntFindsAndCarriesFoodHome(t *testing.T) {
	w := NewWorld(&fixedRNG{seq: []float64{0.01, 0.01, 0.01, 0.01, 0.01}})

	ant := NewElement(grid.TileAnt, grid.Point2i{X: 1, Y: 0}, NewAntBrain(DefaultAntConfig()))
	w.Grid.Spawn(ant)
	w.Grid.Spawn(NewElement(grid.TileFood, grid.Point2i{X: 4, Y: 0}, NewFoodBrain(20)))
	w.Grid.Spawn(NewElement(grid.TileColony, grid.Point2i{X: 0, Y: 0}, NewColonyBrain(ColonyConfig{AntCost: 1e9, RestInterval: 0, SpawnRadius: 1}, 0, DefaultAntConfig())))

	reachedFood := false
	for i := 0; i < 60; i++ {
		w.Step(0.25) // 250ms per tick, above the 200ms move cadence
		ab := ant.Brain.(*AntBrain)
		if ab.behavior == grid.BehaviorReturn {
			reachedFood = true
			break
		}
	}

	if !reachedFood {
		t.Fatal("expected the ant to reach the food and transition to Return")
	}
	ab := ant.Brain.(*AntBrain)
	if ab.foodCarried <= 0 {
		t.Errorf("expected the ant to be carrying food after taking it, got %v", ab.foodCarried)
	}

	for i := 0; i < 60; i++ {
		w.Step(0.25)
		ab = ant.Brain.(*AntBrain)
		if ab.behavior == grid.BehaviorWander && ab.foodCarried == 0 {
			return
		}
	}
	t.Fatal("expected the ant to eventually deposit its food at the colony and resume wandering")
}

func TestAntInfluenceClampsCargoAtZero(t *testing.T) {
	a := NewAntBrain(DefaultAntConfig())
	a.Influence(FoodInteraction{Amount: 5}, true) // emitter role subtracts from a cargo of 0
	if a.foodCarried != 0 {
		t.Errorf("expected cargo to clamp at zero, got %v", a.foodCarried)
	}
}

func TestAntPauseResumePreservesPheromonCadence(t *testing.T) {
	a := NewAntBrain(DefaultAntConfig())
	info := &Info{Moment: 0, step: &StepInfo{}}
	a.Init(info)

	a.lastPheromonTime = 100
	a.Pause(300) // 200ms had elapsed since lastPheromonTime
	a.Resume(1000)

	if a.lastPheromonTime != 800 {
		t.Errorf("expected lastPheromonTime shifted to preserve the 200ms offset, got %v", a.lastPheromonTime)
	}
}
