// Package worldgen procedurally places the initial scenario a World
// starts from: obstacle clusters and food deposits carved out of
// OpenSimplex noise, plus a single colony at the center.
package worldgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/formicary/grid"
	"github.com/pthm-cable/formicary/sim"
)

// Params controls the generated scenario.
type Params struct {
	Width, Height     int
	Seed              int64
	NoiseScale        float64
	ObstacleThreshold float64 // noise value above this becomes an Obstacle
	FoodThreshold     float64 // noise value below this becomes Food
	FoodStock         float64
	ColonyBudget      float64
	AntCfg            sim.AntConfig
	ColonyCfg         sim.ColonyConfig
}

// Generate populates w with a colony at the grid center and obstacle/
// food placements sampled from a single OpenSimplex field, reusing the
// same field (at different thresholds) so obstacles and food never
// overlap the same high-noise or low-noise regions.
func Generate(w *sim.World, p Params) {
	noise := opensimplex.New(p.Seed)
	center := grid.Point2i{X: p.Width / 2, Y: p.Height / 2}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			pos := grid.Point2i{X: x, Y: y}
			if pos.Eq(center) {
				continue
			}
			n := noise.Eval2(float64(x)*p.NoiseScale, float64(y)*p.NoiseScale)
			switch {
			case n > p.ObstacleThreshold:
				w.Grid.Spawn(sim.NewElement(grid.TileObstacle, pos, nil))
			case n < p.FoodThreshold:
				w.Grid.Spawn(sim.NewElement(grid.TileFood, pos, sim.NewFoodBrain(p.FoodStock)))
			}
		}
	}

	colony := sim.NewColonyBrain(p.ColonyCfg, p.ColonyBudget, p.AntCfg)
	w.Grid.Spawn(sim.NewElement(grid.TileColony, center, colony))
}
