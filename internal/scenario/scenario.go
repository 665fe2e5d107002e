// Package scenario builds two concrete optimization problems used as
// end-to-end demonstrations: OneMax under UMDA and a deceptive-trap
// function under ECGA. cmd/rustea builds on it, so the scenario
// definitions live in one tested place.
package scenario

import (
	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/ea"
	"github.com/rustea/rustea-go/eda"
)

// Scenario bundles everything a Runner needs plus the default run
// parameters the problem is meant to be exercised with.
type Scenario struct {
	Name             string
	Genome           domain.Genome
	Fitness          eda.Func
	Goal             eda.Goal
	PopulationSize   int
	Target           float64
	EvaluationBudget int
	Selection        ea.Selection
	Variation        ea.Variation
}

// OneMax optimizes 128 boolean variables, fitness = count of true
// values, maximize, UMDA variation, truncation selection.
func OneMax() Scenario {
	const length = 128

	return Scenario{
		Name:   "onemax",
		Genome: domain.Uniform(domain.Bool, length),
		Fitness: func(g domain.Genotype) float64 {
			sum := 0.0
			for i := 0; i < g.Len(); i++ {
				sum += float64(g.Get(i))
			}

			return sum
		},
		Goal:             eda.Maximize,
		PopulationSize:   200,
		Target:           float64(length),
		EvaluationBudget: 100_000,
		Selection:        ea.Truncation{},
		Variation:        ea.UMDA{},
	}
}

// trapBlockSize and trapBlockCount define the deceptive-trap layout used
// by Trap: trapBlockCount contiguous blocks of trapBlockSize boolean
// variables each.
const (
	trapBlockSize  = 4
	trapBlockCount = 10
)

// Trap optimizes 40 boolean variables in 10 contiguous deceptive-trap
// blocks of 4, maximize, ECGA variation (p_best=0.3),
// truncation selection. Each block scores 4 when all-false or its count
// of true values otherwise, so both an all-false and an all-true block
// score the block maximum of 4, while a block with a single true bit
// scores only 1.
func Trap() Scenario {
	const length = trapBlockSize * trapBlockCount

	return Scenario{
		Name:   "trap",
		Genome: domain.Uniform(domain.Bool, length),
		Fitness: func(g domain.Genotype) float64 {
			total := 0.0

			for block := 0; block < trapBlockCount; block++ {
				ones := 0

				for i := 0; i < trapBlockSize; i++ {
					ones += g.Get(block*trapBlockSize + i)
				}

				if ones == 0 {
					total += trapBlockSize
				} else {
					total += float64(ones)
				}
			}

			return total
		},
		Goal:             eda.Maximize,
		PopulationSize:   2000,
		Target:           float64(length),
		EvaluationBudget: 100_000,
		Selection:        ea.Truncation{},
		Variation:        ea.ECGA{PBest: 0.3},
	}
}

// Build assembles a Runner from the scenario's defaults.
func (s Scenario) Build() (*ea.Runner, error) {
	return ea.NewRunnerBuilder().
		Genome(s.Genome).
		RandomPopulation(s.PopulationSize).
		Evaluation(s.Fitness, s.Goal).
		Selection(s.Selection).
		Variation(s.Variation).
		Target(s.Target).
		Build()
}

// ByName looks up a scenario by its Name.
func ByName(name string) (Scenario, bool) {
	switch name {
	case "onemax":
		return OneMax(), true
	case "trap":
		return Trap(), true
	default:
		return Scenario{}, false
	}
}
