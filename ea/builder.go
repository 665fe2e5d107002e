package ea

import (
	"fmt"
	"math/rand/v2"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/eda"
	"github.com/rustea/rustea-go/internal/workpool"
)

// RunnerBuilder assembles a Runner from its mandatory collaborators.
// Building with any of genome, evaluation function, goal, selection,
// variation, or population absent fails with ErrConfiguration rather
// than producing a half-usable Runner.
type RunnerBuilder struct {
	genome           domain.Genome
	hasGenome        bool
	population       Population
	populationSize   int
	hasPopulation    bool
	evaluationFunc   eda.Func
	goal             eda.Goal
	hasEvaluation    bool
	selection        Selection
	variation        Variation
	target           *float64
	verbose          bool
	workerPoolBuffer int
}

// NewRunnerBuilder returns an empty builder.
func NewRunnerBuilder() *RunnerBuilder {
	return &RunnerBuilder{}
}

// Genome sets the search space every individual is drawn from.
func (b *RunnerBuilder) Genome(g domain.Genome) *RunnerBuilder {
	b.genome = g
	b.hasGenome = true

	return b
}

// Population supplies an explicit initial population.
func (b *RunnerBuilder) Population(population Population) *RunnerBuilder {
	b.population = population
	b.hasPopulation = true

	return b
}

// RandomPopulation requests an initial population of size individuals,
// each sampled uniformly from the genome at build time.
func (b *RunnerBuilder) RandomPopulation(size int) *RunnerBuilder {
	b.populationSize = size
	b.hasPopulation = true
	b.population = nil

	return b
}

// Evaluation sets the fitness function and optimization goal.
func (b *RunnerBuilder) Evaluation(fn eda.Func, goal eda.Goal) *RunnerBuilder {
	b.evaluationFunc = fn
	b.goal = goal
	b.hasEvaluation = true

	return b
}

// Selection sets the selection operator.
func (b *RunnerBuilder) Selection(s Selection) *RunnerBuilder {
	b.selection = s

	return b
}

// Variation sets the variation operator.
func (b *RunnerBuilder) Variation(v Variation) *RunnerBuilder {
	b.variation = v

	return b
}

// Target sets a fitness value that ends the run early once met. Optional.
func (b *RunnerBuilder) Target(target float64) *RunnerBuilder {
	b.target = &target

	return b
}

// Verbose sets the runner's verbosity flag. Optional; the Runner stores
// it but prints nothing itself and does not expose it.
func (b *RunnerBuilder) Verbose(v bool) *RunnerBuilder {
	b.verbose = v

	return b
}

// Build validates that every mandatory collaborator was supplied and
// assembles the Runner, materializing a random population and spending
// no evaluations yet.
func (b *RunnerBuilder) Build() (*Runner, error) {
	if !b.hasGenome {
		return nil, fmt.Errorf("%w: missing genome", ErrConfiguration)
	}

	if !b.hasEvaluation {
		return nil, fmt.Errorf("%w: missing evaluation function", ErrConfiguration)
	}

	if !b.hasPopulation {
		return nil, fmt.Errorf("%w: missing population", ErrConfiguration)
	}

	if b.selection == nil {
		return nil, fmt.Errorf("%w: missing selection operator", ErrConfiguration)
	}

	if b.variation == nil {
		return nil, fmt.Errorf("%w: missing variation operator", ErrConfiguration)
	}

	population := b.population
	if population == nil {
		population = make(Population, b.populationSize)

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		for i := range population {
			population[i] = eda.NewIndividual(b.genome.SampleUniform(rng))
		}
	}

	return &Runner{
		genome:     b.genome,
		population: population,
		evaluator:  eda.NewEvaluator(b.evaluationFunc, b.goal),
		selection:  b.selection,
		variation:  b.variation,
		target:     b.target,
		verbose:    b.verbose,
		pool:       workpool.New(b.workerPoolBuffer),
	}, nil
}
