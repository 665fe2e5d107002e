package ea

import (
	"slices"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/eda"
	"github.com/rustea/rustea-go/internal/workpool"
)

// Variation produces a generation's worth of offspring from a
// population. Implementations must evaluate every child exactly once
// before returning it.
type Variation interface {
	CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error)
	// Mutates reports whether the operator introduces stochastic
	// perturbation unrelated to crossover. None of the operators in this
	// package do.
	Mutates() bool
}

// UMDA fits a univariate model to the whole input population and
// samples a same-size generation of children from it.
type UMDA struct{}

func (UMDA) Mutates() bool { return false }

func (UMDA) CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error) {
	model, err := eda.EstimateUnivariate(genome, population)
	if err != nil {
		return nil, err
	}

	children := make(Population, len(population))

	pool.For(len(population), func(i int) {
		rng := newWorkerRNG()
		idv := eda.NewIndividual(model.Sample(rng))
		evaluator.Evaluate(&idv)
		children[i] = idv
	})

	return children, nil
}

// ECGA selects the top pBest fraction of the population, runs greedy
// MDL-guided linkage learning on it, and samples a same-size generation
// of children from the resulting multivariate model.
type ECGA struct {
	// PBest is the fraction of the population retained for model
	// fitting, in (0, 1]. The bundled scenarios use 0.3.
	PBest float64
}

func (ECGA) Mutates() bool { return false }

func (e ECGA) CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error) {
	selected := selectTopPBest(population, evaluator, e.PBest)

	model, err := eda.LearnLinkage(genome, selected)
	if err != nil {
		return nil, err
	}

	children := make(Population, len(population))

	pool.For(len(population), func(i int) {
		rng := newWorkerRNG()
		idv := eda.NewIndividual(model.Sample(rng))
		evaluator.Evaluate(&idv)
		children[i] = idv
	})

	return children, nil
}

// selectTopPBest returns the best pBest*len(population) individuals
// (rounded down) under evaluator's ordering, at least one.
func selectTopPBest(population Population, evaluator *eda.Evaluator, pBest float64) Population {
	sorted := make(Population, len(population))
	copy(sorted, population)

	sortByFitness(sorted, evaluator)

	n := int(pBest * float64(len(sorted)))
	if n < 1 {
		n = 1
	}

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n]
}

// sortByFitness stably sorts individuals best-first under evaluator's
// comparator.
func sortByFitness(individuals []eda.Individual, evaluator *eda.Evaluator) {
	slices.SortStableFunc(individuals, func(a, b eda.Individual) int {
		af, aErr := a.Fitness()
		bf, bErr := b.Fitness()

		switch {
		case aErr != nil && bErr != nil:
			return 0
		case aErr != nil:
			return 1
		case bErr != nil:
			return -1
		default:
			return evaluator.Cmp(af, bf)
		}
	})
}
