package ea

import (
	"fmt"

	"github.com/rustea/rustea-go/eda"
)

// Selection folds a population and a generation of offspring into the
// next population. Implementations must leave len(population) unchanged.
type Selection interface {
	Select(population, offspring Population, evaluator *eda.Evaluator) (Population, error)
}

// NoSelection discards offspring and keeps the population as-is.
type NoSelection struct{}

func (NoSelection) Select(population, offspring Population, evaluator *eda.Evaluator) (Population, error) {
	next := make(Population, len(population))
	copy(next, population)

	return next, nil
}

// CopyOffspring replaces the population with offspring, which must be
// the same size.
type CopyOffspring struct{}

func (CopyOffspring) Select(population, offspring Population, evaluator *eda.Evaluator) (Population, error) {
	if len(offspring) != len(population) {
		return nil, fmt.Errorf("%w: offspring has %d individuals, population has %d", ErrOffspringSizeMismatch, len(offspring), len(population))
	}

	next := make(Population, len(offspring))
	copy(next, offspring)

	return next, nil
}

// Truncation concatenates offspring into the population, sorts stably by
// fitness, and truncates back to the original population size.
type Truncation struct{}

func (Truncation) Select(population, offspring Population, evaluator *eda.Evaluator) (Population, error) {
	pooled := make(Population, 0, len(population)+len(offspring))
	pooled = append(pooled, population...)
	pooled = append(pooled, offspring...)

	sortByFitness(pooled, evaluator)

	next := make(Population, len(population))
	copy(next, pooled[:len(population)])

	return next, nil
}

// Tournament forms a pool of offspring (plus population, if
// IncludeParents) and repeatedly shuffles it into groups of K,
// advancing each group's best individual, until the next population is
// full.
type Tournament struct {
	K              int
	IncludeParents bool
}

func (t Tournament) Select(population, offspring Population, evaluator *eda.Evaluator) (Population, error) {
	pool := make(Population, 0, len(offspring)+len(population))
	pool = append(pool, offspring...)

	if t.IncludeParents {
		pool = append(pool, population...)
	}

	poolSize := len(pool)
	popSize := len(population)

	if t.K <= 0 || poolSize%t.K != 0 {
		return nil, fmt.Errorf("%w: pool size %d is not divisible by k=%d", ErrPoolSizeMismatch, poolSize, t.K)
	}

	if (t.K*popSize)%poolSize != 0 {
		return nil, fmt.Errorf("%w: k*|population| (%d) is not divisible by pool size %d", ErrPoolSizeMismatch, t.K*popSize, poolSize)
	}

	rounds := (t.K * popSize) / poolSize
	groupsPerRound := poolSize / t.K

	next := make(Population, 0, popSize)
	rng := newWorkerRNG()

	shuffled := make(Population, poolSize)

	for r := 0; r < rounds; r++ {
		copy(shuffled, pool)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for g := 0; g < groupsPerRound; g++ {
			group := shuffled[g*t.K : (g+1)*t.K]

			winner, ok := BestIndividual(group, evaluator)
			if !ok {
				winner = group[0]
			}

			next = append(next, winner)

			if len(next) == popSize {
				return next, nil
			}
		}
	}

	return next, nil
}
