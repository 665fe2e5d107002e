package ea

import (
	"math/rand/v2"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/eda"
	"github.com/rustea/rustea-go/internal/workpool"
)

// UniformCrossover pairs adjacent individuals from a shuffled copy of
// the population and produces two children per pair by independently
// swapping each position with probability P.
type UniformCrossover struct {
	// P is the per-position swap probability. Zero value defaults to 0.5
	// via DefaultUniformCrossoverRate.
	P float64
}

// DefaultUniformCrossoverRate is the swap probability UniformCrossover
// uses when P is left at its zero value.
const DefaultUniformCrossoverRate = 0.5

func (UniformCrossover) Mutates() bool { return false }

func (c UniformCrossover) CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error) {
	p := c.P
	if p == 0 {
		p = DefaultUniformCrossoverRate
	}

	return pairwiseCrossover(pool, population, evaluator, func(rng *rand.Rand, a, b domain.Genotype) (domain.Genotype, domain.Genotype) {
		return uniformSwap(rng, a, b, p)
	})
}

func uniformSwap(rng *rand.Rand, a, b domain.Genotype, p float64) (domain.Genotype, domain.Genotype) {
	child1 := a.Clone()
	child2 := b.Clone()

	for i := 0; i < a.Len(); i++ {
		if rng.Float64() < p {
			v1, v2 := child1.Get(i), child2.Get(i)
			child1.Set(i, v2)
			child2.Set(i, v1)
		}
	}

	return child1, child2
}

// OnePointCrossover pairs adjacent individuals and swaps the suffix
// after a uniformly chosen split point in [0, L].
type OnePointCrossover struct{}

func (OnePointCrossover) Mutates() bool { return false }

func (OnePointCrossover) CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error) {
	return pairwiseCrossover(pool, population, evaluator, func(rng *rand.Rand, a, b domain.Genotype) (domain.Genotype, domain.Genotype) {
		split := int(rng.Int64N(int64(a.Len() + 1)))

		return swapRange(a, b, split, a.Len())
	})
}

// TwoPointCrossover pairs adjacent individuals and swaps the substring
// between two uniformly chosen points in [0, L] (inclusive).
type TwoPointCrossover struct{}

func (TwoPointCrossover) Mutates() bool { return false }

func (TwoPointCrossover) CreateOffspring(pool *workpool.Pool, genome domain.Genome, population Population, evaluator *eda.Evaluator) (Population, error) {
	return pairwiseCrossover(pool, population, evaluator, func(rng *rand.Rand, a, b domain.Genotype) (domain.Genotype, domain.Genotype) {
		x := int(rng.Int64N(int64(a.Len() + 1)))
		y := int(rng.Int64N(int64(a.Len() + 1)))

		if x > y {
			x, y = y, x
		}

		return swapRange(a, b, x, y)
	})
}

// swapRange returns two children with the [start, end) allele range
// swapped between a and b.
func swapRange(a, b domain.Genotype, start, end int) (domain.Genotype, domain.Genotype) {
	child1 := a.Clone()
	child2 := b.Clone()

	for i := start; i < end; i++ {
		v1, v2 := child1.Get(i), child2.Get(i)
		child1.Set(i, v2)
		child2.Set(i, v1)
	}

	return child1, child2
}

// crossoverFunc produces two children genotypes from a pair of parent
// genotypes using a per-task RNG.
type crossoverFunc func(rng *rand.Rand, a, b domain.Genotype) (domain.Genotype, domain.Genotype)

// pairwiseCrossover implements the shared pairing/evaluation contract
// all three crossover operators share: shuffle a copy of the population,
// pair adjacent individuals (dropping the last one if the population is
// odd), and produce+evaluate two children per pair in parallel.
func pairwiseCrossover(pool *workpool.Pool, population Population, evaluator *eda.Evaluator, cross crossoverFunc) (Population, error) {
	shuffled := make(Population, len(population))
	copy(shuffled, population)

	rng := newWorkerRNG()
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	pairs := len(shuffled) / 2

	children := make(Population, pairs*2)

	pool.For(pairs, func(i int) {
		taskRNG := newWorkerRNG()

		parentA := shuffled[2*i]
		parentB := shuffled[2*i+1]

		genotypeA, genotypeB := cross(taskRNG, parentA.Genotype, parentB.Genotype)

		child1 := eda.NewIndividual(genotypeA)
		child2 := eda.NewIndividual(genotypeB)

		evaluator.Evaluate(&child1)
		evaluator.Evaluate(&child2)

		children[2*i] = child1
		children[2*i+1] = child2
	})

	return children, nil
}
