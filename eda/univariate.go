package eda

import (
	"errors"
	"math/rand/v2"

	"github.com/rustea/rustea-go/domain"
)

// ErrEmptyPopulation is returned when a model is estimated from an empty
// population.
var ErrEmptyPopulation = errors.New("eda: cannot estimate a model from an empty population")

// UnivariateModel is the product of L marginal categorical
// distributions, one per genome position — the model behind UMDA.
type UnivariateModel struct {
	genome  domain.Genome
	weights [][]float64 // per-position allele counts, weights[i][k]
}

// EstimateUnivariate fits a UnivariateModel to population: for each
// position i, it counts how often each allele of genome.Gene(i).Domain()
// occurs across the population.
func EstimateUnivariate(genome domain.Genome, population []Individual) (*UnivariateModel, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	weights := make([][]float64, genome.Len())
	for i := range weights {
		weights[i] = make([]float64, genome.Gene(i).Domain().Len())
	}

	for _, idv := range population {
		for i := 0; i < genome.Len(); i++ {
			weights[i][idv.Genotype.Get(i)]++
		}
	}

	return &UnivariateModel{genome: genome, weights: weights}, nil
}

// Probability returns the estimated probability of allele a at position
// i: count(P, i, a) / |P|.
func (m *UnivariateModel) Probability(i, a int) float64 {
	total := 0.0
	for _, w := range m.weights[i] {
		total += w
	}

	if total == 0 {
		return 0
	}

	return m.weights[i][a] / total
}

// Sample emits a new genotype by drawing each position's allele
// independently from that position's categorical distribution. Fitness
// is left unset; callers must evaluate.
func (m *UnivariateModel) Sample(rng *rand.Rand) domain.Genotype {
	alleles := make([]domain.Allele, m.genome.Len())

	for i := 0; i < m.genome.Len(); i++ {
		alleles[i] = sampleWeighted(rng, m.weights[i])
	}

	return domain.NewDenseGenotype(alleles)
}

// sampleWeighted draws an index from weights with probability
// proportional to weights[k]. weights must have at least one positive
// entry (EstimateUnivariate's caller guarantees this via a well-formed
// population and domain).
func sampleWeighted(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	target := rng.Float64() * total

	cumulative := 0.0

	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}

	// Floating point rounding may leave target just past the last
	// cumulative sum; fall back to the last non-zero weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}

	return len(weights) - 1
}
