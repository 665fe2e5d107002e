package eda

import (
	"math"
	"math/rand/v2"

	"github.com/rustea/rustea-go/domain"
)

// MDLWeight is the alpha coefficient in CombinedComplexity = CPC +
// alpha*MC. It is an untuned constant; future tuning is out of scope.
const MDLWeight = 0.2

// probabilityTolerance is the threshold below which an entry in a
// factor's probability vector is treated as zero for entropy purposes.
const probabilityTolerance = 1e-5

// MultivariateModel is the product of |F| joint categorical
// distributions, one per factor, fit to a population and scored under
// the MDL criterion that drives ECGA's linkage search.
type MultivariateModel struct {
	genome        domain.Genome
	factorization Factorization
	probabilities [][]float64 // probabilities[f][k], one vector per factor
	sampleSize    int
}

// EstimateMultivariate fits a MultivariateModel to population under
// factorization: for each factor, it enumerates joint outcomes
// lexicographically over the Cartesian product of the factor's
// domains and counts how often each outcome occurs.
func EstimateMultivariate(genome domain.Genome, population []Individual, factorization Factorization) (*MultivariateModel, error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	factors := factorization.Factors()
	counts := make([][]float64, len(factors))

	for fi, factor := range factors {
		counts[fi] = make([]float64, factorOutcomeCount(genome, factor))
	}

	for _, idv := range population {
		for fi, factor := range factors {
			idx := jointIndex(genome, factor, idv.Genotype)
			counts[fi][idx]++
		}
	}

	n := float64(len(population))
	probabilities := make([][]float64, len(factors))

	for fi, c := range counts {
		probs := make([]float64, len(c))
		for k, cnt := range c {
			probs[k] = cnt / n
		}

		probabilities[fi] = probs
	}

	return &MultivariateModel{
		genome:        genome,
		factorization: factorization,
		probabilities: probabilities,
		sampleSize:    len(population),
	}, nil
}

// factorOutcomeCount returns the product of domain sizes across a
// factor's positions: the number of distinct joint outcomes.
func factorOutcomeCount(genome domain.Genome, factor []int) int {
	n := 1
	for _, idx := range factor {
		n *= genome.Gene(idx).Domain().Len()
	}

	return n
}

// jointIndex computes the linear index of a genotype's alleles at a
// factor's positions:
// sum_j index_of(i_j, a_j) * prod_{m<j} |domain(i_m)|.
func jointIndex(genome domain.Genome, factor []int, g domain.Genotype) int {
	idx := 0
	stride := 1

	for _, pos := range factor {
		allele := g.Get(pos)
		idx += allele * stride
		stride *= genome.Gene(pos).Domain().Len()
	}

	return idx
}

// unjointIndex is the inverse of jointIndex: it unpacks a linear index
// back into per-position allele indices for a factor.
func unjointIndex(genome domain.Genome, factor []int, idx int) []domain.Allele {
	alleles := make([]domain.Allele, len(factor))

	for i, pos := range factor {
		size := genome.Gene(pos).Domain().Len()
		alleles[i] = idx % size
		idx /= size
	}

	return alleles
}

// Sample draws a new genotype: each factor is sampled independently from
// its joint categorical, then unpacked back into per-position alleles.
func (m *MultivariateModel) Sample(rng *rand.Rand) domain.Genotype {
	alleles := make([]domain.Allele, m.genome.Len())

	for fi, factor := range m.factorization.Factors() {
		outcome := sampleWeighted(rng, m.probabilities[fi])
		factorAlleles := unjointIndex(m.genome, factor, outcome)

		for i, pos := range factor {
			alleles[pos] = factorAlleles[i]
		}
	}

	return domain.NewDenseGenotype(alleles)
}

// Factorization returns the factorization the model was fit under.
func (m *MultivariateModel) Factorization() Factorization {
	return m.factorization
}

// Probabilities returns the joint outcome probability vector for factor
// fi. Callers must not mutate the returned slice.
func (m *MultivariateModel) Probabilities(fi int) []float64 {
	return m.probabilities[fi]
}

// CompressedPopulationComplexity is CPC = N * sum_f H(p_f), where H is
// Shannon entropy in bits and entries below probabilityTolerance are
// skipped.
func (m *MultivariateModel) CompressedPopulationComplexity() float64 {
	entropySum := 0.0

	for _, probs := range m.probabilities {
		for _, p := range probs {
			if math.Abs(p) < probabilityTolerance {
				continue
			}

			entropySum += -p * math.Log2(p)
		}
	}

	return float64(m.sampleSize) * entropySum
}

// ModelComplexity is MC = log2(N+1) * sum_f (|p_f| - 1).
func (m *MultivariateModel) ModelComplexity() float64 {
	outcomeSum := 0
	for _, probs := range m.probabilities {
		outcomeSum += len(probs) - 1
	}

	return math.Log2(float64(m.sampleSize+1)) * float64(outcomeSum)
}

// CombinedComplexity is CC = CPC + MDLWeight*MC, the score ECGA's greedy
// linkage search minimizes.
func (m *MultivariateModel) CombinedComplexity() float64 {
	return m.CompressedPopulationComplexity() + MDLWeight*m.ModelComplexity()
}
