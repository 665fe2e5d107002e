package eda

import "github.com/rustea/rustea-go/domain"

// LearnLinkage runs ECGA's greedy factorization search starting from the
// univariate factorization over genome, fitting and MDL-scoring
// candidate models from population at each round.
//
// Each round tries every pairwise merge of the current best factorization
// and keeps the merge with the lowest combined complexity if it scores no
// worse than the current best, stopping once every merge scores worse:
//
//	best = fit(F0)
//	loop {
//	    candidate = argmin_{F' in F.join_all()} fit(F')
//	    if CC(candidate) <= CC(best) { best = candidate } else { break }
//	}
func LearnLinkage(genome domain.Genome, population []Individual) (*MultivariateModel, error) {
	best, err := EstimateMultivariate(genome, population, Univariate(genome.Len()))
	if err != nil {
		return nil, err
	}

	for {
		var candidate *MultivariateModel

		for next := range best.Factorization().JoinAll() {
			model, err := EstimateMultivariate(genome, population, next)
			if err != nil {
				return nil, err
			}

			if candidate == nil || model.CombinedComplexity() < candidate.CombinedComplexity() {
				candidate = model
			}
		}

		if candidate == nil {
			// Len() == 1: JoinAll is empty, nothing left to merge.
			break
		}

		if candidate.CombinedComplexity() <= best.CombinedComplexity() {
			best = candidate
		} else {
			break
		}
	}

	return best, nil
}
