// Package ea implements the evolutionary driver: population bookkeeping,
// the generational loop, and the variation/selection operators that
// dispatch into the eda package's models.
package ea

import "github.com/rustea/rustea-go/eda"

// Population is a fixed-size ordered collection of individuals. Its
// length never changes between generations of a run.
type Population []eda.Individual

// BestIndividual scans population with evaluator's comparator and
// returns the best evaluated individual found, or false if population
// holds no evaluated individual.
func BestIndividual(population Population, evaluator *eda.Evaluator) (eda.Individual, bool) {
	return extremum(population, evaluator, func(c int) bool { return c < 0 })
}

// WorstIndividual scans population with evaluator's comparator and
// returns the worst evaluated individual found, or false if population
// holds no evaluated individual.
func WorstIndividual(population Population, evaluator *eda.Evaluator) (eda.Individual, bool) {
	return extremum(population, evaluator, func(c int) bool { return c > 0 })
}

// extremum folds population down to a single individual, keeping
// candidate over current whenever better(evaluator.Cmp(candidate, current))
// holds. Unevaluated individuals are skipped.
func extremum(population Population, evaluator *eda.Evaluator, better func(cmp int) bool) (eda.Individual, bool) {
	var (
		result  eda.Individual
		fitness float64
		found   bool
	)

	for _, idv := range population {
		f, err := idv.Fitness()
		if err != nil {
			continue
		}

		if !found || better(evaluator.Cmp(f, fitness)) {
			result, fitness, found = idv, f, true
		}
	}

	return result, found
}
