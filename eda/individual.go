// Package eda implements the estimation-of-distribution subsystem: the
// probabilistic models fit to a selected sub-population, the ECGA
// linkage-learning search, and the univariate/multivariate samplers that
// emit new candidates from a learned model.
package eda

import (
	"errors"

	"github.com/rustea/rustea-go/domain"
)

// ErrUnevaluated is returned by Individual.Fitness when the individual
// has never been passed to Evaluator.Evaluate.
var ErrUnevaluated = errors.New("eda: individual has no fitness yet")

// Individual is a candidate solution: an owned genotype plus an optional
// fitness value. Fitness is absent until Evaluate is called exactly
// once; reading it beforehand is a programming error surfaced as
// ErrUnevaluated rather than a panic, since a driver's termination check
// runs every generation and should handle it as a normal error path.
type Individual struct {
	Genotype domain.Genotype
	fitness  *float64
}

// NewIndividual wraps a genotype as an unevaluated individual.
func NewIndividual(g domain.Genotype) Individual {
	return Individual{Genotype: g}
}

// Fitness returns the individual's evaluated fitness, or ErrUnevaluated
// if it has not been evaluated yet.
func (idv Individual) Fitness() (float64, error) {
	if idv.fitness == nil {
		return 0, ErrUnevaluated
	}

	return *idv.fitness, nil
}

// Evaluated reports whether the individual has a fitness value.
func (idv Individual) Evaluated() bool {
	return idv.fitness != nil
}

// SetFitness records the individual's fitness. Called by Evaluator
// exactly once per individual.
func (idv *Individual) SetFitness(f float64) {
	idv.fitness = &f
}

// Clone returns a deep copy: a cloned genotype and fitness pointer
// independent of the original's.
func (idv Individual) Clone() Individual {
	clone := Individual{Genotype: idv.Genotype.Clone()}
	if idv.fitness != nil {
		f := *idv.fitness
		clone.fitness = &f
	}

	return clone
}
