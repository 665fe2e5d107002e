package eda

import (
	"cmp"
	"sync/atomic"

	"github.com/rustea/rustea-go/domain"
)

// Goal selects whether an Evaluator treats lower or higher fitness as
// better.
type Goal int

const (
	// Minimize orders fitness naturally: lower is better.
	Minimize Goal = iota
	// Maximize reverses the natural order: higher is better.
	Maximize
)

// Func is a user-supplied fitness function: a pure mapping from a
// genotype to a fitness value. It must be safe to call concurrently from
// multiple goroutines — the evaluator calls it from worker-pool
// goroutines during parallel population evaluation.
type Func func(domain.Genotype) float64

// Evaluator applies a fitness function to individuals, records the
// result, and counts calls. The evaluation counter is the sole piece of
// shared mutable state in the EA runtime, and is kept as an atomic int64
// rather than a mutex-guarded counter since workers only ever increment
// it.
type Evaluator struct {
	fn      Func
	goal    Goal
	counter atomic.Int64
}

// NewEvaluator builds an Evaluator around fn with the given optimization
// goal.
func NewEvaluator(fn Func, goal Goal) *Evaluator {
	return &Evaluator{fn: fn, goal: goal}
}

// Evaluate computes fn's value on individual's genotype, stores it,
// increments the evaluation counter, and returns the value.
func (e *Evaluator) Evaluate(individual *Individual) float64 {
	fitness := e.fn(individual.Genotype)
	individual.SetFitness(fitness)
	e.counter.Add(1)

	return fitness
}

// Evaluations returns the number of Evaluate calls made so far. Safe to
// call concurrently with Evaluate.
func (e *Evaluator) Evaluations() int {
	return int(e.counter.Load())
}

// Cmp orders two fitness values such that the better one compares less,
// honoring the evaluator's goal: under Minimize this is the natural
// order, under Maximize it is reversed. Inputs are assumed non-NaN.
func (e *Evaluator) Cmp(a, b float64) int {
	c := cmp.Compare(a, b)
	if e.goal == Maximize {
		return -c
	}

	return c
}

// Goal returns the evaluator's optimization direction.
func (e *Evaluator) Goal() Goal { return e.goal }
