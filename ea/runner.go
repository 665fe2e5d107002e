package ea

import (
	"context"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/eda"
	"github.com/rustea/rustea-go/internal/workpool"
)

// Runner drives the generational loop: evaluate, check termination,
// variate, select.
type Runner struct {
	genome     domain.Genome
	population Population
	evaluator  *eda.Evaluator
	selection  Selection
	variation  Variation
	target     *float64
	verbose    bool
	pool       *workpool.Pool
	started    bool
}

// Run evaluates the initial population on its first call, then iterates
// variation/selection until budget evaluations have been spent or the
// configured target has been met. Run may be called again with a larger
// budget to resume the same run — the initial-population evaluation
// happens only once per Runner.
func (r *Runner) Run(ctx context.Context, budget int) (Status, error) {
	if !r.started {
		r.started = true

		r.pool.For(len(r.population), func(i int) {
			r.evaluator.Evaluate(&r.population[i])
		})
	}

	for r.evaluator.Evaluations() < budget {
		select {
		case <-ctx.Done():
			return Status{Kind: BudgetReached, Evaluations: r.evaluator.Evaluations()}, ctx.Err()
		default:
		}

		if r.target != nil {
			if best, ok := BestIndividual(r.population, r.evaluator); ok {
				bestFitness, err := best.Fitness()
				if err == nil && r.evaluator.Cmp(bestFitness, *r.target) <= 0 {
					return Status{Kind: TargetReached, Evaluations: r.evaluator.Evaluations()}, nil
				}
			}
		}

		offspring, err := r.variation.CreateOffspring(r.pool, r.genome, r.population, r.evaluator)
		if err != nil {
			return Status{}, err
		}

		next, err := r.selection.Select(r.population, offspring, r.evaluator)
		if err != nil {
			return Status{}, err
		}

		r.population = next
	}

	return Status{Kind: BudgetReached, Evaluations: r.evaluator.Evaluations()}, nil
}

// Population returns the current population. Callers must not mutate
// the returned slice's individuals' fitness directly.
func (r *Runner) Population() Population { return r.population }

// Evaluator returns the runner's fitness evaluator.
func (r *Runner) Evaluator() *eda.Evaluator { return r.evaluator }

// Close releases the runner's worker pool.
func (r *Runner) Close() { r.pool.Close() }
