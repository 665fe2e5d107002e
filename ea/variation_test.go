package ea_test

import (
	"math/rand/v2"
	"testing"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/ea"
	"github.com/rustea/rustea-go/eda"
	"github.com/rustea/rustea-go/internal/workpool"
)

func evaluatedRandomPopulation(t *testing.T, genome domain.Genome, n int, evaluator *eda.Evaluator) []eda.Individual {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2))
	pop := make([]eda.Individual, n)

	for i := range pop {
		idv := eda.NewIndividual(genome.SampleUniform(rng))
		evaluator.Evaluate(&idv)
		pop[i] = idv
	}

	return pop
}

func TestUMDAProducesEvaluatedChildrenOfPopulationSize(t *testing.T) {
	genome := domain.Uniform(domain.Bool, 16)
	evaluator := eda.NewEvaluator(oneMaxFitness, eda.Maximize)
	pop := evaluatedRandomPopulation(t, genome, 20, evaluator)

	pool := workpool.New(0)
	defer pool.Close()

	children, err := ea.UMDA{}.CreateOffspring(pool, genome, pop, evaluator)
	if err != nil {
		t.Fatalf("CreateOffspring failed: %v", err)
	}

	if len(children) != len(pop) {
		t.Fatalf("expected %d children, got %d", len(pop), len(children))
	}

	for i, c := range children {
		if !c.Evaluated() {
			t.Errorf("child %d was not evaluated", i)
		}
	}
}

func TestECGAProducesEvaluatedChildrenOfPopulationSize(t *testing.T) {
	genome := domain.Uniform(domain.Bool, 16)
	evaluator := eda.NewEvaluator(oneMaxFitness, eda.Maximize)
	pop := evaluatedRandomPopulation(t, genome, 40, evaluator)

	pool := workpool.New(0)
	defer pool.Close()

	children, err := ea.ECGA{PBest: 0.3}.CreateOffspring(pool, genome, pop, evaluator)
	if err != nil {
		t.Fatalf("CreateOffspring failed: %v", err)
	}

	if len(children) != len(pop) {
		t.Fatalf("expected %d children, got %d", len(pop), len(children))
	}

	for i, c := range children {
		if !c.Evaluated() {
			t.Errorf("child %d was not evaluated", i)
		}
	}
}

func TestUniformCrossoverEvenPopulation(t *testing.T) {
	genome := domain.Uniform(domain.Bool, 16)
	evaluator := eda.NewEvaluator(oneMaxFitness, eda.Maximize)
	pop := evaluatedRandomPopulation(t, genome, 20, evaluator)

	pool := workpool.New(0)
	defer pool.Close()

	children, err := ea.UniformCrossover{P: 0.5}.CreateOffspring(pool, genome, pop, evaluator)
	if err != nil {
		t.Fatalf("CreateOffspring failed: %v", err)
	}

	if len(children) != len(pop) {
		t.Fatalf("expected %d children from an even population, got %d", len(pop), len(children))
	}

	for i, c := range children {
		if !c.Evaluated() {
			t.Errorf("child %d was not evaluated", i)
		}
	}
}

func TestUniformCrossoverOddPopulationDropsLast(t *testing.T) {
	genome := domain.Uniform(domain.Bool, 16)
	evaluator := eda.NewEvaluator(oneMaxFitness, eda.Maximize)
	pop := evaluatedRandomPopulation(t, genome, 21, evaluator)

	pool := workpool.New(0)
	defer pool.Close()

	children, err := ea.UniformCrossover{P: 0.5}.CreateOffspring(pool, genome, pop, evaluator)
	if err != nil {
		t.Fatalf("CreateOffspring failed: %v", err)
	}

	if len(children) != 20 {
		t.Errorf("expected the trailing individual to be dropped (20 children), got %d", len(children))
	}
}

func TestOnePointAndTwoPointCrossoverProduceEvaluatedChildren(t *testing.T) {
	genome := domain.Uniform(domain.Bool, 12)
	evaluator := eda.NewEvaluator(oneMaxFitness, eda.Maximize)
	pop := evaluatedRandomPopulation(t, genome, 10, evaluator)

	pool := workpool.New(0)
	defer pool.Close()

	for _, variation := range []ea.Variation{ea.OnePointCrossover{}, ea.TwoPointCrossover{}} {
		children, err := variation.CreateOffspring(pool, genome, pop, evaluator)
		if err != nil {
			t.Fatalf("CreateOffspring failed: %v", err)
		}

		if len(children) != len(pop) {
			t.Errorf("expected %d children, got %d", len(pop), len(children))
		}

		for i, c := range children {
			if !c.Evaluated() {
				t.Errorf("child %d was not evaluated", i)
			}
		}
	}
}
