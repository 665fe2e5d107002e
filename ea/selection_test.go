package ea_test

import (
	"errors"
	"testing"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/ea"
	"github.com/rustea/rustea-go/eda"
)

func evaluatedPopulation(n int, fitness func(i int) float64) []eda.Individual {
	pop := make([]eda.Individual, n)

	for i := range pop {
		idv := eda.NewIndividual(domain.NewDenseGenotype([]int{i}))
		idv.SetFitness(fitness(i))
		pop[i] = idv
	}

	return pop
}

func TestNoSelectionKeepsPopulation(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)
	pop := evaluatedPopulation(5, func(i int) float64 { return float64(i) })
	offspring := evaluatedPopulation(5, func(i int) float64 { return float64(100 + i) })

	next, err := ea.NoSelection{}.Select(pop, offspring, evaluator)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if len(next) != len(pop) {
		t.Fatalf("expected population of %d, got %d", len(pop), len(next))
	}

	f, _ := next[0].Fitness()
	if f != 0 {
		t.Errorf("expected population to be retained unchanged, got fitness %v at index 0", f)
	}
}

func TestCopyOffspringReplacesPopulation(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)
	pop := evaluatedPopulation(5, func(i int) float64 { return float64(i) })
	offspring := evaluatedPopulation(5, func(i int) float64 { return float64(100 + i) })

	next, err := ea.CopyOffspring{}.Select(pop, offspring, evaluator)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	f, _ := next[0].Fitness()
	if f != 100 {
		t.Errorf("expected offspring to replace population, got fitness %v", f)
	}
}

func TestCopyOffspringSizeMismatchFails(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)
	pop := evaluatedPopulation(5, func(i int) float64 { return float64(i) })
	offspring := evaluatedPopulation(3, func(i int) float64 { return float64(i) })

	if _, err := (ea.CopyOffspring{}).Select(pop, offspring, evaluator); !errors.Is(err, ea.ErrOffspringSizeMismatch) {
		t.Errorf("expected ErrOffspringSizeMismatch, got %v", err)
	}
}

func TestTruncationKeepsBestAndSize(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)

	pop := evaluatedPopulation(5, func(i int) float64 { return float64(10 + i) }) // 10..14
	offspring := evaluatedPopulation(5, func(i int) float64 { return float64(i) }) // 0..4, all better

	next, err := ea.Truncation{}.Select(pop, offspring, evaluator)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if len(next) != len(pop) {
		t.Fatalf("expected population of %d, got %d", len(pop), len(next))
	}

	for _, idv := range next {
		f, _ := idv.Fitness()
		if f >= 10 {
			t.Errorf("expected only offspring (fitness < 10) to survive truncation, got %v", f)
		}
	}
}

// TestTournamentPoolSizeMismatch checks that a tournament group size
// that doesn't evenly divide the combined pool is rejected rather than
// silently dropping or duplicating individuals.
func TestTournamentPoolSizeMismatch(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)

	pop := evaluatedPopulation(10, func(i int) float64 { return float64(i) })
	offspring := evaluatedPopulation(10, func(i int) float64 { return float64(i) })

	tournament := ea.Tournament{K: 3, IncludeParents: true}

	if _, err := tournament.Select(pop, offspring, evaluator); !errors.Is(err, ea.ErrPoolSizeMismatch) {
		t.Errorf("expected ErrPoolSizeMismatch, got %v", err)
	}
}

func TestTournamentPreservesPopulationSize(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)

	pop := evaluatedPopulation(10, func(i int) float64 { return float64(i) })
	offspring := evaluatedPopulation(10, func(i int) float64 { return float64(i) })

	// pool = offspring only (10), k=2: pool%k==0, k*|pop|=20 divisible by 10.
	tournament := ea.Tournament{K: 2, IncludeParents: false}

	next, err := tournament.Select(pop, offspring, evaluator)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if len(next) != len(pop) {
		t.Errorf("expected population of %d, got %d", len(pop), len(next))
	}
}

func TestBestAndWorstIndividual(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Maximize)
	pop := evaluatedPopulation(5, func(i int) float64 { return float64(i) })

	best, ok := ea.BestIndividual(pop, evaluator)
	if !ok {
		t.Fatal("expected a best individual")
	}

	bf, _ := best.Fitness()
	if bf != 4 {
		t.Errorf("expected best fitness 4 under Maximize, got %v", bf)
	}

	worst, ok := ea.WorstIndividual(pop, evaluator)
	if !ok {
		t.Fatal("expected a worst individual")
	}

	wf, _ := worst.Fitness()
	if wf != 0 {
		t.Errorf("expected worst fitness 0 under Maximize, got %v", wf)
	}
}

func TestBestIndividualEmptyPopulation(t *testing.T) {
	evaluator := eda.NewEvaluator(func(domain.Genotype) float64 { return 0 }, eda.Minimize)

	if _, ok := ea.BestIndividual(nil, evaluator); ok {
		t.Error("expected no best individual in an empty population")
	}
}
