package scenario_test

import (
	"testing"

	"github.com/rustea/rustea-go/domain"
	"github.com/rustea/rustea-go/internal/scenario"
)

func TestOneMaxFitnessCountsTrueBits(t *testing.T) {
	s := scenario.OneMax()

	alleles := make([]int, s.Genome.Len())
	for i := range alleles {
		if i%2 == 0 {
			alleles[i] = 1
		}
	}

	got := s.Fitness(domain.NewDenseGenotype(alleles))
	want := float64(len(alleles)) / 2

	if got != want {
		t.Errorf("OneMax fitness = %v, want %v", got, want)
	}
}

func TestTrapFitnessRewardsAllFalseBlock(t *testing.T) {
	s := scenario.Trap()

	alleles := make([]int, s.Genome.Len())

	got := s.Fitness(domain.NewDenseGenotype(alleles))
	want := 4.0 * 10 // 10 blocks, all-false each worth 4

	if got != want {
		t.Errorf("Trap fitness for all-false genotype = %v, want %v", got, want)
	}
}

func TestTrapFitnessRewardsPartialOnes(t *testing.T) {
	s := scenario.Trap()

	alleles := make([]int, s.Genome.Len())
	alleles[0] = 1 // one true bit in the first block, rest all-false

	got := s.Fitness(domain.NewDenseGenotype(alleles))
	want := 1.0 + 4.0*9 // first block scores its count (1), the rest score 4 each

	if got != want {
		t.Errorf("Trap fitness = %v, want %v", got, want)
	}
}

func TestByNameKnownAndUnknown(t *testing.T) {
	if _, ok := scenario.ByName("onemax"); !ok {
		t.Error("expected onemax to be a known scenario")
	}

	if _, ok := scenario.ByName("trap"); !ok {
		t.Error("expected trap to be a known scenario")
	}

	if _, ok := scenario.ByName("nonexistent"); ok {
		t.Error("expected an unknown scenario name to fail")
	}
}
