package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Gene is a position's domain descriptor: immutable once constructed.
type Gene struct {
	domain Domain
}

// NewGene wraps a Domain as a Gene.
func NewGene(d Domain) Gene { return Gene{domain: d} }

// Domain returns the gene's value set.
func (g Gene) Domain() Domain { return g.domain }

// SampleUniform draws an allele uniformly from the gene's domain.
func (g Gene) SampleUniform(rng *rand.Rand) Allele {
	return g.domain.SampleUniform(rng)
}

// Genome is the full specification of an L-variable search space: an
// ordered sequence of L Genes, fixed after construction.
type Genome struct {
	genes []Gene
}

// NewGenome builds a genome from an explicit gene-per-position list.
func NewGenome(genes ...Gene) Genome {
	return Genome{genes: genes}
}

// Uniform builds a genome of length n where every position shares the
// same domain.
func Uniform(d Domain, n int) Genome {
	genes := make([]Gene, n)
	for i := range genes {
		genes[i] = NewGene(d)
	}

	return Genome{genes: genes}
}

// Len returns the number of positions in the search space.
func (g Genome) Len() int { return len(g.genes) }

// Gene returns the descriptor for position i.
func (g Genome) Gene(i int) Gene { return g.genes[i] }

// SampleUniform draws a genotype whose every position is drawn
// independently and uniformly from its gene's domain.
func (g Genome) SampleUniform(rng *rand.Rand) Genotype {
	alleles := make([]Allele, len(g.genes))
	for i, gene := range g.genes {
		alleles[i] = gene.SampleUniform(rng)
	}

	return NewDenseGenotype(alleles)
}

// ErrGenotypeLength is returned when a genotype is constructed with a
// length that does not match the genome it is meant to satisfy.
var ErrGenotypeLength = errors.New("domain: genotype length mismatch")

// Genotype is an assignment of alleles to each of a genome's L
// positions. Element access is O(1); Clone is deep.
type Genotype interface {
	Len() int
	Get(i int) Allele
	Set(i int, a Allele)
	Clone() Genotype
}

// DenseGenotype is the default Genotype implementation: a flat slice of
// allele indices, one per position.
type DenseGenotype struct {
	alleles []Allele
}

// NewDenseGenotype wraps a slice of alleles as a genotype. The slice is
// taken by reference; callers that need independence should Clone.
func NewDenseGenotype(alleles []Allele) *DenseGenotype {
	return &DenseGenotype{alleles: alleles}
}

// FromIterator constructs a DenseGenotype from exactly n alleles
// produced by next(), failing if next is exhausted early.
func FromIterator(n int, next func() (Allele, bool)) (*DenseGenotype, error) {
	alleles := make([]Allele, n)

	for i := range n {
		a, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: expected %d alleles, got %d", ErrGenotypeLength, n, i)
		}

		alleles[i] = a
	}

	return NewDenseGenotype(alleles), nil
}

func (g *DenseGenotype) Len() int { return len(g.alleles) }

func (g *DenseGenotype) Get(i int) Allele { return g.alleles[i] }

func (g *DenseGenotype) Set(i int, a Allele) { g.alleles[i] = a }

func (g *DenseGenotype) Clone() Genotype {
	cp := make([]Allele, len(g.alleles))
	copy(cp, g.alleles)

	return &DenseGenotype{alleles: cp}
}
