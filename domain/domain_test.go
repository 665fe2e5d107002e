package domain

import (
	"math/rand/v2"
	"testing"
)

func TestBoolDomainGetIndexOfInverse(t *testing.T) {
	d := Bool
	for i := 0; i < d.Len(); i++ {
		v, err := d.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}

		got, err := d.IndexOf(v)
		if err != nil {
			t.Fatalf("IndexOf(%v) failed: %v", v, err)
		}

		if got != i {
			t.Errorf("IndexOf(Get(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestBoolDomainOutOfRange(t *testing.T) {
	if _, err := Bool.Get(2); err == nil {
		t.Error("expected out-of-range error for Get(2)")
	}

	if _, err := Bool.IndexOf("nope"); err == nil {
		t.Error("expected not-in-domain error for non-bool value")
	}
}

func TestIntDomainGetIndexOfInverse(t *testing.T) {
	d := NewIntDomain(5, 3, 9, 3, 1)

	for i := 0; i < d.Len(); i++ {
		v, err := d.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}

		got, err := d.IndexOf(v)
		if err != nil {
			t.Fatalf("IndexOf(%v) failed: %v", v, err)
		}

		if got != i {
			t.Errorf("IndexOf(Get(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestIntDomainDedupesAndSorts(t *testing.T) {
	d := NewIntDomain(5, 3, 9, 3, 1)
	if d.Len() != 4 {
		t.Fatalf("expected 4 distinct values, got %d", d.Len())
	}

	want := []int{1, 3, 5, 9}
	for i, w := range want {
		v, _ := d.Get(i)
		if v.(int) != w {
			t.Errorf("Get(%d) = %v, want %d", i, v, w)
		}
	}
}

func TestIntDomainIndexOfMissing(t *testing.T) {
	d := NewIntDomain(1, 2, 3)
	if _, err := d.IndexOf(42); err == nil {
		t.Error("expected not-in-domain error for missing value")
	}
}

func TestDomainUnion(t *testing.T) {
	a := NewIntDomain(1, 2)
	b := NewIntDomain(2, 3)

	u := a.Union(b)
	if u.Len() != 3 {
		t.Errorf("expected union of 3 distinct values, got %d", u.Len())
	}
}

func TestDomainAdd(t *testing.T) {
	a := NewIntDomain(1, 2)

	added := a.Add(3)
	if added.Len() != 3 {
		t.Errorf("expected 3 values after Add, got %d", added.Len())
	}

	same := a.Add(1)
	if same.Len() != 2 {
		t.Errorf("expected Add of existing value to be a no-op, got %d", same.Len())
	}
}

func TestSampleUniformWithinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	d := NewIntDomain(10, 20, 30)

	for i := 0; i < 100; i++ {
		a := d.SampleUniform(rng)
		if a < 0 || a >= d.Len() {
			t.Fatalf("SampleUniform returned out-of-range index %d", a)
		}
	}
}

func TestGenomeSampleUniformLength(t *testing.T) {
	genome := Uniform(Bool, 10)
	rng := rand.New(rand.NewPCG(1, 2))

	g := genome.SampleUniform(rng)
	if g.Len() != 10 {
		t.Errorf("expected genotype length 10, got %d", g.Len())
	}
}

func TestDenseGenotypeCloneIsDeep(t *testing.T) {
	g := NewDenseGenotype([]Allele{0, 1, 0})

	clone := g.Clone()
	clone.Set(0, 1)

	if g.Get(0) == clone.Get(0) {
		t.Error("Clone should be independent of the original")
	}
}

func TestFromIteratorExactLength(t *testing.T) {
	values := []Allele{1, 0, 1}
	i := 0

	g, err := FromIterator(3, func() (Allele, bool) {
		if i >= len(values) {
			return 0, false
		}

		v := values[i]
		i++

		return v, true
	})
	if err != nil {
		t.Fatalf("FromIterator failed: %v", err)
	}

	if g.Len() != 3 {
		t.Errorf("expected length 3, got %d", g.Len())
	}
}

func TestFromIteratorTooFewFails(t *testing.T) {
	_, err := FromIterator(3, func() (Allele, bool) { return 0, false })
	if err == nil {
		t.Error("expected error when iterator exhausted early")
	}
}
