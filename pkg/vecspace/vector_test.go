package vecspace

import "testing"

func TestNewWithFeatures(t *testing.T) {
	v := NewWithFeatures(Noun, Singular)
	if !v.Isa(Noun) || !v.Isa(Singular) {
		t.Fatalf("expected noun and singular set, got %+v", v)
	}
	if v.Isa(Plural) {
		t.Fatalf("expected plural unset")
	}
}

func TestIsaVsGet(t *testing.T) {
	v := New()
	v.Set(Red, 0.5)
	if v.Get(Red) != 0.5 {
		t.Fatalf("Get(Red) = %v, want 0.5", v.Get(Red))
	}
	if !v.Isa(Red) {
		t.Fatalf("Isa(Red) should be true for positive intensity")
	}
	v.Set(Red, 0)
	if v.Isa(Red) {
		t.Fatalf("Isa(Red) should be false for zero intensity")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	base := NewWithFeatures(Adj)
	base.Set(ScaleX, 2.0)

	cp := base.Copy()
	cp.Set(ScaleX, 99.0)

	if base.Get(ScaleX) != 2.0 {
		t.Fatalf("mutating a copy mutated the original: %v", base.Get(ScaleX))
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := New()
	a.Set(ScaleX, 1.0)
	b := New()
	b.Set(ScaleX, 2.0)

	sum := a.Add(b)
	if sum.Get(ScaleX) != 3.0 {
		t.Fatalf("sum = %v, want 3.0", sum.Get(ScaleX))
	}
	if a.Get(ScaleX) != 1.0 || b.Get(ScaleX) != 2.0 {
		t.Fatalf("Add mutated an operand")
	}
}

func TestScaleDimsOnlyAffectsNamedDims(t *testing.T) {
	v := NewWithFeatures(Adj)
	v.Set(ScaleX, 2.0)
	v.Set(Number, 5.0)

	boosted := v.ScaleDims(1.5, ComparativeBoostDims...)
	if boosted.Get(ScaleX) != 3.0 {
		t.Fatalf("ScaleX = %v, want 3.0", boosted.Get(ScaleX))
	}
	if boosted.Get(Number) != 5.0 {
		t.Fatalf("Number should be untouched by ScaleDims, got %v", boosted.Get(Number))
	}
}

func TestSemanticSimilarityIgnoresUnrelatedDims(t *testing.T) {
	box := NewWithFeatures(Noun)
	box.Set(Red, 1.0)
	box.Set(Det, 1.0) // unrelated to the similarity subspace

	cube := NewWithFeatures(Noun)
	cube.Set(Red, 1.0)

	sim := SemanticSimilarity(box, cube)
	if sim <= 0.99 {
		t.Fatalf("expected near-identical similarity, got %v", sim)
	}
}

func TestSemanticSimilarityZeroMagnitude(t *testing.T) {
	if SemanticSimilarity(New(), New()) != 0 {
		t.Fatalf("expected 0 similarity for zero vectors")
	}
}
