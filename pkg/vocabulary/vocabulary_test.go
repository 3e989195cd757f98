package vocabulary

import (
	"errors"
	"testing"

	"github.com/go-latn/latn/pkg/vecspace"
)

func TestVectorFromWordDirectLookup(t *testing.T) {
	v := DefaultVocabulary()
	got, err := v.VectorFromWord("cube")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Isa(vecspace.Noun) {
		t.Fatalf("expected noun")
	}
	if got.Word != "cube" {
		t.Fatalf("Word = %q, want cube", got.Word)
	}
}

func TestVectorFromWordOwnershipOfCopies(t *testing.T) {
	v := DefaultVocabulary()
	got, err := v.VectorFromWord("red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.Set(vecspace.Red, 0.0)

	again, err := v.VectorFromWord("red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Get(vecspace.Red) != 1.0 {
		t.Fatalf("mutating a looked-up vector mutated the stored entry: %v", again.Get(vecspace.Red))
	}
}

func TestVectorFromWordPluralNoun(t *testing.T) {
	v := DefaultVocabulary()
	got, err := v.VectorFromWord("spheres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Isa(vecspace.Plural) || got.Isa(vecspace.Singular) {
		t.Fatalf("expected plural=1, singular=0, got plural=%v singular=%v", got.Get(vecspace.Plural), got.Get(vecspace.Singular))
	}

	base, _ := v.VectorFromWord("sphere")
	if got.Get(vecspace.ScaleX) != base.Get(vecspace.ScaleX) {
		t.Fatalf("plural form diverged from base on unrelated dims")
	}
}

func TestVectorFromWordComparativeAdjective(t *testing.T) {
	v := New()
	v.Define("big", vecScale(2.0, 2.0, 2.0, vecspace.Adj))
	got, err := v.VectorFromWord("bigger")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Isa(vecspace.Comp) {
		t.Fatalf("expected comp=1")
	}
	base, _ := v.VectorFromWord("big")
	if got.Get(vecspace.ScaleX) != base.Get(vecspace.ScaleX)*1.2 {
		t.Fatalf("scaleX = %v, want %v", got.Get(vecspace.ScaleX), base.Get(vecspace.ScaleX)*1.2)
	}
}

func TestVectorFromWordSuperlativeIrregular(t *testing.T) {
	v := DefaultVocabulary()
	v.Define("good", vecspace.NewWithFeatures(vecspace.Adj))
	got, err := v.VectorFromWord("best")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Isa(vecspace.Super) {
		t.Fatalf("expected super=1")
	}
}

func TestVectorFromWordUnknown(t *testing.T) {
	v := DefaultVocabulary()
	_, err := v.VectorFromWord("glorp")
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
}

func TestDefineAddsMultiWordEntry(t *testing.T) {
	v := DefaultVocabulary()
	v.Define("sky blue", vecspace.NewWithFeatures(vecspace.Adj))
	matches := v.MatchCompounds([]string{"draw", "a", "sky", "blue", "box"}, 2)
	if len(matches) == 0 || matches[0].Key != "sky blue" {
		t.Fatalf("expected 'sky blue' as longest match, got %+v", matches)
	}
}

func TestMatchCompoundsLongestFirst(t *testing.T) {
	v := DefaultVocabulary()
	v.Define("light", vecspace.NewWithFeatures(vecspace.Adj))
	v.Define("light house", vecspace.NewWithFeatures(vecspace.Noun))
	v.Define("house", vecspace.NewWithFeatures(vecspace.Noun))

	matches := v.MatchCompounds([]string{"a", "light", "house", "at"}, 1)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches (compound + single), got %d: %+v", len(matches), matches)
	}
	if matches[0].WordCount != 2 {
		t.Fatalf("expected longest match first, got %+v", matches[0])
	}
}

func TestIsFunctionWord(t *testing.T) {
	v := New()
	if !v.IsFunctionWord("the") {
		t.Fatalf("expected 'the' to be a function word")
	}
	if v.IsFunctionWord("sphere") {
		t.Fatalf("did not expect 'sphere' to be a function word")
	}
}
