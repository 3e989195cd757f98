package phrase

import (
	"errors"
	"testing"

	"github.com/go-latn/latn/pkg/vecspace"
)

func adjWithScaleX(x float64) vecspace.Vector {
	v := vecspace.NewWithFeatures(vecspace.Adj)
	v.Set(vecspace.ScaleX, x)
	return v
}

func TestNounPhraseVectorComposition(t *testing.T) {
	det := vecspace.NewWithFeatures(vecspace.Det, vecspace.Singular)
	noun := vecspace.NewWithFeatures(vecspace.Noun)
	noun.Word = "cube"

	np := &NounPhrase{
		Det:        &det,
		Adjectives: []vecspace.Vector{adjWithScaleX(2.0)},
		Noun:       noun,
	}
	v := np.Vector()
	if !v.Isa(vecspace.NP) {
		t.Fatalf("expected NP dim set")
	}
	if !v.Isa(vecspace.Det) || !v.Isa(vecspace.Noun) {
		t.Fatalf("expected det and noun contributions merged")
	}
	if v.Get(vecspace.ScaleX) != 2.0 {
		t.Fatalf("adjective contribution missing: %v", v.Get(vecspace.ScaleX))
	}
}

func TestSceneObjectPhrasePreconditionPanics(t *testing.T) {
	np := &NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)}
	so := &SceneObjectPhrase{NounPhrase: np}

	if so.IsResolved() {
		t.Fatalf("fresh SceneObjectPhrase must not be resolved")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling GetResolvedObject before IsResolved")
		}
	}()
	so.GetResolvedObject()
}

type fakeEntity struct{ id, name string }

func (f fakeEntity) ID() string   { return f.id }
func (f fakeEntity) Name() string { return f.name }

func TestSceneObjectPhraseResolve(t *testing.T) {
	np := &NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)}
	so := &SceneObjectPhrase{NounPhrase: np}
	so.ResolveToSceneObject(fakeEntity{id: "cube_1", name: "cube"})

	if !so.IsResolved() {
		t.Fatalf("expected resolved")
	}
	if so.GetResolvedObject().ID() != "cube_1" {
		t.Fatalf("unexpected resolved entity id")
	}
	if !so.Vector().Isa(vecspace.SO) {
		t.Fatalf("expected SO dim set on resolved phrase vector")
	}
}

func TestConjunctionPhraseMixedCoordinatorRejected(t *testing.T) {
	arena := NewArena()
	child1 := arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})
	child2 := arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})

	and := vecspace.NewWithFeatures(vecspace.Conj)
	or := vecspace.NewWithFeatures(vecspace.Disj)

	cp := NewConjunctionPhrase(and, KindNounPhrase, child1)
	err := cp.Append(child2, or)
	if !errors.Is(err, ErrMixedCoordinator) {
		t.Fatalf("expected ErrMixedCoordinator, got %v", err)
	}
	if len(cp.Children) != 1 {
		t.Fatalf("mixed coordinator must not be appended")
	}
}

func TestConjunctionPhraseSameCoordinatorAccepted(t *testing.T) {
	arena := NewArena()
	child1 := arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})
	child2 := arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})

	and := vecspace.NewWithFeatures(vecspace.Conj)
	cp := NewConjunctionPhrase(and, KindNounPhrase, child1)
	if err := cp.Append(child2, and); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cp.Vector().Isa(vecspace.Plural) {
		t.Fatalf("expected plural=1 on coordinated vector")
	}
}

func TestArenaLen(t *testing.T) {
	arena := NewArena()
	arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})
	arena.NewNounPhrase(&NounPhrase{Noun: vecspace.NewWithFeatures(vecspace.Noun)})
	if arena.Len() != 2 {
		t.Fatalf("expected 2 allocated phrases, got %d", arena.Len())
	}
}
