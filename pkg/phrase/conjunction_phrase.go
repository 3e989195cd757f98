package phrase

import (
	"errors"

	"github.com/go-latn/latn/pkg/vecspace"
)

// ErrMixedCoordinator is returned by Append when a ConjunctionPhrase
// already coordinated by one conjunction (e.g. "and") is asked to absorb
// a child joined by the other ("or"). The folding layers in this module
// do not build or extend ConjunctionPhrases, so this error arises only
// from direct calls to Append.
var ErrMixedCoordinator = errors.New("phrase: mixed coordinator in conjunction")

// ConjunctionPhrase is a thin polymorphic wrapper coordinating phrases of
// one kind (all NounPhrase, or all PrepPhrase, ...). The same-coordinator
// invariant is enforced structurally by Append rather than checked
// post-hoc.
type ConjunctionPhrase struct {
	Coordinator vecspace.Vector
	ChildKind   Kind
	Children    []*Phrase
}

// NewConjunctionPhrase starts a coordination with its first child and
// coordinator token (the "and"/"or" vector).
func NewConjunctionPhrase(coordinator vecspace.Vector, kind Kind, first *Phrase) *ConjunctionPhrase {
	return &ConjunctionPhrase{Coordinator: coordinator, ChildKind: kind, Children: []*Phrase{first}}
}

// Append adds child to the coordination if coordinator agrees with the
// one already recorded and child's kind matches. A disagreeing
// coordinator returns ErrMixedCoordinator; a kind mismatch is a
// programming error and panics.
func (cp *ConjunctionPhrase) Append(child *Phrase, coordinator vecspace.Vector) error {
	if child.Kind != cp.ChildKind {
		panic("phrase: ConjunctionPhrase kind mismatch")
	}
	if coordinator.Isa(vecspace.Conj) != cp.Coordinator.Isa(vecspace.Conj) ||
		coordinator.Isa(vecspace.Disj) != cp.Coordinator.Isa(vecspace.Disj) {
		return ErrMixedCoordinator
	}
	cp.Children = append(cp.Children, child)
	return nil
}

// Vector merges every child's vector, tagged plural=1 and the
// coordinator's conj/disj flag copied across.
func (cp *ConjunctionPhrase) Vector() vecspace.Vector {
	v := vecspace.New()
	for _, c := range cp.Children {
		v = v.Add(c.V)
	}
	v.Set(vecspace.Plural, 1.0)
	if cp.Coordinator.Isa(vecspace.Conj) {
		v.Set(vecspace.Conj, 1.0)
	}
	if cp.Coordinator.Isa(vecspace.Disj) {
		v.Set(vecspace.Disj, 1.0)
	}
	return v
}
