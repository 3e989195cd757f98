package phrase

import (
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// NounPhrase is det? adv* adj* noun, plus any attached prepositional
// phrases and the source tokens it was folded from.
type NounPhrase struct {
	Det         *vecspace.Vector
	Pronoun     *vecspace.Vector
	ProperNoun  bool
	Adjectives  []vecspace.Vector
	Noun        vecspace.Vector
	PPs         []*Phrase
	SourceTokens []stream.Token
	// ScaleFactor mirrors the determiner's Number dimension; it is
	// derived from Number rather than tracked independently, resolving
	// the source's scale_factor/number duality by treating Number as
	// authoritative (see the open-question decision in DESIGN.md).
	ScaleFactor float64
}

// Vector builds the NP's semantic vector: determiner, then each
// adjective (already pre-scaled by its preceding adverb at construction
// time), then the noun, all added component-wise. Attached PPs are kept
// separate, never folded into this vector.
func (np *NounPhrase) Vector() vecspace.Vector {
	v := vecspace.New()
	if np.Det != nil {
		v = v.Add(*np.Det)
	}
	if np.Pronoun != nil {
		v = v.Add(*np.Pronoun)
	}
	for _, adj := range np.Adjectives {
		v = v.Add(adj)
	}
	v = v.Add(np.Noun)
	v.Set(vecspace.NP, 1.0)
	v.Word = np.Noun.Word
	return v
}

// SceneObjectPhrase is a NounPhrase that has additionally been bound to
// a scene entity. resolved is nil until ResolveToSceneObject is called.
type SceneObjectPhrase struct {
	NounPhrase *NounPhrase
	resolved   SceneEntity
}

// SceneEntity is the minimal surface a scene entity must expose to be
// bindable to a SceneObjectPhrase. It mirrors scene.Entity without this
// package importing the scene package, keeping the dependency direction
// pointing from scene -> phrase, not the reverse.
type SceneEntity interface {
	ID() string
	Name() string
}

// IsResolved reports whether this phrase has been bound to a scene
// entity yet.
func (so *SceneObjectPhrase) IsResolved() bool { return so.resolved != nil }

// ResolveToSceneObject binds this phrase to entity. Calling it twice
// simply rebinds; callers needing "bind once" semantics enforce that
// themselves.
func (so *SceneObjectPhrase) ResolveToSceneObject(entity SceneEntity) {
	so.resolved = entity
}

// GetResolvedObject returns the bound entity. It panics if IsResolved is
// false: callers are required to check first, matching the documented
// precondition.
func (so *SceneObjectPhrase) GetResolvedObject() SceneEntity {
	if so.resolved == nil {
		panic("phrase: GetResolvedObject called before IsResolved")
	}
	return so.resolved
}

// Vector is the underlying NounPhrase's vector with the SO dimension
// additionally set.
func (so *SceneObjectPhrase) Vector() vecspace.Vector {
	v := so.NounPhrase.Vector()
	v.Set(vecspace.SO, 1.0)
	return v
}
