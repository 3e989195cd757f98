// Package phrase defines the six structured phrase kinds (see Kind) used
// by layers 2-5, plus the single-arena allocator that owns
// every phrase produced by one parse.
package phrase

import (
	"fmt"

	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// Kind tags which variant a Phrase holds. Exactly one of the
// corresponding fields on Phrase is non-nil for a given Kind.
type Kind uint8

const (
	KindNounPhrase Kind = iota
	KindSceneObjectPhrase
	KindPrepPhrase
	KindVerbPhrase
	KindSentencePhrase
	KindConjunctionPhrase
)

func (k Kind) String() string {
	switch k {
	case KindNounPhrase:
		return "NP"
	case KindSceneObjectPhrase:
		return "SO"
	case KindPrepPhrase:
		return "PP"
	case KindVerbPhrase:
		return "VP"
	case KindSentencePhrase:
		return "SP"
	case KindConjunctionPhrase:
		return "ConjP"
	default:
		return "?"
	}
}

// Phrase is a tagged-variant node: a single type broad enough to stand
// in place of a cyclic-reference tree, since every child reference is a
// pointer into the same Arena and there are no back-edges from a child
// to its parent phrase (only to its Arena-owned token source, which is
// not itself a Phrase).
type Phrase struct {
	Kind Kind
	V    vecspace.Vector

	NP   *NounPhrase
	SO   *SceneObjectPhrase
	PP   *PrepPhrase
	VP   *VerbPhrase
	SP   *SentencePhrase
	Conj *ConjunctionPhrase
}

// Vector satisfies stream.PhraseRef, letting a folded token carry a
// back-pointer to the Phrase that produced it.
func (p *Phrase) Vector() vecspace.Vector { return p.V }

// DisplayWord renders the short "NP(the red box)"-style label the token
// stream shows for an opaque phrase token.
func (p *Phrase) DisplayWord() string {
	switch p.Kind {
	case KindNounPhrase:
		return fmt.Sprintf("NP(%s)", p.NP.Noun.Word)
	case KindSceneObjectPhrase:
		return fmt.Sprintf("SO(%s)", p.SO.NounPhrase.Noun.Word)
	case KindPrepPhrase:
		return fmt.Sprintf("PP(%s)", p.PP.Prep.Word)
	case KindVerbPhrase:
		return fmt.Sprintf("VP(%s)", p.VP.Verb.Word)
	case KindSentencePhrase:
		return "SP(...)"
	case KindConjunctionPhrase:
		return fmt.Sprintf("ConjP(%d)", len(p.Conj.Children))
	default:
		return "?"
	}
}

// Arena owns every Phrase allocated during one parse. Allocating through
// an Arena rather than individually with `new` documents the lifetime
// contract from the design notes explicitly: drop the Arena and every
// Phrase it produced is reclaimable.
type Arena struct {
	phrases []*Phrase
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(p *Phrase) *Phrase {
	a.phrases = append(a.phrases, p)
	return p
}

// NewNounPhrase allocates a NounPhrase-kind Phrase.
func (a *Arena) NewNounPhrase(np *NounPhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindNounPhrase, V: np.Vector(), NP: np})
}

// NewSceneObjectPhrase allocates a SceneObjectPhrase-kind Phrase.
func (a *Arena) NewSceneObjectPhrase(so *SceneObjectPhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindSceneObjectPhrase, V: so.Vector(), SO: so})
}

// NewPrepPhrase allocates a PrepPhrase-kind Phrase.
func (a *Arena) NewPrepPhrase(pp *PrepPhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindPrepPhrase, V: pp.Vector(), PP: pp})
}

// NewVerbPhrase allocates a VerbPhrase-kind Phrase.
func (a *Arena) NewVerbPhrase(vp *VerbPhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindVerbPhrase, V: vp.Vector(), VP: vp})
}

// NewSentencePhrase allocates a SentencePhrase-kind Phrase.
func (a *Arena) NewSentencePhrase(sp *SentencePhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindSentencePhrase, V: sp.Vector(), SP: sp})
}

// NewConjunctionPhrase allocates a ConjunctionPhrase-kind Phrase.
func (a *Arena) NewConjunctionPhrase(cp *ConjunctionPhrase) *Phrase {
	return a.alloc(&Phrase{Kind: KindConjunctionPhrase, V: cp.Vector(), Conj: cp})
}

// Len returns how many phrases the arena has allocated.
func (a *Arena) Len() int { return len(a.phrases) }

var _ stream.PhraseRef = (*Phrase)(nil)
