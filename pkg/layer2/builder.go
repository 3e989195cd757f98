package layer2

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// npBuilder is the in-progress noun phrase an ATN run assembles. It
// satisfies atn.Builder (the empty interface) and is cast back to its
// concrete type inside every Action.
type npBuilder struct {
	det        *vecspace.Vector
	pronoun    *vecspace.Vector
	pendingAdv *vecspace.Vector
	adjectives []vecspace.Vector
	noun       vecspace.Vector
	properNoun bool
}

func newNPBuilder() *npBuilder { return &npBuilder{} }

func isPronoun(tok stream.Token) bool       { return tok.Vec.Isa(vecspace.Pronoun) }
func isVectorLiteral(tok stream.Token) bool { return tok.Vec.Isa(vecspace.VectorLiteral) }
func isQuoted(tok stream.Token) bool        { return tok.Vec.Isa(vecspace.Quoted) }
func isDet(tok stream.Token) bool           { return tok.Vec.Isa(vecspace.Det) }
func isAdv(tok stream.Token) bool           { return tok.Vec.Isa(vecspace.Adv) }
func isAdj(tok stream.Token) bool           { return tok.Vec.Isa(vecspace.Adj) }
func isNoun(tok stream.Token) bool          { return tok.Vec.Isa(vecspace.Noun) }

func actionSetDet(b atn.Builder, tok stream.Token) {
	v := tok.Vec
	b.(*npBuilder).det = &v
}

func actionSetPronoun(b atn.Builder, tok stream.Token) {
	v := tok.Vec
	b.(*npBuilder).pronoun = &v
}

func actionSetVectorLiteral(b atn.Builder, tok stream.Token) {
	b.(*npBuilder).noun = tok.Vec
}

func actionSetProperNoun(b atn.Builder, tok stream.Token) {
	nb := b.(*npBuilder)
	nb.noun = tok.Vec
	nb.properNoun = true
}

func actionBufferAdv(b atn.Builder, tok stream.Token) {
	v := tok.Vec
	b.(*npBuilder).pendingAdv = &v
}

// actionAddAdjective folds a buffered adverb into the adjective's scale
// before accumulating it, per the composition rule: the adverb
// multiplies before the add, never after.
func actionAddAdjective(b atn.Builder, tok stream.Token) {
	nb := b.(*npBuilder)
	v := tok.Vec
	if nb.pendingAdv != nil {
		factor := nb.pendingAdv.Get(vecspace.Adverb)
		if factor == 0 {
			factor = 1
		}
		v = v.ScaleDims(factor, vecspace.ComparativeBoostDims...)
		nb.pendingAdv = nil
	}
	nb.adjectives = append(nb.adjectives, v)
}

func actionSetNoun(b atn.Builder, tok stream.Token) {
	b.(*npBuilder).noun = tok.Vec
}
