package layer4

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// vpBuilder is the in-progress verb phrase an ATN run assembles. A
// single builder type serves every verb class; each class's network
// simply drives a different subset of the actions below.
type vpBuilder struct {
	verb             vecspace.Vector
	object           *phrase.Phrase
	pps              []*phrase.Phrase
	adjComplements   []vecspace.Vector
	assemblyTypeName string
}

func newVPBuilder() *vpBuilder { return &vpBuilder{} }

func isVerbToken(tok stream.Token) bool {
	return !tok.IsPhrase() && tok.Vec.Isa(vecspace.Verb)
}

func isNPToken(tok stream.Token) bool {
	if !tok.IsPhrase() {
		return false
	}
	p, ok := tok.Phrase.(*phrase.Phrase)
	if !ok {
		return false
	}
	return p.Kind == phrase.KindNounPhrase || p.Kind == phrase.KindSceneObjectPhrase
}

func isPPToken(tok stream.Token) bool {
	if !tok.IsPhrase() {
		return false
	}
	p, ok := tok.Phrase.(*phrase.Phrase)
	return ok && p.Kind == phrase.KindPrepPhrase
}

// isComparativeAdjComplement matches a bare (unfolded) adjective token
// carrying Comp or Super — "bigger", "smallest" — the transform verb
// class's adjustment-only complement.
func isComparativeAdjComplement(tok stream.Token) bool {
	if tok.IsPhrase() {
		return false
	}
	v := tok.Vec
	return v.Isa(vecspace.Adj) && (v.Isa(vecspace.Comp) || v.Isa(vecspace.Super))
}

// isAnyAdjComplement matches any bare adjective token, comparative or
// not — the style verb class's "color it red" complement form.
func isAnyAdjComplement(tok stream.Token) bool {
	return !tok.IsPhrase() && tok.Vec.Isa(vecspace.Adj)
}

func actionSetVerb(b atn.Builder, tok stream.Token) {
	b.(*vpBuilder).verb = tok.Vec
}

func actionSetObject(b atn.Builder, tok stream.Token) {
	b.(*vpBuilder).object = tok.Phrase.(*phrase.Phrase)
}

// actionAddPP appends a PP adjunct and, when it is an organize verb's
// "as" PP naming an assembly type, additionally lifts the quoted type
// name out of it into AssemblyTypeName. Harmless as a no-op for every
// other verb class, since their PPs never carry a quoted-proper-noun NP
// behind an "as" preposition.
func actionAddPP(b atn.Builder, tok stream.Token) {
	vb := b.(*vpBuilder)
	pp := tok.Phrase.(*phrase.Phrase)
	vb.pps = append(vb.pps, pp)

	if pp.PP.Prep.Word != "as" || pp.PP.NP == nil {
		return
	}
	np := pp.PP.NP.NP
	if np == nil {
		return
	}
	if np.Noun.Isa(vecspace.Quoted) {
		vb.assemblyTypeName = np.Noun.Word
	}
}

// actionAddAdjComplement appends a bare-adjective complement. For a
// style verb whose complement is itself a full NP ("color it that red
// box"), the NP's vector is appended here too — a second NP complement
// and a bare adjective complement are both "the delta to apply to the
// object", so they share one slice rather than a dedicated field.
func actionAddAdjComplement(b atn.Builder, tok stream.Token) {
	vb := b.(*vpBuilder)
	if tok.IsPhrase() {
		vb.adjComplements = append(vb.adjComplements, tok.Phrase.(*phrase.Phrase).Vector())
		return
	}
	vb.adjComplements = append(vb.adjComplements, tok.Vec)
}
