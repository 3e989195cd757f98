package layer3

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// ppBuilder is the in-progress prepositional phrase an ATN run
// assembles: deliberately trivial, since the network itself is just
// "prep NP".
type ppBuilder struct {
	prep *vecspace.Vector
	np   *phrase.Phrase
}

func newPPBuilder() *ppBuilder { return &ppBuilder{} }

func isPrepToken(tok stream.Token) bool {
	return !tok.IsPhrase() && tok.Vec.Isa(vecspace.Prep)
}

// isNPToken accepts any already-folded L2 phrase token: an ungrounded
// NounPhrase or a grounded SceneObjectPhrase.
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

func actionSetPrep(b atn.Builder, tok stream.Token) {
	v := tok.Vec
	b.(*ppBuilder).prep = &v
}

func actionSetNP(b atn.Builder, tok stream.Token) {
	b.(*ppBuilder).np = tok.Phrase.(*phrase.Phrase)
}

func buildPrepPhraseNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isPrepToken, Action: actionSetPrep, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetNP, Next: 2})
	net.Accept(2)
	return net
}
