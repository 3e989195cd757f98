// Package layer4 folds a verb token plus its attached object NP,
// adjuncts and complements into a single VerbPhrase token, per verb
// class.
package layer4

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// Fold runs VP folding over every hypothesis.
func Fold(arena *phrase.Arena, hyps []stream.Hypothesis) []stream.Hypothesis {
	out := make([]stream.Hypothesis, len(hyps))
	for i, h := range hyps {
		out[i] = foldHypothesis(arena, h)
	}
	return out
}

func foldHypothesis(arena *phrase.Arena, hyp stream.Hypothesis) stream.Hypothesis {
	cursor := stream.NewCursor(hyp.Tokens)
	var outTokens []stream.Token

	for !cursor.AtEnd() {
		start := cursor.Position()
		peeked, _ := cursor.Peek()

		if isVerbToken(peeked) {
			class := phrase.ClassifyVerb(peeked.Vec)
			net := buildNetwork(class)
			b := newVPBuilder()
			if atn.Run(net, cursor, b) && cursor.Position() > start {
				source := hyp.Tokens[start:cursor.Position()]
				outTokens = append(outTokens, buildVPToken(arena, class, b, source))
				continue
			}
			cursor.SetPosition(start)
		}

		tok, _ := cursor.Next()
		outTokens = append(outTokens, tok)
	}

	return stream.Hypothesis{
		Tokens:       outTokens,
		Confidence:   hyp.Confidence,
		Description:  hyp.Description,
		Replacements: hyp.Replacements,
	}
}

func buildVPToken(arena *phrase.Arena, class phrase.VerbClass, b *vpBuilder, source []stream.Token) stream.Token {
	vp := &phrase.VerbPhrase{
		Verb:             b.verb,
		Object:           b.object,
		PPs:              b.pps,
		AdjComplements:   b.adjComplements,
		AssemblyTypeName: b.assemblyTypeName,
	}
	if class == phrase.VerbClassTransform && len(b.pps) == 0 && !isScaleOnlyVerb(b.verb) {
		vp.MissingRequiredDirection = true
	}

	p := arena.NewVerbPhrase(vp)
	rng := stream.Span(source[0].Range, source[len(source)-1].Range)
	return stream.NewPhraseToken(p.Vector(), rng, p)
}

// isScaleOnlyVerb reports whether v's only transform-group flag is
// Scale — "scale" itself, as opposed to "move"/"rotate" (which always
// expect a PP) or a verb flagged with more than one transform group.
func isScaleOnlyVerb(v vecspace.Vector) bool {
	return v.Isa(vecspace.Scale) && !v.Isa(vecspace.Move) && !v.Isa(vecspace.Rotate) && !v.Isa(vecspace.Transform)
}
