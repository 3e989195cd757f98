// Package layer3 folds prep-NP pairs into prepositional phrases and
// annotates each with a spatial validation score against the scene
// entities grounded so far.
package layer3

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
)

// Fold runs PP folding over every hypothesis.
func Fold(arena *phrase.Arena, hyps []stream.Hypothesis) []stream.Hypothesis {
	out := make([]stream.Hypothesis, len(hyps))
	for i, h := range hyps {
		out[i] = foldHypothesis(arena, h)
	}
	return out
}

func foldHypothesis(arena *phrase.Arena, hyp stream.Hypothesis) stream.Hypothesis {
	net := buildPrepPhraseNetwork()
	cursor := stream.NewCursor(hyp.Tokens)
	var outTokens []stream.Token

	for !cursor.AtEnd() {
		start := cursor.Position()
		b := newPPBuilder()
		if atn.Run(net, cursor, b) && cursor.Position() > start {
			source := hyp.Tokens[start:cursor.Position()]
			outTokens = append(outTokens, buildPPToken(arena, b, source))
			continue
		}
		cursor.SetPosition(start)
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

func buildPPToken(arena *phrase.Arena, b *ppBuilder, source []stream.Token) stream.Token {
	pp := &phrase.PrepPhrase{Prep: *b.prep, NP: b.np}
	p := arena.NewPrepPhrase(pp)
	rng := stream.Span(source[0].Range, source[len(source)-1].Range)
	return stream.NewPhraseToken(p.Vector(), rng, p)
}
