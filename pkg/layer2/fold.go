// Package layer2 folds a Layer 1 token stream into noun phrases: an ATN
// per noun-phrase shape (pronoun, vector literal, quoted identifier,
// general det/adv/adj/noun chain), plus an optional scene-grounding pass
// that binds a folded NounPhrase to a SceneObjectPhrase.
package layer2

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/scene"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// GroundOptions controls whether and how folded noun phrases are bound
// to scene entities.
type GroundOptions struct {
	Enable           bool
	ReturnAllMatches bool
	// MaxMatchesPerNP caps how many of scene.FindNounPhrase's candidate
	// matches are multiplied into a hypothesis per NP, 0 meaning
	// unbounded. A host's knob against the Cartesian-grounding
	// hypothesis explosion (spec.md §5/§9).
	MaxMatchesPerNP int
}

// Fold runs noun-phrase folding (and, if opts.Enable, grounding) over
// every hypothesis, returning the expanded hypothesis set. Grounding
// with ReturnAllMatches multiplies a hypothesis once per NP with more
// than one candidate match (the Cartesian-grounding property).
func Fold(arena *phrase.Arena, sc *scene.Scene, opts GroundOptions, hyps []stream.Hypothesis) []stream.Hypothesis {
	out := make([]stream.Hypothesis, 0, len(hyps))
	for _, h := range hyps {
		folded := foldHypothesis(arena, h)
		if opts.Enable && sc != nil {
			out = append(out, groundHypothesis(arena, sc, opts.ReturnAllMatches, opts.MaxMatchesPerNP, folded)...)
		} else {
			out = append(out, folded)
		}
	}
	return out
}

func foldHypothesis(arena *phrase.Arena, hyp stream.Hypothesis) stream.Hypothesis {
	networks := nounPhraseNetworks()
	cursor := stream.NewCursor(hyp.Tokens)
	var outTokens []stream.Token

	for !cursor.AtEnd() {
		start := cursor.Position()
		if tok, ok := tryFoldNP(arena, networks, cursor, hyp.Tokens); ok {
			outTokens = append(outTokens, tok)
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

func tryFoldNP(arena *phrase.Arena, networks []*atn.Network, cursor *stream.Cursor, allTokens []stream.Token) (stream.Token, bool) {
	start := cursor.Position()
	for _, net := range networks {
		b := newNPBuilder()
		if atn.Run(net, cursor, b) && cursor.Position() > start {
			source := allTokens[start:cursor.Position()]
			return buildNPToken(arena, b, source), true
		}
		cursor.SetPosition(start)
	}
	return stream.Token{}, false
}

func buildNPToken(arena *phrase.Arena, b *npBuilder, source []stream.Token) stream.Token {
	np := &phrase.NounPhrase{
		Det:          b.det,
		Pronoun:      b.pronoun,
		ProperNoun:   b.properNoun,
		Adjectives:   b.adjectives,
		Noun:         b.noun,
		SourceTokens: append([]stream.Token{}, source...),
	}
	if b.det != nil {
		np.ScaleFactor = b.det.Get(vecspace.Number)
	}
	p := arena.NewNounPhrase(np)
	rng := stream.Span(source[0].Range, source[len(source)-1].Range)
	return stream.NewPhraseToken(p.Vector(), rng, p)
}

// groundHypothesis queries scene.FindNounPhrase for every NP phrase
// token in hyp. With returnAllMatches false, the best match (if any)
// promotes the token in place to a SceneObjectPhrase. With true, the
// hypothesis is cloned once per candidate match for every NP that has
// more than one — implemented as a fold over NP positions so it scales
// to an arbitrary number of NPs per hypothesis instead of a fixed nested
// loop.
func groundHypothesis(arena *phrase.Arena, sc *scene.Scene, returnAllMatches bool, maxMatchesPerNP int, hyp stream.Hypothesis) []stream.Hypothesis {
	partial := []stream.Hypothesis{hyp}

	for i, tok := range hyp.Tokens {
		p, ok := tok.Phrase.(*phrase.Phrase)
		if !ok || p.Kind != phrase.KindNounPhrase {
			continue
		}

		matches := sc.FindNounPhrase(p.NP.Vector(), returnAllMatches)
		if maxMatchesPerNP > 0 && len(matches) > maxMatchesPerNP {
			matches = matches[:maxMatchesPerNP]
		}
		if len(matches) == 0 {
			continue
		}

		var next []stream.Hypothesis
		for _, h := range partial {
			for _, m := range matches {
				clone := h.Clone()
				so := &phrase.SceneObjectPhrase{NounPhrase: p.NP}
				so.ResolveToSceneObject(m.Entity)
				soPhrase := arena.NewSceneObjectPhrase(so)
				clone.Tokens[i] = stream.NewPhraseToken(soPhrase.Vector(), tok.Range, soPhrase)
				next = append(next, clone)
			}
		}
		partial = next

		if !returnAllMatches {
			continue
		}
	}
	return partial
}
