// Package layer5 folds a fully layer 1-4 folded hypothesis's remaining
// top-level tokens into a single SentencePhrase: imperative, declarative,
// identification, or a runtime vocabulary definition.
package layer5

import (
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
)

// Fold folds every hypothesis's token sequence into one top-level
// SentencePhrase token. report controls whether the returned
// hypothesis's Description is the sentence's own one-line summary
// prefixed by the Description hyp carried in, or that summary alone.
func Fold(arena *phrase.Arena, hyps []stream.Hypothesis, report bool) []stream.Hypothesis {
	out := make([]stream.Hypothesis, len(hyps))
	for i, h := range hyps {
		out[i] = foldHypothesis(arena, h, report)
	}
	return out
}

func foldHypothesis(arena *phrase.Arena, hyp stream.Hypothesis, report bool) stream.Hypothesis {
	sp := classify(arena, hyp.Tokens)
	p := arena.NewSentencePhrase(sp)

	var rng stream.TextRange
	if len(hyp.Tokens) > 0 {
		rng = stream.Span(hyp.Tokens[0].Range, hyp.Tokens[len(hyp.Tokens)-1].Range)
	}
	tok := stream.NewPhraseToken(p.Vector(), rng, p)

	desc := describe(sp)
	if report {
		desc = hyp.Description + " -> " + desc
	}

	return stream.Hypothesis{
		Tokens:       []stream.Token{tok},
		Confidence:   hyp.Confidence,
		Description:  desc,
		Replacements: hyp.Replacements,
	}
}

func classify(arena *phrase.Arena, tokens []stream.Token) *phrase.SentencePhrase {
	if len(tokens) == 0 {
		return &phrase.SentencePhrase{Kind: phrase.SentenceIdentification}
	}

	first := tokens[0]

	if isVerbPhraseToken(first) {
		sp := &phrase.SentencePhrase{Kind: phrase.SentenceImperative, Predicate: asPhrase(first)}
		sp.TopLevelPPs = collectTrailingPPs(tokens[1:])
		return sp
	}

	if isDefinitionSubject(first) && len(tokens) > 1 && isTobeToken(tokens[1]) {
		rhs := tokens[2:]
		return &phrase.SentencePhrase{
			Kind:             phrase.SentenceDefinition,
			DefinitionWord:   nounPhraseOf(asPhrase(first)).Noun.Word,
			DefinitionVector: mergeVectors(rhs),
		}
	}

	if isNounPhraseToken(first) {
		if len(tokens) > 2 && isTobeToken(tokens[1]) && (isNounPhraseToken(tokens[2]) || isAdjectiveToken(tokens[2])) {
			return &phrase.SentencePhrase{
				Kind:      phrase.SentenceDeclarative,
				Subject:   asPhrase(first),
				Predicate: predicateFor(arena, tokens[2]),
			}
		}
		if len(tokens) > 1 && isVerbPhraseToken(tokens[1]) {
			sp := &phrase.SentencePhrase{
				Kind:      phrase.SentenceDeclarative,
				Subject:   asPhrase(first),
				Predicate: asPhrase(tokens[1]),
			}
			sp.TopLevelPPs = collectTrailingPPs(tokens[2:])
			return sp
		}
		return &phrase.SentencePhrase{Kind: phrase.SentenceIdentification, Subject: asPhrase(first)}
	}

	return &phrase.SentencePhrase{Kind: phrase.SentenceIdentification}
}

func predicateFor(arena *phrase.Arena, tok stream.Token) *phrase.Phrase {
	if tok.IsPhrase() {
		return asPhrase(tok)
	}
	// A bare adjective predicate has no Phrase wrapper; give it a
	// minimal one so SentencePhrase.Predicate stays uniformly a *Phrase.
	np := &phrase.NounPhrase{Noun: tok.Vec}
	return arena.NewNounPhrase(np)
}

func mergeVectors(tokens []stream.Token) vecspace.Vector {
	v := vecspace.New()
	for _, t := range tokens {
		if t.IsPhrase() {
			v = v.Add(asPhrase(t).Vector())
		} else {
			v = v.Add(t.Vec)
		}
	}
	return v
}

func collectTrailingPPs(tokens []stream.Token) []*phrase.Phrase {
	var pps []*phrase.Phrase
	for _, t := range tokens {
		if t.IsPhrase() {
			if p := asPhrase(t); p.Kind == phrase.KindPrepPhrase {
				pps = append(pps, p)
			}
		}
	}
	return pps
}

func asPhrase(tok stream.Token) *phrase.Phrase { return tok.Phrase.(*phrase.Phrase) }

func isVerbPhraseToken(tok stream.Token) bool {
	return tok.IsPhrase() && asPhrase(tok).Kind == phrase.KindVerbPhrase
}

func isNounPhraseToken(tok stream.Token) bool {
	if !tok.IsPhrase() {
		return false
	}
	k := asPhrase(tok).Kind
	return k == phrase.KindNounPhrase || k == phrase.KindSceneObjectPhrase
}

func isAdjectiveToken(tok stream.Token) bool {
	return !tok.IsPhrase() && tok.Vec.Isa(vecspace.Adj)
}

func isTobeToken(tok stream.Token) bool {
	return !tok.IsPhrase() && tok.Vec.Isa(vecspace.Tobe)
}

// isDefinitionSubject matches a bare quoted identifier that Layer 2
// already folded into a proper-noun NounPhrase (the quoted-no-det
// network): the Noun itself still carries the Quoted flag, so a
// definition's left-hand side is distinguishable from an ordinary NP
// subject without Layer 5 needing its own quoted-token case.
func isDefinitionSubject(tok stream.Token) bool {
	if !isNounPhraseToken(tok) {
		return false
	}
	np := nounPhraseOf(asPhrase(tok))
	return np != nil && np.ProperNoun && np.Noun.Isa(vecspace.Quoted)
}

// nounPhraseOf returns the NounPhrase underlying p regardless of whether
// p is an ungrounded NounPhrase or an already-grounded SceneObjectPhrase.
func nounPhraseOf(p *phrase.Phrase) *phrase.NounPhrase {
	if p.Kind == phrase.KindSceneObjectPhrase {
		return p.SO.NounPhrase
	}
	return p.NP
}

func describe(sp *phrase.SentencePhrase) string {
	switch sp.Kind {
	case phrase.SentenceImperative:
		return "imperative: " + sp.Predicate.DisplayWord()
	case phrase.SentenceDefinition:
		return "definition: '" + sp.DefinitionWord + "'"
	case phrase.SentenceDeclarative:
		return "declarative: " + sp.Subject.DisplayWord()
	default:
		var w string
		if sp.Subject != nil {
			w = sp.Subject.DisplayWord()
		}
		return "identification: " + w
	}
}
