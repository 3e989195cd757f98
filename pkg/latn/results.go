package latn

import (
	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
)

// Layer1Result is Layer 1's lexical tokenization product.
type Layer1Result struct {
	Success     bool
	Confidence  float64
	Hypotheses  []stream.Hypothesis
	Description string
}

// Layer2Result carries the previous layer's result (Layer1) alongside
// Layer 2's own folded (and optionally grounded) noun phrases.
type Layer2Result struct {
	Layer1 *Layer1Result

	Success     bool
	Confidence  float64
	Hypotheses  []stream.Hypothesis
	Description string
	NounPhrases []*phrase.Phrase
}

// Layer3Result carries Layer2Result alongside Layer 3's folded
// prepositional phrases.
type Layer3Result struct {
	Layer2 *Layer2Result

	Success     bool
	Confidence  float64
	Hypotheses  []stream.Hypothesis
	Description string
	PrepPhrases []*phrase.Phrase
}

// Layer4Result carries Layer3Result alongside Layer 4's folded verb
// phrases.
type Layer4Result struct {
	Layer3 *Layer3Result

	Success     bool
	Confidence  float64
	Hypotheses  []stream.Hypothesis
	Description string
	VerbPhrases []*phrase.Phrase
}

// Layer5Result carries Layer4Result alongside Layer 5's folded
// top-level sentence phrases — the parser's final product.
type Layer5Result struct {
	Layer4 *Layer4Result

	Success         bool
	Confidence      float64
	Hypotheses      []stream.Hypothesis
	Description     string
	SentencePhrases []*phrase.Phrase
}

// topConfidence returns the first (highest-confidence, since hypotheses
// are kept sorted descending) hypothesis's confidence, or 0 for an empty
// set.
func topConfidence(hyps []stream.Hypothesis) float64 {
	if len(hyps) == 0 {
		return 0
	}
	return hyps[0].Confidence
}

// topDescription mirrors topConfidence for Description.
func topDescription(hyps []stream.Hypothesis) string {
	if len(hyps) == 0 {
		return ""
	}
	return hyps[0].Description
}

// phraseTokensOfKind collects every top-level phrase of the given kind
// across every hypothesis's token sequence.
func phraseTokensOfKind(hyps []stream.Hypothesis, kind phrase.Kind) []*phrase.Phrase {
	var out []*phrase.Phrase
	for _, h := range hyps {
		for _, tok := range h.Tokens {
			p, ok := tok.Phrase.(*phrase.Phrase)
			if ok && p.Kind == kind {
				out = append(out, p)
			}
		}
	}
	return out
}
