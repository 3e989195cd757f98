package stream

import "sort"

// Replacement records that tokens[Start:End] in some earlier hypothesis
// were collapsed into Folded by a later layer.
type Replacement struct {
	Start, End int
	Folded     Token
}

// Hypothesis is one candidate interpretation in a layer's output: a
// token sequence, a confidence in (0, 1], a human-readable provenance
// description, and a replacement log. The folding layers in this module
// copy Replacements through unchanged and never append to it, so what a
// layer folded shows only in Tokens.
type Hypothesis struct {
	Tokens       []Token
	Confidence   float64
	Description  string
	Replacements []Replacement
}

// Clone returns a Hypothesis with an independently-owned Tokens and
// Replacements slice, so that grounding's Cartesian-product multiplication
// can safely take one hypothesis and bind different scene entities into
// each clone without aliasing the original's backing arrays.
func (h Hypothesis) Clone() Hypothesis {
	out := h
	out.Tokens = append([]Token(nil), h.Tokens...)
	out.Replacements = append([]Replacement(nil), h.Replacements...)
	return out
}

// SortByConfidenceDesc sorts hyps in place by descending confidence,
// preserving relative order of equal-confidence hypotheses (a stable
// sort), matching the "ties broken by insertion order" ordering
// guarantee.
func SortByConfidenceDesc(hyps []Hypothesis) {
	sort.SliceStable(hyps, func(i, j int) bool {
		return hyps[i].Confidence > hyps[j].Confidence
	})
}
