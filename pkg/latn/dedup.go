package latn

import (
	"fmt"
	"strings"

	"github.com/go-latn/latn/pkg/phrase"
	"github.com/go-latn/latn/pkg/stream"
)

// dedupHypotheses removes hypotheses whose folded token sequence and
// grounded entity bindings are structurally identical, keeping the
// higher-confidence survivor — spec.md §9's "Hypothesis explosion"
// mitigation. Hypotheses are assumed already confidence-sorted
// descending, so the first occurrence of a key is always the one kept.
func dedupHypotheses(hyps []stream.Hypothesis) []stream.Hypothesis {
	seen := make(map[string]bool, len(hyps))
	out := make([]stream.Hypothesis, 0, len(hyps))
	for _, h := range hyps {
		key := hypothesisKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}

func hypothesisKey(h stream.Hypothesis) string {
	var b strings.Builder
	for _, tok := range h.Tokens {
		if !tok.IsPhrase() {
			fmt.Fprintf(&b, "L(%s)|", tok.Vec.Word)
			continue
		}
		p := tok.Phrase.(*phrase.Phrase)
		fmt.Fprintf(&b, "%s(%s:%s)|", p.Kind, p.DisplayWord(), boundEntityID(p))
	}
	return b.String()
}

// boundEntityID returns the scene entity ID a SceneObjectPhrase is bound
// to, or "" for anything else — the part of the structural hash that
// makes two groundings of the same NP text to different scene entities
// compare unequal.
func boundEntityID(p *phrase.Phrase) string {
	if p.Kind != phrase.KindSceneObjectPhrase || !p.SO.IsResolved() {
		return ""
	}
	return p.SO.GetResolvedObject().ID()
}

// capHypotheses truncates hyps to at most n entries, 0 meaning
// unbounded. Hypotheses are assumed already confidence-sorted
// descending, so truncation keeps the strongest candidates.
func capHypotheses(hyps []stream.Hypothesis, n int) []stream.Hypothesis {
	if n <= 0 || len(hyps) <= n {
		return hyps
	}
	return hyps[:n]
}

// pruneBySpatialScore drops hypotheses containing a PrepPhrase whose
// Score is valid but falls below min — never a hypothesis whose
// ScoreValid is still false, since that GroundingFailure state must
// never be treated as a pruning signal (spec.md §7).
func pruneBySpatialScore(hyps []stream.Hypothesis, min float64) []stream.Hypothesis {
	if min <= 0 {
		return hyps
	}
	out := make([]stream.Hypothesis, 0, len(hyps))
	for _, h := range hyps {
		if belowThreshold(h, min) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func belowThreshold(h stream.Hypothesis, min float64) bool {
	for _, tok := range h.Tokens {
		p, ok := tok.Phrase.(*phrase.Phrase)
		if !ok || p.Kind != phrase.KindPrepPhrase {
			continue
		}
		if p.PP.ScoreValid && p.PP.Score < min {
			return true
		}
	}
	return false
}

func sortAndFinish(hyps []stream.Hypothesis, cfg Config) []stream.Hypothesis {
	stream.SortByConfidenceDesc(hyps)
	hyps = dedupHypotheses(hyps)
	hyps = pruneBySpatialScore(hyps, cfg.MinSpatialScore)
	hyps = capHypotheses(hyps, cfg.MaxHypotheses)
	return hyps
}
