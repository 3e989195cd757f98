package layer1

import (
	"strconv"
	"strings"

	"github.com/go-latn/latn/pkg/stream"
	"github.com/go-latn/latn/pkg/vecspace"
	"github.com/go-latn/latn/pkg/vocabulary"
)

// Confidence constants. The exact values are an implementation choice:
// what matters is the ordering they induce (known > unknown, compound >
// equivalent-length single-word split), not the magnitudes themselves.
const (
	knownWordConfidence   = 1.0
	unknownWordConfidence = 0.6
	compoundBonus         = 1.15
)

// runAlt is one candidate reading of a run of consecutive word lexemes.
type runAlt struct {
	Tokens     []stream.Token
	Confidence float64
}

// Tokenize scans text into lexemes and expands every ambiguous
// multi-word run into parallel hypotheses, sorted descending by
// confidence. Empty input returns an empty slice.
func Tokenize(vocab *vocabulary.Vocabulary, text string) []stream.Hypothesis {
	lexemes := scanLexemes(text)
	if len(lexemes) == 0 {
		return nil
	}

	var slots [][]runAlt
	i := 0
	for i < len(lexemes) {
		if lexemes[i].kind != lexWord {
			slots = append(slots, []runAlt{{Tokens: []stream.Token{tokenForLexeme(lexemes[i])}, Confidence: 1.0}})
			i++
			continue
		}

		j := i
		var words []string
		var ranges []stream.TextRange
		for j < len(lexemes) && lexemes[j].kind == lexWord {
			words = append(words, lexemes[j].text)
			ranges = append(ranges, lexemes[j].rng)
			j++
		}
		slots = append(slots, expandWordRun(vocab, words, ranges, 0))
		i = j
	}

	hyps := []stream.Hypothesis{{Confidence: 1.0}}
	for _, slot := range slots {
		next := make([]stream.Hypothesis, 0, len(hyps)*len(slot))
		for _, h := range hyps {
			for _, alt := range slot {
				tokens := make([]stream.Token, 0, len(h.Tokens)+len(alt.Tokens))
				tokens = append(tokens, h.Tokens...)
				tokens = append(tokens, alt.Tokens...)
				next = append(next, stream.Hypothesis{Tokens: tokens, Confidence: h.Confidence * alt.Confidence})
			}
		}
		hyps = next
	}

	for k := range hyps {
		hyps[k].Description = describe(hyps[k])
	}
	stream.SortByConfidenceDesc(hyps)
	return hyps
}

func describe(h stream.Hypothesis) string {
	words := make([]string, len(h.Tokens))
	for i, t := range h.Tokens {
		words[i] = t.Vec.Word
	}
	return "lexical: " + strings.Join(words, " ")
}

func tokenForLexeme(l lexeme) stream.Token {
	switch l.kind {
	case lexNumber:
		v := vecspace.NewWithFeatures(vecspace.Number)
		n, _ := strconv.ParseFloat(l.text, 64)
		v.Set(vecspace.Number, n)
		v.Word = l.text
		return stream.NewLiteral(v, l.rng)
	case lexVectorLiteral:
		v := vecspace.NewWithFeatures(vecspace.VectorLiteral)
		v.Set(vecspace.LocX, l.nums[0])
		v.Set(vecspace.LocY, l.nums[1])
		v.Set(vecspace.LocZ, l.nums[2])
		v.Word = l.text
		return stream.NewLiteral(v, l.rng)
	case lexQuoted:
		v := vecspace.NewWithFeatures(vecspace.Quoted)
		v.Word = l.text
		return stream.NewLiteral(v, l.rng)
	case lexComma:
		v := vecspace.NewWithFeatures(vecspace.Comma)
		v.Word = ","
		return stream.NewLiteral(v, l.rng)
	default:
		v := vecspace.NewWithFeatures(vecspace.Unknown)
		v.Word = l.text
		return stream.NewLiteral(v, l.rng)
	}
}

// expandWordRun recursively enumerates every valid segmentation of
// words[i:] into vocabulary keys, branching only where MatchCompounds
// reports more than one key starting at the same position — i.e. only
// where a proper prefix of a compound is independently a vocabulary
// entry. A position with zero matches falls back to treating the single
// word there as unknown; it never merges with a neighbor.
func expandWordRun(vocab *vocabulary.Vocabulary, words []string, ranges []stream.TextRange, i int) []runAlt {
	if i >= len(words) {
		return []runAlt{{Confidence: 1.0}}
	}

	matches := vocab.MatchCompounds(words, i)
	type option struct {
		key       string
		wordCount int
	}
	var opts []option
	switch len(matches) {
	case 0:
		opts = []option{{key: words[i], wordCount: 1}}
	default:
		for _, m := range matches {
			opts = append(opts, option{key: m.Key, wordCount: m.WordCount})
		}
	}

	// A bare determiner or preposition matching on its own alongside a
	// longer compound is not a genuine segmentation ambiguity: drop it
	// rather than branch the hypothesis tree on whether "a" might stand
	// apart from "a light house".
	if len(opts) > 1 {
		trimmed := opts[:0]
		for _, opt := range opts {
			if opt.wordCount == 1 && vocab.IsFunctionWord(opt.key) {
				continue
			}
			trimmed = append(trimmed, opt)
		}
		if len(trimmed) > 0 {
			opts = trimmed
		}
	}

	var out []runAlt
	for _, opt := range opts {
		vec, err := vocab.VectorFromWord(opt.key)
		conf := knownWordConfidence
		if err != nil {
			conf = unknownWordConfidence
			vec = vecspace.NewWithFeatures(vecspace.Unknown)
			vec.Word = opt.key
		}
		if opt.wordCount > 1 {
			conf *= compoundBonus
		}
		span := stream.Span(ranges[i], ranges[i+opt.wordCount-1])
		tok := stream.NewLiteral(vec, span)

		for _, rest := range expandWordRun(vocab, words, ranges, i+opt.wordCount) {
			tokens := make([]stream.Token, 0, 1+len(rest.Tokens))
			tokens = append(tokens, tok)
			tokens = append(tokens, rest.Tokens...)
			out = append(out, runAlt{Tokens: tokens, Confidence: conf * rest.Confidence})
		}
	}
	return out
}
