package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/orsinium-labs/stopwords"

	"github.com/go-latn/latn/pkg/vecspace"
)

// ErrUnknownToken is returned by VectorFromWord when a word cannot be resolved
// by direct lookup, noun/adjective/verb inflection.
var ErrUnknownToken = fmt.Errorf("vocabulary: unknown token")

// Vocabulary is the process-wide word-to-vector mapping. It is owned by
// the host, not a package-level global: a host running parallel parses
// against distinct vocabularies constructs one per vocabulary, and
// serializes writes to each as spec.md's concurrency model requires.
type Vocabulary struct {
	entries map[string]vecspace.Vector
	// ac is rebuilt whenever entries changes shape (on Define). It matches
	// every vocabulary key, single-word or compound, against a word run.
	// patterns
	// is ac's pattern list, index-aligned with the pattern indices ac's
	// matches report, so a match can be turned back into its key.
	ac       ahocorasick.AhoCorasick
	patterns []string
	stale    bool
	en       stopwords.StopWords
}

// New returns an empty vocabulary with no seed entries.
func New() *Vocabulary {
	v := &Vocabulary{entries: make(map[string]vecspace.Vector), en: stopwords.EN}
	v.rebuild()
	return v
}

// DefaultVocabulary returns a vocabulary pre-populated with the closed
// bootstrap dictionary (shapes, colors, verbs, prepositions, ...).
func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{entries: seedVocabulary(), en: stopwords.EN}
	v.rebuild()
	return v
}

func normalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Define adds or overwrites a vocabulary entry. Keys may be single words
// or space-joined multi-word phrases; lookup is case-insensitive.
func (v *Vocabulary) Define(word string, vector vecspace.Vector) {
	v.entries[normalizeKey(word)] = vector
	v.stale = true
}

// Has reports whether word is a vocabulary key, without inflection.
func (v *Vocabulary) Has(word string) bool {
	_, ok := v.entries[normalizeKey(word)]
	return ok
}

// IsFunctionWord reports whether word is an English closed-class
// (stop) word. Layer 1 uses this to avoid treating a bare determiner or
// preposition's independent vocabulary membership as a genuine ambiguity
// constituent on its own.
func (v *Vocabulary) IsFunctionWord(word string) bool {
	return v.en.IsStopword(strings.ToLower(word))
}

func (v *Vocabulary) rebuild() {
	v.patterns = make([]string, 0, len(v.entries))
	for k := range v.entries {
		v.patterns = append(v.patterns, k)
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		// StandardMatch, not LeftMostLongestMatch: MatchCompounds needs
		// every candidate length starting at a position, not just the
		// longest, and overlapping iteration requires it.
		MatchKind: ahocorasick.StandardMatch,
	})
	v.ac = builder.Build(v.patterns)
	v.stale = false
}

// ensureFresh rebuilds the automaton if Define has mutated entries since
// the last build.
func (v *Vocabulary) ensureFresh() {
	if v.stale {
		v.rebuild()
	}
}

// MatchCompounds scans words (already tokenized on whitespace) starting
// at position i and returns, longest first, every vocabulary key that
// matches a contiguous run of words starting there. It drives v.ac's
// overlapping iteration over the joined suffix in one pass instead of
// probing every prefix length by hand: a match only counts if it starts
// exactly at position i and ends exactly on a word boundary, since the
// automaton itself has no notion of the word grid it is scanning over.
func (v *Vocabulary) MatchCompounds(words []string, i int) []CompoundMatch {
	v.ensureFresh()
	suffix := normalizeKey(strings.Join(words[i:], " "))

	var out []CompoundMatch
	iter := v.ac.IterOverlapping(suffix)
	for {
		m := iter.Next()
		if m == nil {
			break
		}
		if m.Start() != 0 {
			continue
		}
		end := m.End()
		if end != len(suffix) && suffix[end] != ' ' {
			continue // matched a substring that crosses a word boundary
		}
		key := v.patterns[m.Pattern()]
		out = append(out, CompoundMatch{Key: key, WordCount: strings.Count(key, " ") + 1})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].WordCount > out[b].WordCount })
	return out
}

// CompoundMatch describes one candidate multi-word vocabulary match.
type CompoundMatch struct {
	Key       string
	WordCount int
}

// VectorFromWord implements the vocabulary lookup algorithm: direct
// lookup, then noun singularization, then the irregular-verb table, then
// comparative/superlative adjective stripping, then verb participle
// stripping, returning
// ErrUnknownToken only when every strategy fails.
func (v *Vocabulary) VectorFromWord(word string) (vecspace.Vector, error) {
	key := normalizeKey(word)

	if base, ok := v.entries[key]; ok {
		return base.Copy().WithWord(word), nil
	}

	if singular, wasPlural := Singularize(word); singular != word {
		if base, ok := v.entries[normalizeKey(singular)]; ok && base.Isa(vecspace.Noun) {
			out := base.Copy().WithWord(word)
			if wasPlural {
				out.Set(vecspace.Plural, 1.0)
				out.Set(vecspace.Singular, 0.0)
			}
			return out, nil
		}
	}

	if irregularBase, found := IrregularBase(word); found {
		if base, ok := v.entries[normalizeKey(irregularBase)]; ok && (base.Isa(vecspace.Verb) || base.Isa(vecspace.Tobe)) {
			out := base.Copy().WithWord(word)
			out.Set(vecspace.VerbPastPart, 1.0)
			return out, nil
		}
	}

	if baseAdj, form, found := BaseAdjective(word); found {
		if base, ok := v.entries[normalizeKey(baseAdj)]; ok && base.Isa(vecspace.Adj) {
			out := base.Copy().WithWord(word)
			multiplier := 1.2
			dimFlag := vecspace.Comp
			if form == AdjSuperlative {
				multiplier = 1.5
				dimFlag = vecspace.Super
			}
			out.Set(dimFlag, 1.0)
			out = out.ScaleDims(multiplier, vecspace.ComparativeBoostDims...)
			out.Word = word
			return out, nil
		}
	}

	if stripped, eRestored, form, found := BaseVerbWithERestore(word); found {
		for _, candidate := range []string{stripped, eRestored} {
			base, ok := v.entries[normalizeKey(candidate)]
			if !ok || !base.Isa(vecspace.Verb) {
				continue
			}
			out := base.Copy().WithWord(word)
			if form == VerbPastParticiple {
				out.Set(vecspace.VerbPastPart, 1.0)
			} else {
				out.Set(vecspace.VerbPresentPart, 1.0)
			}
			return out, nil
		}
	}

	return vecspace.Vector{}, fmt.Errorf("%w: %s", ErrUnknownToken, word)
}
