package vocabulary

import "strings"

// AdjForm distinguishes the base adjective form from comparative and
// superlative inflections.
type AdjForm int

const (
	AdjBase AdjForm = iota
	AdjComparative
	AdjSuperlative
)

// irregularAdjectives maps an irregular comparative/superlative surface
// form directly to its base, ported verbatim from the reference
// irregular table.
var irregularAdjectives = map[string]struct {
	base string
	form AdjForm
}{
	"better":   {"good", AdjComparative},
	"best":     {"good", AdjSuperlative},
	"worse":    {"bad", AdjComparative},
	"worst":    {"bad", AdjSuperlative},
	"more":     {"much", AdjComparative},
	"most":     {"much", AdjSuperlative},
	"further":  {"far", AdjComparative},
	"furthest": {"far", AdjSuperlative},
	"farther":  {"far", AdjComparative},
	"farthest": {"far", AdjSuperlative},
}

// doubledConsonantSuffixes are comparative/superlative endings on a
// doubled final consonant (big -> bigger, not big -> biger), checked
// before the generic -er/-est strip.
var doubledConsonantSuffixes = []struct {
	comp, super, stem string
}{
	{"gger", "ggest", "g"},
	{"tter", "ttest", "t"},
	{"nner", "nnest", "n"},
	{"dder", "ddest", "d"},
}

// BaseAdjective resolves word to its base form, reporting whether (and
// how) it was inflected. found is false if word is not recognizable as
// any comparative/superlative form at all (the caller then treats word
// as already base form, leaving membership-in-vocabulary to decide
// whether it is a known adjective).
func BaseAdjective(word string) (base string, form AdjForm, found bool) {
	lower := strings.ToLower(word)

	if entry, ok := irregularAdjectives[lower]; ok {
		return entry.base, entry.form, true
	}

	for _, suf := range doubledConsonantSuffixes {
		if strings.HasSuffix(lower, suf.super) {
			return word[:len(word)-len(suf.super)] + suf.stem, AdjSuperlative, true
		}
		if strings.HasSuffix(lower, suf.comp) {
			return word[:len(word)-len(suf.comp)] + suf.stem, AdjComparative, true
		}
	}

	if strings.HasSuffix(lower, "est") && len(lower) > 3 {
		return word[:len(word)-3], AdjSuperlative, true
	}
	if strings.HasSuffix(lower, "er") && len(lower) > 2 {
		return word[:len(word)-2], AdjComparative, true
	}

	return word, AdjBase, false
}
