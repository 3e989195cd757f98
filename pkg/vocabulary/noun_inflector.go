package vocabulary

import "strings"

// sibilantSuffixes are the endings that take an -es plural rather than a
// bare -s.
var sibilantSuffixes = []string{"s", "x", "z", "ch", "sh"}

// Singularize strips a plural noun suffix and reports whether the input
// was recognized as plural. It never returns an empty string: a word
// that is only an -s (e.g. "s" itself) or already ends in -ss is
// returned unchanged.
func Singularize(word string) (singular string, wasPlural bool) {
	lower := strings.ToLower(word)
	if strings.HasSuffix(lower, "ss") {
		return word, false
	}
	for _, suf := range sibilantSuffixes {
		if len(lower) > len(suf)+2 && strings.HasSuffix(lower, suf+"es") {
			return word[:len(word)-2], true
		}
	}
	if len(lower) > 1 && strings.HasSuffix(lower, "s") {
		return word[:len(word)-1], true
	}
	return word, false
}
