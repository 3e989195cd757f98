package vocabulary

import "strings"

// VerbForm distinguishes the base verb from its participle inflections.
type VerbForm int

const (
	VerbBase VerbForm = iota
	VerbPastParticiple
	VerbPresentParticiple
)

// irregularVerbForms maps an irregular past-participle surface form to
// its base verb. Checked only after a direct vocabulary lookup fails,
// and only accepted by the caller if the resolved base is itself marked
// verb- or tobe-like in the vocabulary (irregularVerbForms intentionally
// says nothing about part of speech on its own).
var irregularVerbForms = map[string]string{
	"done":  "do",
	"gone":  "go",
	"seen":  "see",
	"taken": "take",
	"given": "give",
	"made":  "make",
	"said":  "say",
	"told":  "tell",
	"found": "find",
	"had":   "have",
	"did":   "do",
	"went":  "go",
	"saw":   "see",
	"took":  "take",
	"gave":  "give",
}

// IrregularBase looks the surface form up in the irregular table only.
func IrregularBase(word string) (base string, ok bool) {
	base, ok = irregularVerbForms[strings.ToLower(word)]
	return base, ok
}

// BaseVerb strips a regular -ed/-ing suffix, returning the stripped base
// and which inflection was found. It does not restore an elided
// trailing 'e' ("named" -> "nam", "making" -> "mak");
// BaseVerbWithERestore supplies the e-restored candidate as well.
func BaseVerb(word string) (base string, form VerbForm, found bool) {
	lower := strings.ToLower(word)

	if strings.HasSuffix(lower, "ing") && len(lower) > 4 {
		stem := word[:len(word)-3]
		return stem, VerbPresentParticiple, true
	}
	if strings.HasSuffix(lower, "ed") && len(lower) > 3 {
		stem := word[:len(word)-2]
		return stem, VerbPastParticiple, true
	}
	return word, VerbBase, false
}

// BaseVerbWithERestore returns both the bare-strip candidate (ready to
// try as-is) and an e-restored candidate ("mov" -> "move"), mirroring
// the two candidate forms the reference inflector tries in order.
func BaseVerbWithERestore(word string) (stripped, eRestored string, form VerbForm, found bool) {
	stripped, form, found = BaseVerb(word)
	if !found {
		return stripped, stripped, form, false
	}
	eRestored = stripped + "e"
	return stripped, eRestored, form, true
}
