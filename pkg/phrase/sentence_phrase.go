package phrase

import "github.com/go-latn/latn/pkg/vecspace"

// SentenceKind tags which of the four sentence shapes a SentencePhrase
// represents.
type SentenceKind uint8

const (
	SentenceImperative SentenceKind = iota
	SentenceDeclarative
	SentenceIdentification
	SentenceDefinition
)

// SentencePhrase is the top-level parse product: imperative (VP alone),
// declarative (NP + copula/VP), bare identification (NP alone), or a
// naming declaration that extends the vocabulary at runtime.
type SentencePhrase struct {
	Kind        SentenceKind
	Subject     *Phrase
	Predicate   *Phrase
	TopLevelPPs []*Phrase

	// DefinitionWord/DefinitionVector are populated only when
	// Kind == SentenceDefinition: the quoted word being defined and the
	// merged vector of the phrase on the right-hand side of the copula.
	// The host is expected to call Vocabulary.Define(DefinitionWord,
	// DefinitionVector) with this pair.
	DefinitionWord   string
	DefinitionVector vecspace.Vector
}

// Vector merges subject and predicate contributions, tagged with the SP
// dimension.
func (sp *SentencePhrase) Vector() vecspace.Vector {
	v := vecspace.New()
	if sp.Subject != nil {
		v = v.Add(sp.Subject.V)
	}
	if sp.Predicate != nil {
		v = v.Add(sp.Predicate.V)
	}
	v.Set(vecspace.SP, 1.0)
	return v
}
