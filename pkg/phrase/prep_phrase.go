package phrase

import "github.com/go-latn/latn/pkg/vecspace"

// PrepPhrase is `prep NP`, where NP may be an ungrounded NounPhrase, a
// SceneObjectPhrase, or a vector-literal NP — all represented uniformly
// as a *Phrase child.
type PrepPhrase struct {
	Prep  vecspace.Vector
	NP    *Phrase
	Score float64
	// ScoreValid is false until Layer 3's spatial grounder runs; a false
	// ScoreValid is the GroundingFailure state, never a parse error.
	ScoreValid bool
}

// Vector combines the preposition's own spatial-semantic dimensions with
// the child NP's referent features.
func (pp *PrepPhrase) Vector() vecspace.Vector {
	v := pp.Prep
	if pp.NP != nil {
		v = v.Add(pp.NP.V)
	}
	v.Set(vecspace.PP, 1.0)
	v.Word = pp.Prep.Word
	return v
}
