package phrase

import "github.com/go-latn/latn/pkg/vecspace"

// VerbClass groups verbs by the attachment rules Layer 4 applies to
// them.
type VerbClass uint8

const (
	VerbClassGeneric VerbClass = iota
	VerbClassCreate
	VerbClassTransform
	VerbClassStyle
	VerbClassEdit
	VerbClassOrganize
)

// ClassifyVerb derives a verb's class from its semantic dimension flags.
func ClassifyVerb(v vecspace.Vector) VerbClass {
	switch {
	case v.Isa(vecspace.Create):
		return VerbClassCreate
	case v.Isa(vecspace.Move), v.Isa(vecspace.Rotate), v.Isa(vecspace.Scale), v.Isa(vecspace.Transform):
		return VerbClassTransform
	case v.Isa(vecspace.Style):
		return VerbClassStyle
	case v.Isa(vecspace.Edit):
		return VerbClassEdit
	case v.Isa(vecspace.Organize):
		return VerbClassOrganize
	default:
		return VerbClassGeneric
	}
}

// VerbPhrase is `verb NP? (PP | adjective-complement)*`.
type VerbPhrase struct {
	Verb           vecspace.Vector
	Object         *Phrase
	PPs            []*Phrase
	AdjComplements []vecspace.Vector
	// AssemblyTypeName carries the quoted type name from an organize
	// verb's `as`-PP (e.g. "group the chairs as 'table_setting'").
	AssemblyTypeName string
	// MissingRequiredDirection flags (non-fatally) that a transform verb
	// had no PP at all where its semantics expect a destination or
	// parameter; Layer 5 or the host decide whether to reject it.
	MissingRequiredDirection bool
}

// Class returns this verb phrase's verb class.
func (vp *VerbPhrase) Class() VerbClass { return ClassifyVerb(vp.Verb) }

// Vector merges the verb's own vector with its object NP's vector; PP
// adjuncts and adjective-complements are kept as separate children, not
// folded in, so that Layer 5's inspection of "did this VP have a
// direction" can still see them structurally.
func (vp *VerbPhrase) Vector() vecspace.Vector {
	v := vp.Verb
	if vp.Object != nil {
		v = v.Add(vp.Object.V)
	}
	v.Set(vecspace.VP, 1.0)
	v.Word = vp.Verb.Word
	return v
}
