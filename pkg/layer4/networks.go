package layer4

import (
	"github.com/go-latn/latn/pkg/atn"
	"github.com/go-latn/latn/pkg/phrase"
)

// buildNetwork returns the ATN shape for class, per spec.md §4.8's
// per-class attachment rules. Every network's state 0 consumes the verb
// itself, so the caller can run the same network starting right at the
// verb token.
func buildNetwork(class phrase.VerbClass) *atn.Network {
	switch class {
	case phrase.VerbClassCreate:
		return buildObjectPlusPPNetwork()
	case phrase.VerbClassTransform:
		return buildTransformNetwork()
	case phrase.VerbClassStyle:
		return buildStyleNetwork()
	case phrase.VerbClassEdit:
		return buildEditNetwork()
	case phrase.VerbClassOrganize:
		return buildObjectPlusPPNetwork()
	default:
		return buildGenericNetwork()
	}
}

// buildObjectPlusPPNetwork is `verb NP PP*`: shared by create (locations)
// and organize (the optional "as"-PP naming an assembly type).
func buildObjectPlusPPNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVerbToken, Action: actionSetVerb, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetObject, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isPPToken, Action: actionAddPP, Next: 2})
	net.Accept(2)
	return net
}

// buildTransformNetwork is `verb NP (PP | comparative-adjective)*`.
func buildTransformNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVerbToken, Action: actionSetVerb, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetObject, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isPPToken, Action: actionAddPP, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isComparativeAdjComplement, Action: actionAddAdjComplement, Next: 2})
	net.Accept(2)
	return net
}

// buildStyleNetwork is `verb NP (PP | adjective | NP)*`: the trailing
// bare adjective or second NP is the new color/texture complement.
func buildStyleNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVerbToken, Action: actionSetVerb, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetObject, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isPPToken, Action: actionAddPP, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isAnyAdjComplement, Action: actionAddAdjComplement, Next: 2})
	net.AddArc(2, atn.Arc{Guard: isNPToken, Action: actionAddAdjComplement, Next: 2})
	net.Accept(2)
	return net
}

// buildEditNetwork is `verb NP`: no PP, no complement, no loop.
func buildEditNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVerbToken, Action: actionSetVerb, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetObject, Next: 2})
	net.Accept(2)
	return net
}

// buildGenericNetwork is `verb NP?`: undo/redo and modal verbs need no
// object at all.
func buildGenericNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVerbToken, Action: actionSetVerb, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNPToken, Action: actionSetObject, Next: 2})
	net.Accept(1)
	net.Accept(2)
	return net
}
