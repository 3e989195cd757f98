package layer2

import "github.com/go-latn/latn/pkg/atn"

// The five noun-phrase networks, tried in this order (most specific
// guard first): a bare pronoun, a bare vector literal, a determiner
// followed by a quoted identifier, a bare quoted identifier (treated as
// a proper noun), and finally the general det? (adv* adj*)* noun chain.

func buildPronounNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isPronoun, Action: actionSetPronoun, Next: 1})
	net.Accept(1)
	return net
}

func buildVectorLiteralNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isVectorLiteral, Action: actionSetVectorLiteral, Next: 1})
	net.Accept(1)
	return net
}

func buildQuotedAfterDetNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isDet, Action: actionSetDet, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isQuoted, Action: actionSetProperNoun, Next: 2})
	net.Accept(2)
	return net
}

func buildQuotedNoDetNetwork() *atn.Network {
	net := atn.NewNetwork(0)
	net.AddArc(0, atn.Arc{Guard: isQuoted, Action: actionSetProperNoun, Next: 1})
	net.Accept(1)
	return net
}

// buildGeneralNetwork implements det? (adv* adj*)* noun: state 0 is
// "before det", state 1 is "after det, or after an adv/adj", and state 2
// is the accepting post-noun state.
func buildGeneralNetwork() *atn.Network {
	net := atn.NewNetwork(0)

	net.AddArc(0, atn.Arc{Guard: isDet, Action: actionSetDet, Next: 1})
	net.AddArc(0, atn.Arc{Guard: isAdv, Action: actionBufferAdv, Next: 1})
	net.AddArc(0, atn.Arc{Guard: isAdj, Action: actionAddAdjective, Next: 1})
	net.AddArc(0, atn.Arc{Guard: isNoun, Action: actionSetNoun, Next: 2})

	net.AddArc(1, atn.Arc{Guard: isAdv, Action: actionBufferAdv, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isAdj, Action: actionAddAdjective, Next: 1})
	net.AddArc(1, atn.Arc{Guard: isNoun, Action: actionSetNoun, Next: 2})

	net.Accept(2)
	return net
}

// nounPhraseNetworks returns the ordered set of networks tryFoldNP walks
// for each candidate start position.
func nounPhraseNetworks() []*atn.Network {
	return []*atn.Network{
		buildPronounNetwork(),
		buildVectorLiteralNetwork(),
		buildQuotedAfterDetNetwork(),
		buildQuotedNoDetNetwork(),
		buildGeneralNetwork(),
	}
}
