package vocabulary

import "github.com/go-latn/latn/pkg/vecspace"

func vec(dims ...vecspace.Dim) vecspace.Vector {
	return vecspace.NewWithFeatures(dims...)
}

func vecNum(n float64, dims ...vecspace.Dim) vecspace.Vector {
	v := vec(dims...)
	v.Set(vecspace.Number, n)
	return v
}

func vecLoc(x, y, z float64, dims ...vecspace.Dim) vecspace.Vector {
	v := vec(dims...)
	v.Set(vecspace.LocX, x)
	v.Set(vecspace.LocY, y)
	v.Set(vecspace.LocZ, z)
	return v
}

func vecScale(x, y, z float64, dims ...vecspace.Dim) vecspace.Vector {
	v := vec(dims...)
	v.Set(vecspace.ScaleX, x)
	v.Set(vecspace.ScaleY, y)
	v.Set(vecspace.ScaleZ, z)
	return v
}

func vecColor(r, g, b float64) vecspace.Vector {
	v := vec(vecspace.Adj)
	v.Set(vecspace.Red, r)
	v.Set(vecspace.Green, g)
	v.Set(vecspace.Blue, b)
	return v
}

func vecAdv(intensity float64) vecspace.Vector {
	v := vec(vecspace.Adv)
	v.Set(vecspace.Adverb, intensity)
	return v
}

func vecDir(d vecspace.Dim, val float64, prepDims ...vecspace.Dim) vecspace.Vector {
	v := vec(append([]vecspace.Dim{vecspace.Prep}, prepDims...)...)
	v.Set(d, val)
	return v
}

// seedVocabulary is the closed bootstrap dictionary, ported entry for
// entry from the canonical vocabulary table: shape/unit nouns, pronouns,
// color/size/texture/transparency adjectives, adverbs, determiners,
// the create/edit/organize/select/style/transform/generic verb groups,
// the spatial/proximity/directional/agency/relational prepositions,
// conjunctions, negation, modal verbs, question markers and tobe forms.
func seedVocabulary() map[string]vecspace.Vector {
	m := map[string]vecspace.Vector{
		// Shape nouns.
		"cube":         vecScale(0, 0, 0, vecspace.Noun),
		"box":          vecScale(0, 0, 0, vecspace.Noun),
		"sphere":       vecScale(0, 0, 0, vecspace.Noun),
		"ellipsoid":    vecScale(0, 0, 0, vecspace.Noun),
		"arch":         vecScale(0, 0, 0, vecspace.Noun),
		"table":        vecScale(0, 0, 0, vecspace.Noun),
		"object":       vecScale(0, 0, 0, vecspace.Noun),
		"square":       vecScale(0, 0, 0, vecspace.Noun),
		"rectangle":    vecScale(0, 0, 0, vecspace.Noun),
		"triangle":     vecScale(0, 0, 0, vecspace.Noun),
		"circle":       vecScale(0, 0, 0, vecspace.Noun),
		"cylinder":     vecScale(0, 0, 0, vecspace.Noun),
		"cone":         vecScale(0, 0, 0, vecspace.Noun),
		"tetrahedron":  vecScale(0, 0, 0, vecspace.Noun),
		"hexahedron":   vecScale(0, 0, 0, vecspace.Noun),
		"octahedron":   vecScale(0, 0, 0, vecspace.Noun),
		"dodecahedron": vecScale(0, 0, 0, vecspace.Noun),
		"icosahedron":  vecScale(0, 0, 0, vecspace.Noun),
		"pyramid":      vecScale(0, 0, 0, vecspace.Noun),
		"prism":        vecScale(0, 0, 0, vecspace.Noun),

		// A compound noun ("light house") that shares a constituent with
		// two independently-defined nouns, exercising the no-spurious-
		// ambiguity / compound-preference pair of invariants together.
		"light":       vecScale(0, 0, 0, vecspace.Noun),
		"house":       vecScale(0, 0, 0, vecspace.Noun),
		"light house": vecScale(0, 0, 0, vecspace.Noun),

		// Units.
		"degree": vecNum(1.0, vecspace.Noun),
		"unit":   vecNum(1.0, vecspace.Noun),
		"pixel":  vecNum(1.0, vecspace.Noun),
		"meter":  vecNum(1.0, vecspace.Noun),
		"inch":   vecNum(1.0, vecspace.Noun),
		"foot":   vecNum(1.0, vecspace.Noun),
		"yard":   vecNum(1.0, vecspace.Noun),

		// Pronouns.
		"it":   vec(vecspace.Pronoun, vecspace.Singular),
		"they": vec(vecspace.Pronoun, vecspace.Plural),
		"them": vec(vecspace.Pronoun, vecspace.Plural),

		// Color adjectives.
		"red":    vecColor(1.0, 0.0, 0.0),
		"green":  vecColor(0.0, 1.0, 0.0),
		"blue":   vecColor(0.0, 0.0, 1.0),
		"yellow": vecColor(1.0, 1.0, 0.0),
		"purple": vecColor(0.5, 0.0, 0.5),
		"orange": vecColor(1.0, 0.5, 0.0),
		"black":  vecColor(0.0, 0.0, 0.0),
		"white":  vecColor(1.0, 1.0, 1.0),
		"gray":   vecColor(0.5, 0.5, 0.5),
		"brown":  vecColor(0.6, 0.3, 0.1),

		// Size adjectives.
		"large": vecScale(2.0, 2.0, 2.0, vecspace.Adj),
		"big":   vecScale(2.0, 2.0, 2.0, vecspace.Adj),
		"huge":  vecScale(3.0, 3.0, 3.0, vecspace.Adj),
		"small": vecScale(-0.5, -0.5, -0.5, vecspace.Adj),
		"tiny":  vecScale(-0.7, -0.7, -0.7, vecspace.Adj),
		"tall":  vecScale(0.0, 1.5, 0.0, vecspace.Adj),
		"short": vecScale(0.0, -0.5, 0.0, vecspace.Adj),
		"wide":  vecScale(1.5, 0.0, 0.0, vecspace.Adj),
		"deep":  vecScale(0.0, 0.0, 1.5, vecspace.Adj),

		// Comparative/superlative size adjectives: a transform verb's
		// adjective-complement form ("make it bigger") rather than a
		// noun-phrase modifier, flagged via Comp/Super rather than a
		// concrete scale factor since the delta is relative, not absolute.
		"bigger":  withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Comp), vecspace.Scale, 1.0),
		"larger":  withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Comp), vecspace.Scale, 1.0),
		"smaller": withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Comp), vecspace.Scale, -1.0),
		"biggest": withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Super), vecspace.Scale, 1.0),
		"largest": withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Super), vecspace.Scale, 1.0),
		"smallest": withDim(vecScale(0, 0, 0, vecspace.Adj, vecspace.Super), vecspace.Scale, -1.0),

		// Texture / transparency adjectives.
		"rough":       withDim(vec(vecspace.Adj), vecspace.Texture, 2.0),
		"smooth":      withDim(vec(vecspace.Adj), vecspace.Texture, 0.5),
		"shiny":       withDim(vec(vecspace.Adj), vecspace.Texture, 0.0),
		"clear":       withDim(vec(vecspace.Adj), vecspace.Transparency, 2.0),
		"transparent": withDim(vec(vecspace.Adj), vecspace.Transparency, 2.0),
		"opaque":      withDim(vec(vecspace.Adj), vecspace.Transparency, 0.0),

		// Adverbs.
		"very":          vecAdv(1.5),
		"more":          vecAdv(1.5),
		"bright":        vecAdv(1.5),
		"much":          vecAdv(1.5),
		"a little bit":  vecAdv(1.15),
		"extremely":     vecAdv(2.0),
		"slightly":      vecAdv(0.75),

		// Determiners.
		"the": vecNum(1.0, vecspace.Det, vecspace.Def, vecspace.Singular),
		"one": vecNum(1.0, vecspace.Det, vecspace.Def, vecspace.Singular),
		"two": vecNum(2.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"three": vecNum(3.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"four":  vecNum(4.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"five":  vecNum(5.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"six":   vecNum(6.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"seven": vecNum(7.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"eight": vecNum(8.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"nine":  vecNum(9.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"ten":   vecNum(10.0, vecspace.Det, vecspace.Def, vecspace.Plural),
		"a":     vecNum(1.0, vecspace.Det, vecspace.Singular),
		"an":    vecNum(1.0, vecspace.Det, vecspace.Singular),

		// Create verbs.
		"create": vec(vecspace.Verb, vecspace.Action, vecspace.Create),
		"draw":   vec(vecspace.Verb, vecspace.Action, vecspace.Create),
		"make":   vec(vecspace.Verb, vecspace.Action, vecspace.Create, vecspace.Scale, vecspace.Style),
		"build":  vec(vecspace.Verb, vecspace.Action, vecspace.Create),
		"place":  vec(vecspace.Verb, vecspace.Action, vecspace.Create),

		// Edit verbs.
		"copy":   vec(vecspace.Verb, vecspace.Action, vecspace.Edit),
		"delete": vec(vecspace.Verb, vecspace.Action, vecspace.Edit),
		"remove": vec(vecspace.Verb, vecspace.Action, vecspace.Edit),
		"paste":  vec(vecspace.Verb, vecspace.Action, vecspace.Edit),

		// Organize verbs.
		"align":    vec(vecspace.Verb, vecspace.Action, vecspace.Organize),
		"group":    vec(vecspace.Verb, vecspace.Action, vecspace.Organize),
		"position": vec(vecspace.Verb, vecspace.Action, vecspace.Organize),
		"ungroup":  vec(vecspace.Verb, vecspace.Action, vecspace.Organize),

		// Select.
		"select": vec(vecspace.Verb, vecspace.Action, vecspace.Select),

		// Style verbs.
		"color":   vec(vecspace.Verb, vecspace.Action, vecspace.Style),
		"texture": vec(vecspace.Verb, vecspace.Action, vecspace.Style),

		// Transform verbs.
		"move":    vec(vecspace.Verb, vecspace.Action, vecspace.Move),
		"rotate":  vec(vecspace.Verb, vecspace.Action, vecspace.Rotate),
		"xrotate": withDim(vec(vecspace.Verb, vecspace.Action, vecspace.Rotate), vecspace.RotX, 1.0),
		"yrotate": withDim(vec(vecspace.Verb, vecspace.Action, vecspace.Rotate), vecspace.RotY, 1.0),
		"zrotate": withDim(vec(vecspace.Verb, vecspace.Action, vecspace.Rotate), vecspace.RotZ, 1.0),
		"scale":   vec(vecspace.Verb, vecspace.Action, vecspace.Scale),

		// Generic verbs.
		"redo": vec(vecspace.Verb, vecspace.Action),
		"undo": vec(vecspace.Verb, vecspace.Action),
		"go":   vec(vecspace.Verb, vecspace.Action),

		"back":    vec(vecspace.Adv),
		"forward": vec(vecspace.Adv),
		"time":    vec(vecspace.Noun),

		// Prepositions: spatial vertical.
		"on":    vecDir(vecspace.DirY, 0.5, vecspace.SpatialVertical),
		"over":  vecDir(vecspace.DirY, 1.0, vecspace.SpatialVertical),
		"above": vecDir(vecspace.DirY, 1.0, vecspace.SpatialVertical),
		"under": vecDir(vecspace.DirY, -1.0, vecspace.SpatialVertical),
		"below": vecDir(vecspace.DirY, -1.0, vecspace.SpatialVertical),

		// Prepositions: spatial proximity.
		"in":   prepVal(vecspace.SpatialProximity, 0.3),
		"at":   prepVal(vecspace.SpatialProximity, 0.5),
		"near": prepVal(vecspace.SpatialProximity, 1.0),

		// Prepositions: directional/movement.
		"to":   prepVal(vecspace.DirectionalTarget, 1.0),
		"from": prepVal(vecspace.DirectionalTarget, -1.0),

		// Prepositions: agency.
		"by":   prepVal(vecspace.DirectionalAgency, 1.0),
		"with": prepVal(vecspace.DirectionalAgency, 0.7),

		// Prepositions: relational.
		"of":   prepVal(vecspace.RelationalPossession, 1.0),
		"than": prepVal(vecspace.RelationalComparison, 1.0),

		// "as" introduces an organize verb's assembly-type-name PP
		// ("group the chairs as 'table_setting'"); it carries no spatial
		// semantics of its own, just the Prep flag the PP ATN guard needs.
		"as": vec(vecspace.Prep),

		// Conjunction / disjunction / negation.
		"and": vec(vecspace.Conj),
		"or":  vec(vecspace.Disj),
		"not": vec(vecspace.Neg),
		"no":  vec(vecspace.Neg),

		// Modal verbs.
		"can":   vec(vecspace.Verb, vecspace.Modal),
		"could": vec(vecspace.Verb, vecspace.Modal),
		"may":   vec(vecspace.Verb, vecspace.Modal),
		"might": vec(vecspace.Verb, vecspace.Modal),
		"must":  vec(vecspace.Verb, vecspace.Modal),
		"shall": vec(vecspace.Verb, vecspace.Modal),
		"should": vec(vecspace.Verb, vecspace.Modal),
		"will":   vec(vecspace.Verb, vecspace.Modal),
		"would":  vec(vecspace.Verb, vecspace.Modal),

		// Question markers.
		"who":   vec(vecspace.Question),
		"what":  vec(vecspace.Question),
		"where": vec(vecspace.Question),
		"when":  vec(vecspace.Question),
		"why":   vec(vecspace.Question),
		"how":   vec(vecspace.Question),
		"which": vec(vecspace.Question),

		// To-be forms.
		"is":   vec(vecspace.Tobe),
		"are":  vec(vecspace.Tobe),
		"was":  vec(vecspace.Tobe),
		"were": vec(vecspace.Tobe),
		"be":   vec(vecspace.Tobe),
		"been": vec(vecspace.Tobe),
	}

	return m
}

func withDim(v vecspace.Vector, d vecspace.Dim, val float64) vecspace.Vector {
	v.Set(d, val)
	return v
}

func prepVal(d vecspace.Dim, val float64) vecspace.Vector {
	v := vec(vecspace.Prep)
	v.Set(d, val)
	return v
}
