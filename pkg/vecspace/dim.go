// Package vecspace implements the fixed-dimension semantic feature vector
// shared by every vocabulary entry, stream token, structured phrase, and
// scene entity in the parser.
package vecspace

// Dim identifies one named slot in the feature vector. The set of
// dimensions is closed at compile time: there is no runtime path that
// creates a new Dim, and an out-of-range Dim is a programming error, not
// a user-facing one.
type Dim int

const (
	// Part of speech.
	Noun Dim = iota
	Verb
	Adj
	Adv
	Det
	Prep
	Conj
	Disj
	Neg
	Modal
	Question
	Tobe
	Pronoun
	Quoted
	Unknown
	VectorLiteral
	NP
	PP
	VP
	SP
	SO
	Assembly
	Comma

	// Agreement / number.
	Singular
	Plural
	Def
	Number

	// Morphological inflection.
	Comp
	Super
	VerbPast
	VerbPastPart
	VerbPresentPart

	// Color.
	Red
	Green
	Blue

	// Geometry: position.
	LocX
	LocY
	LocZ
	// Geometry: scale.
	ScaleX
	ScaleY
	ScaleZ
	// Geometry: rotation.
	RotX
	RotY
	RotZ
	// Geometry: preposition direction factor. Kept distinct from LocX/Y/Z
	// per the position/direction split — a preposition vector's "above"
	// is a direction, never a coordinate.
	DirX
	DirY
	DirZ

	// Surface.
	Texture
	Transparency

	// Verb semantics.
	Action
	Create
	Edit
	Organize
	Select
	Style
	Move
	Rotate
	Scale
	Transform
	Naming

	// Preposition semantics.
	SpatialLocation
	SpatialVertical
	SpatialProximity
	DirectionalTarget
	DirectionalAgency
	RelationalPossession
	RelationalComparison

	// Adverb intensifier.
	Adverb

	dimCount
)

var dimNames = map[Dim]string{
	Noun: "noun", Verb: "verb", Adj: "adj", Adv: "adv", Det: "det",
	Prep: "prep", Conj: "conj", Disj: "disj", Neg: "neg", Modal: "modal",
	Question: "question", Tobe: "tobe", Pronoun: "pronoun", Quoted: "quoted",
	Unknown: "unknown", VectorLiteral: "vector", NP: "NP", PP: "PP",
	VP: "VP", SP: "SP", SO: "SO", Assembly: "assembly", Comma: "comma",
	Singular: "singular", Plural: "plural", Def: "def", Number: "number",
	Comp: "comp", Super: "super", VerbPast: "verb_past",
	VerbPastPart: "verb_past_part", VerbPresentPart: "verb_present_part",
	Red: "red", Green: "green", Blue: "blue",
	LocX: "locX", LocY: "locY", LocZ: "locZ",
	ScaleX: "scaleX", ScaleY: "scaleY", ScaleZ: "scaleZ",
	RotX: "rotX", RotY: "rotY", RotZ: "rotZ",
	DirX: "dirX", DirY: "dirY", DirZ: "dirZ",
	Texture: "texture", Transparency: "transparency",
	Action: "action", Create: "create", Edit: "edit", Organize: "organize",
	Select: "select", Style: "style", Move: "move", Rotate: "rotate",
	Scale: "scale", Transform: "transform", Naming: "naming",
	SpatialLocation: "spatial_location", SpatialVertical: "spatial_vertical",
	SpatialProximity: "spatial_proximity", DirectionalTarget: "directional_target",
	DirectionalAgency: "directional_agency", RelationalPossession: "relational_possession",
	RelationalComparison: "relational_comparison",
	Adverb:               "adverb",
}

var namesToDim = func() map[string]Dim {
	m := make(map[string]Dim, len(dimNames))
	for d, n := range dimNames {
		m[n] = d
	}
	return m
}()

// String returns the dimension's canonical name.
func (d Dim) String() string {
	if n, ok := dimNames[d]; ok {
		return n
	}
	return "<invalid dim>"
}

// DimByName resolves a dimension by its canonical name. It panics on an
// unrecognized name: this is the one data-driven boundary (vocabulary
// table loading) where an unknown name indicates a broken build, never
// user input.
func DimByName(name string) Dim {
	d, ok := namesToDim[name]
	if !ok {
		panic("vecspace: unknown dimension name " + name)
	}
	return d
}
