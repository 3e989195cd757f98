package scene

import (
	"sort"

	"github.com/go-latn/latn/pkg/vecspace"
)

// Scene is the read-only (from the parser's perspective) collection of
// entities the host attaches for grounding. The host is free to mutate
// it between parses; the parser only ever queries it during one.
type Scene struct {
	objects    []*Object
	assemblies []*Assembly
	// order records insertion order across both objects and
	// assemblies, used by ResolvePronoun's "it" = most recent rule.
	order []Entity
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddObject registers a top-level object.
func (s *Scene) AddObject(o *Object) {
	s.objects = append(s.objects, o)
	s.order = append(s.order, o)
}

// AddAssembly registers an assembly.
func (s *Scene) AddAssembly(a *Assembly) {
	s.assemblies = append(s.assemblies, a)
	s.order = append(s.order, a)
}

// Entities returns every top-level entity: assemblies first, then
// objects, matching the precedence FindNounPhrase searches in.
func (s *Scene) Entities() []Entity {
	out := make([]Entity, 0, len(s.assemblies)+len(s.objects))
	for _, a := range s.assemblies {
		out = append(out, a)
	}
	for _, o := range s.objects {
		out = append(out, o)
	}
	return out
}

// Match pairs a matched entity with its similarity score.
type Match struct {
	Similarity float64
	Entity     Entity
}

// universalName is the wildcard matched against every entity regardless
// of its own name.
const universalName = "object"

// FindNounPhrase searches assemblies first, then top-level objects, then
// objects nested inside assemblies, filtering by exact name (with
// "object" as a universal wildcard) and scoring by semantic similarity
// restricted to the {noun, color, scale, texture, transparency}
// subspace. With returnAllMatches false it returns the single best
// match; with it true, every entity with positive similarity, sorted
// descending.
func (s *Scene) FindNounPhrase(npVector vecspace.Vector, returnAllMatches bool) []Match {
	name := npVector.Word
	var candidates []Entity

	for _, a := range s.assemblies {
		if nameMatches(a.Name(), name) {
			candidates = append(candidates, a)
		}
	}
	for _, o := range s.objects {
		if nameMatches(o.Name(), name) {
			candidates = append(candidates, o)
		}
	}
	for _, a := range s.assemblies {
		for _, o := range a.Objects() {
			if nameMatches(o.Name(), name) {
				candidates = append(candidates, o)
			}
		}
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		sim := vecspace.SemanticSimilarity(npVector, c.Vector())
		if sim > 0 {
			matches = append(matches, Match{Similarity: sim, Entity: c})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })

	if returnAllMatches {
		return matches
	}
	if len(matches) == 0 {
		return nil
	}
	return matches[:1]
}

func nameMatches(entityName, npName string) bool {
	return npName == universalName || entityName == npName
}

// ResolvePronoun resolves "it" to the most recently added entity, and
// "they"/"them" to every entity in the scene.
func (s *Scene) ResolvePronoun(word string) []Entity {
	switch word {
	case "it":
		if len(s.order) == 0 {
			return nil
		}
		return []Entity{s.order[len(s.order)-1]}
	case "they", "them":
		return s.Entities()
	default:
		return nil
	}
}
