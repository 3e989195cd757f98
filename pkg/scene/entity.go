// Package scene implements the read-only scene entity model the parser
// queries (but does not own) for grounding: SceneObject/SceneAssembly
// entities, name+similarity lookup, and pronoun resolution.
package scene

import "github.com/go-latn/latn/pkg/vecspace"

// BoundingBox is an axis-aligned box in scene-world coordinates.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Union returns the smallest box containing both a and b.
func Union(a, b BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: minF(a.MinX, b.MinX), MaxX: maxF(a.MaxX, b.MaxX),
		MinY: minF(a.MinY, b.MinY), MaxY: maxF(a.MaxY, b.MaxY),
		MinZ: minF(a.MinZ, b.MinZ), MaxZ: maxF(a.MaxZ, b.MaxZ),
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Entity is anything the parser can ground a noun phrase to: an atomic
// Object or a grouping Assembly, which itself behaves like an entity.
type Entity interface {
	ID() string
	Name() string
	Vector() vecspace.Vector
	Position() [3]float64
	Scale() [3]float64
	BoundingBox() BoundingBox
}
