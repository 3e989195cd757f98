package scene

import "github.com/go-latn/latn/pkg/vecspace"

// Assembly is a named grouping of Objects that behaves like a single
// entity: its vector is the centroid of its constituent objects'
// positions, marked noun+assembly, and its bounding box is the union of
// theirs.
type Assembly struct {
	name string
	id   string
	objects []*Object
}

// NewAssembly constructs an Assembly from its initial member objects.
func NewAssembly(name, id string, objects []*Object) *Assembly {
	if id == "" {
		id = name
	}
	return &Assembly{name: name, id: id, objects: objects}
}

func (a *Assembly) ID() string   { return a.id }
func (a *Assembly) Name() string { return a.name }

// Objects returns the assembly's constituent objects.
func (a *Assembly) Objects() []*Object { return a.objects }

// AddObject adds o to the assembly if not already present.
func (a *Assembly) AddObject(o *Object) {
	for _, existing := range a.objects {
		if existing == o {
			return
		}
	}
	a.objects = append(a.objects, o)
}

// RemoveObject removes o from the assembly, reporting whether it was
// present.
func (a *Assembly) RemoveObject(o *Object) bool {
	for i, existing := range a.objects {
		if existing == o {
			a.objects = append(a.objects[:i], a.objects[i+1:]...)
			return true
		}
	}
	return false
}

// ObjectByName returns the first member object with the given name.
func (a *Assembly) ObjectByName(name string) *Object {
	for _, o := range a.objects {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// Vector computes the assembly's semantic vector: noun+assembly set,
// position the centroid of member positions.
func (a *Assembly) Vector() vecspace.Vector {
	v := vecspace.NewWithFeatures(vecspace.Noun, vecspace.Assembly)
	v.Word = a.name
	if len(a.objects) == 0 {
		return v
	}
	var sx, sy, sz float64
	for _, o := range a.objects {
		p := o.Position()
		sx += p[0]
		sy += p[1]
		sz += p[2]
	}
	n := float64(len(a.objects))
	v.Set(vecspace.LocX, sx/n)
	v.Set(vecspace.LocY, sy/n)
	v.Set(vecspace.LocZ, sz/n)
	return v
}

// Position returns the assembly's centroid.
func (a *Assembly) Position() [3]float64 {
	v := a.Vector()
	return [3]float64{v.Get(vecspace.LocX), v.Get(vecspace.LocY), v.Get(vecspace.LocZ)}
}

// Scale returns the extents of the assembly's bounding box on each axis:
// an assembly has no independent scale of its own beyond that box.
func (a *Assembly) Scale() [3]float64 {
	bb := a.BoundingBox()
	return [3]float64{bb.MaxX - bb.MinX, bb.MaxY - bb.MinY, bb.MaxZ - bb.MinZ}
}

// BoundingBox returns the union of every member object's bounding box.
func (a *Assembly) BoundingBox() BoundingBox {
	if len(a.objects) == 0 {
		return BoundingBox{}
	}
	bb := a.objects[0].BoundingBox()
	for _, o := range a.objects[1:] {
		bb = Union(bb, o.BoundingBox())
	}
	return bb
}

var _ Entity = (*Assembly)(nil)
