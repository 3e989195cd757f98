package scene

import "github.com/go-latn/latn/pkg/vecspace"

// Object is an atomic scene entity: a base noun, a unique id, and a
// feature vector whose geometry/color dimensions are its position,
// rotation, scale, and color.
type Object struct {
	name string
	id   string
	vec  vecspace.Vector
}

// NewObject constructs an Object. id defaults to name if empty, matching
// the reference "unique identifier defaults to the type name" behavior.
func NewObject(name, id string, vec vecspace.Vector) *Object {
	if id == "" {
		id = name
	}
	return &Object{name: name, id: id, vec: vec}
}

func (o *Object) ID() string   { return o.id }
func (o *Object) Name() string { return o.name }

func (o *Object) Vector() vecspace.Vector { return o.vec }

func (o *Object) Position() [3]float64 {
	return [3]float64{o.vec.Get(vecspace.LocX), o.vec.Get(vecspace.LocY), o.vec.Get(vecspace.LocZ)}
}

func (o *Object) Scale() [3]float64 {
	sx, sy, sz := o.vec.Get(vecspace.ScaleX), o.vec.Get(vecspace.ScaleY), o.vec.Get(vecspace.ScaleZ)
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	return [3]float64{sx, sy, sz}
}

func (o *Object) BoundingBox() BoundingBox {
	pos := o.Position()
	half := o.Scale()
	return BoundingBox{
		MinX: pos[0] - half[0]/2, MaxX: pos[0] + half[0]/2,
		MinY: pos[1] - half[1]/2, MaxY: pos[1] + half[1]/2,
		MinZ: pos[2] - half[2]/2, MaxZ: pos[2] + half[2]/2,
	}
}

// MoveTo sets the object's position, keeping the vector and position in
// lockstep (mirroring the reference's paired dict+vector update).
func (o *Object) MoveTo(x, y, z float64) {
	o.vec.Set(vecspace.LocX, x)
	o.vec.Set(vecspace.LocY, y)
	o.vec.Set(vecspace.LocZ, z)
}

// ScaleBy multiplies the object's scale by the given per-axis factors.
func (o *Object) ScaleBy(fx, fy, fz float64) {
	cur := o.Scale()
	o.vec.Set(vecspace.ScaleX, cur[0]*fx)
	o.vec.Set(vecspace.ScaleY, cur[1]*fy)
	o.vec.Set(vecspace.ScaleZ, cur[2]*fz)
}

var _ Entity = (*Object)(nil)
