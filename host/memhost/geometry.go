package memhost

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
)

// Object adapts a *Mesh to host.Object.
type Object struct {
	mesh *Mesh
}

var _ host.Object = (*Object)(nil)

// Mesh returns the underlying mesh. Mutations are visible to the list.
func (o *Object) Mesh() *Mesh { return o.mesh }

// NumPoints implements host.Object.
func (o *Object) NumPoints() int { return len(o.mesh.Points) }

// Points implements host.Object.
func (o *Object) Points() []r3.Vec { return append([]r3.Vec(nil), o.mesh.Points...) }

// SetPoints implements host.Object.
func (o *Object) SetPoints(pts []r3.Vec) error {
	if len(pts) != len(o.mesh.Points) {
		return fmt.Errorf("SetPoints(%d of %d): %w", len(pts), len(o.mesh.Points), ErrPointCount)
	}
	copy(o.mesh.Points, pts)

	return nil
}

// Transform implements host.Object; a mesh without transform reports identity.
func (o *Object) Transform() *mat.Dense {
	if o.mesh.Transform == nil {
		return host.Identity4()
	}

	return mat.DenseCopyOf(o.mesh.Transform)
}

// SetTransform implements host.Object.
func (o *Object) SetTransform(m mat.Matrix) error {
	if r, c := m.Dims(); r != 4 || c != 4 {
		return ErrBadTransform
	}
	o.mesh.Transform = mat.DenseCopyOf(m)

	return nil
}

// List is an in-memory host.GeometryList.
type List struct {
	objects []*Object
}

var _ host.GeometryList = (*List)(nil)

// NewList wraps deep copies of meshes as a geometry list.
func NewList(meshes ...*Mesh) *List {
	l := &List{}
	for _, m := range meshes {
		l.objects = append(l.objects, &Object{mesh: m.Clone()})
	}

	return l
}

// Len implements host.GeometryList.
func (l *List) Len() int { return len(l.objects) }

// Object implements host.GeometryList.
func (l *List) Object(i int) (host.Object, bool) {
	if i < 0 || i >= len(l.objects) {
		return nil, false
	}

	return l.objects[i], true
}

// Mesh returns the mesh of object i, or nil when absent.
func (l *List) Mesh(i int) *Mesh {
	if i < 0 || i >= len(l.objects) {
		return nil
	}

	return l.objects[i].mesh
}

// Meshes returns the meshes in object order.
func (l *List) Meshes() []*Mesh {
	out := make([]*Mesh, len(l.objects))
	for i, o := range l.objects {
		out[i] = o.mesh
	}

	return out
}

// Clear implements host.GeometryList.
func (l *List) Clear() { l.objects = nil }

// AddFrom implements host.GeometryList. The template must be a memhost object.
func (l *List) AddFrom(template host.Object) (host.Object, error) {
	src, ok := template.(*Object)
	if !ok || src == nil {
		return nil, ErrForeignObject
	}
	m := &Mesh{
		Name:       src.mesh.Name,
		Points:     make([]r3.Vec, len(src.mesh.Points)),
		Faces:      cloneFaces(src.mesh.Faces),
		Attributes: cloneAttributes(src.mesh.Attributes),
	}
	if src.mesh.Transform != nil {
		m.Transform = mat.DenseCopyOf(src.mesh.Transform)
	}
	obj := &Object{mesh: m}
	l.objects = append(l.objects, obj)

	return obj, nil
}

// AppendHash appends every object of the list to h.
func (l *List) AppendHash(h host.Hash) {
	h.AppendInt(len(l.objects))
	for _, o := range l.objects {
		o.mesh.AppendHash(h)
	}
}
