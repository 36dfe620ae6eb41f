// Package host declares the surface a geometry node consumes from its host
// compositing application: input slots, geometry lists and objects, the
// rolling hash used for cache invalidation, knob registration and the error
// channel. The node never sees a concrete host type; see package memhost for
// an in-memory implementation.
package host

import (
	"context"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Input is one connected upstream producer.
type Input interface {
	// Validate brings the producer up to date; a failure marks it errored.
	Validate(ctx context.Context) error
	// Geometry returns the producer's geometry at the current evaluation context.
	Geometry(ctx context.Context) (GeometryList, error)
	// AppendHash appends everything that affects the producer's output.
	AppendHash(h Hash)
}

// Inputs enumerates a node's input slots. Input returns nil for a
// disconnected slot.
type Inputs interface {
	Len() int
	Input(slot int) Input
}

// GeometryList is an ordered sequence of objects owned by the host.
type GeometryList interface {
	Len() int
	// Object returns object i, or (nil, false) when absent.
	Object(i int) (Object, bool)
	// Clear deletes every object.
	Clear()
	// AddFrom appends a new object carrying template's primitives, attributes
	// and transform. Point positions are NOT copied; the new object has
	// template.NumPoints() points at the origin.
	AddFrom(template Object) (Object, error)
}

// Object is one mesh in a geometry list.
type Object interface {
	NumPoints() int
	// Points returns a copy of the point positions in index order.
	Points() []r3.Vec
	// SetPoints overwrites the point positions; len(pts) must equal NumPoints().
	SetPoints(pts []r3.Vec) error
	// Transform returns a copy of the 4×4 object transform.
	Transform() *mat.Dense
	// SetTransform replaces the 4×4 object transform.
	SetTransform(m mat.Matrix) error
}

// Hash is the host's rolling hash. Appending any value changes the digest.
type Hash interface {
	AppendInt(v int)
	AppendFloat(v float64)
	AppendBool(v bool)
	AppendUint64(v uint64)
	Sum64() uint64
}

// KnobRegistrar binds node fields to host UI controls. The host writes
// user edits straight into the bound fields, clamped to [lo, hi], holding
// the locker passed to Guard (if any) for every knob registered after it.
type KnobRegistrar interface {
	Guard(l sync.Locker)
	Int(name string, p *int, lo, hi int)
	Float(name string, p *float64, lo, hi float64)
	Bool(name string, p *bool)
}

// ErrorReporter is the host's error channel: it shows msg on the node and
// marks it errored until the next successful validate.
type ErrorReporter interface {
	Error(msg string)
}
