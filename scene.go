package shelfgen

import "github.com/shopfab/shelfgen/internal/d3"

// Scene owns all live objects of one generation run. It replaces the
// host-application scene graph with a value the caller constructs, passes to
// builders and discards.
type Scene struct {
	objects    []*Object
	assemblies []*Assembly
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add links objects into the scene.
func (s *Scene) Add(objs ...*Object) {
	s.objects = append(s.objects, objs...)
}

// Remove unlinks an object from the scene, for scratch geometry that should
// not outlive the step that created it.
func (s *Scene) Remove(obj *Object) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Clear drops all objects and assemblies.
func (s *Scene) Clear() {
	s.objects = nil
	s.assemblies = nil
}

// Objects returns the live objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Assembly is a named grouping of scene objects, used to pass a set of
// objects collectively to the export step.
type Assembly struct {
	Label   string
	objects []*Object
}

// NewAssembly groups objects under a label. The objects must already belong
// to the scene.
func (s *Scene) NewAssembly(label string, objs ...*Object) *Assembly {
	a := &Assembly{Label: label, objects: objs}
	s.assemblies = append(s.assemblies, a)
	return a
}

// Objects returns the grouped objects in insertion order.
func (a *Assembly) Objects() []*Object {
	return a.objects
}

// Bounds returns the joint world space bounding box of the grouped objects.
// The zero box is returned for an empty assembly.
func (a *Assembly) Bounds() d3.Box {
	if len(a.objects) == 0 {
		return d3.Box{}
	}
	box := a.objects[0].WorldBounds()
	for _, o := range a.objects[1:] {
		box = box.Extend(o.WorldBounds())
	}
	return box
}

// Triangles returns the world space triangles of all grouped objects.
func (a *Assembly) Triangles() []Triangle {
	var tris []Triangle
	for _, o := range a.objects {
		tris = append(tris, o.WorldTriangles()...)
	}
	return tris
}
