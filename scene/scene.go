package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/leomartinch/raytracer/types"
)

var (
	ErrUnknownObject  = errors.New("scene: unknown object")
	ErrDuplicateName  = errors.New("scene: duplicate object name")
	ErrEmptyScene     = errors.New("scene: no objects defined")
	ErrUnknownPreset  = errors.New("scene: unknown preset")
	ErrMissingMeshRef = errors.New("scene: object does not reference a mesh")
)

// Hit describes the closest intersection of a ray with the scene.
type Hit struct {
	Point    types.Vec3
	Normal   types.Vec3
	Distance float64

	ObjectID string
	Object   *Object
}

// Scene is a set of uniquely named objects. It is immutable once built and
// safe for concurrent queries.
type Scene struct {
	objects map[string]*Object

	// Object ids in sorted order so that ties between equally distant hits
	// resolve the same way on every query.
	order []string
}

// New assembles a scene from a list of objects.
func New(objects ...*Object) (*Scene, error) {
	sc := &Scene{
		objects: make(map[string]*Object, len(objects)),
		order:   make([]string, 0, len(objects)),
	}

	for _, obj := range objects {
		if _, exists := sc.objects[obj.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, obj.Name)
		}
		sc.objects[obj.Name] = obj
		sc.order = append(sc.order, obj.Name)
	}
	sort.Strings(sc.order)

	return sc, nil
}

// Object looks up an object by its id.
func (sc *Scene) Object(id string) (*Object, error) {
	obj, exists := sc.objects[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, id)
	}
	return obj, nil
}

// Len returns the number of objects in the scene.
func (sc *Scene) Len() int {
	return len(sc.order)
}

// Intersect finds the closest front-facing hit along the ray. Objects whose
// bounding box is missed are skipped; every triangle of the remaining
// objects is tested. Hits on surfaces facing away from the ray are ignored.
func (sc *Scene) Intersect(origin, dir types.Vec3) (Hit, bool) {
	closest := Hit{Distance: math.Inf(1)}
	found := false

	for _, id := range sc.order {
		obj := sc.objects[id]
		if !obj.BBox.Intersect(origin, dir) {
			continue
		}

		for triIndex := range obj.Triangles {
			triHit, normal, ok := obj.Intersect(triIndex, origin, dir)
			if !ok || isBackfacing(dir, normal) {
				continue
			}

			dist := triHit.Point.Sub(origin).Len()
			if dist < closest.Distance {
				closest = Hit{
					Point:    triHit.Point,
					Normal:   normal,
					Distance: dist,
					ObjectID: id,
					Object:   obj,
				}
				found = true
			}
		}
	}

	return closest, found
}

// Normals point out of the surface, toward the side light arrives from.
func isBackfacing(dir, normal types.Vec3) bool {
	return dir.Dot(normal) > 0
}

// TriangleCount returns the total number of triangles in the scene.
func (sc *Scene) TriangleCount() int {
	count := 0
	for _, obj := range sc.objects {
		count += len(obj.Triangles)
	}
	return count
}

// BBox returns the box enclosing every object in the scene.
func (sc *Scene) BBox() BBox {
	bbox := EmptyBBox()
	for _, obj := range sc.objects {
		bbox = bbox.Union(obj.BBox)
	}
	return bbox
}
