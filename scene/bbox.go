package scene

import (
	"math"

	"github.com/leomartinch/raytracer/types"
)

// Direction components smaller than this are treated as parallel to a slab.
const slabParallelEpsilon = 1e-9

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min types.Vec3
	Max types.Vec3
}

// EmptyBBox returns an inverted box that contains nothing and acts as the
// identity for Union.
func EmptyBBox() BBox {
	return BBox{
		Min: types.Splat(math.Inf(1)),
		Max: types.Splat(math.Inf(-1)),
	}
}

// NewBBox returns the tightest box enclosing all vertices.
func NewBBox(vertices []types.Vec3) BBox {
	bbox := EmptyBBox()
	for _, v := range vertices {
		bbox.Min = types.MinVec3(bbox.Min, v)
		bbox.Max = types.MaxVec3(bbox.Max, v)
	}
	return bbox
}

// IsEmpty returns true if the box encloses no points.
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Contains returns true if p lies inside or on the box.
func (b BBox) Contains(p types.Vec3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b BBox) Center() types.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Union returns the smallest box enclosing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Intersect runs a slab test and reports whether the ray hits the box in
// front of its origin (or starts inside it). It is only used to cull objects
// and does not report the hit distance.
func (b BBox) Intersect(origin, dir types.Vec3) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := origin.Axis(axis)
		d := dir.Axis(axis)
		lo := b.Min.Axis(axis)
		hi := b.Max.Axis(axis)

		if math.Abs(d) < slabParallelEpsilon {
			if o < lo || o > hi {
				return false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return tMax >= math.Max(0, tMin)
}
