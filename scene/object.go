package scene

import (
	"fmt"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/types"
)

// Object is a mesh placed in world space together with its material. The
// world-space vertices, normals and bounding box are owned by the object;
// the triangle list is shared with the source mesh and must not be modified.
type Object struct {
	Name     string
	MeshName string

	Vertices      []types.Vec3
	Triangles     [][3]int
	VertexNormals []types.Vec3

	BBox     BBox
	Material Material
}

// NewObject places mesh in the world using transform. Vertex normals are
// only generated for smooth-shaded materials.
func NewObject(name string, mesh *asset.Mesh, transform Transform, material Material) (*Object, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("object %q: %w", name, err)
	}
	if err := material.Validate(); err != nil {
		return nil, fmt.Errorf("object %q: %w", name, err)
	}
	if err := transform.Validate(); err != nil {
		return nil, fmt.Errorf("object %q: %w", name, err)
	}

	obj := &Object{
		Name:      name,
		MeshName:  mesh.Name,
		Vertices:  transform.Apply(mesh.Vertices),
		Triangles: mesh.Triangles,
		Material:  material,
	}
	obj.BBox = NewBBox(obj.Vertices)

	if material.Smooth {
		obj.VertexNormals = VertexNormals(obj.Vertices, obj.Triangles)
	}

	return obj, nil
}

// Triangle returns the world-space vertices of triangle triIndex.
func (o *Object) Triangle(triIndex int) (v0, v1, v2 types.Vec3) {
	tri := o.Triangles[triIndex]
	return o.Vertices[tri[0]], o.Vertices[tri[1]], o.Vertices[tri[2]]
}

// Intersect tests the ray against triangle triIndex and returns the hit
// together with the unit surface normal at the hit point.
func (o *Object) Intersect(triIndex int, origin, dir types.Vec3) (TriangleHit, types.Vec3, bool) {
	v0, v1, v2 := o.Triangle(triIndex)
	hit, ok := IntersectTriangle(origin, dir, v0, v1, v2)
	if !ok {
		return hit, types.Vec3{}, false
	}

	return hit, o.surfaceNormal(triIndex, hit, v0, v1, v2), true
}

// Flat-shaded objects use the face normal; smooth-shaded objects interpolate
// the vertex normals with the barycentric weights of the hit.
func (o *Object) surfaceNormal(triIndex int, hit TriangleHit, v0, v1, v2 types.Vec3) types.Vec3 {
	if !o.Material.Smooth {
		return FaceNormal(v0, v1, v2)
	}

	tri := o.Triangles[triIndex]
	n := o.VertexNormals[tri[0]].Scale(hit.W).
		Add(o.VertexNormals[tri[1]].Scale(hit.U)).
		Add(o.VertexNormals[tri[2]].Scale(hit.V))

	// Opposing vertex normals can cancel out; fall back to the face normal.
	if n.LenSq() == 0 {
		return FaceNormal(v0, v1, v2)
	}
	return n.Normalize()
}
