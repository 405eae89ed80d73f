package scene

import "github.com/leomartinch/raytracer/types"

// VertexNormals derives a smoothed normal for every vertex by averaging the
// unit normals of all faces sharing it. Triangles are assumed to be wound
// consistently. Zero-area faces contribute nothing and a vertex without any
// contributing face is assigned the zero vector.
func VertexNormals(vertices []types.Vec3, triangles [][3]int) []types.Vec3 {
	normals := make([]types.Vec3, len(vertices))
	for _, tri := range triangles {
		e01 := vertices[tri[1]].Sub(vertices[tri[0]])
		e02 := vertices[tri[2]].Sub(vertices[tri[0]])
		faceNormal := e01.Cross(e02)
		if faceNormal.LenSq() == 0 {
			continue
		}
		faceNormal = faceNormal.Normalize()

		for _, vIndex := range tri {
			normals[vIndex] = normals[vIndex].Add(faceNormal)
		}
	}

	for index, n := range normals {
		if n.LenSq() > 0 {
			normals[index] = n.Normalize()
		}
	}
	return normals
}
