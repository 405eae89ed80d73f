package cpu

import (
	"math"
	"math/rand"

	"github.com/leomartinch/raytracer/scene"
	"github.com/leomartinch/raytracer/types"
)

// Blended bounce directions shorter than this fall back to the diffuse
// sample.
const minBounceDirLen = 1e-9

// PathIntegrator estimates the radiance arriving along a camera ray by
// averaging a number of independent random light paths.
type PathIntegrator struct {
	Scene      *scene.Scene
	Samples    int
	MaxBounces int
}

// Radiance returns the average radiance of pi.Samples paths that start at
// origin and travel along the unit direction dir.
func (pi *PathIntegrator) Radiance(origin, dir types.Vec3, rng *rand.Rand) types.Vec3 {
	var sum types.Vec3
	for sample := 0; sample < pi.Samples; sample++ {
		sum = sum.Add(pi.tracePath(origin, dir, rng))
	}
	return sum.DivScalar(float64(pi.Samples))
}

// Follow a single path for up to MaxBounces surface interactions. Emission
// is weighted by the throughput accumulated before the current surface. A
// path that escapes the scene contributes nothing further.
func (pi *PathIntegrator) tracePath(origin, dir types.Vec3, rng *rand.Rand) types.Vec3 {
	throughput := types.Splat(1)
	var radiance types.Vec3

	for bounce := 0; bounce < pi.MaxBounces; bounce++ {
		hit, ok := pi.Scene.Intersect(origin, dir)
		if !ok {
			break
		}

		mat := hit.Object.Material
		if mat.IsEmissive() {
			radiance = radiance.Add(throughput.Mul(mat.Emission()))
		}
		throughput = throughput.Mul(mat.Color).Scale(mat.Albedo)

		origin = hit.Point
		dir = BounceDirection(dir, hit.Normal, mat.Roughness, rng)
	}

	return radiance
}

// BounceDirection blends the mirror reflection of dir about n with a cosine
// weighted diffuse sample using roughness as the blend factor. The result
// is a unit vector.
func BounceDirection(dir, n types.Vec3, roughness float64, rng *rand.Rand) types.Vec3 {
	diffuse := CosineHemisphere(n, rng)
	blended := Reflect(dir, n).Lerp(diffuse, roughness)

	if blended.Len() < minBounceDirLen {
		return diffuse
	}
	return blended.Normalize()
}

// Reflect mirrors d about the unit normal n.
func Reflect(d, n types.Vec3) types.Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// CosineHemisphere draws a unit direction from the hemisphere around the
// unit normal n with a density proportional to the cosine of the angle to n.
func CosineHemisphere(n types.Vec3, rng *rand.Rand) types.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	phi := 2 * math.Pi * r2
	x := math.Cos(phi) * math.Sqrt(1-r1)
	y := math.Sin(phi) * math.Sqrt(1-r1)
	z := math.Sqrt(r1)

	ref := types.AxisX
	if math.Abs(n.X) > 0.99 {
		ref = types.AxisY
	}
	tangent := n.Cross(ref).Normalize()
	bitangent := n.Cross(tangent)

	return tangent.Scale(x).Add(bitangent.Scale(y)).Add(n.Scale(z)).Normalize()
}
