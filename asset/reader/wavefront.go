package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/log"
	"github.com/leomartinch/raytracer/types"
)

type wavefrontMeshReader struct {
	logger log.Logger

	// The mesh being assembled.
	mesh *asset.Mesh

	// Name of the first "o"/"g" record, if any. It replaces the file name
	// as the mesh name.
	objectName string
}

// Create a new wavefront mesh reader.
func newWavefrontReader() *wavefrontMeshReader {
	return &wavefrontMeshReader{
		logger: log.New("wavefront mesh reader"),
	}
}

// Read a mesh from a wavefront obj file. Only vertex positions and faces are
// used; normals, texture coordinates and materials are ignored since scene
// objects define their own. The mesh is named after the first object or group
// record, falling back to the file name.
func (r *wavefrontMeshReader) Read(res *asset.Resource) (*asset.Mesh, error) {
	r.logger.Infof(`parsing mesh from "%s"`, res.Path())
	start := time.Now()

	r.objectName = ""
	r.mesh = &asset.Mesh{
		Name:      res.Name(),
		Vertices:  make([]types.Vec3, 0),
		Triangles: make([][3]int, 0),
	}

	if err := r.parse(res); err != nil {
		return nil, err
	}

	if r.objectName != "" {
		r.mesh.Name = r.objectName
	}

	r.logger.Infof("parsed mesh %q (%d vertices, %d triangles) in %d ms", r.mesh.Name, len(r.mesh.Vertices), len(r.mesh.Triangles), time.Since(start).Nanoseconds()/1e6)
	return r.mesh, nil
}

func (r *wavefrontMeshReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return emitError(res.Path(), lineNum, err.Error())
			}
			r.mesh.Vertices = append(r.mesh.Vertices, v)
		case "f":
			tris, err := r.parseFace(lineTokens)
			if err != nil {
				return emitError(res.Path(), lineNum, err.Error())
			}
			r.mesh.Triangles = append(r.mesh.Triangles, tris...)
		case "o", "g":
			if len(lineTokens) < 2 {
				return emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			if r.objectName == "" {
				r.objectName = lineTokens[1]
			}
		}
	}

	return scanner.Err()
}

// Parse face definition. Each face argument is either a plain vertex index
// or a vertex/uv/normal group where only the vertex index is used. Indices
// start from 1 and may be negative to reference vertices counting back from
// the last parsed vertex. Quads are split into two triangles.
func (r *wavefrontMeshReader) parseFace(lineTokens []string) ([][3]int, error) {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	indices := make([]int, 0, 4)
	for arg := 1; arg < len(lineTokens); arg++ {
		vToken := strings.SplitN(lineTokens[arg], "/", 2)[0]
		if vToken == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg-1)
		}

		index, err := selectFaceCoordIndex(vToken, len(r.mesh.Vertices))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg-1, err.Error())
		}
		indices = append(indices, index)
	}

	return fanTriangulate(indices), nil
}

// Generate an error message tagged with the file and line number.
func emitError(file string, line int, msgFormat string, args ...interface{}) error {
	return fmt.Errorf("[%s: %d] error: %s", file, line, fmt.Sprintf(msgFormat, args...))
}

// Map a 1-based (or negative, end-relative) wavefront index to a 0-based
// offset into a coordinate list with coordListLen entries.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = int(index - 1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for '%s'; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	var coords [3]float64
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return types.Vec3{}, err
		}
		coords[tokIdx-1] = coord
	}
	return types.XYZ(coords[0], coords[1], coords[2]), nil
}
