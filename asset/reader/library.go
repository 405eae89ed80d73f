package reader

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/log"
)

var (
	ErrMeshNotFound = errors.New("library: mesh not found")
)

// Extensions probed, in order, when resolving a mesh name.
var meshExtensions = []string{".json", ".obj"}

// Library loads mesh assets by name from a base location (a directory or an
// http/https URL prefix) and caches them so that every scene object built
// from the same mesh shares one read-only copy.
type Library struct {
	logger log.Logger
	base   string

	mu     sync.Mutex
	meshes map[string]*asset.Mesh
}

// NewLibrary creates a mesh library rooted at base.
func NewLibrary(base string) *Library {
	return &Library{
		logger: log.New("mesh library"),
		base:   strings.TrimSuffix(base, "/"),
		meshes: make(map[string]*asset.Mesh),
	}
}

// Load returns the mesh with the given name, reading it on first use.
func (l *Library) Load(name string) (*asset.Mesh, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if mesh, exists := l.meshes[name]; exists {
		return mesh, nil
	}

	for _, ext := range meshExtensions {
		res, err := asset.NewResource(l.base+"/"+name+ext, nil)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}

		mesh, err := Read(res)
		res.Close()
		if err != nil {
			return nil, err
		}

		mesh.Name = name
		l.meshes[name] = mesh
		l.logger.Noticef("loaded mesh %q from %s", name, res.Path())
		return mesh, nil
	}

	return nil, fmt.Errorf("%w: %q (searched %s for %s)", ErrMeshNotFound, name, l.base, strings.Join(meshExtensions, ", "))
}

// Names returns the names of all cached meshes in sorted order.
func (l *Library) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.meshes))
	for name := range l.meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
