package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resource is a readable stream for a mesh asset. Assets may live on the
// local filesystem or be served over http/https.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the location of this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Name returns the base name of the resource without its extension.
func (r *Resource) Name() string {
	base := path.Base(r.url.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Ext returns the lower-cased file extension (including the leading dot).
func (r *Resource) Ext() string {
	return strings.ToLower(path.Ext(r.url.Path))
}

// IsRemote returns true if the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// NewResource opens a resource stream. If relTo is specified and
// pathToResource has no scheme, the new resource is resolved relative to the
// directory containing relTo.
//
// The caller must close the returned resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	u, err := url.Parse(filepath.ToSlash(pathToResource))
	if err != nil {
		return nil, fmt.Errorf("resource: could not parse %q: %s", pathToResource, err)
	}

	// Windows drive letters parse as a single-letter scheme
	if len(u.Scheme) == 1 {
		u = &url.URL{Path: filepath.ToSlash(pathToResource)}
	}

	if u.Scheme == "" && relTo != nil && !path.IsAbs(u.Path) {
		rel := *relTo.url
		rel.Path = path.Join(path.Dir(rel.Path), u.Path)
		u = &rel
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(filepath.FromSlash(u.Path)))
		if err != nil {
			return nil, fmt.Errorf("resource: could not open '%s': %w", u.Path, err)
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': %w", u.String(), os.ErrNotExist)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

// NewResourceFromStream wraps an in-memory stream as a resource.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, err := url.Parse(filepath.ToSlash(name))
	if err != nil {
		u = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}
