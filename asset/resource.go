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

// OpenError is returned when a Resource cannot be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("resource: could not open '%s': %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// The Resource type wraps a streamable file or remote Resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns the directory containing this resource. For remote resources the
// directory is returned as a URL.
func (r *Resource) Dir() string {
	if r.IsRemote() {
		dirURL := *r.url
		dirURL.Path = path.Dir(r.url.Path)
		if !strings.HasSuffix(dirURL.Path, "/") {
			dirURL.Path += "/"
		}
		return dirURL.String()
	}
	return filepath.Dir(r.url.Path)
}

// Returns the base name of this resource.
func (r *Resource) Name() string {
	return path.Base(r.url.Path)
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Create a new Resource data stream. If relTo is specified and pathToResource
// is neither absolute nor defines a scheme, then the path to the new Resource
// is generated by joining the directory of relTo and pathToResource.
//
// This function can handle http/https URLs by delegating to the net/http package.
// The caller must close the returned Resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, &OpenError{Path: pathToResource, Err: err}
	}

	if resURL.Scheme == "" && relTo != nil && !filepath.IsAbs(resURL.Path) {
		relPath := resURL.Path
		resURL, _ = url.Parse(relTo.url.String())
		if resURL.Scheme == "" {
			prefix, err := filepath.Abs(relTo.url.Path)
			if err != nil {
				return nil, &OpenError{Path: pathToResource, Err: err}
			}
			resURL.Path = filepath.Join(filepath.Dir(prefix), relPath)
		} else {
			resURL.Path = path.Join(path.Dir(resURL.Path), relPath)
		}
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, &OpenError{Path: resURL.Path, Err: err}
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, &OpenError{Path: resURL.String(), Err: err}
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, &OpenError{Path: resURL.String(), Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		reader = resp.Body
	default:
		return nil, &OpenError{Path: resURL.String(), Err: fmt.Errorf("unsupported scheme '%s'", resURL.Scheme)}
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, err := url.Parse(name)
	if err != nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}
