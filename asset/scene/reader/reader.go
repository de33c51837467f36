package reader

import (
	"strings"

	"github.com/achilleasa/prism/asset"
	"github.com/achilleasa/prism/asset/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from file. Compiled scenes are detected by their .zip
// extension; any other file is parsed as a wavefront scene.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	var reader Reader
	if strings.HasSuffix(filename, ".zip") {
		reader = newZipSceneReader()
	} else {
		reader = newWavefrontReader()
	}
	return reader.Read(res)
}

// Read a wavefront material library from file.
func ReadMaterials(filename string) (map[string]scene.Material, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return newWavefrontReader().parseMaterials(res)
}
