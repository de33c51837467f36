package reader

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/prism/asset"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/types"
)

func TestReadMaterials(t *testing.T) {
	payload := `
Kd 1 1 1
newmtl first
Kd 0.5 0.5 0.5
Ns abc
map_Kd texture.png
newmtl second
Ke 1 2
Ni 1.33
newmtl first
Kd 0 0 0
newmtl
newmtl last
`
	dir := writeFiles(t, map[string]string{"lib.mtl": payload})

	materials, err := ReadMaterials(filepath.Join(dir, "lib.mtl"))
	if err != nil {
		t.Fatal(err)
	}

	expMaterials := map[string]scene.Material{
		"first":  {Name: "first", Diffuse: types.XYZ(0.5, 0.5, 0.5)},
		"second": {Name: "second", Emission: types.XYZ(1, 2, 0), RefractionIndex: 1.33},
		"":       {},
		"last":   {Name: "last"},
	}
	if !reflect.DeepEqual(materials, expMaterials) {
		t.Fatalf("expected materials to be:\n%v\ngot:\n%v", expMaterials, materials)
	}
}

func TestReadMaterialsFromStream(t *testing.T) {
	res := asset.NewResourceFromStream("embedded.mtl", strings.NewReader("newmtl only\n\tKs\t1 1 1\nal 0.1 0.2 0.3"))

	materials, err := newWavefrontReader().parseMaterials(res)
	if err != nil {
		t.Fatal(err)
	}

	exp := scene.Material{Name: "only", Specular: types.XYZ(1, 1, 1), Albedo: types.XYZ(0.1, 0.2, 0.3)}
	if len(materials) != 1 || materials["only"] != exp {
		t.Fatalf("expected a single material %v; got %v", exp, materials)
	}
}

func TestReadMaterialsEmptyLibrary(t *testing.T) {
	res := asset.NewResourceFromStream("empty.mtl", strings.NewReader("# nothing here\n\n"))

	materials, err := newWavefrontReader().parseMaterials(res)
	if err != nil {
		t.Fatal(err)
	}
	if len(materials) != 0 {
		t.Fatalf("expected no materials; got %v", materials)
	}
}

func TestReadMaterialsMissingFile(t *testing.T) {
	_, err := ReadMaterials(filepath.Join(t.TempDir(), "missing.mtl"))
	var openErr *asset.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected an *asset.OpenError; got %v", err)
	}
}
