package scene

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/achilleasa/prism/types"
	"github.com/olekukonko/tablewriter"
)

// The extension of the image produced when rendering a scene.
const OutputExt = ".png"

// A Scene owns the geometry tables, objects, lights and material library
// populated by a scene reader. Scenes are only mutated through the Add/Set
// methods while loading and should be treated as read-only afterwards.
type Scene struct {
	vertices  []types.Vec3
	normals   []types.Vec3
	texCoords []types.Vec3
	objects   []Object
	lights    []Light
	materials map[string]Material

	outputName string
}

// Create an empty scene.
func New() *Scene {
	return &Scene{
		materials: make(map[string]Material),
	}
}

func (sc *Scene) Vertices() []types.Vec3  { return sc.vertices }
func (sc *Scene) Normals() []types.Vec3   { return sc.normals }
func (sc *Scene) TexCoords() []types.Vec3 { return sc.texCoords }
func (sc *Scene) Objects() []Object       { return sc.objects }
func (sc *Scene) Lights() []Light         { return sc.lights }
func (sc *Scene) OutputName() string      { return sc.outputName }

// Get the material table.
func (sc *Scene) Materials() map[string]Material {
	return sc.materials
}

// Lookup a material by name.
func (sc *Scene) Material(name string) (Material, error) {
	mat, exists := sc.materials[name]
	if !exists {
		return Material{}, &UnknownMaterialError{Name: name}
	}
	return mat, nil
}

func (sc *Scene) AddVertex(v types.Vec3)   { sc.vertices = append(sc.vertices, v) }
func (sc *Scene) AddNormal(v types.Vec3)   { sc.normals = append(sc.normals, v) }
func (sc *Scene) AddTexCoord(v types.Vec3) { sc.texCoords = append(sc.texCoords, v) }
func (sc *Scene) AddFace(f FaceObject)     { sc.objects = append(sc.objects, f) }
func (sc *Scene) AddSphere(s SphereObject) { sc.objects = append(sc.objects, s) }
func (sc *Scene) AddLight(l Light)         { sc.lights = append(sc.lights, l) }

// Add a material to the material table. Existing entries are not replaced.
func (sc *Scene) AddMaterial(mat Material) {
	if _, exists := sc.materials[mat.Name]; exists {
		return
	}
	sc.materials[mat.Name] = mat
}

// Replace the material table.
func (sc *Scene) SetMaterials(materials map[string]Material) {
	if materials == nil {
		materials = make(map[string]Material)
	}
	sc.materials = materials
}

// Set the output name from the base name of the scene file. See OutputName.
func (sc *Scene) SetOutputName(baseName string) {
	sc.outputName = OutputName(baseName)
}

// OutputName replaces everything from the first '.' in baseName with
// OutputExt. Names without a '.' are returned unchanged.
func OutputName(baseName string) string {
	pos := strings.IndexByte(baseName, '.')
	if pos == -1 {
		return baseName
	}
	return baseName[:pos] + OutputExt
}

// Get a sorted list of material names.
func (sc *Scene) MaterialNames() []string {
	names := make([]string, 0, len(sc.materials))
	for name := range sc.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count scene objects by variant.
func (sc *Scene) ObjectCounts() (faces, spheres int) {
	for _, obj := range sc.objects {
		switch obj.(type) {
		case FaceObject:
			faces++
		case SphereObject:
			spheres++
		}
	}
	return faces, spheres
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	faces, spheres := sc.ObjectCounts()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count"})
	table.Append([]string{"Geometry", "---", fmtCount(len(sc.vertices) + len(sc.normals) + len(sc.texCoords))})
	table.Append([]string{"", "Vertices", fmtCount(len(sc.vertices))})
	table.Append([]string{"", "Normals", fmtCount(len(sc.normals))})
	table.Append([]string{"", "Tex coords", fmtCount(len(sc.texCoords))})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Objects", "---", fmtCount(len(sc.objects))})
	table.Append([]string{"", "Faces", fmtCount(faces)})
	table.Append([]string{"", "Spheres", fmtCount(spheres)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Lights", "---", fmtCount(len(sc.lights))})
	table.Append([]string{"Materials", "---", fmtCount(len(sc.materials))})
	table.SetFooter([]string{"Output", " ", sc.outputName})

	table.Render()
	return buf.String()
}

func fmtCount(count int) string {
	return strconv.Itoa(count)
}

// Dump writes a diagnostic description of the scene materials, objects and lights to w.
func (sc *Scene) Dump(w io.Writer) {
	for _, name := range sc.MaterialNames() {
		sc.materials[name].Dump(w)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nObjects\n\n")
	for _, obj := range sc.objects {
		obj.Dump(w)
	}

	fmt.Fprintf(w, "\nLights\n\n")
	for _, light := range sc.lights {
		fmt.Fprintf(w, "Light with position %v and intensity %v\n", light.Position, light.Intensity)
	}
}

// The gob-friendly representation of a scene.
type sceneData struct {
	Vertices   []types.Vec3
	Normals    []types.Vec3
	TexCoords  []types.Vec3
	Objects    []Object
	Lights     []Light
	Materials  map[string]Material
	OutputName string
}

// GobEncode implements gob.GobEncoder.
func (sc *Scene) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(&sceneData{
		Vertices:   sc.vertices,
		Normals:    sc.normals,
		TexCoords:  sc.texCoords,
		Objects:    sc.objects,
		Lights:     sc.lights,
		Materials:  sc.materials,
		OutputName: sc.outputName,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (sc *Scene) GobDecode(data []byte) error {
	var sd sceneData
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sd); err != nil {
		return err
	}

	*sc = Scene{
		vertices:   sd.Vertices,
		normals:    sd.Normals,
		texCoords:  sd.TexCoords,
		objects:    sd.Objects,
		lights:     sd.Lights,
		outputName: sd.OutputName,
	}
	sc.SetMaterials(sd.Materials)
	return nil
}
