package scene

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/achilleasa/prism/types"
)

// A Vertex combines a position with its texture coordinate and normal. Any of
// the components may be the zero vector if the source did not define it.
type Vertex struct {
	Position types.Vec3
	TexCoord types.Vec3
	Normal   types.Vec3
}

// The Object interface is implemented by all renderable scene entities.
type Object interface {
	// Get the material bound to this object when it was created.
	Material() Material

	// Write a diagnostic description of the object.
	Dump(w io.Writer)
}

// A triangular face.
type FaceObject struct {
	Mat      Material
	Vertices [3]Vertex
}

func (f FaceObject) Material() Material {
	return f.Mat
}

// Get the geometric normal of the face using the winding order of its vertices.
func (f FaceObject) FaceNormal() types.Vec3 {
	e01 := f.Vertices[1].Position.Sub(f.Vertices[0].Position)
	e02 := f.Vertices[2].Position.Sub(f.Vertices[0].Position)
	return e01.Cross(e02).Normalize()
}

func (f FaceObject) Dump(w io.Writer) {
	fmt.Fprintf(w, "Face with material %s\n", f.Mat.Name)
	for index, v := range f.Vertices {
		fmt.Fprintf(w, "  v%d: position %v texture %v normal %v\n", index, v.Position, v.TexCoord, v.Normal)
	}
}

// A sphere defined by its center and radius.
type SphereObject struct {
	Mat    Material
	Center types.Vec3
	Radius float32
}

func (s SphereObject) Material() Material {
	return s.Mat
}

func (s SphereObject) Dump(w io.Writer) {
	fmt.Fprintf(w, "Sphere with material %s\n", s.Mat.Name)
	fmt.Fprintf(w, "  center %v radius %g\n", s.Center, s.Radius)
}

// A point light.
type Light struct {
	Position  types.Vec3
	Intensity types.Vec3
}

func init() {
	// Object variants travel as interface values inside compiled scene archives.
	gob.Register(FaceObject{})
	gob.Register(SphereObject{})
}
