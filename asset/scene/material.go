package scene

import (
	"fmt"
	"io"

	"github.com/achilleasa/prism/types"
)

// A Material is a named bundle of shading coefficients. Materials are
// value types; objects keep their own copy of the material they were bound to.
type Material struct {
	Name string

	// Ambient, diffuse and specular colors.
	Ambient  types.Vec3
	Diffuse  types.Vec3
	Specular types.Vec3

	// Emissive intensity.
	Emission types.Vec3

	SpecularExponent float32

	// Index of refraction.
	RefractionIndex float32

	Albedo types.Vec3
}

// Dump writes a human readable description of the material to w.
func (m Material) Dump(w io.Writer) {
	fmt.Fprintf(w, "Material %s\n", m.Name)
	fmt.Fprintf(w, "Ka: %v\n", m.Ambient)
	fmt.Fprintf(w, "Kd: %v\n", m.Diffuse)
	fmt.Fprintf(w, "Ks: %v\n", m.Specular)
	fmt.Fprintf(w, "Ke: %v\n", m.Emission)
	fmt.Fprintf(w, "Ns: %g\n", m.SpecularExponent)
	fmt.Fprintf(w, "Ni: %g\n", m.RefractionIndex)
	fmt.Fprintf(w, "al: %v\n", m.Albedo)
}

// UnknownMaterialError is returned when a material lookup fails.
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("undefined material with name %q", e.Name)
}
