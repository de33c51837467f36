package cmd

import (
	"errors"
	"fmt"

	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/asset/scene/reader"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sc, err := reader.ReadScene(ctx.Args().Get(idx))
		if err != nil {
			return err
		}

		fmt.Fprintf(ctx.App.Writer, "%s\n%s", ctx.Args().Get(idx), sc.Stats())
	}

	return nil
}

// Dump scene contents.
func DumpScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("expected a single scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	if !ctx.Bool("yaml") {
		sc.Dump(ctx.App.Writer)
		return nil
	}

	enc := yaml.NewEncoder(ctx.App.Writer)
	enc.SetIndent(2)
	if err = enc.Encode(summarize(sc)); err != nil {
		return err
	}
	return enc.Close()
}

type materialSummary struct {
	Name             string     `yaml:"name"`
	Ambient          [3]float32 `yaml:"ambient,flow"`
	Diffuse          [3]float32 `yaml:"diffuse,flow"`
	Specular         [3]float32 `yaml:"specular,flow"`
	Emission         [3]float32 `yaml:"emission,flow"`
	SpecularExponent float32    `yaml:"specularExponent"`
	RefractionIndex  float32    `yaml:"refractionIndex"`
	Albedo           [3]float32 `yaml:"albedo,flow"`
}

type lightSummary struct {
	Position  [3]float32 `yaml:"position,flow"`
	Intensity [3]float32 `yaml:"intensity,flow"`
}

type sceneSummary struct {
	Output    string            `yaml:"output"`
	Vertices  int               `yaml:"vertices"`
	Normals   int               `yaml:"normals"`
	TexCoords int               `yaml:"texCoords"`
	Faces     int               `yaml:"faces"`
	Spheres   int               `yaml:"spheres"`
	Lights    []lightSummary    `yaml:"lights"`
	Materials []materialSummary `yaml:"materials"`
}

func summarize(sc *scene.Scene) *sceneSummary {
	faces, spheres := sc.ObjectCounts()
	summary := &sceneSummary{
		Output:    sc.OutputName(),
		Vertices:  len(sc.Vertices()),
		Normals:   len(sc.Normals()),
		TexCoords: len(sc.TexCoords()),
		Faces:     faces,
		Spheres:   spheres,
		Lights:    make([]lightSummary, 0, len(sc.Lights())),
		Materials: make([]materialSummary, 0, len(sc.Materials())),
	}

	for _, light := range sc.Lights() {
		summary.Lights = append(summary.Lights, lightSummary{
			Position:  light.Position,
			Intensity: light.Intensity,
		})
	}

	for _, name := range sc.MaterialNames() {
		mat := sc.Materials()[name]
		summary.Materials = append(summary.Materials, materialSummary{
			Name:             mat.Name,
			Ambient:          mat.Ambient,
			Diffuse:          mat.Diffuse,
			Specular:         mat.Specular,
			Emission:         mat.Emission,
			SpecularExponent: mat.SpecularExponent,
			RefractionIndex:  mat.RefractionIndex,
			Albedo:           mat.Albedo,
		})
	}

	return summary
}
