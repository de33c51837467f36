package reader

import (
	"strconv"
	"strings"

	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/types"
)

// Index used for face components that are missing or invalid. It is out of
// range for every coord list.
const invalidIndex = -1

// Parse a face argument into 0-based vertex, uv and normal indices. The
// following formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Indices start from 1 and may be negative to indicate an offset off the
// end of the matching coord list whose current length is given by listLens.
// Missing, zero or unparsable components map to invalidIndex.
func parseIndexTriple(token string, listLens [3]int) [3]int {
	indices := [3]int{invalidIndex, invalidIndex, invalidIndex}
	for component, indexToken := range strings.SplitN(token, "/", 3) {
		if indexToken == "" {
			continue
		}

		index, err := strconv.Atoi(indexToken)
		if err != nil || index == 0 {
			continue
		}

		if index < 0 {
			indices[component] = listLens[component] + index
		} else {
			indices[component] = index - 1
		}
	}
	return indices
}

// Select the coord at index or the zero vector if index is out of range.
func selectCoord(coords []types.Vec3, index int) types.Vec3 {
	if index < 0 || index >= len(coords) {
		return types.Vec3{}
	}
	return coords[index]
}

// Resolve face indices to a vertex record.
func (r *wavefrontSceneReader) resolveVertex(indices [3]int) scene.Vertex {
	return scene.Vertex{
		Position: selectCoord(r.scene.Vertices(), indices[0]),
		TexCoord: selectCoord(r.scene.TexCoords(), indices[1]),
		Normal:   selectCoord(r.scene.Normals(), indices[2]),
	}
}

// Parse a face definition and append its triangles to the scene. Faces with
// more than 3 vertices are split into a triangle fan around the first vertex.
// The material is looked up once the first triangle is complete so faces with
// less than 3 vertices never fail. Returns the number of emitted triangles.
func (r *wavefrontSceneReader) parseFace(lineTokens []string, kwIndex int, matName string) (int, error) {
	listLens := [3]int{
		len(r.scene.Vertices()),
		len(r.scene.TexCoords()),
		len(r.scene.Normals()),
	}

	var (
		tri      [3]scene.Vertex
		numVerts int
		emitted  int
		mat      scene.Material
		err      error
	)

	for pos := kwIndex; ; {
		next, ok := nextField(lineTokens, pos)
		if !ok {
			break
		}
		pos = next

		tri[numVerts] = r.resolveVertex(parseIndexTriple(lineTokens[pos], listLens))
		numVerts++
		if numVerts < 3 {
			continue
		}

		if emitted == 0 {
			if mat, err = r.scene.Material(matName); err != nil {
				return 0, err
			}
		}

		r.scene.AddFace(scene.FaceObject{Mat: mat, Vertices: tri})
		emitted++

		// Keep the first vertex and slide the last one to build the next fan triangle.
		tri[1] = tri[2]
		numVerts = 2
	}

	return emitted, nil
}
