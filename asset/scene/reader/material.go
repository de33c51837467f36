package reader

import (
	"bufio"
	"fmt"

	"github.com/achilleasa/prism/asset"
	"github.com/achilleasa/prism/asset/scene"
)

// Parse a wavefront material library. Each newmtl line commits the material
// defined so far and starts a new one; attributes that are not defined by the
// library keep their zero value.
func (r *wavefrontSceneReader) parseMaterials(res *asset.Resource) (map[string]scene.Material, error) {
	r.logger.Infof(`parsing material library "%s"`, res.Path())

	var lineNum int
	var curMaterial *scene.Material
	materials := make(map[string]scene.Material)

	commit := func() {
		if curMaterial == nil {
			return
		}
		if _, exists := materials[curMaterial.Name]; exists {
			r.logger.Warningf(`[%s: %d] material "%s" already defined; keeping first definition`, res.Path(), lineNum, curMaterial.Name)
			return
		}
		materials[curMaterial.Name] = *curMaterial
	}

	scanner := bufio.NewScanner(res)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		lineNum++
		lineTokens := tokenize(scanner.Text())
		kwIndex, ok := keyword(lineTokens)
		if !ok {
			continue
		}

		kw := lineTokens[kwIndex]
		if kw == "newmtl" {
			commit()
			curMaterial = &scene.Material{}
			if nameIndex, ok := nextField(lineTokens, kwIndex); ok {
				curMaterial.Name = lineTokens[nameIndex]
			} else {
				r.tolerate(res, lineNum, kw, fmt.Errorf("missing material name"))
			}
			continue
		}

		if curMaterial == nil {
			if isMaterialKeyword(kw) {
				r.tolerate(res, lineNum, kw, fmt.Errorf(`got "%s" without a "newmtl"`, kw))
			}
			continue
		}

		var err error
		switch kw {
		case "Ka":
			curMaterial.Ambient, _, err = parseVec3(lineTokens, kwIndex)
		case "Kd":
			curMaterial.Diffuse, _, err = parseVec3(lineTokens, kwIndex)
		case "Ks":
			curMaterial.Specular, _, err = parseVec3(lineTokens, kwIndex)
		case "Ke":
			curMaterial.Emission, _, err = parseVec3(lineTokens, kwIndex)
		case "al":
			curMaterial.Albedo, _, err = parseVec3(lineTokens, kwIndex)
		case "Ns":
			curMaterial.SpecularExponent, _, err = parseFloat32(lineTokens, kwIndex)
		case "Ni":
			curMaterial.RefractionIndex, _, err = parseFloat32(lineTokens, kwIndex)
		}
		r.tolerate(res, lineNum, kw, err)
	}

	if err := scanner.Err(); err != nil {
		return nil, r.emitError(res.Path(), lineNum, err)
	}

	commit()
	return materials, nil
}

func isMaterialKeyword(kw string) bool {
	switch kw {
	case "Ka", "Kd", "Ks", "Ke", "al", "Ns", "Ni":
		return true
	}
	return false
}
