package reader

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/achilleasa/prism/asset"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/log"
)

// Lines longer than this are rejected by the scanner.
const maxLineLen = 1 << 20

type wavefrontSceneReader struct {
	logger log.Logger

	// The scene being populated.
	scene *scene.Scene

	// An error stack that provides additional error information when
	// scene files include other files (material libs).
	errStack []string
}

// Create a new wavefront scene reader.
func newWavefrontReader() *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger:   log.New("wavefront scene reader"),
		scene:    scene.New(),
		errStack: make([]string, 0),
	}
}

// Read scene definition.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	r.scene.SetOutputName(sceneRes.Name())

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	faces, spheres := r.scene.ObjectCounts()
	r.logger.Noticef(
		"parsed scene in %d ms: %d face(s), %d sphere(s), %d light(s), %d material(s)",
		time.Since(start).Nanoseconds()/1e6, faces, spheres, len(r.scene.Lights()), len(r.scene.Materials()),
	)
	return r.scene, nil
}

// Parse the scene file line by line. The active material is tracked per
// call and applies to all spheres and faces that follow a usemtl line.
func (r *wavefrontSceneReader) parse(res *asset.Resource) error {
	var lineNum int
	var curMaterial string

	scanner := bufio.NewScanner(res)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		lineNum++
		lineTokens := tokenize(scanner.Text())
		kwIndex, ok := keyword(lineTokens)
		if !ok {
			continue
		}

		var err error
		switch kw := lineTokens[kwIndex]; kw {
		case "v":
			v, _, perr := parseVec3(lineTokens, kwIndex)
			r.tolerate(res, lineNum, kw, perr)
			r.scene.AddVertex(v)
		case "vf", "vt":
			v, _, perr := parseVec3(lineTokens, kwIndex)
			r.tolerate(res, lineNum, kw, perr)
			r.scene.AddTexCoord(v)
		case "vn":
			v, _, perr := parseVec3(lineTokens, kwIndex)
			r.tolerate(res, lineNum, kw, perr)
			r.scene.AddNormal(v)
		case "S":
			err = r.parseSphere(res, lineNum, lineTokens, kwIndex, curMaterial)
		case "P":
			r.parseLight(res, lineNum, lineTokens, kwIndex)
		case "usemtl":
			nameIndex, ok := nextField(lineTokens, kwIndex)
			if !ok {
				r.tolerate(res, lineNum, kw, fmt.Errorf("missing material name"))
				curMaterial = ""
				continue
			}
			curMaterial = lineTokens[nameIndex]
		case "mtllib":
			nameIndex, ok := nextField(lineTokens, kwIndex)
			if !ok {
				r.tolerate(res, lineNum, kw, fmt.Errorf("missing material library name"))
				continue
			}
			err = r.loadMaterialLibrary(res, lineNum, lineTokens[nameIndex])
		case "f":
			var emitted int
			emitted, err = r.parseFace(lineTokens, kwIndex, curMaterial)
			if err == nil && emitted == 0 {
				r.tolerate(res, lineNum, kw, fmt.Errorf("face defines less than 3 vertices"))
			}
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, err)
	}
	return nil
}

// Parse a sphere definition: S cx cy cz radius
func (r *wavefrontSceneReader) parseSphere(res *asset.Resource, lineNum int, lineTokens []string, kwIndex int, matName string) error {
	mat, err := r.scene.Material(matName)
	if err != nil {
		return err
	}

	var vals [4]float32
	_, perr := parseFloats(lineTokens, kwIndex, vals[:])
	r.scene.AddSphere(scene.SphereObject{
		Mat:    mat,
		Center: [3]float32{vals[0], vals[1], vals[2]},
		Radius: vals[3],
	})
	r.tolerate(res, lineNum, "S", perr)
	return nil
}

// Parse a light definition: P px py pz ix iy iz
func (r *wavefrontSceneReader) parseLight(res *asset.Resource, lineNum int, lineTokens []string, kwIndex int) {
	var vals [6]float32
	_, perr := parseFloats(lineTokens, kwIndex, vals[:])
	r.tolerate(res, lineNum, "P", perr)

	r.scene.AddLight(scene.Light{
		Position:  [3]float32{vals[0], vals[1], vals[2]},
		Intensity: [3]float32{vals[3], vals[4], vals[5]},
	})
}

// Load a material library relative to the scene resource and replace the
// scene material table with its contents.
func (r *wavefrontSceneReader) loadMaterialLibrary(res *asset.Resource, lineNum int, libName string) error {
	r.pushFrame(fmt.Sprintf("referenced from %s:%d [mtllib]", res.Path(), lineNum))

	mtlRes, err := asset.NewResource(libName, res)
	if err != nil {
		return err
	}
	defer mtlRes.Close()

	materials, err := r.parseMaterials(mtlRes)
	if err != nil {
		return err
	}

	r.popFrame()
	r.scene.SetMaterials(materials)
	return nil
}

// Log a tolerated parse error for a malformed data line.
func (r *wavefrontSceneReader) tolerate(res *asset.Resource, lineNum int, kw string, err error) {
	if err == nil {
		return
	}
	r.logger.Debugf(`[%s: %d] malformed "%s" line: %s`, res.Path(), lineNum, kw, err.Error())
}

// Generate an error that also includes any data in the error stack. Errors
// that were already annotated by a nested parse are returned unchanged.
func (r *wavefrontSceneReader) emitError(file string, line int, err error) error {
	if _, annotated := err.(*parseError); annotated {
		return err
	}

	return &parseError{
		file:  file,
		line:  line,
		stack: strings.Join(r.errStack, "\n"),
		err:   err,
	}
}

// Push a frame to the error stack.
func (r *wavefrontSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// A parseError annotates an error with the file and line that triggered it.
type parseError struct {
	file  string
	line  int
	stack string
	err   error
}

func (e *parseError) Error() string {
	return strings.Trim(
		fmt.Sprintf("[%s: %d] error: %s\n%s", e.file, e.line, e.err.Error(), e.stack),
		"\n",
	)
}

func (e *parseError) Unwrap() error {
	return e.err
}
