package reader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/achilleasa/prism/types"
)

// Split a raw line into space separated fields. Tabs and other control
// characters are treated as spaces. Consecutive spaces produce empty fields
// which are kept so that field positions match the source line; use
// nextField to skip them. Empty lines yield no fields.
func tokenize(line string) []string {
	if line == "" {
		return nil
	}

	line = strings.Map(func(r rune) rune {
		if r != ' ' && (unicode.IsSpace(r) || unicode.IsControl(r)) {
			return ' '
		}
		return r
	}, line)

	return strings.Split(line, " ")
}

// Find the first non-empty field after pos. Passing -1 as pos searches from
// the first field.
func nextField(fields []string, pos int) (int, bool) {
	for index := pos + 1; index < len(fields); index++ {
		if fields[index] != "" {
			return index, true
		}
	}
	return -1, false
}

// Find the line keyword.
func keyword(fields []string) (int, bool) {
	return nextField(fields, -1)
}

// Parse len(out) numeric fields following pos into out. Fields that are
// missing or cannot be parsed are left as zero and reported via the returned
// error; parsing continues past bad fields. The position of the last consumed
// field is returned so callers can chain multiple reads on the same line.
func parseFloats(fields []string, pos int, out []float32) (int, error) {
	var firstErr error
	for index := range out {
		next, ok := nextField(fields, pos)
		if !ok {
			return pos, fmt.Errorf("expected %d numeric arguments; got %d", len(out), index)
		}
		pos = next

		val, err := strconv.ParseFloat(fields[pos], 32)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("could not parse argument %d: %w", index+1, err)
			}
			continue
		}
		out[index] = float32(val)
	}

	return pos, firstErr
}

// Parse a Vec3 from the three numeric fields following pos.
func parseVec3(fields []string, pos int) (types.Vec3, int, error) {
	var v [3]float32
	pos, err := parseFloats(fields, pos, v[:])
	return types.Vec3(v), pos, err
}

// Parse a scalar from the numeric field following pos.
func parseFloat32(fields []string, pos int) (float32, int, error) {
	var v [1]float32
	pos, err := parseFloats(fields, pos, v[:])
	return v[0], pos, err
}
