// Package shading names the fragment shaders the renderer can draw a shape with.
package shading

import (
	"errors"
	"fmt"
)

// Mode selects the fragment shader used for the shape.
type Mode int

const (
	Normals   Mode = iota // view-space normal as color
	TexCoords                  // checkerboard over the texture coordinates
)

var shadeNames = [...]string{
	Normals:   "normals",
	TexCoords: "texcoords",
}

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown shade mode")

func (m Mode) String() string {
	if m < 0 || int(m) >= len(shadeNames) {
		return "unknown"
	}
	return shadeNames[m]
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(shadeNames))
}

// ParseMode parses a mode name as written in the config file.
func ParseMode(name string) (Mode, error) {
	for m, n := range shadeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
