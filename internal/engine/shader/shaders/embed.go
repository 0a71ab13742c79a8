// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ShapeVertexShader transforms ShapeVertex attributes (locations 0, 1, 2) by
// uMVPMatrix, uMVMatrix and uNormalMatrix.
//
//go:embed 3d.vert
var ShapeVertexShader string

// NormalsFragmentShader colors fragments by their view-space normal.
//
//go:embed normals.frag
var NormalsFragmentShader string

// TexCoordsFragmentShader draws a uCheckers x uCheckers checkerboard over the texture coordinates.
//
//go:embed texcoords.frag
var TexCoordsFragmentShader string

// LineVertexShader transforms position-only debug line vertices by uMVPMatrix.
//
//go:embed lines.vert
var LineVertexShader string

// LineFragmentShader fills lines with uColor.
//
//go:embed lines.frag
var LineFragmentShader string
