// Package renderer draws a single tessellated shape with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/engine/debug"
	"github.com/Faultbox/shapelab/internal/engine/gpu"
	"github.com/Faultbox/shapelab/internal/engine/shader"
	"github.com/Faultbox/shapelab/internal/engine/shader/shaders"
	"github.com/Faultbox/shapelab/internal/engine/shading"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Normal segments are drawn at this fraction of the shape's largest extent.
const normalLengthRatio = 0.08

// Checkerboard cells per texture unit in shading.TexCoords mode.
const checkers = 8

var overlayColor = mgl32.Vec4{1, 1, 0.2, 1}

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
	Shading   shading.Mode
}

// Renderer owns the shape program and the GPU copy of the current shape.
type Renderer struct {
	config Config
	log    *zap.Logger

	programs    map[shading.Mode]*shader.Program
	lineProgram *shader.Program

	shape     *gpu.VertexArray
	overlay   *gpu.VertexArray
	shapeName string
	bounds    mesh.Bounds

	wireframe   bool
	showOverlay bool
	shadeMode   shading.Mode
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		wireframe: cfg.Wireframe,
		shadeMode: cfg.Shading,
		programs:  make(map[shading.Mode]*shader.Program),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	fragments := map[shading.Mode]string{
		shading.Normals:   shaders.NormalsFragmentShader,
		shading.TexCoords: shaders.TexCoordsFragmentShader,
	}
	for mode, src := range fragments {
		program, err := shader.NewProgram(shaders.ShapeVertexShader, src)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("%s shader: %w", mode, err)
		}
		r.programs[mode] = program
	}

	var err error
	r.lineProgram, err = shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	return r, nil
}

// SetShape tessellates shape and replaces the current GPU mesh with it.
func (r *Renderer) SetShape(shape mesh.Shape) error {
	vertices := shape.Vertices()

	va, err := gpu.NewVertexArray(vertices, mesh.VertexLayout, gpu.Triangles)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", shape.Name(), err)
	}

	bounds := mesh.ComputeBounds(vertices)
	size := bounds.Size()
	extent := max(size.X(), size.Y(), size.Z())

	lines := debug.NormalLines(vertices, extent*normalLengthRatio)
	lines = append(lines, debug.BoundsLines(bounds, 0)...)
	overlay, err := gpu.NewVertexArray(lines, debug.LineLayout, gpu.Lines)
	if err != nil {
		va.Delete()
		return fmt.Errorf("uploading %s overlay: %w", shape.Name(), err)
	}

	r.releaseShape()
	r.shape = va
	r.overlay = overlay
	r.shapeName = shape.Name()
	r.bounds = bounds

	r.log.Debug("shape uploaded",
		zap.String("shape", shape.Name()),
		zap.Int32("vertices", va.Count()),
		zap.Int("triangles", mesh.TriangleCount(vertices)),
		zap.Int("bytes", len(vertices)*int(mesh.VertexLayout.Stride)),
		zap.Int("overlay_vertices", len(lines)),
	)
	return nil
}

// ShapeName returns the name of the uploaded shape, or "" if none.
func (r *Renderer) ShapeName() string {
	return r.shapeName
}

// Bounds returns the model-space bounding box of the uploaded shape.
func (r *Renderer) Bounds() mesh.Bounds {
	return r.bounds
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// AspectRatio returns the current viewport aspect ratio.
func (r *Renderer) AspectRatio() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetWireframe toggles line rasterization of the shape.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
}

// Wireframe reports whether wireframe mode is on.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// SetOverlay toggles the normals and bounds overlay.
func (r *Renderer) SetOverlay(on bool) {
	r.showOverlay = on
}

// Overlay reports whether the debug overlay is shown.
func (r *Renderer) Overlay() bool {
	return r.showOverlay
}

// SetShading selects the fragment shader used for the shape.
func (r *Renderer) SetShading(mode shading.Mode) {
	r.shadeMode = mode
}

// Shading returns the current shade mode.
func (r *Renderer) Shading() shading.Mode {
	return r.shadeMode
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the current shape with the given model, view and projection matrices.
func (r *Renderer) Draw(model, view, proj mgl32.Mat4) {
	if r.shape == nil {
		return
	}

	mv := view.Mul4(model)
	mvp := proj.Mul4(mv)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Disable(gl.CULL_FACE)
	}

	program := r.programs[r.shadeMode]
	program.Use()
	program.SetMat4("uMVPMatrix", mvp)
	program.SetMat4("uMVMatrix", mv)
	program.SetMat4("uNormalMatrix", camera.NormalMatrix(mv))
	if r.shadeMode == shading.TexCoords {
		program.SetFloat("uCheckers", checkers)
	}
	r.shape.Draw()

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Enable(gl.CULL_FACE)
	}

	if r.showOverlay && r.overlay != nil {
		r.lineProgram.Use()
		r.lineProgram.SetMat4("uMVPMatrix", mvp)
		r.lineProgram.SetVec4("uColor", overlayColor)
		r.overlay.Draw()
	}

	gl.UseProgram(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseShape()
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
	for mode, program := range r.programs {
		program.Delete()
		delete(r.programs, mode)
	}
}

func (r *Renderer) releaseShape() {
	if r.shape != nil {
		r.shape.Delete()
		r.shape = nil
	}
	if r.overlay != nil {
		r.overlay.Delete()
		r.overlay = nil
	}
	r.shapeName = ""
}
