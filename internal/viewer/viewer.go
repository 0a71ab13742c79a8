// Package viewer implements the shape viewer's main loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/engine/debug"
	"github.com/Faultbox/shapelab/internal/engine/input"
	"github.com/Faultbox/shapelab/internal/engine/renderer"
	"github.com/Faultbox/shapelab/internal/engine/shading"
	"github.com/Faultbox/shapelab/internal/engine/window"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/internal/viewer/controls"
)

const title = "shapelab"

// Viewer is the main application instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool
	paused  bool
	angle   float32 // model rotation around Y, radians

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	camera      *camera.OrbitCamera
	shapes      *controls.ShapeControl
	screenshots *debug.ScreenshotCapture
}

// New creates the window, GL context and renderer and uploads the configured shape.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	var err error
	v.shapes, err = controls.NewShapeControl(cfg.Shape)
	if err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	mode, err := shading.ParseMode(cfg.Graphics.Shading)
	if err != nil {
		return nil, err
	}

	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window: it needs a current GL context.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Graphics.Wireframe,
		Shading:   mode,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.renderer.SetShape(v.shapes.Shape()); err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()
	v.camera = v.newCamera()
	v.screenshots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, title)
	v.updateTitle()

	v.log.Info("viewer initialized", zap.String("shape", v.shapes.Describe()))
	return v, nil
}

func (v *Viewer) newCamera() *camera.OrbitCamera {
	c := camera.NewOrbitCamera(v.cfg.View.Distance)
	c.FOV = mgl32.DegToRad(v.cfg.View.FOV)
	c.Near = v.cfg.View.Near
	c.Far = v.cfg.View.Far
	return c
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}

		// 2. Update
		v.update(dt)

		// 3. Render
		v.render()
		if v.input.IsKeyPressed(sdl.K_F12) {
			v.screenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
		v.renderer = nil
	}
	if v.window != nil {
		v.window.Close()
		v.window = nil
	}
}

func (v *Viewer) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		v.renderer.Resize(v.window.DrawableSize())
		width, height := v.window.Size()
		v.log.Debug("window resized", zap.Int("width", width), zap.Int("height", height))

	case input.EventMouseMove:
		if v.input.IsButtonDown(sdl.BUTTON_LEFT) {
			v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(float32(event.DeltaY))

	case input.EventKeyDown:
		return v.handleKey(event.Key)
	}
	return nil
}

func (v *Viewer) handleKey(key sdl.Keycode) error {
	switch key {
	case sdl.K_ESCAPE:
		v.running = false

	case sdl.K_TAB:
		shape, err := v.shapes.Toggle()
		if err != nil {
			v.log.Warn("cannot switch shape", zap.Error(err))
			return nil
		}
		return v.upload(shape.Name())

	case sdl.K_EQUALS, sdl.K_PLUS, sdl.K_KP_PLUS:
		if _, changed := v.shapes.Refine(1); changed {
			return v.upload("refine")
		}

	case sdl.K_MINUS, sdl.K_KP_MINUS:
		if _, changed := v.shapes.Refine(-1); changed {
			return v.upload("coarsen")
		}

	case sdl.K_w:
		v.renderer.SetWireframe(!v.renderer.Wireframe())

	case sdl.K_m:
		v.renderer.SetShading(v.renderer.Shading().Next())
		v.log.Info("shading changed", zap.Stringer("mode", v.renderer.Shading()))

	case sdl.K_n:
		v.renderer.SetOverlay(!v.renderer.Overlay())

	case sdl.K_SPACE:
		v.paused = !v.paused

	case sdl.K_r:
		v.camera = v.newCamera()
		v.angle = 0

	case sdl.K_s:
		v.saveConfig()
	}
	return nil
}

func (v *Viewer) upload(reason string) error {
	if err := v.renderer.SetShape(v.shapes.Shape()); err != nil {
		return fmt.Errorf("%s: %w", reason, err)
	}
	v.updateTitle()
	v.log.Info("shape changed", zap.String("reason", reason), zap.String("shape", v.shapes.Describe()))
	return nil
}

// screenshot captures the back buffer, so it must run between render and SwapBuffers.
func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// saveConfig writes the current shape and display settings to the user config file.
func (v *Viewer) saveConfig() {
	cfg := *v.cfg
	cfg.Shape = v.shapes.Config()
	cfg.Graphics.Wireframe = v.renderer.Wireframe()
	cfg.Graphics.Shading = v.renderer.Shading().String()

	if err := cfg.Save(); err != nil {
		v.log.Error("saving config failed", zap.Error(err))
		return
	}
	v.log.Info("config saved", zap.String("dir", config.ConfigDir()))
}

func (v *Viewer) updateTitle() {
	v.window.SetTitle(fmt.Sprintf("%s - %s", title, v.shapes.Describe()))
}

func (v *Viewer) update(dt float64) {
	if v.paused {
		return
	}
	v.angle += mgl32.DegToRad(v.cfg.View.SpinSpeed) * float32(dt)
}

// render draws the current frame. The shape is centered vertically on the origin.
func (v *Viewer) render() {
	v.renderer.Begin()

	bounds := v.renderer.Bounds()
	center := bounds.Min.Add(bounds.Max).Mul(0.5)
	model := mgl32.HomogRotate3DY(v.angle).Mul4(mgl32.Translate3D(0, -center.Y(), 0))

	v.renderer.Draw(model, v.camera.ViewMatrix(), v.camera.Projection(v.renderer.AspectRatio()))
}
