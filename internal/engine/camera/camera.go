// Package camera provides an orbit camera for inspecting a single object.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Projection
	FOV  float32 // vertical, radians
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a camera looking at the origin from +Z.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:        distance,
		FOV:             mgl32.DegToRad(70),
		Near:            0.1,
		Far:             100,
		MinDistance:     0.5,
		MaxDistance:     50,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinX, cosX := math32.Sin(c.RotationX), math32.Cos(c.RotationX)
	sinY, cosY := math32.Sin(c.RotationY), math32.Cos(c.RotationY)
	return c.Center.Add(mgl32.Vec3{cosX * sinY, sinX, cosX * cosY}.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = mgl32.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom scales the distance; positive ticks move closer.
func (c *OrbitCamera) HandleZoom(ticks float32) {
	c.Distance *= 1 - ticks*c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// NormalMatrix returns transpose(inverse(mv)), which keeps normals perpendicular
// to surfaces under non-uniform scale.
func NormalMatrix(mv mgl32.Mat4) mgl32.Mat4 {
	return mv.Inv().Transpose()
}
