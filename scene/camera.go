package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/leomartinch/raytracer/types"
)

var (
	ErrInvalidCamera = errors.New("scene: invalid camera configuration")
)

// Base camera orientation before yaw/pitch are applied.
var (
	baseForward = types.XYZ(0, 1, 0)
	baseColumn  = types.XYZ(1, 0, 0)
	baseRow     = types.XYZ(0, 0, -1)
)

// CameraConfig holds the render parameters a Camera is derived from.
type CameraConfig struct {
	// Image plane size in world units.
	ImageWidth  float64
	ImageHeight float64

	// Number of pixels across the image width.
	Resolution int

	// Vertical field of view in degrees.
	FOV float64

	Location types.Vec3

	// Yaw rotates the view about the world Z axis and Pitch tilts it about
	// the camera's horizontal axis. Both are in degrees.
	Yaw   float64
	Pitch float64

	SamplesPerPixel int
	MaxBounces      int
}

// DefaultCameraConfig returns the settings used by the cornell preset.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ImageWidth:      4,
		ImageHeight:     3,
		Resolution:      100,
		FOV:             70,
		Location:        types.XYZ(0, -3, 0),
		SamplesPerPixel: 10,
		MaxBounces:      3,
	}
}

// Camera generates primary rays through the centers of the pixels of an
// image plane placed in front of the ray origin.
type Camera struct {
	// Top-left corner of the image plane.
	ImageStart types.Vec3

	// Unit vectors along image columns (left to right) and rows (top to
	// bottom).
	ColumnVec types.Vec3
	RowVec    types.Vec3

	Origin types.Vec3

	// Distance from the origin to the image plane.
	ScreenDistance float64

	// Pixel edge length in world units.
	PixelSize float64

	// Frame dimensions in pixels.
	FrameW int
	FrameH int

	SamplesPerPixel int
	MaxBounces      int
}

// NewCamera derives the image plane basis from cfg.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	switch {
	case cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0:
		return nil, fmt.Errorf("%w: image size %vx%v", ErrInvalidCamera, cfg.ImageWidth, cfg.ImageHeight)
	case cfg.Resolution <= 0:
		return nil, fmt.Errorf("%w: resolution %d", ErrInvalidCamera, cfg.Resolution)
	case cfg.FOV <= 0 || cfg.FOV >= 180:
		return nil, fmt.Errorf("%w: field of view %v", ErrInvalidCamera, cfg.FOV)
	case cfg.SamplesPerPixel <= 0:
		return nil, fmt.Errorf("%w: samples per pixel %d", ErrInvalidCamera, cfg.SamplesPerPixel)
	case cfg.MaxBounces <= 0:
		return nil, fmt.Errorf("%w: max bounces %d", ErrInvalidCamera, cfg.MaxBounces)
	}

	forward, column, row := orientation(cfg.Yaw, cfg.Pitch)
	screenDistance := (cfg.ImageHeight / 2) / math.Tan(types.Radians(cfg.FOV)/2)
	pixelSize := cfg.ImageWidth / float64(cfg.Resolution)

	screenCenter := cfg.Location.Add(forward.Scale(screenDistance))
	imageStart := screenCenter.
		Sub(column.Scale(cfg.ImageWidth / 2)).
		Sub(row.Scale(cfg.ImageHeight / 2))

	frameH := int(math.Floor(cfg.ImageHeight/pixelSize + 1e-9))
	if frameH < 1 {
		return nil, fmt.Errorf("%w: image height %v is smaller than one pixel", ErrInvalidCamera, cfg.ImageHeight)
	}

	return &Camera{
		ImageStart:      imageStart,
		ColumnVec:       column,
		RowVec:          row,
		Origin:          cfg.Location,
		ScreenDistance:  screenDistance,
		PixelSize:       pixelSize,
		FrameW:          cfg.Resolution,
		FrameH:          frameH,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxBounces:      cfg.MaxBounces,
	}, nil
}

// Rotate the base basis by yaw about world Z, then pitch about the yawed
// column axis. Zero angles leave the base basis untouched.
func orientation(yaw, pitch float64) (forward, column, row types.Vec3) {
	forward, column, row = baseForward, baseColumn, baseRow
	if yaw != 0 {
		angle := types.Radians(yaw)
		forward = types.RotateAxis(forward, types.AxisZ, angle)
		column = types.RotateAxis(column, types.AxisZ, angle)
		row = types.RotateAxis(row, types.AxisZ, angle)
	}
	if pitch != 0 {
		angle := types.Radians(pitch)
		forward = types.RotateAxis(forward, column, angle)
		row = types.RotateAxis(row, column, angle)
	}
	return forward, column, row
}

// PixelCenter returns the world-space position of the center of pixel (row
// h, column w).
func (c *Camera) PixelCenter(h, w int) types.Vec3 {
	half := c.PixelSize / 2
	return c.ImageStart.
		Add(c.ColumnVec.Scale(c.PixelSize*float64(w) + half)).
		Add(c.RowVec.Scale(c.PixelSize*float64(h) + half))
}

// Ray returns the origin and unit direction of the primary ray for pixel
// (row h, column w).
func (c *Camera) Ray(h, w int) (origin, dir types.Vec3) {
	return c.Origin, c.PixelCenter(h, w).Sub(c.Origin).Normalize()
}
