package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: invalid camera settings")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
