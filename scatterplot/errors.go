package scatterplot

import "errors"

var (
	// ErrColor indicates a color that is neither a known name nor a hex
	// triplet.
	ErrColor = errors.New("scatterplot: invalid color")

	// ErrMarker indicates an unsupported scatter marker.
	ErrMarker = errors.New("scatterplot: unsupported marker")

	// ErrLineStyle indicates an unsupported curve line style.
	ErrLineStyle = errors.New("scatterplot: unsupported line style")

	// ErrColorMap indicates an unknown color map or color values that do not
	// match the points.
	ErrColorMap = errors.New("scatterplot: invalid color map")

	// ErrFigureSize indicates a non-positive figure dimension.
	ErrFigureSize = errors.New("scatterplot: invalid figure size")

	// ErrYLimit indicates a y range whose minimum is not below its maximum.
	ErrYLimit = errors.New("scatterplot: invalid y limit")

	// ErrAlpha indicates an opacity outside [0,1].
	ErrAlpha = errors.New("scatterplot: alpha out of range")
)
