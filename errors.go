package facespace

import "errors"

var (
	// ErrIndexOutOfRange means a triangle references a vertex the frame
	// does not have.
	ErrIndexOutOfRange = errors.New("facespace: triangle index out of range")

	// ErrNonPositiveDepth means a point with z <= 0 was handed to the
	// camera-space mapper. Such a point cannot be projected.
	ErrNonPositiveDepth = errors.New("facespace: point depth must be positive")

	// ErrPixelMapping wraps failures returned by a PixelMapper.
	ErrPixelMapping = errors.New("facespace: depth to color pixel mapping failed")

	// ErrShapeMismatch means the 3D and projected 2D shapes of a frame
	// differ in length.
	ErrShapeMismatch = errors.New("facespace: shape point counts differ")

	ErrInvalidTopology    = errors.New("facespace: index list length is not a multiple of 3")
	ErrInvalidCalibration = errors.New("facespace: invalid camera calibration")
)
