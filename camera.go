package facespace

import (
	"fmt"
	"math"
)

// Calibration holds the pinhole intrinsics of one sensor stream.
type Calibration struct {
	FocalLength float64 `toml:"focal_length"` // pixels
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
}

func (c Calibration) Validate() error {
	if c.FocalLength <= 0 || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: focal length %g, size %gx%g", ErrInvalidCalibration, c.FocalLength, c.Width, c.Height)
	}
	return nil
}

// Project returns the pixel p falls on, rounded to the nearest pixel. Image y
// grows downwards while camera y grows upwards. p.Z must be non-zero.
func (c Calibration) Project(p Vector3) (x, y int) {
	fx := c.Width*0.5 + (p.X/p.Z)*c.FocalLength
	fy := c.Height*0.5 - (p.Y/p.Z)*c.FocalLength
	return int(math.Round(fx)), int(math.Round(fy))
}

// Unproject returns the camera-space point at depth z seen by pixel (x, y).
func (c Calibration) Unproject(x, y int, z float64) Vector3 {
	return Vector3{
		X: ((float64(x) - c.Width*0.5) / c.FocalLength) * z,
		Y: ((-float64(y) + c.Height*0.5) / c.FocalLength) * z,
		Z: z,
	}
}

// ConvertColorSpaceToDepthSpace moves a point from color camera space to
// depth camera space.
//
// There is no closed form for this since the two sensors are physically
// offset. The point is first taken as if it were already in depth space,
// projected onto the depth image, mapped across to the color image and
// unprojected again at the same depth. The difference between the two is the
// shift between the spaces at that depth, which is then removed from the
// original point. This is a single first-order pass and is only as accurate
// as the offset is constant around the point.
//
// point.Z must be positive. Mapper errors are wrapped in ErrPixelMapping and
// returned as is.
func ConvertColorSpaceToDepthSpace(point Vector3, depth, color Calibration, mapper PixelMapper) (Vector3, error) {
	if !(point.Z > 0) {
		return Vector3{}, fmt.Errorf("%w: z=%g", ErrNonPositiveDepth, point.Z)
	}

	depthGuess := point

	px, py := depth.Project(depthGuess)
	depthPixel := DepthPixel{
		X:       px,
		Y:       py,
		DepthMM: int(math.Round(depthGuess.Z * 1000)),
	}

	colorPixel, err := mapper.MapDepthPixelToColorPixel(depthPixel)
	if err != nil {
		return Vector3{}, fmt.Errorf("%w: pixel (%d,%d) at %dmm: %w", ErrPixelMapping, depthPixel.X, depthPixel.Y, depthPixel.DepthMM, err)
	}

	colorSpace := color.Unproject(colorPixel.X, colorPixel.Y, depthGuess.Z)
	shift := colorSpace.Sub(depthGuess)

	return point.Sub(shift), nil
}
