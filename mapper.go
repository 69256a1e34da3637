package facespace

// DepthPixel is a pixel on the depth image together with its depth reading.
type DepthPixel struct {
	X       int
	Y       int
	DepthMM int
}

// ColorPixel is a pixel on the color image.
type ColorPixel struct {
	X int
	Y int
}

// PixelMapper maps a depth image pixel to the color image pixel that sees the
// same point. Implementations wrap the sensor's registration tables.
type PixelMapper interface {
	MapDepthPixelToColorPixel(p DepthPixel) (ColorPixel, error)
}

// PixelMapperFunc adapts a plain function to PixelMapper.
type PixelMapperFunc func(p DepthPixel) (ColorPixel, error)

func (f PixelMapperFunc) MapDepthPixelToColorPixel(p DepthPixel) (ColorPixel, error) {
	return f(p)
}

// IdentityMapper treats both images as perfectly registered.
type IdentityMapper struct{}

func (IdentityMapper) MapDepthPixelToColorPixel(p DepthPixel) (ColorPixel, error) {
	return ColorPixel{X: p.X, Y: p.Y}, nil
}

// OffsetMapper shifts every pixel by a constant amount, ignoring depth.
type OffsetMapper struct {
	DX int `toml:"dx"`
	DY int `toml:"dy"`
}

func (m OffsetMapper) MapDepthPixelToColorPixel(p DepthPixel) (ColorPixel, error) {
	return ColorPixel{X: p.X + m.DX, Y: p.Y + m.DY}, nil
}
