package facespace

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Nominal Kinect v1 focal lengths for 640x480 streams, in pixels.
const (
	NominalDepthFocalLength = 571.26
	NominalColorFocalLength = 531.15
)

// Config describes the sensor setup a Processor runs against.
type Config struct {
	Depth      Calibration  `toml:"depth"`
	Color      Calibration  `toml:"color"`
	Offset     OffsetMapper `toml:"offset"`
	AngleUnit  AngleUnit    `toml:"angle_unit"`
	WorldSpace bool         `toml:"world_space"`
}

func DefaultConfig() Config {
	return Config{
		Depth:      Calibration{FocalLength: NominalDepthFocalLength, Width: 640, Height: 480},
		Color:      Calibration{FocalLength: NominalColorFocalLength, Width: 640, Height: 480},
		AngleUnit:  Radians,
		WorldSpace: true,
	}
}

// ParseConfig reads a TOML config. Keys that are not present keep their
// DefaultConfig value; unknown keys are an error.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(fileName string) (Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config file %s: %w", fileName, err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config file %s: %w", fileName, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Depth.Validate(); err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	if err := c.Color.Validate(); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	return nil
}

// NewProcessor builds a Processor for topology using the config's
// calibrations and its fixed pixel offset as the mapper.
func (c Config) NewProcessor(topology *Topology, opts ...ProcessorOption) (*Processor, error) {
	base := []ProcessorOption{WithAngleUnit(c.AngleUnit), WithWorldSpace(c.WorldSpace)}
	return NewProcessor(topology, c.Depth, c.Color, c.Offset, append(base, opts...)...)
}
