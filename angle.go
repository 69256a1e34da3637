package facespace

import (
	"fmt"
	"math"
	"strings"
)

// AngleUnit selects how head rotation is reported.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
	Cycles // full turns
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	case Cycles:
		return "cycles"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radians":
		return Radians, nil
	case "deg", "degrees":
		return Degrees, nil
	case "cyc", "cycles":
		return Cycles, nil
	}
	return Radians, fmt.Errorf("unknown angle unit %q", s)
}

// UnmarshalText lets the unit be written by name in config files.
func (u *AngleUnit) UnmarshalText(b []byte) error {
	parsed, err := ParseAngleUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u AngleUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// FromRadians converts an angle in radians to u.
func (u AngleUnit) FromRadians(rad float64) float64 {
	switch u {
	case Degrees:
		return rad * (180 / math.Pi)
	case Cycles:
		return rad / (2 * math.Pi)
	default:
		return rad
	}
}

// ToRadians converts an angle expressed in u back to radians.
func (u AngleUnit) ToRadians(v float64) float64 {
	switch u {
	case Degrees:
		return v * (math.Pi / 180)
	case Cycles:
		return v * (2 * math.Pi)
	default:
		return v
	}
}

// Convert applies FromRadians to each component of a rotation vector.
func (u AngleUnit) Convert(rot Vector3) Vector3 {
	return Vector3{X: u.FromRadians(rot.X), Y: u.FromRadians(rot.Y), Z: u.FromRadians(rot.Z)}
}
