package facespace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a point or direction in one of the camera spaces. Which space
// it lives in is implied by where it is stored, never by the value itself.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3FromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Cross returns v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3FromVec(v.Vec().Cross(o.Vec()))
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.Vec().Dot(o.Vec())
}

func (v Vector3) Length() float64 {
	return v.Vec().Len()
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns v scaled to unit length. A zero vector, or one whose
// length is not finite, comes back as the zero vector.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vector3{}
	}
	return v.Scale(1 / length)
}

// DistanceTo
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}
