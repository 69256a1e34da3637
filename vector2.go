package facespace

// Vector2 is a point on one of the sensor image planes, in pixels.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}
