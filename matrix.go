package facespace

import "github.com/go-gl/mathgl/mgl64"

// PoseMatrix builds the model matrix of a head pose: rotate about X, then Y,
// then Z (all in radians), then translate.
func PoseMatrix(translation, rotation Vector3) mgl64.Mat4 {
	rotX := mgl64.HomogRotate3DX(rotation.X)
	rotY := mgl64.HomogRotate3DY(rotation.Y)
	rotZ := mgl64.HomogRotate3DZ(rotation.Z)
	trans := mgl64.Translate3D(translation.X, translation.Y, translation.Z)

	return trans.Mul4(rotZ).Mul4(rotY).Mul4(rotX)
}

// TransformPoints applies m to every point, including translation.
func TransformPoints(m mgl64.Mat4, points []Vector3) []Vector3 {
	out := make([]Vector3, len(points))
	for i, p := range points {
		out[i] = Vector3FromVec(mgl64.TransformCoordinate(p.Vec(), m))
	}
	return out
}

// TransformNormals applies only the rotation part of m, so the results stay
// directions.
func TransformNormals(m mgl64.Mat4, normals []Vector3) []Vector3 {
	rot := m.Mat3()
	out := make([]Vector3, len(normals))
	for i, n := range normals {
		out[i] = Vector3FromVec(rot.Mul3x1(n.Vec()))
	}
	return out
}
