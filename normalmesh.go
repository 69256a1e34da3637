package facespace

// FaceNormal returns the unnormalized normal of the triangle (v1, v2, v3).
// Its length is twice the triangle's area, so summing these weights each
// face by its size.
func FaceNormal(v1, v2, v3 Vector3) Vector3 {
	edgeA := v2.Sub(v1)
	edgeB := v1.Sub(v3)
	return edgeB.Cross(edgeA)
}

// AccumulateFaceNormals sums the unnormalized face normal of every triangle
// into each of its three vertices. Indices are not checked; an index outside
// vertices panics.
func AccumulateFaceNormals(vertices []Vector3, triangles []Triangle) []Vector3 {
	acc := make([]Vector3, len(vertices))
	for _, tri := range triangles {
		n := FaceNormal(vertices[tri.I1], vertices[tri.I2], vertices[tri.I3])
		acc[tri.I1] = acc[tri.I1].Add(n)
		acc[tri.I2] = acc[tri.I2].Add(n)
		acc[tri.I3] = acc[tri.I3].Add(n)
	}
	return acc
}

// ComputeSmoothedNormals returns one area-weighted normal per vertex.
// Vertices no triangle touches, or whose incident faces cancel out, get the
// zero vector.
func ComputeSmoothedNormals(vertices []Vector3, triangles []Triangle) []Vector3 {
	normals := AccumulateFaceNormals(vertices, triangles)
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
