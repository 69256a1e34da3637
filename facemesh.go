package facespace

import "fmt"

// Triangle holds three indices into a vertex slice.
type Triangle struct {
	I1, I2, I3 int
}

// Topology is the fixed triangulation of the face mesh. It is built once and
// shared, read-only, by every frame.
type Topology struct {
	triangles []Triangle
	maxIndex  int
}

// NewTopology builds a topology from a flat index list, three indices per
// triangle, in the order the tracker reports them.
func NewTopology(indices []int) (*Topology, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d indices", ErrInvalidTopology, len(indices))
	}

	tris := make([]Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		tris = append(tris, Triangle{I1: indices[i], I2: indices[i+1], I3: indices[i+2]})
	}
	return NewTopologyFromTriangles(tris)
}

func NewTopologyFromTriangles(tris []Triangle) (*Topology, error) {
	t := &Topology{
		triangles: make([]Triangle, len(tris)),
		maxIndex:  -1,
	}
	copy(t.triangles, tris)

	for i, tri := range t.triangles {
		for _, idx := range [3]int{tri.I1, tri.I2, tri.I3} {
			if idx < 0 {
				return nil, fmt.Errorf("%w: triangle %d has negative index %d", ErrIndexOutOfRange, i, idx)
			}
			if idx > t.maxIndex {
				t.maxIndex = idx
			}
		}
	}
	return t, nil
}

// Triangles returns the triangle table. Callers must not modify it.
func (t *Topology) Triangles() []Triangle {
	return t.triangles
}

func (t *Topology) TriangleCount() int {
	return len(t.triangles)
}

// VertexCount is the smallest vertex count the topology can be applied to.
func (t *Topology) VertexCount() int {
	return t.maxIndex + 1
}

// Indices flattens the table back to three indices per triangle.
func (t *Topology) Indices() []int {
	out := make([]int, 0, len(t.triangles)*3)
	for _, tri := range t.triangles {
		out = append(out, tri.I1, tri.I2, tri.I3)
	}
	return out
}

// Validate checks that every index is valid for a vertex slice of length n.
func (t *Topology) Validate(n int) error {
	if t.maxIndex >= n {
		return fmt.Errorf("%w: index %d with %d vertices", ErrIndexOutOfRange, t.maxIndex, n)
	}
	return nil
}
