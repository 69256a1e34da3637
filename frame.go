package facespace

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceFrame is one result from the face tracker. Shape is in color camera
// space, Projected holds the same points on the color image.
type FaceFrame struct {
	Tracked     bool      `json:"tracked"`
	Translation Vector3   `json:"translation"`
	Rotation    Vector3   `json:"rotation"` // radians
	Shape       []Vector3 `json:"shape"`
	Projected   []Vector2 `json:"projected"`
}

// FaceData is everything derived from a single FaceFrame.
type FaceData struct {
	Tracked   bool      `json:"tracked"`
	Position  Vector3   `json:"position"`
	Rotation  Vector3   `json:"rotation"` // in Unit
	Unit      AngleUnit `json:"rotation_unit"`
	Points    []Vector3 `json:"points"`
	World     []Vector3 `json:"world_points,omitempty"` // depth camera space
	Normals   []Vector3 `json:"normals"`
	Projected []Vector2 `json:"projected"`
}

// PoseMatrix returns the head's model matrix.
func (d FaceData) PoseMatrix() mgl64.Mat4 {
	return PoseMatrix(d.Position, Vector3{
		X: d.Unit.ToRadians(d.Rotation.X),
		Y: d.Unit.ToRadians(d.Rotation.Y),
		Z: d.Unit.ToRadians(d.Rotation.Z),
	})
}

// Processor turns tracker frames into FaceData. It holds no per-frame state
// and can be shared between goroutines as long as its mapper can.
type Processor struct {
	topology   *Topology
	depth      Calibration
	color      Calibration
	mapper     PixelMapper
	unit       AngleUnit
	worldSpace bool
	logger     *log.Logger
}

type ProcessorOption func(*Processor)

// WithAngleUnit sets the unit rotations are reported in. Default Radians.
func WithAngleUnit(u AngleUnit) ProcessorOption {
	return func(p *Processor) { p.unit = u }
}

// WithWorldSpace turns the depth space conversion on or off. Default on.
func WithWorldSpace(on bool) ProcessorOption {
	return func(p *Processor) { p.worldSpace = on }
}

func WithLogger(l *log.Logger) ProcessorOption {
	return func(p *Processor) { p.logger = l }
}

func NewProcessor(topology *Topology, depth, color Calibration, mapper PixelMapper, opts ...ProcessorOption) (*Processor, error) {
	if topology == nil {
		return nil, fmt.Errorf("nil topology")
	}
	if err := depth.Validate(); err != nil {
		return nil, fmt.Errorf("depth stream: %w", err)
	}
	if err := color.Validate(); err != nil {
		return nil, fmt.Errorf("color stream: %w", err)
	}
	if mapper == nil {
		mapper = IdentityMapper{}
	}

	p := &Processor{
		topology:   topology,
		depth:      depth,
		color:      color,
		mapper:     mapper,
		worldSpace: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Processor) Topology() *Topology {
	return p.topology
}

// Process derives FaceData from one frame. Untracked frames come back with
// Tracked false and no geometry. Any error means the frame should be skipped;
// later frames are unaffected.
func (p *Processor) Process(frame FaceFrame) (FaceData, error) {
	data := FaceData{
		Tracked:  frame.Tracked,
		Position: frame.Translation,
		Rotation: p.unit.Convert(frame.Rotation),
		Unit:     p.unit,
	}
	if !frame.Tracked {
		return data, nil
	}

	if len(frame.Shape) != len(frame.Projected) {
		return FaceData{}, fmt.Errorf("%w: %d shape points, %d projected", ErrShapeMismatch, len(frame.Shape), len(frame.Projected))
	}
	if err := p.topology.Validate(len(frame.Shape)); err != nil {
		return FaceData{}, err
	}

	data.Points = make([]Vector3, len(frame.Shape))
	copy(data.Points, frame.Shape)
	data.Projected = make([]Vector2, len(frame.Projected))
	copy(data.Projected, frame.Projected)
	data.Normals = ComputeSmoothedNormals(frame.Shape, p.topology.Triangles())

	if p.worldSpace {
		data.World = make([]Vector3, len(frame.Shape))
		for i, pt := range frame.Shape {
			w, err := ConvertColorSpaceToDepthSpace(pt, p.depth, p.color, p.mapper)
			if err != nil {
				return FaceData{}, fmt.Errorf("point %d: %w", i, err)
			}
			data.World[i] = w
		}
	}
	return data, nil
}

// ProcessAll runs Process over frames in order. Frames that fail are logged
// and left out; the number skipped is returned alongside the results.
func (p *Processor) ProcessAll(frames []FaceFrame) ([]FaceData, int) {
	out := make([]FaceData, 0, len(frames))
	skipped := 0
	for i, f := range frames {
		d, err := p.Process(f)
		if err != nil {
			skipped++
			if p.logger != nil {
				p.logger.Printf("skipping frame %d: %v", i, err)
			}
			continue
		}
		out = append(out, d)
	}
	return out, skipped
}
