package facespace

import (
	"bytes"
	"errors"
	"log"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareTopology(t *testing.T) *Topology {
	t.Helper()
	topo, err := NewTopology([]int{0, 1, 2, 0, 2, 3})
	require.NoError(t, err)
	return topo
}

func squareFrame() FaceFrame {
	return FaceFrame{
		Tracked:     true,
		Translation: NewVector3(0.01, 0.02, 1),
		Rotation:    NewVector3(math.Pi/2, 0, math.Pi),
		Shape: []Vector3{
			NewVector3(0, 0, 1),
			NewVector3(0.2, 0, 1),
			NewVector3(0.2, 0.2, 1),
			NewVector3(0, 0.2, 1),
		},
		Projected: []Vector2{
			NewVector2(320, 240),
			NewVector2(420, 240),
			NewVector2(420, 140),
			NewVector2(320, 140),
		},
	}
}

func TestProcessorProcess(t *testing.T) {
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, OffsetMapper{DX: 10}, WithAngleUnit(Degrees))
	require.NoError(t, err)

	frame := squareFrame()
	data, err := proc.Process(frame)
	require.NoError(t, err)

	assert.True(t, data.Tracked)
	assert.Equal(t, frame.Translation, data.Position)
	assert.Equal(t, Degrees, data.Unit)
	assertVecNear(t, NewVector3(90, 0, 180), data.Rotation, float64EqualityThreshold)
	assert.Equal(t, frame.Shape, data.Points)
	assert.Equal(t, frame.Projected, data.Projected)

	require.Len(t, data.Normals, 4)
	for _, n := range data.Normals {
		assertVecNear(t, NewVector3(0, 0, 1), n, float64EqualityThreshold)
	}

	require.Len(t, data.World, 4)
	for i, w := range data.World {
		want := frame.Shape[i].Sub(NewVector3(0.02, 0, 0))
		assertVecNear(t, want, w, float64EqualityThreshold)
	}
}

func TestProcessorDoesNotAliasFrame(t *testing.T) {
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, nil)
	require.NoError(t, err)

	frame := squareFrame()
	data, err := proc.Process(frame)
	require.NoError(t, err)

	frame.Shape[0] = NewVector3(9, 9, 9)
	frame.Projected[0] = NewVector2(9, 9)
	assert.Equal(t, NewVector3(0, 0, 1), data.Points[0])
	assert.Equal(t, NewVector2(320, 240), data.Projected[0])
}

func TestProcessorUntracked(t *testing.T) {
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, IdentityMapper{})
	require.NoError(t, err)

	frame := squareFrame()
	frame.Tracked = false
	frame.Shape = frame.Shape[:1]

	data, err := proc.Process(frame)
	require.NoError(t, err)
	assert.False(t, data.Tracked)
	assert.Empty(t, data.Points)
	assert.Empty(t, data.Normals)
	assert.Empty(t, data.World)
}

func TestProcessorWorldSpaceOff(t *testing.T) {
	calls := 0
	mapper := PixelMapperFunc(func(p DepthPixel) (ColorPixel, error) {
		calls++
		return ColorPixel{X: p.X, Y: p.Y}, nil
	})
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, mapper, WithWorldSpace(false))
	require.NoError(t, err)

	data, err := proc.Process(squareFrame())
	require.NoError(t, err)
	assert.Nil(t, data.World)
	assert.Len(t, data.Normals, 4)
	assert.Zero(t, calls)
}

func TestProcessorErrors(t *testing.T) {
	errSensor := errors.New("mapping table missing")

	testCases := []struct {
		name    string
		mapper  PixelMapper
		modify  func(f *FaceFrame)
		wantErr error
	}{
		{
			name:    "shape and projection differ",
			mapper:  IdentityMapper{},
			modify:  func(f *FaceFrame) { f.Projected = f.Projected[:3] },
			wantErr: ErrShapeMismatch,
		},
		{
			name:   "too few points for the topology",
			mapper: IdentityMapper{},
			modify: func(f *FaceFrame) {
				f.Shape = f.Shape[:3]
				f.Projected = f.Projected[:3]
			},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "point behind the sensor",
			mapper:  IdentityMapper{},
			modify:  func(f *FaceFrame) { f.Shape[2].Z = 0 },
			wantErr: ErrNonPositiveDepth,
		},
		{
			name: "mapper failure",
			mapper: PixelMapperFunc(func(DepthPixel) (ColorPixel, error) {
				return ColorPixel{}, errSensor
			}),
			modify:  func(f *FaceFrame) {},
			wantErr: errSensor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, tc.mapper)
			require.NoError(t, err)

			frame := squareFrame()
			tc.modify(&frame)
			_, err = proc.Process(frame)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewProcessorRejectsBadInput(t *testing.T) {
	_, err := NewProcessor(nil, vgaCalibration, vgaCalibration, nil)
	assert.Error(t, err)

	_, err = NewProcessor(squareTopology(t), Calibration{}, vgaCalibration, nil)
	assert.ErrorIs(t, err, ErrInvalidCalibration)

	_, err = NewProcessor(squareTopology(t), vgaCalibration, Calibration{FocalLength: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidCalibration)
}

func TestProcessorProcessAll(t *testing.T) {
	var buf bytes.Buffer
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, IdentityMapper{},
		WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)

	bad := squareFrame()
	bad.Projected = nil
	untracked := squareFrame()
	untracked.Tracked = false

	data, skipped := proc.ProcessAll([]FaceFrame{squareFrame(), bad, untracked})
	assert.Equal(t, 1, skipped)
	require.Len(t, data, 2)
	assert.True(t, data[0].Tracked)
	assert.False(t, data[1].Tracked)
	assert.Contains(t, buf.String(), "skipping frame 1")
}

func TestProcessorConcurrent(t *testing.T) {
	proc, err := NewProcessor(squareTopology(t), vgaCalibration, vgaCalibration, OffsetMapper{DX: 3, DY: -2})
	require.NoError(t, err)

	want, err := proc.Process(squareFrame())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]FaceData, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = proc.Process(squareFrame())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}
