package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"

	"honnef.co/go/flowfield"
)

// straightLines samples two horizontal lines of 40 samples each.
func straightLines(t *testing.T) (*flowfield.FlowField, []flowfield.Streamline) {
	t.Helper()
	ff := flowfield.New(func(flowfield.Point) float64 { return 0 })
	require.NoError(t, ff.Initialize(400, 400, 50))
	s, err := flowfield.NewSampler(ff, flowfield.Config{MaxLineCount: 2, DSep: 20, DTest: 10})
	require.NoError(t, err)
	s.Run()
	return ff, s.Streamlines()
}

func TestCollection(t *testing.T) {
	ff, lines := straightLines(t)
	fc := Collection(ff, lines, Options{RunID: "run-1"})

	require.Len(t, fc.Features, 2)
	require.Equal(t, "run-1", fc.ExtraMembers["run"])

	f := fc.Features[0]
	ls, ok := f.Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, ls, 40)
	require.InDelta(t, 0, ls[0][0], 1e-9)
	require.InDelta(t, 390, ls[39][0], 1e-9)
	require.Equal(t, 0, f.Properties["line"])
	require.Equal(t, 40, f.Properties["samples"])
	require.InDelta(t, flowfield.DefaultSampleWidth, f.Properties["width"], 1e-12)
	require.InDelta(t, 390, f.Properties["length"], 1e-9)
	require.Equal(t, "run-1", f.Properties["run"])

	require.Len(t, fc.BBox, 4)
	require.InDelta(t, 0, fc.BBox[0], 1e-9)
	require.InDelta(t, 390, fc.BBox[2], 1e-9)
}

func TestCollectionSimplify(t *testing.T) {
	ff, lines := straightLines(t)
	fc := Collection(ff, lines, Options{Tolerance: 0.5})

	// Straight lines reduce to their endpoints.
	ls := fc.Features[1].Geometry.(orb.LineString)
	require.Len(t, ls, 2)
	require.Equal(t, 40, fc.Features[1].Properties["samples"])

	_, err := uuid.Parse(fc.ExtraMembers["run"].(string))
	require.NoError(t, err)

	smooth := Collection(ff, lines, Options{Tolerance: 0.5, Smooth: 2})
	require.Len(t, smooth.Features[0].Geometry.(orb.LineString), 2)
}

func TestCollectionSkipsShortLines(t *testing.T) {
	ff := flowfield.New(nil)
	require.NoError(t, ff.Initialize(100, 100, 10))
	ff.AddSample(ff.Sample(flowfield.Pt(50, 50)))
	fc := Collection(ff, []flowfield.Streamline{{Forward: 1}}, Options{})
	require.Empty(t, fc.Features)
	require.Nil(t, fc.BBox)
}

func TestWrite(t *testing.T) {
	ff, lines := straightLines(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Collection(ff, lines, Options{RunID: "abc"})))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	require.Equal(t, "abc", fc.ExtraMembers["run"])
	require.Equal(t, float64(1), fc.Features[1].Properties["line"])
}
