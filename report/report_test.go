package report

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/codec"
	"github.com/hupe1980/kcluster/model"
)

func sample(t *testing.T) *Report {
	t.Helper()

	points := []*model.Point{
		model.NewPoint(0, []float64{1, 2}, "a"),
		model.NewPoint(1, []float64{1.5, 2}, ""),
		model.NewPoint(2, []float64{10, 10}, "far away"),
	}
	res := &kcluster.Result{
		Iterations:  2,
		Stop:        kcluster.StopConverged,
		Assignments: []int{0, 0, 1},
		Clusters: []kcluster.ClusterState{
			{ID: 0, Centroid: []float64{1.25, 2}, Members: []int{1, 0}},
			{ID: 1, Centroid: []float64{10, 10}, Members: []int{2}},
		},
	}
	rep, err := New(res, points)
	require.NoError(t, err)
	return rep
}

const sampleText = "Break in iteration 2\n\n" +
	"Cluster 1\n" +
	"Point 2: 1.5 2 \n" +
	"Point 1: 1 2 - a\n" +
	"Cluster centroid: 1.25 2 \n\n" +
	"Cluster 2\n" +
	"Point 3: 10 10 - far away\n" +
	"Cluster centroid: 10 10 \n\n"

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sample(t), nil))
	assert.Equal(t, sampleText, buf.String())
}

func TestWriteText_SixSignificantDigits(t *testing.T) {
	points := []*model.Point{
		model.NewPoint(0, []float64{1.0 / 3, 1234567, 0.0000123}, ""),
		model.NewPoint(1, []float64{2.0 / 3, 100000, -0.5}, "b"),
	}
	res := &kcluster.Result{
		Iterations:  1,
		Stop:        kcluster.StopConverged,
		Assignments: []int{0, 0},
		Clusters: []kcluster.ClusterState{
			{ID: 0, Centroid: []float64{0.5, 667283.7, -0.24999385}, Members: []int{0, 1}},
		},
	}
	rep, err := New(res, points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, rep, nil))
	assert.Equal(t, "Break in iteration 1\n\n"+
		"Cluster 1\n"+
		"Point 1: 0.333333 1.23457e+06 1.23e-05 \n"+
		"Point 2: 0.666667 100000 -0.5 - b\n"+
		"Cluster centroid: 0.5 667284 -0.249994 \n\n", buf.String())

	// JSON keeps every digit.
	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, rep, codec.JSON{}))
	assert.Contains(t, buf.String(), "0.3333333333333333")
}

func TestWriteJSON(t *testing.T) {
	want := `{"iterations":2,"stop":"converged","clusters":[
		{"id":0,"centroid":[1.25,2],"points":[{"id":1,"values":[1.5,2]},{"id":0,"values":[1,2],"label":"a"}]},
		{"id":1,"centroid":[10,10],"points":[{"id":2,"values":[10,10],"label":"far away"}]}]}`

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, FormatJSON, sample(t), c))
			assert.JSONEq(t, want, buf.String())
			assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
		})
	}
}

func TestNew_MemberOutOfRange(t *testing.T) {
	res := &kcluster.Result{
		Clusters: []kcluster.ClusterState{{ID: 0, Centroid: []float64{0}, Members: []int{3}}},
	}
	_, err := New(res, []*model.Point{model.NewPoint(0, []float64{0}, "")})
	assert.ErrorIs(t, err, ErrMemberOutOfRange)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.ErrorIs(t, Write(io.Discard, Format(5), sample(t), nil), ErrUnknownFormat)
	assert.Equal(t, "json", FormatJSON.String())
}

func TestWriteBlob(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, WriteBlob(ctx, store, "out/report.txt", FormatText, sample(t), nil))
	require.NoError(t, WriteBlob(ctx, store, "out/report.txt.zst", FormatText, sample(t), nil))

	read := func(name string) []byte {
		blob, err := store.Open(ctx, name)
		require.NoError(t, err)
		r, err := blobstore.NewReader(ctx, blob)
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, sampleText, string(read("out/report.txt")))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	plain, err := dec.DecodeAll(read("out/report.txt.zst"), nil)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(plain))
}
