package modelstore_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/segmatch/knn"
	"github.com/katalvlaran/segmatch/modelstore"
	"github.com/katalvlaran/segmatch/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus() []segment.LabeledSegment {
	return []segment.LabeledSegment{
		{Label: "wave", Data: segment.Sequence{{0.1, 0.2, 9.8}, {0.3, -0.25, 9.75}, {1e-3, 2.5, 9.81}}},
		{Label: "clap", Data: segment.Sequence{{4, 4, 4}, {-4, -4, -4}}},
	}
}

func model(t *testing.T) *knn.Model {
	t.Helper()
	stamp := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	m, err := knn.NewModel(corpus(), 3, 42.5,
		knn.WithID("m-1"),
		knn.WithClock(func() time.Time { return stamp }),
	)
	require.NoError(t, err)
	return m
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]modelstore.Format{
		"a.json":          modelstore.FormatJSON,
		"dir/b.JSON":      modelstore.FormatJSON,
		"c.yaml":          modelstore.FormatYAML,
		"c.yml":           modelstore.FormatYAML,
		"/tmp/d.json.zst": modelstore.FormatJSONZstd,
	}
	for path, want := range cases {
		got, err := modelstore.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := modelstore.FormatFromPath("model.bin")
	assert.ErrorIs(t, err, modelstore.ErrUnknownFormat)

	assert.Equal(t, "json.zst", modelstore.FormatJSONZstd.String())
	assert.Equal(t, "Format(?)", modelstore.Format(9).String())
}

func TestEncodeDecode_ModelPerFormat(t *testing.T) {
	want := model(t)

	for _, f := range []modelstore.Format{modelstore.FormatJSON, modelstore.FormatYAML, modelstore.FormatJSONZstd} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, modelstore.Encode(&buf, want, f))

			var got knn.Model
			require.NoError(t, modelstore.Decode(&buf, &got, f))
			if diff := cmp.Diff(want, &got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.ErrorIs(t, modelstore.Encode(&bytes.Buffer{}, want, modelstore.Format(7)), modelstore.ErrUnknownFormat)
	assert.ErrorIs(t, modelstore.Decode(&bytes.Buffer{}, &knn.Model{}, modelstore.Format(7)), modelstore.ErrUnknownFormat)
}

func TestEncode_ModelFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, modelstore.Encode(&buf, model(t), modelstore.FormatJSON))

	for _, key := range []string{`"k"`, `"maxDistance"`, `"distanceMetric"`, `"downsampleRatio"`, `"segments"`, `"label"`, `"data"`} {
		assert.Contains(t, buf.String(), key)
	}
}

func TestStore_ModelRoundTrip(t *testing.T) {
	s := modelstore.New(filepath.Join(t.TempDir(), "models"))
	want := model(t)

	for _, name := range []string{"g.json", "g.yaml", "g.json.zst"} {
		require.NoError(t, s.SaveModel(name, want), name)
		got, err := s.LoadModel(name)
		require.NoError(t, err, name)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"g.json", "g.json.zst", "g.yaml"}, names)
}

func TestStore_CorpusRoundTrip(t *testing.T) {
	s := modelstore.New(t.TempDir())

	require.NoError(t, s.SaveCorpus("c.yaml", corpus()))
	got, err := s.LoadCorpus("c.yaml")
	require.NoError(t, err)
	if diff := cmp.Diff(corpus(), got); diff != "" {
		t.Errorf("corpus mismatch (-want +got):\n%s", diff)
	}

	bad := []segment.LabeledSegment{{Label: "", Data: segment.Sequence{{1}}}}
	assert.ErrorIs(t, s.SaveCorpus("bad.yaml", bad), segment.ErrEmptyLabel)
}

func TestStore_Errors(t *testing.T) {
	s := modelstore.New(t.TempDir())

	_, err := s.LoadModel("missing.json")
	assert.ErrorIs(t, err, modelstore.ErrNotFound)

	assert.ErrorIs(t, s.SaveModel("m.bin", model(t)), modelstore.ErrUnknownFormat)
	assert.ErrorIs(t, s.SaveModel("m.json", nil), knn.ErrNilModel)
	assert.ErrorIs(t, s.Delete("missing.json"), modelstore.ErrNotFound)

	// a decoded model is validated
	require.NoError(t, modelstore.WriteFile(filepath.Join(s.Dir, "broken.json"), &knn.Model{K: 0, DownsampleRatio: 1}))
	_, err = s.LoadModel("broken.json")
	assert.ErrorIs(t, err, knn.ErrInvalidK)
}

func TestStore_DeleteAndList(t *testing.T) {
	s := modelstore.New(t.TempDir())
	require.NoError(t, s.SaveModel("a.json", model(t)))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "notes.txt"), []byte("x"), 0o644))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json"}, names, "lock file and unknown extensions are skipped")

	require.NoError(t, s.Delete("a.json"))
	names, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	empty := modelstore.New(filepath.Join(t.TempDir(), "nope"))
	names, err = empty.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_LockedByAnotherWriter(t *testing.T) {
	dir := t.TempDir()
	held := flock.New(filepath.Join(dir, ".segmatch.lock"))
	ok, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer held.Unlock()

	s := &modelstore.Store{Dir: dir, LockTimeout: 100 * time.Millisecond}
	assert.ErrorIs(t, s.SaveModel("m.json", model(t)), modelstore.ErrLocked)
}

func TestWriteFile_NoPartialFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.json")
	require.NoError(t, modelstore.WriteFile(path, model(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be renamed away")
	assert.Equal(t, "m.json", entries[0].Name())
}
