package versioning

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
)

func TestCreateAndReadVersion(t *testing.T) {
	dir := t.TempDir()

	v, err := CreateVersion("job1", dir, "", parser.FormatYAML, []byte("elements: []\n"), 92.5)
	require.NoError(t, err)
	assert.Equal(t, "improved", v.Label)
	assert.Equal(t, filepath.Join(dir, "versions", "job1", v.VersionID, "process.yaml"), v.ProcessPath)

	b, err := os.ReadFile(v.ProcessPath)
	require.NoError(t, err)
	assert.Equal(t, "elements: []\n", string(b))

	got, err := ReadVersion(dir, "job1", v.VersionID)
	require.NoError(t, err)
	assert.Equal(t, v.VersionID, got.VersionID)
	assert.Equal(t, 92.5, got.Score)
	assert.Equal(t, parser.FormatYAML, got.Format)
}

func TestCreateVersion_Defaults(t *testing.T) {
	dir := t.TempDir()
	v, err := CreateVersion("", dir, "x", parser.FormatXML, []byte("<definitions/>"), 0)
	require.NoError(t, err)
	assert.Equal(t, "adhoc", v.JobID)
	assert.Equal(t, ".bpmn", filepath.Ext(v.ProcessPath))
}

func TestReadVersion_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadVersion(dir, "", "")
	assert.Error(t, err)

	_, err = ReadVersion(dir, "job", "nope")
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestVersionIDsStayInsideOutDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")

	for _, job := range []string{"../../escaped", "..", "a/b", `a\b`, "job 1"} {
		_, err := CreateVersion(job, out, "", parser.FormatJSON, []byte("{}"), 0)
		assert.ErrorIs(t, err, ErrInvalidID, job)

		_, err = ListVersions(out, job)
		assert.ErrorIs(t, err, ErrInvalidID, job)
	}
	_, err := ReadVersion(out, "job", "../job")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = os.Stat(filepath.Join(root, "escaped"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	assert.True(t, ValidID("job-1_A"))
	assert.False(t, ValidID(""))
}

func TestListVersions(t *testing.T) {
	dir := t.TempDir()

	vs, err := ListVersions(dir, "none")
	require.NoError(t, err)
	assert.Empty(t, vs)

	a, err := CreateVersion("job", dir, "a", parser.FormatJSON, []byte("{}"), 50)
	require.NoError(t, err)
	b, err := CreateVersion("job", dir, "b", parser.FormatJSON, []byte("{}"), 90)
	require.NoError(t, err)
	backdate(t, a, time.Now().Add(-time.Hour))

	vs, err = ListVersions(dir, "job")
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, a.VersionID, vs[0].VersionID)
	assert.Equal(t, b.VersionID, vs[1].VersionID)
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC()

	old, err := CreateVersion("stale", dir, "", parser.FormatJSON, []byte("{}"), 0)
	require.NoError(t, err)
	backdate(t, old, now.Add(-10*24*time.Hour))
	fresh, err := CreateVersion("live", dir, "", parser.FormatJSON, []byte("{}"), 0)
	require.NoError(t, err)

	n, err := Prune(dir, 7*24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(dir, "versions", "stale"))
	assert.True(t, os.IsNotExist(err))
	_, err = ReadVersion(dir, "live", fresh.VersionID)
	assert.NoError(t, err)

	n, err = Prune(t.TempDir(), time.Hour, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduler(t *testing.T) {
	s := NewScheduler(t.TempDir(), 0)
	assert.NoError(t, s.Start())

	s = NewScheduler(t.TempDir(), 30)
	assert.Equal(t, 30*24*time.Hour, s.MaxAge)
	s.Spec = "not a cron spec"
	assert.Error(t, s.Start())

	s = NewScheduler(t.TempDir(), 30)
	require.NoError(t, s.Start())
	s.RunOnce()
	s.Stop(t.Context())
}

func backdate(t *testing.T, v *Version, at time.Time) {
	t.Helper()
	v.CreatedAt = at
	b, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(v.Dir, metaFile), b, 0644))
}
