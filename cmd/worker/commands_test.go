package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/fixtures"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/mapper"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/ingest/parser"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/versioning"
)

func testConfig(outDir string) *config.Config {
	return &config.Config{Compliance: config.ComplianceConfig{
		TargetScore:          85,
		MaxIterations:        5,
		OutDir:               outDir,
		DotBin:               "dot-binary-that-does-not-exist",
		VersionRetentionDays: 30,
	}}
}

func writeFixture(t *testing.T, name string, f parser.Format) string {
	t.Helper()
	b, err := parser.Marshal(f, mapper.FromGraph(fixtures.MissingStart()))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0644))
	return path
}

func TestRunValidate(t *testing.T) {
	cfg := testConfig(t.TempDir())
	path := writeFixture(t, "p.yaml", parser.FormatYAML)

	var out bytes.Buffer
	require.NoError(t, runValidate(context.Background(), cfg, []string{path}, &out))
	assert.Contains(t, out.String(), "Compliance score: 15.0/100")

	out.Reset()
	require.NoError(t, runValidate(context.Background(), cfg, []string{path, "--json"}, &out))
	var r map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, 15.0, r["overall_score"])

	assert.Error(t, runValidate(context.Background(), cfg, nil, &out))
}

func TestRunImprove(t *testing.T) {
	outDir := t.TempDir()
	cfg := testConfig(t.TempDir())
	path := writeFixture(t, "p.bpmn", parser.FormatXML)

	var out bytes.Buffer
	require.NoError(t, runImprove(context.Background(), cfg, []string{path, outDir, "90", "3"}, &out))
	assert.Contains(t, out.String(), "target_achieved")
	assert.Contains(t, out.String(), filepath.Join(outDir, "versions"))

	assert.Error(t, runImprove(context.Background(), cfg, []string{path, outDir, "high"}, &out))
}

func TestRunDOTAndPrune(t *testing.T) {
	cfg := testConfig(t.TempDir())
	path := writeFixture(t, "p.json", parser.FormatJSON)
	dotPath := filepath.Join(t.TempDir(), "g.dot")

	require.NoError(t, runDOT([]string{path, dotPath}))
	b, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph")

	var out bytes.Buffer
	require.NoError(t, runPrune(cfg, nil, &out))
	assert.Contains(t, out.String(), "Pruned 0 version(s)")
}

func TestRunPrune_NonPositiveDaysKeepsVersions(t *testing.T) {
	outDir := t.TempDir()
	cfg := testConfig(outDir)
	v, err := versioning.CreateVersion("job", outDir, "", parser.FormatJSON, []byte("{}"), 0)
	require.NoError(t, err)

	for _, days := range []string{"0", "-3"} {
		var out bytes.Buffer
		require.NoError(t, runPrune(cfg, []string{outDir, days}, &out))
		assert.Contains(t, out.String(), "retention disabled")
	}

	cfg.Compliance.VersionRetentionDays = 0
	var out bytes.Buffer
	require.NoError(t, runPrune(cfg, nil, &out))
	assert.Contains(t, out.String(), "retention disabled")

	_, err = os.Stat(v.ProcessPath)
	assert.NoError(t, err)
}
