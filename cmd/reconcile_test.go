package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		fromObject, withFallback, strictMode, toJournal = false, false, false, false
	})

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestReconcileMerge(t *testing.T) {
	path := writeScenario(t, `
current: [1, 2]
source: [1, 3, 5]
batches:
  - insert_items: [{section: 1, row: 2}]
  - insert_sections: [2]
`)

	out, err := execute(t, "reconcile", "merge", path)
	require.NoError(t, err)

	var batch map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, []any{2.0}, batch["insert_sections"])
	assert.Len(t, batch["insert_items"], 1)
}

func TestReconcileRun(t *testing.T) {
	path := writeScenario(t, `
current: [1, 2]
source: [1, 3, 4]
batches:
  - delete_sections: [1]
    insert_sections: [1, 2]
`)

	out, err := execute(t, "reconcile", "run", path)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "applied", res["outcome"])
	assert.Equal(t, []any{1.0, 3.0, 4.0}, res["counts"])
}

func TestReconcileRun_Rejected(t *testing.T) {
	path := writeScenario(t, `
current: [1, 2]
source: [1, 2]
batches:
  - delete_items: [{section: 2, row: 2}]
`)

	_, err := execute(t, "reconcile", "run", path)
	assert.ErrorContains(t, err, "scenario rejected")

	out, err := execute(t, "reconcile", "run", path, "--fallback")
	require.NoError(t, err)
	assert.Contains(t, out, `"outcome": "reloaded"`)
}

func TestReconcileRun_MissingFile(t *testing.T) {
	_, err := execute(t, "reconcile", "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario")
}
