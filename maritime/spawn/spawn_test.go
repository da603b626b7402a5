package spawn

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nanda128/Beacon/maritime/gz"
)

// recordingRunner captures every service request the spawner issues.
type recordingRunner struct {
	requests []string
	err      error
}

func (r *recordingRunner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	// --req payload is the final argument of a gz service invocation.
	r.requests = append(r.requests, args[len(args)-1])
	return nil, r.err
}

// writeModels creates model.sdf stubs for the given model names and
// returns the models dir.
func writeModels(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		modelDir := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(modelDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(modelDir, "model.sdf"), []byte("<sdf/>"), 0o644))
	}
	return dir
}

func newTestSpawner(modelsDir string, runner *recordingRunner) *Spawner {
	return &Spawner{
		Client:    gz.NewClientWithRunner(runner.run),
		ModelsDir: modelsDir,
		World:     "maritime_sar",
	}
}

func TestTarget_InstanceName(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{Target{Model: ModelRaft, X: 10, Y: 5}, "sar_target_raft_10_5"},
		{Target{Model: ModelPerson, X: -15, Y: 8}, "sar_target_person_15_8"},
		{Target{Model: ModelDebris, X: 20.7, Y: -10.2}, "sar_target_debris_20_10"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.target.InstanceName())
	}
}

func TestRequest_Format(t *testing.T) {
	got := Request("models/sar_target_raft/model.sdf", Target{Model: ModelRaft, X: 10, Y: 5, Z: 0.2})
	want := `sdf_filename: "models/sar_target_raft/model.sdf", name: "sar_target_raft_10_5", pose: {position: {x: 10, y: 5, z: 0.2}}`
	assert.Equal(t, want, got)
}

func TestSpawner_Spawn(t *testing.T) {
	runner := &recordingRunner{}
	sp := newTestSpawner(writeModels(t, ModelRaft), runner)

	ok := sp.Spawn(context.Background(), Target{Model: ModelRaft, X: 10, Y: 5, Z: 0.2})
	assert.True(t, ok)
	require.Len(t, runner.requests, 1)
	assert.Contains(t, runner.requests[0], `name: "sar_target_raft_10_5"`)
	assert.Contains(t, runner.requests[0], "pose: {position: {x: 10, y: 5, z: 0.2}}")
}

func TestSpawner_MissingModelSkipped(t *testing.T) {
	runner := &recordingRunner{}
	// Only the raft model exists; person spawns must be skipped.
	sp := newTestSpawner(writeModels(t, ModelRaft), runner)

	targets := []Target{
		{Model: ModelPerson, X: 0, Y: 0, Z: 0.1},
		{Model: ModelRaft, X: 10, Y: 5, Z: 0.2},
		{Model: ModelPerson, X: 3, Y: 4, Z: 0.1},
	}
	spawned := sp.SpawnAll(context.Background(), targets)

	assert.Equal(t, 1, spawned, "missing models must be skipped, not abort the loop")
	assert.Len(t, runner.requests, 1, "no service call for missing model files")
}

func TestSpawner_ServiceFailureContinues(t *testing.T) {
	runner := &recordingRunner{err: assert.AnError}
	sp := newTestSpawner(writeModels(t, ModelNames...), runner)

	targets, err := Scenario("basic")
	require.NoError(t, err)
	spawned := sp.SpawnAll(context.Background(), targets)

	assert.Equal(t, 0, spawned)
	assert.Len(t, runner.requests, len(targets), "every target must still be attempted")
}

func TestValidModel(t *testing.T) {
	for _, name := range ModelNames {
		assert.True(t, ValidModel(name))
	}
	assert.False(t, ValidModel("sar_target_whale"))
}
