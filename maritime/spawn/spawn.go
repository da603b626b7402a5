// Package spawn places SAR target models into a running maritime
// world through the gz entity factory service.
package spawn

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nanda128/Beacon/maritime/gz"
)

// The prefabricated SAR target models bundled under models/.
const (
	ModelPerson = "sar_target_person"
	ModelRaft   = "sar_target_raft"
	ModelDebris = "sar_target_debris"
)

// ModelNames lists the spawnable model types in a fixed order.
var ModelNames = []string{ModelPerson, ModelRaft, ModelDebris}

// ValidModel reports whether name is one of the bundled SAR targets.
func ValidModel(name string) bool {
	for _, m := range ModelNames {
		if m == name {
			return true
		}
	}
	return false
}

// Target is one model placement.
type Target struct {
	Model   string
	X, Y, Z float64
}

// InstanceName derives the in-world entity name for a placement.
// Distinct coordinates give distinct names so repeated spawns of the
// same model type do not collide.
func (t Target) InstanceName() string {
	return fmt.Sprintf("%s_%d_%d", t.Model, absInt(int(t.X)), absInt(int(t.Y)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Request renders the textual gz.msgs.EntityFactory payload for
// spawning the model SDF at the target pose. The format is owned by
// gz; we treat it as an opaque string.
func Request(sdfFile string, t Target) string {
	return fmt.Sprintf(`sdf_filename: "%s", name: "%s", pose: {position: {x: %g, y: %g, z: %g}}`,
		sdfFile, t.InstanceName(), t.X, t.Y, t.Z)
}

// Spawner instantiates targets one at a time, pausing between spawns
// so the simulator keeps up.
type Spawner struct {
	Client    *gz.Client
	ModelsDir string
	World     string
	Delay     time.Duration
}

// ModelSDFPath resolves a model name to its model.sdf under ModelsDir.
func (s *Spawner) ModelSDFPath(model string) string {
	return filepath.Join(s.ModelsDir, model, "model.sdf")
}

// Spawn places a single target. Failures are warnings, not errors: a
// missing model file or a failed service call skips the target and the
// caller moves on to the next one.
func (s *Spawner) Spawn(ctx context.Context, t Target) bool {
	sdfFile := s.ModelSDFPath(t.Model)
	if _, err := os.Stat(sdfFile); err != nil {
		logrus.Warnf("Model file not found: %s, skipping", sdfFile)
		return false
	}

	logrus.Infof("Spawning %s at (%.1f, %.1f, %.1f)", t.Model, t.X, t.Y, t.Z)

	out, err := s.Client.CreateEntity(ctx, s.World, Request(sdfFile, t))
	if err != nil {
		logrus.Warnf("Spawn of %s may have failed: %v", t.InstanceName(), err)
		logrus.Warnf("  output: %s", out)
		return false
	}
	if len(out) > 0 {
		logrus.Debugf("Service response: %s", out)
	}
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	return true
}

// SpawnAll places each target in order and returns how many succeeded.
func (s *Spawner) SpawnAll(ctx context.Context, targets []Target) int {
	spawned := 0
	for _, t := range targets {
		if s.Spawn(ctx, t) {
			spawned++
		}
	}
	return spawned
}
