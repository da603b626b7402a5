// Package maritime turns environment presets into Gazebo SDF worlds.
//
// An environment preset is a YAML file (config/env_<name>.yaml) that
// describes ocean state, wind, lighting and visibility for one maritime
// SAR condition. LoadEnvConfig reads and defaults a preset; RenderWorld
// produces the SDF 1.8 document that gz sim consumes.
//
// Sub-packages:
//   - maritime/gz: thin wrapper around the gz command-line tools
//   - maritime/spawn: SAR target placement (scenarios, random, single)
package maritime
