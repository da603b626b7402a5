package spawn

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in scenario presets. Each is a fixed literal placement table:
// the same scenario always spawns the same targets, independent of any
// seed.
var scenarios = map[string][]Target{
	"basic": {
		{Model: ModelRaft, X: 10, Y: 5, Z: 0.2},
		{Model: ModelPerson, X: -15, Y: 8, Z: 0.1},
		{Model: ModelDebris, X: 20, Y: -10, Z: 0.1},
	},
	"rescue": {
		{Model: ModelPerson, X: 0, Y: 0, Z: 0.1},
		{Model: ModelPerson, X: 5, Y: 3, Z: 0.1},
		{Model: ModelRaft, X: 10, Y: -5, Z: 0.2},
		{Model: ModelDebris, X: -8, Y: 7, Z: 0.1},
		{Model: ModelDebris, X: 12, Y: 10, Z: 0.1},
	},
	"search": {
		{Model: ModelDebris, X: 15, Y: 20, Z: 0.1},
		{Model: ModelDebris, X: -10, Y: 15, Z: 0.1},
		{Model: ModelDebris, X: 25, Y: -5, Z: 0.1},
		{Model: ModelPerson, X: 30, Y: 10, Z: 0.1},
		{Model: ModelRaft, X: -20, Y: -15, Z: 0.2},
		{Model: ModelPerson, X: -25, Y: 5, Z: 0.1},
	},
}

// ScenarioNames returns the available scenario names, sorted.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scenario returns the placement table for a named scenario. The
// returned slice is a copy; callers may modify it.
func Scenario(name string) ([]Target, error) {
	table, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(ScenarioNames(), ", "))
	}
	targets := make([]Target, len(table))
	copy(targets, table)
	return targets, nil
}
