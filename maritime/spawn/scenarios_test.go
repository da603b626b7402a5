package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_FixedPlacements(t *testing.T) {
	// Preset scenarios are literal tables: always the same targets, in
	// order, regardless of any seed.
	tests := []struct {
		name string
		want []Target
	}{
		{"basic", []Target{
			{Model: ModelRaft, X: 10, Y: 5, Z: 0.2},
			{Model: ModelPerson, X: -15, Y: 8, Z: 0.1},
			{Model: ModelDebris, X: 20, Y: -10, Z: 0.1},
		}},
		{"rescue", []Target{
			{Model: ModelPerson, X: 0, Y: 0, Z: 0.1},
			{Model: ModelPerson, X: 5, Y: 3, Z: 0.1},
			{Model: ModelRaft, X: 10, Y: -5, Z: 0.2},
			{Model: ModelDebris, X: -8, Y: 7, Z: 0.1},
			{Model: ModelDebris, X: 12, Y: 10, Z: 0.1},
		}},
		{"search", []Target{
			{Model: ModelDebris, X: 15, Y: 20, Z: 0.1},
			{Model: ModelDebris, X: -10, Y: 15, Z: 0.1},
			{Model: ModelDebris, X: 25, Y: -5, Z: 0.1},
			{Model: ModelPerson, X: 30, Y: 10, Z: 0.1},
			{Model: ModelRaft, X: -20, Y: -15, Z: 0.2},
			{Model: ModelPerson, X: -25, Y: 5, Z: 0.1},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Scenario(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScenario_Unknown(t *testing.T) {
	_, err := Scenario("armada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basic, rescue, search", "error must list the valid options")
}

func TestScenario_ReturnsCopy(t *testing.T) {
	first, err := Scenario("basic")
	require.NoError(t, err)
	first[0].X = 999

	second, err := Scenario("basic")
	require.NoError(t, err)
	assert.Equal(t, 10.0, second[0].X, "callers must not be able to mutate the preset table")
}

func TestScenarioNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"basic", "rescue", "search"}, ScenarioNames())
}
