package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_Golden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		s, err := LoadScenario(path)
		require.NoError(t, err, "load %s", path)

		t.Run(s.Name, func(t *testing.T) {
			RunWithGolden(t, s)
		})
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenario(filepath.Join("testdata", "scenarios", "does_not_exist.yaml"))
		assert.Error(t, err)
	})

	t.Run("nameless scenario", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, path, "description: no name here\n")
		_, err := LoadScenario(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		writeFile(t, path, "name: [unclosed\n")
		_, err := LoadScenario(path)
		assert.Error(t, err)
	})
}

func TestScenario_ToChart(t *testing.T) {
	s := &Scenario{
		Chart: ChartSpec{
			BGMOffset: 0.5,
			Entities: []EntitySpec{
				{Archetype: "#BPM_CHANGE", Data: map[string]float64{"#BEAT": 0, "#BPM": 120}},
				{Archetype: "Guide"},
			},
		},
	}

	data := s.ToChart()
	assert.Equal(t, 0.5, data.BGMOffset)
	require.Len(t, data.Entities, 2)
	assert.Equal(t, 120.0, data.Entities[0].Data["#BPM"])
	assert.NotNil(t, data.Entities[1].Data, "nil data becomes an empty map")
}
