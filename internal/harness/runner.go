package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekaitools/chartconv/internal/convert"
	"github.com/sekaitools/chartconv/internal/level"
)

// Run converts the scenario's chart and applies its assertions.
func Run(t *testing.T, s *Scenario) level.LevelData {
	t.Helper()

	out, err := convert.Convert(s.ToChart())
	require.NoError(t, err, "scenario %s: conversion failed", s.Name)

	for i, a := range s.Assertions {
		applyAssertion(t, s, i, a, out)
	}
	return out
}

// RunWithGolden runs the scenario and compares the canonical JSON of the
// exported level against testdata/golden/{name}.golden.
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	out := Run(t, s)
	payload, err := level.MarshalCanonical(level.Export(out))
	require.NoError(t, err, "scenario %s: canonical marshal failed", s.Name)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, s.Name, payload)
}

func applyAssertion(t *testing.T, s *Scenario, i int, a Assertion, out level.LevelData) {
	t.Helper()

	switch a.Type {
	case "entity_count":
		assert.Len(t, out.Entities, a.Count, "scenario %s assertion %d", s.Name, i)

	case "archetype_count":
		n := 0
		for _, e := range out.Entities {
			if e.Archetype() == a.Archetype {
				n++
			}
		}
		assert.Equal(t, a.Count, n, "scenario %s assertion %d: %s count", s.Name, i, a.Archetype)

	case "sorted_by_beat":
		for j := 2; j < len(out.Entities); j++ {
			assert.LessOrEqual(t, out.Entities[j-1].SortBeat(), out.Entities[j].SortBeat(),
				"scenario %s assertion %d: entities %d and %d out of order", s.Name, i, j-1, j)
		}

	default:
		t.Fatalf("scenario %s assertion %d: unknown type %q", s.Name, i, a.Type)
	}
}
