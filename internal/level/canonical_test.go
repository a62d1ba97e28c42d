package level

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortedKeysNoWhitespace(t *testing.T) {
	l := ExportedLevel{
		BGMOffset: 0,
		Entities: []ExportedEntity{
			{Archetype: "BpmChange", Data: map[string]float64{"#BPM": 120, "#BEAT": 0}},
		},
	}

	got, err := MarshalCanonical(l)
	require.NoError(t, err)
	assert.Equal(t,
		`{"bgm_offset":0,"entities":[{"archetype":"BpmChange","data":{"#BEAT":0,"#BPM":120}}]}`,
		string(got))
}

func TestMarshalCanonical_Deterministic(t *testing.T) {
	l := ExportedLevel{
		BGMOffset: -0.125,
		Entities: []ExportedEntity{
			{Archetype: "NormalTapNote", Data: map[string]float64{
				"#BEAT": 1.5, "lane": -2, "size": 1, "next": -1,
			}},
		},
	}

	first, err := MarshalCanonical(l)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := MarshalCanonical(l)
		require.NoError(t, err)
		assert.Equal(t, first, again, "identical input canonicalizes identically")
	}
}

func TestMarshalCanonical_NegativeZero(t *testing.T) {
	neg := math.Copysign(0, -1)
	l := ExportedLevel{
		Entities: []ExportedEntity{{Archetype: "X", Data: map[string]float64{"v": neg}}},
	}
	got, err := MarshalCanonical(l)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"v":0`, "-0 collapses to 0")
}

func TestMarshalCanonical_RejectsNonFinite(t *testing.T) {
	l := ExportedLevel{
		Entities: []ExportedEntity{{Archetype: "X", Data: map[string]float64{"v": math.NaN()}}},
	}
	_, err := MarshalCanonical(l)
	assert.Error(t, err)
}
