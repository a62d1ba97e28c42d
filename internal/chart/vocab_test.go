package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekaitools/chartconv/internal/level"
)

func TestNoteKindFor_SharedRoles(t *testing.T) {
	// Several raw archetypes fold onto the same role.
	for _, name := range []string{"HiddenSlideTickNote", "HiddenSlideStartNote"} {
		kind, ok := NoteKindFor(name)
		require.True(t, ok, "%s is in the note vocabulary", name)
		assert.Equal(t, level.NoteAnchor, kind, "%s maps to anchor", name)
	}

	kind, ok := NoteKindFor("NonDirectionalTraceFlickNote")
	require.True(t, ok)
	assert.Equal(t, level.NoteNormalTraceFlick, kind)

	kind, ok = NoteKindFor("NormalAttachedSlideTickNote")
	require.True(t, ok)
	assert.Equal(t, level.NoteNormalTick, kind)
}

func TestNoteKindFor_ClosedVocabulary(t *testing.T) {
	for _, name := range []string{"Guide", "SimLine", "#BPM_CHANGE", "NormalSlideConnector", "NoSuchNote"} {
		_, ok := NoteKindFor(name)
		assert.False(t, ok, "%s is not a note archetype", name)
	}
}

func TestActiveConnectorKind(t *testing.T) {
	kind, ok := ActiveConnectorKind("NormalSlideConnector")
	require.True(t, ok)
	assert.Equal(t, level.ConnectorActiveNormal, kind)

	kind, ok = ActiveConnectorKind("CriticalSlideConnector")
	require.True(t, ok)
	assert.Equal(t, level.ConnectorActiveCritical, kind)

	// Guides are passive, never in the active view.
	_, ok = ActiveConnectorKind("Guide")
	assert.False(t, ok)
}

func TestEntityData_FieldAccess(t *testing.T) {
	e := EntityData{
		Archetype: "NormalTapNote",
		Data:      map[string]float64{"#BEAT": 2.5, "lane": -3, "slide": 7.0},
	}

	v, ok := e.Field("#BEAT")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = e.Field("size")
	assert.False(t, ok)

	assert.Equal(t, 0.0, e.FieldOr("size", 0), "absent field takes the default")
	assert.Equal(t, -3.0, e.FieldOr("lane", 0), "present field ignores the default")

	i, ok := e.Index("slide")
	require.True(t, ok)
	assert.Equal(t, 7, i)

	assert.Equal(t, -1, e.IndexOr("attach", -1))
}
