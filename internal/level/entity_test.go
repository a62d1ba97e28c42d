package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortBeat_BeatlessEntitiesSortAsMinusOne(t *testing.T) {
	beatless := []Entity{
		&Initialization{},
		&TimescaleGroup{},
		&Connector{},
		&SimLine{},
	}
	for _, e := range beatless {
		assert.Equal(t, -1.0, e.SortBeat(), "%s has no beat", e.Archetype())
	}
}

func TestSortBeat_TimedEntities(t *testing.T) {
	assert.Equal(t, 4.0, (&BpmChange{Beat: 4}).SortBeat())
	assert.Equal(t, 2.5, (&TimescaleChange{Beat: 2.5}).SortBeat())
	assert.Equal(t, 0.0, (&Note{Kind: NoteNormalTap}).SortBeat())
}

func TestNoteArchetype_FollowsKind(t *testing.T) {
	assert.Equal(t, "NormalTapNote", (&Note{Kind: NoteNormalTap}).Archetype())
	assert.Equal(t, "AnchorNote", (&Note{Kind: NoteAnchor}).Archetype())
	assert.Equal(t, "CriticalHeadTraceNote", (&Note{Kind: NoteCriticalHeadTrace}).Archetype())
	assert.Equal(t, "UnknownNote", (&Note{Kind: NoteKind(99)}).Archetype())
}

func TestNoteKindNames_Complete(t *testing.T) {
	// Every declared kind has a published name.
	for k := NoteNormalTap; k <= NoteAnchor; k++ {
		name, ok := noteKindNames[k]
		assert.True(t, ok, "kind %d has a name", int(k))
		assert.NotEmpty(t, name)
	}
	assert.Len(t, noteKindNames, int(NoteAnchor)+1)
}
