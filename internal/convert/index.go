package convert

import "github.com/sekaitools/chartconv/internal/chart"

// IndexedEntity pairs a raw entity with its original position in the input
// list. All cross references in the raw format are expressed against these
// original positions, never against output positions.
type IndexedEntity struct {
	Index  int
	Entity chart.EntityData
}

// Index is a read-only indexed view over the raw entity list: archetype
// buckets plus precomputed note and slide-body views. Construction is one
// O(n) pass; lookups afterwards never scan the full list.
type Index struct {
	entities         []chart.EntityData
	byArchetype      map[string][]IndexedEntity
	notes            []IndexedEntity
	activeConnectors []IndexedEntity
}

// NewIndex builds the indexed view. The input slice is retained, not
// copied; callers must not mutate it for the duration of conversion.
func NewIndex(entities []chart.EntityData) *Index {
	x := &Index{
		entities:    entities,
		byArchetype: make(map[string][]IndexedEntity),
	}
	for i, e := range entities {
		ie := IndexedEntity{Index: i, Entity: e}
		x.byArchetype[e.Archetype] = append(x.byArchetype[e.Archetype], ie)

		if _, ok := chart.NoteKindFor(e.Archetype); ok {
			x.notes = append(x.notes, ie)
		}
		if _, ok := chart.ActiveConnectorKind(e.Archetype); ok {
			x.activeConnectors = append(x.activeConnectors, ie)
		}
	}
	return x
}

// Len returns the raw entity count.
func (x *Index) Len() int { return len(x.entities) }

// At returns the raw entity at an original index, reporting whether the
// index is in range.
func (x *Index) At(i int) (chart.EntityData, bool) {
	if i < 0 || i >= len(x.entities) {
		return chart.EntityData{}, false
	}
	return x.entities[i], true
}

// ByArchetype returns the index-preserving view of one archetype, in input
// order. An absent archetype yields an empty view.
func (x *Index) ByArchetype(name string) []IndexedEntity {
	return x.byArchetype[name]
}

// Notes returns all entities whose archetype is in the note vocabulary.
func (x *Index) Notes() []IndexedEntity { return x.notes }

// ActiveConnectors returns all slide-body entities. Guides are not active
// connectors and are excluded.
func (x *Index) ActiveConnectors() []IndexedEntity { return x.activeConnectors }
