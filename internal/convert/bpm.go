package convert

import (
	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/level"
)

// buildBpmChanges maps raw BPM markers 1:1 onto timeline entities. No cross
// references, no deduplication.
func buildBpmChanges(x *Index) ([]level.Entity, error) {
	var entities []level.Entity
	for _, ie := range x.ByArchetype(chart.ArchetypeBpmChange) {
		beat, ok := ie.Entity.Field(chart.FieldBeat)
		if !ok {
			return nil, newMissingField(ie.Entity.Archetype, chart.FieldBeat)
		}
		bpm, ok := ie.Entity.Field(chart.FieldBPM)
		if !ok {
			return nil, newMissingField(ie.Entity.Archetype, chart.FieldBPM)
		}
		entities = append(entities, &level.BpmChange{Beat: beat, BPM: bpm})
	}
	return entities, nil
}
