package convert

import (
	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/level"
)

// buildTimescaleGroups reconstructs each group's change chain by following
// the raw per-record next links, which are original entity indices. It
// returns the original-index-to-group map used by later builders to resolve
// group references, plus the flat emitted entities (each group followed by
// its changes, in discovery order).
//
// A next value of zero or below terminates a chain; an out-of-range first
// or next index is an integrity error. A chain that revisits a record would
// never terminate, so revisits are detected and rejected rather than
// assumed away.
func buildTimescaleGroups(x *Index) (map[int]*level.TimescaleGroup, []level.Entity, error) {
	groups := make(map[int]*level.TimescaleGroup)
	var entities []level.Entity

	for _, ie := range x.ByArchetype(chart.ArchetypeTimescaleGroup) {
		group := &level.TimescaleGroup{}

		first, ok := ie.Entity.Index("first")
		if !ok {
			return nil, nil, newMissingField(ie.Entity.Archetype, "first")
		}
		raw, ok := x.At(first)
		if !ok {
			return nil, nil, newUnresolvedRef(ie.Entity.Archetype, "first", first)
		}

		var changes []*level.TimescaleChange
		visited := map[int]bool{first: true}
		for {
			beat, ok := raw.Field(chart.FieldBeat)
			if !ok {
				return nil, nil, newMissingField(raw.Archetype, chart.FieldBeat)
			}
			timescale, ok := raw.Field("timeScale")
			if !ok {
				return nil, nil, newMissingField(raw.Archetype, "timeScale")
			}

			change := &level.TimescaleChange{
				Beat:      beat,
				Timescale: timescale,
				Group:     group,
				Ease:      level.TimescaleEaseNone,
			}
			if len(changes) > 0 {
				changes[len(changes)-1].Next = change
			}
			changes = append(changes, change)

			next := raw.IndexOr("next", 0)
			if next <= 0 {
				break
			}
			if visited[next] {
				return nil, nil, newCycle(raw.Archetype, next)
			}
			visited[next] = true
			raw, ok = x.At(next)
			if !ok {
				return nil, nil, newUnresolvedRef(ie.Entity.Archetype, "next", next)
			}
		}

		if len(changes) > 0 {
			group.First = changes[0]
		}
		groups[ie.Index] = group
		entities = append(entities, group)
		for _, c := range changes {
			entities = append(entities, c)
		}
	}

	return groups, entities, nil
}
