package convert

import (
	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/level"
)

// buildNotes constructs typed notes, slide-body connectors, and sim lines.
//
// Three passes plus the sim-line pass, in dependency order:
//
//	pass 1: every note-role entity becomes a typed note (lane/size default
//	        to 0, direction to omni)
//	pass 2: every slide body resolves its head/tail/start/end notes, which
//	        pass 1 guarantees exist, and propagates its kind and ease onto
//	        the endpoint notes
//	pass 3: per-note reference resolution - timescale group, attachment
//	        connector, and fused-slide override
//
// An index naming a missing note or connector is an integrity error; a
// timeScaleGroup index outside the group map just means no group.
func buildNotes(x *Index, groups map[int]*level.TimescaleGroup) ([]level.Entity, error) {
	var entities []level.Entity
	notes := make(map[int]*level.Note)
	connectors := make(map[int]*level.Connector)

	for _, ie := range x.Notes() {
		kind, _ := chart.NoteKindFor(ie.Entity.Archetype)
		beat, ok := ie.Entity.Field(chart.FieldBeat)
		if !ok {
			return nil, newMissingField(ie.Entity.Archetype, chart.FieldBeat)
		}
		dirCode := ie.Entity.IndexOr("direction", 0)
		direction, ok := chart.Direction(dirCode)
		if !ok {
			return nil, newBadCode(ie.Entity.Archetype, "direction", dirCode)
		}

		note := &level.Note{
			Kind:          kind,
			Beat:          beat,
			Lane:          ie.Entity.FieldOr("lane", 0),
			Size:          ie.Entity.FieldOr("size", 0),
			Direction:     direction,
			SegmentKind:   level.ConnectorActiveNormal,
			SegmentAlpha:  1,
			ConnectorEase: level.EaseLinear,
		}
		entities = append(entities, note)
		notes[ie.Index] = note
	}

	for _, ie := range x.ActiveConnectors() {
		kind, _ := chart.ActiveConnectorKind(ie.Entity.Archetype)

		head, err := resolveNote(notes, ie.Entity, "head")
		if err != nil {
			return nil, err
		}
		tail, err := resolveNote(notes, ie.Entity, "tail")
		if err != nil {
			return nil, err
		}
		segmentHead, err := resolveNote(notes, ie.Entity, "start")
		if err != nil {
			return nil, err
		}
		segmentTail, err := resolveNote(notes, ie.Entity, "end")
		if err != nil {
			return nil, err
		}

		easeCode, ok := ie.Entity.Index("ease")
		if !ok {
			return nil, newMissingField(ie.Entity.Archetype, "ease")
		}
		ease, ok := chart.Ease(easeCode)
		if !ok {
			return nil, newBadCode(ie.Entity.Archetype, "ease", easeCode)
		}

		connector := &level.Connector{
			Head:        head,
			Tail:        tail,
			SegmentHead: segmentHead,
			SegmentTail: segmentTail,
			ActiveHead:  segmentHead,
			ActiveTail:  segmentTail,
		}
		head.ConnectorEase = ease
		head.SegmentKind = kind
		tail.SegmentKind = kind
		segmentHead.SegmentKind = kind
		entities = append(entities, connector)
		connectors[ie.Index] = connector
	}

	for _, ie := range x.Notes() {
		note := notes[ie.Index]

		if gi, ok := ie.Entity.Index("timeScaleGroup"); ok {
			if group, ok := groups[gi]; ok {
				note.TimescaleGroup = group
			}
		}

		if ai := ie.Entity.IndexOr("attach", -1); ai > 0 {
			attach, ok := connectors[ai]
			if !ok {
				return nil, newUnresolvedRef(ie.Entity.Archetype, "attach", ai)
			}
			note.AttachHead = attach.Head
			note.AttachTail = attach.Tail
			note.IsAttached = true
		}

		if si := ie.Entity.IndexOr("slide", -1); si > 0 {
			slide, ok := connectors[si]
			if !ok {
				return nil, newUnresolvedRef(ie.Entity.Archetype, "slide", si)
			}
			note.ActiveHead = slide.Head
		}
	}

	for _, ie := range x.ByArchetype(chart.ArchetypeSimLine) {
		left, err := resolveNote(notes, ie.Entity, "a")
		if err != nil {
			return nil, err
		}
		right, err := resolveNote(notes, ie.Entity, "b")
		if err != nil {
			return nil, err
		}
		entities = append(entities, &level.SimLine{Left: left, Right: right})
	}

	return entities, nil
}

// resolveNote reads an index field and resolves it against the constructed
// note map. Missing field and unknown index are both integrity errors.
func resolveNote(notes map[int]*level.Note, e chart.EntityData, field string) (*level.Note, error) {
	i, ok := e.Index(field)
	if !ok {
		return nil, newMissingField(e.Archetype, field)
	}
	note, ok := notes[i]
	if !ok {
		return nil, newUnresolvedRef(e.Archetype, field, i)
	}
	return note, nil
}
