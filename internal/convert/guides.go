package convert

import (
	"github.com/sekaitools/chartconv/internal/chart"
	"github.com/sekaitools/chartconv/internal/level"
)

// anchorAttrs is one control point's contribution to an anchor. The
// sentinel values mean "not contributed": start points contribute segment
// kind and alpha, end points alpha only, head points ease only, and tail
// points nothing.
type anchorAttrs struct {
	segmentKind   level.ConnectorKind
	segmentAlpha  float64
	connectorEase level.EaseType
}

func noAttrs() anchorAttrs {
	return anchorAttrs{
		segmentKind:   level.ConnectorKindUnset,
		segmentAlpha:  level.AlphaUnset,
		connectorEase: level.EaseUnset,
	}
}

// anchorPool deduplicates guide anchors. Anchors are keyed by
// (beat, lane, size, timescale group); the beat index keeps a lookup near
// constant instead of scanning every anchor.
type anchorPool struct {
	byBeat  map[float64][]*level.Note
	created []*level.Note
}

func newAnchorPool() *anchorPool {
	return &anchorPool{byBeat: make(map[float64][]*level.Note)}
}

// anchor returns the existing anchor at the control point if every
// contributed attribute is unset-or-equal on it, filling in whatever was
// still unset; otherwise it creates a new anchor. An attribute that has
// been set is never silently overwritten - two guides that disagree at a
// shared point produce two distinct anchors at the same coordinates.
func (p *anchorPool) anchor(beat, lane, size float64, group *level.TimescaleGroup, attrs anchorAttrs) *level.Note {
	for _, a := range p.byBeat[beat] {
		if a.Lane != lane || a.Size != size || a.TimescaleGroup != group {
			continue
		}
		if attrs.segmentKind != level.ConnectorKindUnset &&
			a.SegmentKind != attrs.segmentKind && a.SegmentKind != level.ConnectorKindUnset {
			continue
		}
		if attrs.segmentAlpha != level.AlphaUnset &&
			a.SegmentAlpha != attrs.segmentAlpha && a.SegmentAlpha != level.AlphaUnset {
			continue
		}
		if attrs.connectorEase != level.EaseUnset &&
			a.ConnectorEase != attrs.connectorEase && a.ConnectorEase != level.EaseUnset {
			continue
		}

		if attrs.segmentKind != level.ConnectorKindUnset && a.SegmentKind == level.ConnectorKindUnset {
			a.SegmentKind = attrs.segmentKind
		}
		if attrs.segmentAlpha != level.AlphaUnset && a.SegmentAlpha == level.AlphaUnset {
			a.SegmentAlpha = attrs.segmentAlpha
		}
		if attrs.connectorEase != level.EaseUnset && a.ConnectorEase == level.EaseUnset {
			a.ConnectorEase = attrs.connectorEase
		}
		return a
	}

	a := &level.Note{
		Kind:           level.NoteAnchor,
		Beat:           beat,
		Lane:           lane,
		Size:           size,
		Direction:      level.DirectionUpOmni,
		SegmentKind:    attrs.segmentKind,
		SegmentAlpha:   attrs.segmentAlpha,
		ConnectorEase:  attrs.connectorEase,
		TimescaleGroup: group,
	}
	p.byBeat[beat] = append(p.byBeat[beat], a)
	p.created = append(p.created, a)
	return a
}

// defaultUnset fills the documented defaults into every anchor attribute
// that no guide contributed.
func (p *anchorPool) defaultUnset() {
	for _, a := range p.created {
		if a.SegmentKind == level.ConnectorKindUnset {
			a.SegmentKind = level.ConnectorGuideNeutral
		}
		if a.SegmentAlpha == level.AlphaUnset {
			a.SegmentAlpha = 1
		}
		if a.ConnectorEase == level.EaseUnset {
			a.ConnectorEase = level.EaseLinear
		}
	}
}

// guidePoint is one of the four inline control points of a guide.
type guidePoint struct {
	beat  float64
	lane  float64
	size  float64
	group *level.TimescaleGroup
}

// buildGuides constructs one passive connector per guide from its four
// control points, deduplicating anchors across guides. Anchors are emitted
// in creation order, each guide's connector after its anchors, matching the
// interleaving of the note builder.
func buildGuides(x *Index, groups map[int]*level.TimescaleGroup) ([]level.Entity, error) {
	var entities []level.Entity
	pool := newAnchorPool()
	emitted := 0

	for _, ie := range x.ByArchetype(chart.ArchetypeGuide) {
		e := ie.Entity

		start, err := readGuidePoint(e, "start", groups)
		if err != nil {
			return nil, err
		}
		head, err := readGuidePoint(e, "head", groups)
		if err != nil {
			return nil, err
		}
		tail, err := readGuidePoint(e, "tail", groups)
		if err != nil {
			return nil, err
		}
		end, err := readGuidePoint(e, "end", groups)
		if err != nil {
			return nil, err
		}

		easeCode := e.IndexOr("ease", 0)
		ease, ok := chart.Ease(easeCode)
		if !ok {
			return nil, newBadCode(e.Archetype, "ease", easeCode)
		}
		fadeCode := e.IndexOr("fade", 1)
		startAlpha, endAlpha, ok := chart.FadeAlphas(fadeCode)
		if !ok {
			return nil, newBadCode(e.Archetype, "fade", fadeCode)
		}
		colorCode := e.IndexOr("color", 0)
		kind, ok := chart.GuideKind(colorCode)
		if !ok {
			return nil, newBadCode(e.Archetype, "color", colorCode)
		}

		// Contribution order matters for attribute accumulation: start,
		// end, head, tail.
		startAttrs := noAttrs()
		startAttrs.segmentKind = kind
		startAttrs.segmentAlpha = startAlpha
		startAnchor := pool.anchor(start.beat, start.lane, start.size, start.group, startAttrs)

		endAttrs := noAttrs()
		endAttrs.segmentAlpha = endAlpha
		endAnchor := pool.anchor(end.beat, end.lane, end.size, end.group, endAttrs)

		headAttrs := noAttrs()
		headAttrs.connectorEase = ease
		headAnchor := pool.anchor(head.beat, head.lane, head.size, head.group, headAttrs)

		tailAnchor := pool.anchor(tail.beat, tail.lane, tail.size, tail.group, noAttrs())

		// Emit anchors in creation order, each guide's new anchors before
		// its connector.
		for _, a := range pool.created[emitted:] {
			entities = append(entities, a)
		}
		emitted = len(pool.created)

		entities = append(entities, &level.Connector{
			Head:        headAnchor,
			Tail:        tailAnchor,
			SegmentHead: startAnchor,
			SegmentTail: endAnchor,
		})
	}

	pool.defaultUnset()
	return entities, nil
}

// readGuidePoint reads one control point's beat/lane/size/timescale-group
// field quadruple. Beat, lane, and size are required; a timescale group
// index outside the group map (including the conventional -1) means the
// point follows the global timeline.
func readGuidePoint(e chart.EntityData, prefix string, groups map[int]*level.TimescaleGroup) (guidePoint, error) {
	beat, ok := e.Field(prefix + "Beat")
	if !ok {
		return guidePoint{}, newMissingField(e.Archetype, prefix+"Beat")
	}
	lane, ok := e.Field(prefix + "Lane")
	if !ok {
		return guidePoint{}, newMissingField(e.Archetype, prefix+"Lane")
	}
	size, ok := e.Field(prefix + "Size")
	if !ok {
		return guidePoint{}, newMissingField(e.Archetype, prefix+"Size")
	}
	p := guidePoint{beat: beat, lane: lane, size: size}
	if gi, ok := e.Index(prefix + "TimeScaleGroup"); ok {
		if group, ok := groups[gi]; ok {
			p.group = group
		}
	}
	return p, nil
}
