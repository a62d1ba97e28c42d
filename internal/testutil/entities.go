// Package testutil provides raw-chart fixture builders shared by tests.
//
// Builders return chart entities with only the fields a test names set,
// mirroring how real charts omit defaultable fields.
package testutil

import "github.com/sekaitools/chartconv/internal/chart"

// Chart assembles a raw level from entities.
func Chart(bgmOffset float64, entities ...chart.EntityData) chart.LevelData {
	return chart.LevelData{BGMOffset: bgmOffset, Entities: entities}
}

// Entity builds a raw entity from alternating field name/value pairs.
// Panics on an odd pair count - fixtures are authored, not computed.
func Entity(archetype string, fields ...any) chart.EntityData {
	if len(fields)%2 != 0 {
		panic("testutil.Entity: fields must be name/value pairs")
	}
	data := make(map[string]float64, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		name := fields[i].(string)
		switch v := fields[i+1].(type) {
		case float64:
			data[name] = v
		case int:
			data[name] = float64(v)
		default:
			panic("testutil.Entity: field values must be numeric")
		}
	}
	return chart.EntityData{Archetype: archetype, Data: data}
}

// BpmChange builds a BPM marker.
func BpmChange(beat, bpm float64) chart.EntityData {
	return Entity("#BPM_CHANGE", "#BEAT", beat, "#BPM", bpm)
}

// Note builds a note entity at a beat and lane with size 1.
func Note(archetype string, beat, lane float64) chart.EntityData {
	return Entity(archetype, "#BEAT", beat, "lane", lane, "size", 1.0)
}

// SlideConnector builds a slide body over note indices.
func SlideConnector(archetype string, head, tail, start, end, ease int) chart.EntityData {
	return Entity(archetype,
		"head", head, "tail", tail, "start", start, "end", end, "ease", ease)
}

// SimLine builds a sim line over two note indices.
func SimLine(a, b int) chart.EntityData {
	return Entity("SimLine", "a", a, "b", b)
}

// TimescaleGroup builds a group pointing at its first change record.
func TimescaleGroup(first int) chart.EntityData {
	return Entity("TimeScaleGroup", "first", first)
}

// TimescaleChange builds a change record; next <= 0 terminates the chain.
func TimescaleChange(beat, timescale float64, next int) chart.EntityData {
	return Entity("TimeScaleChange", "#BEAT", beat, "timeScale", timescale, "next", next)
}

// GuidePoint is one control point of a guide fixture.
type GuidePoint struct {
	Beat, Lane, Size float64
	Group            int
}

// Guide builds a guide from four control points and its visual codes.
func Guide(start, head, tail, end GuidePoint, ease, fade, color int) chart.EntityData {
	return Entity("Guide",
		"startBeat", start.Beat, "startLane", start.Lane, "startSize", start.Size, "startTimeScaleGroup", start.Group,
		"headBeat", head.Beat, "headLane", head.Lane, "headSize", head.Size, "headTimeScaleGroup", head.Group,
		"tailBeat", tail.Beat, "tailLane", tail.Lane, "tailSize", tail.Size, "tailTimeScaleGroup", tail.Group,
		"endBeat", end.Beat, "endLane", end.Lane, "endSize", end.Size, "endTimeScaleGroup", end.Group,
		"ease", ease, "fade", fade, "color", color)
}
