package level

// ExportedEntity is the published wire form of one entity: an archetype name
// and a flat field map. Reference fields are lowered to the referent's index
// in the exported entity list; an absent reference exports as -1. Enum
// fields export their integer code.
type ExportedEntity struct {
	Archetype string             `json:"archetype"`
	Data      map[string]float64 `json:"data"`
}

// ExportedLevel is the published wire form of a converted level.
type ExportedLevel struct {
	BGMOffset float64          `json:"bgm_offset"`
	Entities  []ExportedEntity `json:"entities"`
}

// Export lowers a converted level to its wire form. Every pointer reference
// becomes the final index of the referent, which is why export runs only on
// the fully ordered output list.
func Export(ld LevelData) ExportedLevel {
	indexes := make(map[Entity]int, len(ld.Entities))
	for i, e := range ld.Entities {
		indexes[e] = i
	}

	out := ExportedLevel{
		BGMOffset: ld.BGMOffset,
		Entities:  make([]ExportedEntity, 0, len(ld.Entities)),
	}
	for _, e := range ld.Entities {
		out.Entities = append(out.Entities, ExportedEntity{
			Archetype: e.Archetype(),
			Data:      exportData(e, indexes),
		})
	}
	return out
}

func exportData(e Entity, indexes map[Entity]int) map[string]float64 {
	switch v := e.(type) {
	case *Initialization:
		return map[string]float64{}
	case *BpmChange:
		return map[string]float64{
			"#BEAT": v.Beat,
			"#BPM":  v.BPM,
		}
	case *TimescaleGroup:
		return map[string]float64{
			"first": refIndex(indexes, v.First),
		}
	case *TimescaleChange:
		return map[string]float64{
			"#BEAT":          v.Beat,
			"timeScale":      v.Timescale,
			"timeScaleSkip":  v.TimescaleSkip,
			"timeScaleEase":  float64(v.Ease),
			"timeScaleGroup": refIndex(indexes, v.Group),
			"next":           refIndex(indexes, v.Next),
		}
	case *Note:
		return map[string]float64{
			"#BEAT":          v.Beat,
			"lane":           v.Lane,
			"size":           v.Size,
			"direction":      float64(v.Direction),
			"segmentKind":    float64(v.SegmentKind),
			"segmentAlpha":   v.SegmentAlpha,
			"connectorEase":  float64(v.ConnectorEase),
			"timeScaleGroup": refIndex(indexes, v.TimescaleGroup),
			"attachHead":     refIndex(indexes, v.AttachHead),
			"attachTail":     refIndex(indexes, v.AttachTail),
			"isAttached":     boolField(v.IsAttached),
			"activeHead":     refIndex(indexes, v.ActiveHead),
			"next":           refIndex(indexes, v.Next),
		}
	case *Connector:
		return map[string]float64{
			"head":        refIndex(indexes, v.Head),
			"tail":        refIndex(indexes, v.Tail),
			"segmentHead": refIndex(indexes, v.SegmentHead),
			"segmentTail": refIndex(indexes, v.SegmentTail),
			"activeHead":  refIndex(indexes, v.ActiveHead),
			"activeTail":  refIndex(indexes, v.ActiveTail),
		}
	case *SimLine:
		return map[string]float64{
			"left":  refIndex(indexes, v.Left),
			"right": refIndex(indexes, v.Right),
		}
	default:
		return map[string]float64{}
	}
}

// refIndex resolves a reference to its exported index. The typed nil checks
// exist because each pointer type must be tested before it is boxed into the
// Entity interface.
func refIndex[T any, PT interface {
	*T
	Entity
}](indexes map[Entity]int, ref PT) float64 {
	if ref == nil {
		return -1
	}
	if i, ok := indexes[Entity(ref)]; ok {
		return float64(i)
	}
	return -1
}

func boolField(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
