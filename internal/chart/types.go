package chart

// EntityData is one raw chart entity: an archetype tag and a flat map of
// named numeric fields. Entities are immutable once parsed; index-based
// cross references between them refer to positions in the enclosing
// LevelData.Entities slice.
type EntityData struct {
	Archetype string             `json:"archetype"`
	Data      map[string]float64 `json:"data"`
}

// Field returns the named field and whether it is present.
func (e EntityData) Field(name string) (float64, bool) {
	v, ok := e.Data[name]
	return v, ok
}

// FieldOr returns the named field, or def when absent.
func (e EntityData) FieldOr(name string, def float64) float64 {
	if v, ok := e.Data[name]; ok {
		return v
	}
	return def
}

// Index returns the named field truncated to an entity index and whether it
// is present. Index fields are stored as floats like everything else in the
// interchange format.
func (e EntityData) Index(name string) (int, bool) {
	v, ok := e.Data[name]
	return int(v), ok
}

// IndexOr returns the named index field, or def when absent.
func (e EntityData) IndexOr(name string, def int) int {
	if v, ok := e.Data[name]; ok {
		return int(v)
	}
	return def
}

// LevelData is a raw extended chart: a global playback offset and the flat
// entity list.
type LevelData struct {
	BGMOffset float64      `json:"bgmOffset"`
	Entities  []EntityData `json:"entities"`
}
