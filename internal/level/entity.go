package level

// Entity is the sealed interface over all output entity variants.
//
// SortBeat returns the beat used for timeline placement; entities without a
// beat (connectors, sim lines, groups, initialization) report -1 and thus
// sort before all timed entities. Initialization is additionally pinned to
// position 0 by the orchestrator, regardless of its sort beat.
type Entity interface {
	entity() // Sealed - only this package's variants implement it.

	// Archetype returns the published archetype name of the entity.
	Archetype() string

	// SortBeat returns the beat for timeline ordering, -1 if beatless.
	SortBeat() float64
}

// Initialization is the engine bootstrap entity. It carries no data and is
// always the first entity of a converted level.
type Initialization struct{}

func (*Initialization) entity() {}
func (*Initialization) Archetype() string { return "Initialization" }
func (*Initialization) SortBeat() float64 { return -1 }

// BpmChange sets the tempo from its beat onward.
type BpmChange struct {
	Beat float64
	BPM  float64
}

func (*BpmChange) entity() {}
func (*BpmChange) Archetype() string { return "BpmChange" }
func (b *BpmChange) SortBeat() float64 {
	return b.Beat
}

// TimescaleGroup owns a chain of timescale changes. First is nil for an
// empty group.
type TimescaleGroup struct {
	First *TimescaleChange
}

func (*TimescaleGroup) entity() {}
func (*TimescaleGroup) Archetype() string { return "TimescaleGroup" }
func (*TimescaleGroup) SortBeat() float64 { return -1 }

// TimescaleChange is one element of a group's change chain. Next is nil on
// the final element; the chain is acyclic by construction.
type TimescaleChange struct {
	Beat          float64
	Timescale     float64
	TimescaleSkip float64
	Group         *TimescaleGroup
	Ease          TimescaleEase
	Next          *TimescaleChange
}

func (*TimescaleChange) entity() {}
func (*TimescaleChange) Archetype() string { return "TimescaleChange" }
func (c *TimescaleChange) SortBeat() float64 {
	return c.Beat
}

// Note is a judged or visual-only note, including guide anchors. Which
// fields are meaningful depends on Kind; anchors use the sentinel values
// during guide construction until defaulted.
type Note struct {
	Kind          NoteKind
	Beat          float64
	Lane          float64
	Size          float64
	Direction     FlickDirection
	SegmentKind   ConnectorKind
	SegmentAlpha  float64
	ConnectorEase EaseType

	// TimescaleGroup is nil when the note follows the global timeline.
	TimescaleGroup *TimescaleGroup

	// AttachHead/AttachTail are set when the note is attached to a
	// connector it does not structurally belong to.
	AttachHead *Note
	AttachTail *Note
	IsAttached bool

	// ActiveHead is the head of the slide the note is fused into, when
	// that differs from the slide that visually owns it.
	ActiveHead *Note

	// Next points at the note that follows this one in its slide. Set by
	// the final linking pass for every connector head.
	Next *Note
}

func (*Note) entity() {}

func (n *Note) Archetype() string { return n.Kind.String() }

func (n *Note) SortBeat() float64 { return n.Beat }

// Connector links a head note to a tail note. Active connectors (slide
// bodies) carry ActiveHead/ActiveTail; guide connectors leave them nil.
type Connector struct {
	Head        *Note
	Tail        *Note
	SegmentHead *Note
	SegmentTail *Note
	ActiveHead  *Note
	ActiveTail  *Note
}

func (*Connector) entity() {}
func (*Connector) Archetype() string { return "Connector" }
func (*Connector) SortBeat() float64 { return -1 }

// SimLine visually joins two simultaneous notes. Left/right order is
// preserved from the input; there is no canonicalization.
type SimLine struct {
	Left  *Note
	Right *Note
}

func (*SimLine) entity() {}
func (*SimLine) Archetype() string { return "SimLine" }
func (*SimLine) SortBeat() float64 { return -1 }

// LevelData is the converted level: a pass-through playback offset and the
// ordered entity list. The slice is handed to the consumer as an immutable
// snapshot; nothing mutates entities after conversion returns.
type LevelData struct {
	BGMOffset float64
	Entities  []Entity
}
