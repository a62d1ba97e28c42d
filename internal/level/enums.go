package level

// NoteKind identifies the role of a note entity. The vocabulary is closed:
// every raw archetype maps onto exactly one of these roles (several raw
// archetypes share a role, e.g. both hidden archetypes become anchors).
type NoteKind int

const (
	NoteNormalTap NoteKind = iota
	NoteCriticalTap
	NoteNormalFlick
	NoteCriticalFlick
	NoteNormalHeadTap
	NoteCriticalHeadTap
	NoteNormalTailRelease
	NoteCriticalTailRelease
	NoteNormalTailFlick
	NoteCriticalTailFlick
	NoteNormalTick
	NoteCriticalTick
	NoteNormalTrace
	NoteCriticalTrace
	NoteNormalTraceFlick
	NoteCriticalTraceFlick
	NoteNormalHeadTrace
	NoteCriticalHeadTrace
	NoteNormalTailTrace
	NoteCriticalTailTrace
	NoteDamage
	NoteTransientHiddenTick
	NoteAnchor
)

// noteKindNames are the output archetype names published to the consumer.
var noteKindNames = map[NoteKind]string{
	NoteNormalTap:           "NormalTapNote",
	NoteCriticalTap:         "CriticalTapNote",
	NoteNormalFlick:         "NormalFlickNote",
	NoteCriticalFlick:       "CriticalFlickNote",
	NoteNormalHeadTap:       "NormalHeadTapNote",
	NoteCriticalHeadTap:     "CriticalHeadTapNote",
	NoteNormalTailRelease:   "NormalTailReleaseNote",
	NoteCriticalTailRelease: "CriticalTailReleaseNote",
	NoteNormalTailFlick:     "NormalTailFlickNote",
	NoteCriticalTailFlick:   "CriticalTailFlickNote",
	NoteNormalTick:          "NormalTickNote",
	NoteCriticalTick:        "CriticalTickNote",
	NoteNormalTrace:         "NormalTraceNote",
	NoteCriticalTrace:       "CriticalTraceNote",
	NoteNormalTraceFlick:    "NormalTraceFlickNote",
	NoteCriticalTraceFlick:  "CriticalTraceFlickNote",
	NoteNormalHeadTrace:     "NormalHeadTraceNote",
	NoteCriticalHeadTrace:   "CriticalHeadTraceNote",
	NoteNormalTailTrace:     "NormalTailTraceNote",
	NoteCriticalTailTrace:   "CriticalTailTraceNote",
	NoteDamage:              "DamageNote",
	NoteTransientHiddenTick: "TransientHiddenTickNote",
	NoteAnchor:              "AnchorNote",
}

// String returns the published archetype name for the kind.
func (k NoteKind) String() string {
	if name, ok := noteKindNames[k]; ok {
		return name
	}
	return "UnknownNote"
}

// ConnectorKind is the visual/judgment category of a connector segment:
// the two active (slide body) kinds, or one of the eight guide colors.
type ConnectorKind int

const (
	// ConnectorKindUnset is the sentinel for a not-yet-contributed segment
	// kind on a guide anchor.
	ConnectorKindUnset ConnectorKind = iota
	ConnectorActiveNormal
	ConnectorActiveCritical
	ConnectorGuideNeutral
	ConnectorGuideRed
	ConnectorGuideGreen
	ConnectorGuideBlue
	ConnectorGuideYellow
	ConnectorGuidePurple
	ConnectorGuideCyan
	ConnectorGuideBlack
)

// EaseType selects the interpolation curve of a connector segment.
type EaseType int

const (
	// EaseUnset is the sentinel for a not-yet-contributed ease on a guide
	// anchor.
	EaseUnset EaseType = iota
	EaseOutInQuad
	EaseOutQuad
	EaseLinear
	EaseInQuad
	EaseInOutQuad
)

// FlickDirection is the direction of a flick note.
type FlickDirection int

const (
	DirectionUpLeft FlickDirection = iota
	DirectionUpOmni
	DirectionUpRight
)

// TimescaleEase selects interpolation between timescale changes. The
// extended chart format only produces step changes.
type TimescaleEase int

const (
	TimescaleEaseNone TimescaleEase = iota
	TimescaleEaseLinear
)

// AlphaUnset is the sentinel for a not-yet-contributed segment alpha on a
// guide anchor. Real alphas are always in [0, 1].
const AlphaUnset float64 = -1
