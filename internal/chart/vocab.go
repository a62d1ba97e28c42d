package chart

import "github.com/sekaitools/chartconv/internal/level"

// Archetype names with dedicated handling outside the note vocabulary.
const (
	ArchetypeBpmChange      = "#BPM_CHANGE"
	ArchetypeTimescaleGroup = "TimeScaleGroup"
	ArchetypeSimLine        = "SimLine"
	ArchetypeGuide          = "Guide"
)

// Common field names.
const (
	FieldBeat = "#BEAT"
	FieldBPM  = "#BPM"
)

// noteKinds is the closed raw-archetype vocabulary. Several raw archetypes
// fold onto the same role: both hidden archetypes become anchors, attached
// ticks become plain ticks, and the non-directional trace flick becomes a
// normal trace flick.
var noteKinds = map[string]level.NoteKind{
	"NormalTapNote":                 level.NoteNormalTap,
	"CriticalTapNote":               level.NoteCriticalTap,
	"NormalFlickNote":               level.NoteNormalFlick,
	"CriticalFlickNote":             level.NoteCriticalFlick,
	"NormalSlideStartNote":          level.NoteNormalHeadTap,
	"CriticalSlideStartNote":        level.NoteCriticalHeadTap,
	"NormalSlideEndNote":            level.NoteNormalTailRelease,
	"CriticalSlideEndNote":          level.NoteCriticalTailRelease,
	"NormalSlideEndFlickNote":       level.NoteNormalTailFlick,
	"CriticalSlideEndFlickNote":     level.NoteCriticalTailFlick,
	"IgnoredSlideTickNote":          level.NoteTransientHiddenTick,
	"NormalSlideTickNote":           level.NoteNormalTick,
	"CriticalSlideTickNote":         level.NoteCriticalTick,
	"HiddenSlideTickNote":           level.NoteAnchor,
	"NormalAttachedSlideTickNote":   level.NoteNormalTick,
	"CriticalAttachedSlideTickNote": level.NoteCriticalTick,
	"NormalTraceNote":               level.NoteNormalTrace,
	"CriticalTraceNote":             level.NoteCriticalTrace,
	"DamageNote":                    level.NoteDamage,
	"NormalTraceFlickNote":          level.NoteNormalTraceFlick,
	"CriticalTraceFlickNote":        level.NoteCriticalTraceFlick,
	"NonDirectionalTraceFlickNote":  level.NoteNormalTraceFlick,
	"HiddenSlideStartNote":          level.NoteAnchor,
	"NormalTraceSlideStartNote":     level.NoteNormalHeadTrace,
	"CriticalTraceSlideStartNote":   level.NoteCriticalHeadTrace,
	"NormalTraceSlideEndNote":       level.NoteNormalTailTrace,
	"CriticalTraceSlideEndNote":     level.NoteCriticalTailTrace,
}

// activeConnectorKinds maps the two slide-body archetypes to their segment
// kind. Guides are passive and handled separately.
var activeConnectorKinds = map[string]level.ConnectorKind{
	"NormalSlideConnector":   level.ConnectorActiveNormal,
	"CriticalSlideConnector": level.ConnectorActiveCritical,
}

// NoteKindFor maps a raw archetype to its note role. The second result is
// false for archetypes outside the note vocabulary.
func NoteKindFor(archetype string) (level.NoteKind, bool) {
	k, ok := noteKinds[archetype]
	return k, ok
}

// ActiveConnectorKind maps a raw archetype to its active connector kind.
// The second result is false for anything that is not a slide body.
func ActiveConnectorKind(archetype string) (level.ConnectorKind, bool) {
	k, ok := activeConnectorKinds[archetype]
	return k, ok
}
