// Package level defines the output entity model for converted charts.
//
// This package contains type definitions, the export step, and canonical
// serialization only. All other internal packages import level; level imports
// nothing internal. This keeps the entity model the foundational layer with
// no circular dependencies.
//
// Entities are linked by plain Go pointers. A reference is non-owning: the
// owning container is always the entity slice in LevelData. References are
// resolved during conversion in strict builder-dependency order (groups,
// then notes, then connectors, then guides), so no forward reference ever
// dangles by the time an entity is placed in the output.
//
// Attribute sentinels: ConnectorKindUnset, EaseUnset, and AlphaUnset mark
// attributes that have not been contributed yet. They only appear on guide
// anchors mid-construction; a finished LevelData never contains them.
package level
