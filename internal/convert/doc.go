// Package convert implements the chart-to-level conversion pipeline.
//
// ARCHITECTURE:
//
// Conversion is a single-threaded, single-pass sequence of builders over an
// immutable indexed view of the raw entity list:
//
//  1. Index construction - archetype buckets plus note/slide-body views
//  2. BPM builder - 1:1 marker mapping
//  3. Timescale builder - per-group chain reconstruction
//  4. Note builder - typed notes, slide connectors, attachment and
//     sim-line resolution
//  5. Guide builder - passive connectors with anchor deduplication
//  6. Orchestration - merge, stable sort by beat, slide linking
//
// Builder order is a dependency order: timescale groups must exist before
// the note and guide builders resolve group references, and all notes must
// exist before any connector resolves its endpoints. Cross references are
// resolved through original-input-index maps that are write-once during
// their owning builder's pass and read-only afterward.
//
// Conversion is all-or-nothing: the first integrity error aborts with no
// partial output. There is no retry concept; the pipeline is pure and
// deterministic, so converting the same chart twice yields structurally
// identical output.
package convert
