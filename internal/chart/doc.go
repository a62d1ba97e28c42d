// Package chart defines the raw extended-chart input schema: loosely typed
// entities tagged with an archetype name and a flat numeric field map, plus
// the closed vocabulary tables that map raw archetypes and field codes onto
// the typed output model.
//
// The package assumes the chart has already been deserialized by a trusted
// upstream parser. It performs no validation beyond what the mapping tables
// need; structural validation of a freshly decoded chart lives in the schema
// package.
package chart
