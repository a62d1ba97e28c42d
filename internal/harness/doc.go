// Package harness runs conformance scenarios against the converter.
//
// A scenario is a YAML file describing a raw chart inline plus assertions
// on the converted output. Scenarios double as documentation of conversion
// behavior: each one names the behavior it pins down and can additionally
// be snapshot-compared against a golden canonical JSON file.
//
// Golden files live in testdata/golden and are regenerated with:
//
//	go test ./internal/harness -update
package harness
