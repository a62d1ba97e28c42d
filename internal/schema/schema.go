// Package schema validates freshly decoded charts against an embedded CUE
// schema before they reach the converter.
//
// The converter itself assumes well-formed input; this package is the gate
// for input that arrives from outside the process (the CLI runs it before
// conversion). Validation is structural only - archetype vocabulary and
// cross-reference integrity stay with the converter, which reports them as
// integrity errors.
package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/sekaitools/chartconv/internal/chart"
)

//go:embed chart.cue
var chartSchema string

// Validator checks raw charts against the embedded schema. The schema is
// compiled once at construction; Validate is cheap afterwards.
type Validator struct {
	schema cue.Value
}

// NewValidator compiles the embedded schema. An error here means the
// embedded schema itself is broken, which is a build defect, but it is
// returned rather than panicking so callers can surface it.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(chartSchema, cue.Filename("chart.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile chart schema: %w", err)
	}
	schema := v.LookupPath(cue.ParsePath("#Chart"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Chart: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate reports whether the chart satisfies the structural schema.
// The returned error carries every violation CUE found, not just the first.
func (v *Validator) Validate(data chart.LevelData) error {
	val := v.schema.Context().Encode(data)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode chart: %w", err)
	}
	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("chart failed schema validation: %s", cueerrors.Details(err, nil))
	}
	return nil
}
