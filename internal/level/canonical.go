package level

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces a deterministic JSON encoding of an exported
// level, suitable for content hashing and golden-file comparison.
//
// Properties:
//  1. Object keys emitted in sorted byte order (all published field names
//     are ASCII, so byte order and code point order coincide)
//  2. Strings NFC normalized before encoding
//  3. Floats formatted with the shortest representation that round-trips;
//     negative zero collapses to zero
//  4. No insignificant whitespace, no HTML escaping
//
// Two structurally identical levels always canonicalize to identical bytes.
func MarshalCanonical(l ExportedLevel) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"bgm_offset":`)
	if err := writeCanonicalFloat(&buf, l.BGMOffset); err != nil {
		return nil, err
	}
	buf.WriteString(`,"entities":[`)
	for i, e := range l.Entities {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalEntity(&buf, e); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

func writeCanonicalEntity(buf *bytes.Buffer, e ExportedEntity) error {
	buf.WriteString(`{"archetype":`)
	writeCanonicalString(buf, e.Archetype)
	buf.WriteString(`,"data":{`)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeCanonicalString(buf, k)
		buf.WriteByte(':')
		if err := writeCanonicalFloat(buf, e.Data[k]); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
	}

	buf.WriteString("}}")
	return nil
}

// writeCanonicalString writes an NFC-normalized JSON string without HTML
// escaping. Archetype and field names are plain ASCII in practice, but the
// encoder handles the full range anyway.
func writeCanonicalString(buf *bytes.Buffer, s string) {
	s = norm.NFC.String(s)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

func writeCanonicalFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite value %v cannot be canonicalized", f)
	}
	if f == 0 {
		// Collapse -0 so that equal values encode identically.
		f = 0
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}
