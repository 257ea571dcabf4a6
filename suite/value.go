// Package suite loads and runs the JSON conformance test-suite format: a
// file of the shape {"version": "...", "tests": [{"op":..., "in":[...],
// "out":[...], "tag":...}, ...]} against this module's Go implementation,
// letting the same fixture file validate every language port of the
// algebra.
package suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

type valueKind int

const (
	kindRegion valueKind = iota
	kindInt
	kindFloat
	kindBool
)

// Value models the <Value> union from the suite format: a literal scalar,
// or a tagged constructor ({"Mem": ...} / {"Num": ...}) that builds a
// region.Region.
type Value struct {
	kind   valueKind
	region region.Region
	i      int64
	f      float64
	b      bool
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("suite: empty value")
	}

	switch trimmed[0] {
	case '{':
		var tagged map[string]json.RawMessage
		if err := json.Unmarshal(data, &tagged); err != nil {
			return err
		}
		if raw, ok := tagged["Mem"]; ok {
			return v.buildTagged(raw)
		}
		if raw, ok := tagged["Num"]; ok {
			return v.buildTagged(raw)
		}
		return fmt.Errorf("suite: unrecognized tagged value %s", data)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		v.kind = kindBool
		v.b = b
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		if f == math.Trunc(f) {
			v.kind = kindInt
			v.i = int64(f)
		} else {
			v.kind = kindFloat
			v.f = f
		}
		return nil
	}
}

// buildTagged handles both {"Mem": n}/{"Num": n} (a zero-bit-valued Region
// of length n) and {"Mem": ["bit", ...]}/{"Mem": ["byte", ...]}.
func (v *Value) buildTagged(raw json.RawMessage) error {
	var length int
	if err := json.Unmarshal(raw, &length); err == nil {
		r, err := region.Extend(region.Region{}, length, false)
		if err != nil {
			return err
		}
		v.kind = kindRegion
		v.region = r
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return fmt.Errorf("suite: Mem/Num value neither a length nor a list: %w", err)
	}
	if len(elems) == 0 {
		return fmt.Errorf("suite: Mem/Num list constructor is empty")
	}

	var tag string
	if err := json.Unmarshal(elems[0], &tag); err != nil {
		return fmt.Errorf("suite: Mem/Num list constructor missing a string tag: %w", err)
	}

	switch tag {
	case "bit":
		bits := make([]int, 0, len(elems)-1)
		for _, e := range elems[1:] {
			var b int
			if err := json.Unmarshal(e, &b); err != nil {
				return err
			}
			bits = append(bits, b)
		}
		r, err := codec.FromBitList(bits)
		if err != nil {
			return err
		}
		v.kind = kindRegion
		v.region = r
		return nil
	case "byte":
		raw := make([]byte, 0, len(elems)-1)
		for _, e := range elems[1:] {
			var n int
			if err := json.Unmarshal(e, &n); err != nil {
				return err
			}
			raw = append(raw, byte(n))
		}
		r, err := codec.FromBytes(raw)
		if err != nil {
			return err
		}
		v.kind = kindRegion
		v.region = r
		return nil
	default:
		return fmt.Errorf("suite: unrecognized Mem/Num constructor tag %q", tag)
	}
}

func (v Value) raw() any {
	switch v.kind {
	case kindRegion:
		return v.region
	case kindInt:
		return int(v.i)
	case kindFloat:
		return v.f
	case kindBool:
		return v.b
	default:
		return nil
	}
}
