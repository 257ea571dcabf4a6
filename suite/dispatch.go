package suite

import (
	"fmt"
	"math/big"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/memerr"
	"github.com/tidbytes/tidbytes/region"
)

type opFunc func(args []any) ([]any, error)

// Dispatch maps an operation name from spec §4.B-E (meta/transform/
// read-write/size operations) or a codec name from §4.F to the
// corresponding exported Go function, invokes it with args unpacked
// positionally, and returns its outputs as a slice for comparison.
func Dispatch(op string, args []any) ([]any, error) {
	fn, ok := table[op]
	if !ok {
		return nil, fmt.Errorf("suite: unknown operation %q", op)
	}
	return fn(args)
}

func asRegion(v any) region.Region { return v.(region.Region) }
func asInt(v any) int              { return v.(int) }
func asBool(v any) bool            { return v.(bool) }

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		panic(fmt.Sprintf("suite: expected float, got %T", v))
	}
}

func asIntSlice(v any) []int {
	switch t := v.(type) {
	case []int:
		return t
	default:
		panic(fmt.Sprintf("suite: expected []int, got %T", v))
	}
}

// checkedU8/16/32/64 and checkedI8/16/32/64 range-check a suite case's raw
// JSON int argument against the target host width before narrowing it,
// rather than letting a bare Go conversion wrap an out-of-range or negative
// value: a suite case that feeds e.g. -1 to from_numeric_u8 is exercising
// memerr.ErrNumericRangeError, not asking for 255.
func checkedU8(v int) (uint8, error) {
	if v < 0 || v > 0xFF {
		return 0, memerr.NumericRange("value %d out of range 0..255", v)
	}
	return uint8(v), nil
}

func checkedU16(v int) (uint16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, memerr.NumericRange("value %d out of range 0..65535", v)
	}
	return uint16(v), nil
}

func checkedU32(v int) (uint32, error) {
	if v < 0 || v > 0xFFFFFFFF {
		return 0, memerr.NumericRange("value %d out of range 0..4294967295", v)
	}
	return uint32(v), nil
}

func checkedU64(v int) (uint64, error) {
	if v < 0 {
		return 0, memerr.NumericRange("value %d out of range 0..18446744073709551615", v)
	}
	return uint64(v), nil
}

func checkedI8(v int) (int8, error) {
	if v < -128 || v > 127 {
		return 0, memerr.NumericRange("value %d out of range -128..127", v)
	}
	return int8(v), nil
}

func checkedI16(v int) (int16, error) {
	if v < -32768 || v > 32767 {
		return 0, memerr.NumericRange("value %d out of range -32768..32767", v)
	}
	return int16(v), nil
}

func checkedI32(v int) (int32, error) {
	if v < -2147483648 || v > 2147483647 {
		return 0, memerr.NumericRange("value %d out of range -2147483648..2147483647", v)
	}
	return int32(v), nil
}

func asBigInt(v any) *big.Int {
	switch t := v.(type) {
	case *big.Int:
		return t
	case int:
		return big.NewInt(int64(t))
	default:
		panic(fmt.Sprintf("suite: expected big integer, got %T", v))
	}
}

// one/two wrap a single/double Go return plus trailing error into the
// []any, error shape Dispatch expects.
func one(v any, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	return []any{v}, nil
}

var table = map[string]opFunc{
	"bit_length": func(a []any) ([]any, error) {
		return []any{region.BitLength(asRegion(a[0]))}, nil
	},
	"meta_op_bit_length": func(a []any) ([]any, error) {
		return []any{region.BitLength(asRegion(a[0]))}, nil
	},
	"byte_length": func(a []any) ([]any, error) {
		return []any{region.ByteLength(asRegion(a[0]))}, nil
	},
	"meta_op_byte_length": func(a []any) ([]any, error) {
		return []any{region.ByteLength(asRegion(a[0]))}, nil
	},
	"iterate_logical_bits": func(a []any) ([]any, error) {
		bits := make([]int, 0)
		for b := range region.IterateLogicalBits(asRegion(a[0])) {
			bits = append(bits, b)
		}
		return []any{bits}, nil
	},

	"op_identity":      func(a []any) ([]any, error) { return one(region.Identity(asRegion(a[0])), nil) },
	"op_reverse_bits":  func(a []any) ([]any, error) { return one(region.ReverseBits(asRegion(a[0])), nil) },
	"op_reverse_bytes": func(a []any) ([]any, error) { return one(region.ReverseBytes(asRegion(a[0])), nil) },
	"op_reverse":       func(a []any) ([]any, error) { return one(region.Reverse(asRegion(a[0])), nil) },

	"op_get_bits": func(a []any) ([]any, error) {
		return one(region.GetBits(asRegion(a[0]), asInt(a[1]), asInt(a[2])))
	},
	"op_get_bit": func(a []any) ([]any, error) {
		return one(region.GetBit(asRegion(a[0]), asInt(a[1])))
	},
	"op_get_byte": func(a []any) ([]any, error) {
		return one(region.GetByte(asRegion(a[0]), asInt(a[1])))
	},
	"op_get_bytes": func(a []any) ([]any, error) {
		return one(region.GetBytes(asRegion(a[0]), asInt(a[1]), asInt(a[2])))
	},
	"op_set_bits": func(a []any) ([]any, error) {
		return one(region.SetBits(asRegion(a[0]), asInt(a[1]), asRegion(a[2])))
	},
	"op_set_bit": func(a []any) ([]any, error) {
		return one(region.SetBit(asRegion(a[0]), asInt(a[1]), asRegion(a[2])))
	},
	"op_set_byte": func(a []any) ([]any, error) {
		return one(region.SetByte(asRegion(a[0]), asInt(a[1]), asRegion(a[2])))
	},
	"op_set_bytes": func(a []any) ([]any, error) {
		return one(region.SetBytes(asRegion(a[0]), asInt(a[1]), asRegion(a[2])))
	},

	"op_truncate": func(a []any) ([]any, error) {
		return one(region.Truncate(asRegion(a[0]), asInt(a[1])))
	},
	"op_extend": func(a []any) ([]any, error) {
		return one(region.Extend(asRegion(a[0]), asInt(a[1]), asBool(a[2])))
	},
	"op_ensure_bit_length": func(a []any) ([]any, error) {
		return one(region.EnsureBitLength(asRegion(a[0]), asInt(a[1]), asBool(a[2])))
	},
	"op_ensure_byte_length": func(a []any) ([]any, error) {
		return one(region.EnsureByteLength(asRegion(a[0]), asInt(a[1]), asBool(a[2])))
	},
	"op_concatenate": func(a []any) ([]any, error) {
		return []any{region.Concatenate(asRegion(a[0]), asRegion(a[1]))}, nil
	},

	"from_bit_list": func(a []any) ([]any, error) {
		return one(codec.FromBitList(asIntSlice(a[0])))
	},
	"into_bit_list": func(a []any) ([]any, error) {
		return []any{codec.IntoBitList(asRegion(a[0]))}, nil
	},
	"from_byte_list": func(a []any) ([]any, error) {
		groups := a[0].([][]int)
		return one(codec.FromByteList(groups, asInt(a[1])))
	},
	"from_bytes": func(a []any) ([]any, error) {
		bytes := make([]byte, len(asIntSlice(a[0])))
		for i, v := range asIntSlice(a[0]) {
			bytes[i] = byte(v)
		}
		return one(codec.FromBytes(bytes))
	},
	"into_bytes": func(a []any) ([]any, error) {
		b, err := codec.IntoBytes(asRegion(a[0]))
		if err != nil {
			return nil, err
		}
		out := make([]int, len(b))
		for i, v := range b {
			out[i] = int(v)
		}
		return []any{out}, nil
	},
	"from_ascii": func(a []any) ([]any, error) { return one(codec.FromASCII(a[0].(string))) },
	"into_ascii": func(a []any) ([]any, error) { return one(codec.IntoASCII(asRegion(a[0]))) },
	"from_utf8":  func(a []any) ([]any, error) { return one(codec.FromUTF8(a[0].(string))) },
	"into_utf8":  func(a []any) ([]any, error) { return one(codec.IntoUTF8(asRegion(a[0]))) },
	"from_bool":  func(a []any) ([]any, error) { return one(codec.FromBool(asBool(a[0]))) },
	"into_bool":  func(a []any) ([]any, error) { return one(codec.IntoBool(asRegion(a[0]))) },

	"from_numeric_big_integer": func(a []any) ([]any, error) {
		return one(codec.FromNumericBigInteger(asBigInt(a[0]), asInt(a[1])))
	},
	"into_numeric_big_integer": func(a []any) ([]any, error) {
		return []any{codec.IntoNumericBigInteger(asRegion(a[0]), asBool(a[1]))}, nil
	},

	"from_numeric_u8": func(a []any) ([]any, error) {
		v, err := checkedU8(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericU8(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_u8": func(a []any) ([]any, error) {
		return one(codec.IntoNumericU8(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_u16": func(a []any) ([]any, error) {
		v, err := checkedU16(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericU16(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_u16": func(a []any) ([]any, error) {
		return one(codec.IntoNumericU16(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_u32": func(a []any) ([]any, error) {
		v, err := checkedU32(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericU32(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_u32": func(a []any) ([]any, error) {
		return one(codec.IntoNumericU32(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_u64": func(a []any) ([]any, error) {
		v, err := checkedU64(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericU64(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_u64": func(a []any) ([]any, error) {
		return one(codec.IntoNumericU64(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_i8": func(a []any) ([]any, error) {
		v, err := checkedI8(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericI8(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_i8": func(a []any) ([]any, error) {
		return one(codec.IntoNumericI8(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_i16": func(a []any) ([]any, error) {
		v, err := checkedI16(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericI16(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_i16": func(a []any) ([]any, error) {
		return one(codec.IntoNumericI16(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_i32": func(a []any) ([]any, error) {
		v, err := checkedI32(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNumericI32(v, asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_i32": func(a []any) ([]any, error) {
		return one(codec.IntoNumericI32(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_i64": func(a []any) ([]any, error) {
		return one(codec.FromNumericI64(int64(asInt(a[0])), asInt(a[1]), asBool(a[2])))
	},
	"into_numeric_i64": func(a []any) ([]any, error) {
		return one(codec.IntoNumericI64(asRegion(a[0]), asBool(a[1])))
	},

	"from_numeric_f32": func(a []any) ([]any, error) {
		return one(codec.FromNumericF32(float32(asFloat(a[0])), asBool(a[1])))
	},
	"into_numeric_f32": func(a []any) ([]any, error) {
		return one(codec.IntoNumericF32(asRegion(a[0]), asBool(a[1])))
	},
	"from_numeric_f64": func(a []any) ([]any, error) {
		return one(codec.FromNumericF64(asFloat(a[0]), asBool(a[1])))
	},
	"into_numeric_f64": func(a []any) ([]any, error) {
		return one(codec.IntoNumericF64(asRegion(a[0]), asBool(a[1])))
	},
	"from_natural_f32": func(a []any) ([]any, error) { return one(codec.FromNaturalF32(float32(asFloat(a[0])))) },
	"from_natural_f64": func(a []any) ([]any, error) { return one(codec.FromNaturalF64(asFloat(a[0]))) },

	"from_natural_u8": func(a []any) ([]any, error) {
		v, err := checkedU8(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalU8(v, asInt(a[1])))
	},
	"from_natural_u16": func(a []any) ([]any, error) {
		v, err := checkedU16(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalU16(v, asInt(a[1])))
	},
	"from_natural_u32": func(a []any) ([]any, error) {
		v, err := checkedU32(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalU32(v, asInt(a[1])))
	},
	"from_natural_u64": func(a []any) ([]any, error) {
		v, err := checkedU64(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalU64(v, asInt(a[1])))
	},
	"from_natural_i8": func(a []any) ([]any, error) {
		v, err := checkedI8(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalI8(v, asInt(a[1])))
	},
	"from_natural_i16": func(a []any) ([]any, error) {
		v, err := checkedI16(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalI16(v, asInt(a[1])))
	},
	"from_natural_i32": func(a []any) ([]any, error) {
		v, err := checkedI32(asInt(a[0]))
		if err != nil {
			return nil, err
		}
		return one(codec.FromNaturalI32(v, asInt(a[1])))
	},
	"from_natural_i64": func(a []any) ([]any, error) {
		return one(codec.FromNaturalI64(int64(asInt(a[0])), asInt(a[1])))
	},

	"from_natural_big_integer": func(a []any) ([]any, error) {
		return one(codec.FromNaturalBigInteger(asBigInt(a[0]), asInt(a[1])))
	},
	"into_natural_big_integer": func(a []any) ([]any, error) {
		return []any{codec.IntoNaturalBigInteger(asRegion(a[0]), asBool(a[1]))}, nil
	},
}
