package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"church/interpreter-go/pkg/church"
	"church/interpreter-go/pkg/runtime"
)

// DecodeMode selects how an opaque result is turned into a host value.
type DecodeMode string

const (
	DecodeRaw         DecodeMode = "raw"
	DecodeNumeral     DecodeMode = "numeral"
	DecodeBool        DecodeMode = "bool"
	DecodeInteger     DecodeMode = "integer"
	DecodeText        DecodeMode = "text"
	DecodeNumeralList DecodeMode = "numeral-list"
	DecodeIntegerList DecodeMode = "integer-list"
	DecodeNumeralPair DecodeMode = "numeral-pair"
)

var decodeModes = []DecodeMode{
	DecodeRaw,
	DecodeNumeral,
	DecodeBool,
	DecodeInteger,
	DecodeText,
	DecodeNumeralList,
	DecodeIntegerList,
	DecodeNumeralPair,
}

// ParseDecodeMode validates a mode name. The empty string means raw.
func ParseDecodeMode(name string) (DecodeMode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DecodeRaw, nil
	}
	for _, mode := range decodeModes {
		if string(mode) == name {
			return mode, nil
		}
	}
	known := make([]string, len(decodeModes))
	for i, mode := range decodeModes {
		known[i] = string(mode)
	}
	return "", fmt.Errorf("unknown decode mode %q (expected one of %s)", name, strings.Join(known, ", "))
}

// NumeralPair is the decoded form of a pair of numerals.
type NumeralPair [2]int64

// Decode observes v according to mode. The result is an int64, bool,
// string, []int64, NumeralPair, or the runtime.Value itself for raw.
func Decode(v runtime.Value, mode DecodeMode) (any, error) {
	switch mode {
	case DecodeRaw, "":
		return v, nil
	case DecodeNumeral:
		return church.Decode(v)
	case DecodeBool:
		return church.DecodeBool(v)
	case DecodeInteger:
		return nativeInteger(v)
	case DecodeText:
		text, ok := v.(runtime.TextValue)
		if !ok {
			return nil, runtime.InvalidArgument("decode", "expected text, got %s", runtime.Describe(v))
		}
		return text.Val, nil
	case DecodeNumeralList:
		return decodeList(v, church.Decode)
	case DecodeIntegerList:
		return decodeList(v, nativeInteger)
	case DecodeNumeralPair:
		first, err := church.First(v)
		if err != nil {
			return nil, err
		}
		second, err := church.Second(v)
		if err != nil {
			return nil, err
		}
		a, err := church.Decode(first)
		if err != nil {
			return nil, err
		}
		b, err := church.Decode(second)
		if err != nil {
			return nil, err
		}
		return NumeralPair{a, b}, nil
	default:
		return nil, fmt.Errorf("unknown decode mode %q", mode)
	}
}

// Render decodes v and stringifies the result.
func Render(v runtime.Value, mode DecodeMode) (string, error) {
	decoded, err := Decode(v, mode)
	if err != nil {
		return "", err
	}
	return Stringify(decoded), nil
}

// Stringify formats a decoded value: [1, 2] for lists, (1, 2) for pairs.
func Stringify(decoded any) string {
	switch v := decoded.(type) {
	case nil:
		return "nil"
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case []int64:
		return "[" + joinInts(v) + "]"
	case NumeralPair:
		return "(" + joinInts(v[:]) + ")"
	case runtime.Value:
		return runtime.Describe(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func nativeInteger(v runtime.Value) (int64, error) {
	n, ok := v.(runtime.IntegerValue)
	if !ok {
		return 0, runtime.InvalidArgument("decode", "expected integer, got %s", runtime.Describe(v))
	}
	return n.Val, nil
}

func decodeList(list runtime.Value, elem func(runtime.Value) (int64, error)) ([]int64, error) {
	values, err := church.ToSlice(list)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(values))
	for _, v := range values {
		n, err := elem(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}
