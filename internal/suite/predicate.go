package suite

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Operation constants for assert evaluation.
const (
	opEquals    = "equals"
	opNotEquals = "not_equals"
	opRegex     = "regex"
	opContains  = "contains"
	opExists    = "exists"
	opLength    = "length"
)

// predicate is a validated assert operation.
type predicate struct {
	operation string
	value     any
}

// newPredicate validates operation-specific value requirements up front so a
// suite fails at parse time, not mid-run.
func newPredicate(operation string, value any) (*predicate, error) {
	p := &predicate{operation: operation, value: value}

	switch operation {
	case opRegex:
		pattern, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("regex assert pattern must be a string, got %T", value)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %v", pattern, err)
		}
	case opContains:
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("contains assert value must be a string, got %T", value)
		}
	case opLength:
		if _, ok := toInt(value); !ok {
			return nil, fmt.Errorf("length assert value must be an integer, got %T", value)
		}
	case opEquals, opNotEquals:
		if value == nil {
			return nil, fmt.Errorf("%s assert requires a value", operation)
		}
	case opExists:
		// no value needed
	default:
		return nil, fmt.Errorf("unknown assert operation: %q", operation)
	}

	return p, nil
}

// evaluate reports whether input satisfies the predicate.
func (p *predicate) evaluate(input any) (bool, error) {
	switch p.operation {
	case opEquals:
		return looseEqual(input, p.value), nil
	case opNotEquals:
		return !looseEqual(input, p.value), nil
	case opRegex:
		re := regexp.MustCompile(p.value.(string)) // validated in newPredicate
		return re.MatchString(asString(input)), nil
	case opContains:
		s, ok := input.(string)
		if !ok {
			return false, fmt.Errorf("contains assert expects string input, got %T", input)
		}
		return strings.Contains(s, p.value.(string)), nil
	case opExists:
		return input != nil, nil
	case opLength:
		want, _ := toInt(p.value)
		got, ok := lengthOf(input)
		if !ok {
			return false, fmt.Errorf("length assert expects array, map, or string input, got %T", input)
		}
		return got == want, nil
	default:
		return false, fmt.Errorf("unsupported assert operation: %q", p.operation)
	}
}

// looseEqual compares values with numeric coercion, since YAML decoding and
// projection produce a mix of int, uint64 and float64.
func looseEqual(a, b any) bool {
	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		return an == bn
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return reflect.ValueOf(v).Len(), true
	default:
		return 0, false
	}
}
