package payload

import (
	"errors"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Map is an unconstrained, object-shaped payload as decoded from JSON or YAML.
type Map map[string]any

// Lookup resolves a dotted path such as "profile.email".
// It reports false when any segment is missing or not an object.
func (m Map) Lookup(path string) (any, bool) {
	var cur any = m
	for key := range strings.SplitSeq(path, ".") {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path. ok is false when the value is absent or not a string.
func (m Map) String(path string) (value string, ok bool) {
	v, found := m.Lookup(path)
	if !found {
		return "", false
	}
	value, ok = v.(string)
	return value, ok
}

// Has reports whether path resolves to a non-nil value.
func (m Map) Has(path string) bool {
	v, ok := m.Lookup(path)
	return ok && v != nil
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case Map:
		return obj, true
	case map[string]any:
		return obj, true
	default:
		return nil, false
	}
}

// Decode converts m into T using `mapstructure` struct tags.
// Scalars are converted weakly (e.g. 42 into "42"); unknown keys are ignored.
func Decode[T any](m Map) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(map[string]any(m)); err != nil {
		var zero T
		return zero, errors.Join(ErrDecode, err)
	}
	return out, nil
}
