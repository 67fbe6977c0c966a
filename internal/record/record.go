// Package record provides defensive access to the loosely typed JSON
// records returned by the legacy Talento-Hub backend. Field names, value
// types and container shapes vary between deployments, so every lookup
// goes through ordered candidate-key tables instead of direct access.
package record

import (
	"fmt"
	"strings"
)

// Record is an untyped JSON object from the upstream API. Records are
// never mutated in place; annotation always works on a copy.
type Record map[string]interface{}

// Resolve returns the value of the first key in keys that is present on r
// with a usable value: not nil and, for strings, not empty after trimming.
// Absence is a valid outcome and yields nil.
func Resolve(r Record, keys ...string) interface{} {
	if r == nil {
		return nil
	}
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr {
			if strings.TrimSpace(s) == "" {
				continue
			}
		}
		return v
	}
	return nil
}

// ResolveString resolves like Resolve but renders the result as a trimmed
// string. Numbers are formatted, other non-string values are skipped.
func ResolveString(r Record, keys ...string) string {
	if r == nil {
		return ""
	}
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return trimFloat(t)
		case int:
			return fmt.Sprintf("%d", t)
		case bool:
			return fmt.Sprintf("%t", t)
		}
	}
	return ""
}

// ResolveMap resolves the first key whose value is a JSON object.
func ResolveMap(r Record, keys ...string) Record {
	if r == nil {
		return nil
	}
	for _, key := range keys {
		if m, ok := r[key].(map[string]interface{}); ok {
			return Record(m)
		}
	}
	return nil
}

// Clone returns a shallow copy of r, suitable for annotation.
func Clone(r Record) Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// AsRecord converts a decoded JSON value to a Record when it is an object.
func AsRecord(v interface{}) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, true
	case map[string]interface{}:
		return Record(t), true
	}
	return nil, false
}

// Truthy reports whether a loose value should be treated as an explicit
// affirmative flag: true, a non-zero number, or the strings "true"/"1".
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s == "true" || s == "1"
	}
	return false
}
