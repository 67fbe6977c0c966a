package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID is a canonical identifier derived from a loose id-like value. It is
// either numeric or a non-empty string; the zero value means "no id".
// Index maps must always be keyed by Key(), never by the raw value, so
// that 1 and "1" collide.
type ID struct {
	num     float64
	str     string
	numeric bool
	ok      bool
}

// CoerceID converts a loose value into a canonical ID.
//
//   - finite numbers keep their numeric value
//   - numeric strings become numbers, other strings are kept trimmed
//   - nil, empty strings, NaN, objects and arrays yield the zero ID
func CoerceID(v interface{}) ID {
	switch t := v.(type) {
	case ID:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ID{}
		}
		return ID{num: t, numeric: true, ok: true}
	case int:
		return ID{num: float64(t), numeric: true, ok: true}
	case int64:
		return ID{num: float64(t), numeric: true, ok: true}
	case json.Number:
		return CoerceID(string(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return ID{}
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return ID{num: n, numeric: true, ok: true}
		}
		return ID{str: s, ok: true}
	}
	return ID{}
}

// IsZero reports whether the ID carries no identifier.
func (id ID) IsZero() bool { return !id.ok }

// Key returns the string form used for index-map keys. Numeric ids render
// without a trailing ".0" so they collide with their string spellings.
func (id ID) Key() string {
	if !id.ok {
		return ""
	}
	if id.numeric {
		return trimFloat(id.num)
	}
	return id.str
}

// Equal reports whether two ids identify the same entity.
func (id ID) Equal(other ID) bool {
	return id.ok && other.ok && id.Key() == other.Key()
}

// Value returns the canonical loose value: a float64, a string, or nil.
func (id ID) Value() interface{} {
	if !id.ok {
		return nil
	}
	if id.numeric {
		return id.num
	}
	return id.str
}

func (id ID) String() string { return id.Key() }

// MarshalJSON renders the id as a number, a string, or null.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Value())
}

// UnmarshalJSON accepts whatever the backend sent and coerces it.
func (id *ID) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*id = CoerceID(v)
	return nil
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
