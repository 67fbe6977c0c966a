package record

import "sort"

// listEnvelopeKeys are the container keys under which list responses have
// been observed to arrive. Preserved as a decision table; order matters.
var listEnvelopeKeys = []string{
	"results",
	"data",
	"postulaciones",
	"applications",
	"items",
	"postulations",
	"vacantes",
	"vacantes_asignadas",
	"assigned_vacancies",
}

// ExtractList unwraps a list-bearing response payload. The payload may be
// a bare array, an object carrying the array under one of the known
// envelope keys, or, as a last resort, an object whose first array-valued
// property (in sorted key order, for determinism) holds the list.
// Non-object elements are dropped.
func ExtractList(payload interface{}) []Record {
	switch t := payload.(type) {
	case []interface{}:
		return toRecords(t)
	case map[string]interface{}:
		for _, key := range listEnvelopeKeys {
			if arr, ok := t[key].([]interface{}); ok {
				return toRecords(arr)
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := t[k].([]interface{}); ok {
				return toRecords(arr)
			}
		}
	}
	return nil
}

func toRecords(items []interface{}) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if r, ok := AsRecord(item); ok {
			out = append(out, r)
		}
	}
	return out
}
