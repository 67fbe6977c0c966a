// Package status maps the raw, loosely spelled application status coming
// from the legacy backend to a canonical view: the raw value, a display
// label and a presentation class.
package status

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// View is the canonical presentation of an application status. Label is
// always derived from Value when present, never set independently.
type View struct {
	Value *string `json:"value"`
	Label string  `json:"label"`
	Class string  `json:"class_name"`
}

// NoStatusLabel is the label for applications without a resolvable status.
const NoStatusLabel = "Sin estado"

// defaultClass is the style bucket for unknown or absent statuses.
const defaultClass = "estado-pendiente"

// statusFieldKeys are probed in order on the application record.
var statusFieldKeys = []string{
	"estado",
	"estado_postulacion",
	"status",
	"resultado",
	"decision",
}

// nestedStatusKeys are probed when a status field holds an object.
var nestedStatusKeys = []string{
	"nombre",
	"name",
	"label",
	"estado",
	"value",
	"status",
}

// classByStatus maps the accent-stripped, lowercased status text to a
// presentation class. Five known buckets; anything else falls into the
// default pending bucket.
var classByStatus = map[string]string{
	"postulado": "estado-postulado",
	"enviada":   "estado-postulado",
	"aplicado":  "estado-postulado",
	"submitted": "estado-postulado",

	"en revision": "estado-revision",
	"revision":    "estado-revision",
	"en proceso":  "estado-revision",
	"in review":   "estado-revision",

	"rechazado":  "estado-rechazado",
	"descartado": "estado-rechazado",
	"rejected":   "estado-rechazado",

	"entrevista":            "estado-entrevista",
	"citado a entrevista":   "estado-entrevista",
	"entrevista programada": "estado-entrevista",
	"interview":             "estado-entrevista",

	"contratado":   "estado-contratado",
	"seleccionado": "estado-contratado",
	"aceptado":     "estado-contratado",
	"hired":        "estado-contratado",
}

// Resolve scans the record for a status and builds its view. The lookup
// key strips diacritics and casing, but the label keeps the original
// spelling with underscores replaced by spaces.
func Resolve(r record.Record) View {
	raw := rawStatus(r)
	if raw == "" {
		return View{Label: NoStatusLabel, Class: defaultClass}
	}

	label := strings.ReplaceAll(raw, "_", " ")
	class, ok := classByStatus[NormalizeKey(label)]
	if !ok {
		class = defaultClass
	}
	return View{Value: &raw, Label: label, Class: class}
}

// rawStatus finds the first usable status text: a non-empty string field,
// or a non-empty string inside a nested status object. Scan stops at the
// first hit.
func rawStatus(r record.Record) string {
	for _, key := range statusFieldKeys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case map[string]interface{}:
			if s := record.ResolveString(record.Record(t), nestedStatusKeys...); s != "" {
				return s
			}
		}
	}
	return ""
}

// NormalizeKey lowercases and strips diacritics for table lookups, so
// "Rechazado", "RECHAZADO" and "rechazádo" share one bucket.
func NormalizeKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
