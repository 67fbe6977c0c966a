// Package comments extracts the heterogeneous "comments" collection that
// the legacy backend attaches to an application — sometimes an array,
// sometimes a single object or string, sometimes a keyed map — into a
// normalized, reverse-chronological list.
package comments

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// Comment is a normalized comment record. Message is always non-empty;
// entries that cannot yield a message are dropped during extraction.
type Comment struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	Author    string    `json:"author,omitempty"`
}

// sourceKeys are the comment-bearing fields, probed in order. The first
// field holding a non-empty array, a non-empty string or an object wins
// entirely, even if it later normalizes to zero usable comments.
var sourceKeys = []string{
	"comentarios",
	"comments",
	"comentarios_internos",
	"notas_comentarios",
	"notas",
}

var subjectKeys = []string{"asunto", "subject", "titulo", "title"}

var messageKeys = []string{
	"mensaje",
	"message",
	"comentario",
	"comment",
	"texto",
	"text",
	"contenido",
	"content",
	"descripcion",
	"description",
	"nota",
	"note",
}

var createdAtKeys = []string{
	"fecha",
	"fecha_creacion",
	"created_at",
	"createdAt",
	"fecha_comentario",
	"date",
	"timestamp",
}

var authorKeys = []string{"autor", "author", "creado_por", "created_by", "usuario", "user"}

var authorNameKeys = []string{"nombre", "name", "nombre_completo", "full_name", "email", "correo"}

var commentIDKeys = []string{"id", "comentario_id", "comment_id"}

// undatedSortKey is smaller than any real timestamp, so comments without
// a parseable date sort after all dated ones in the descending order.
const undatedSortKey = math.MinInt64 / 2

// Resolve extracts and orders the comments of an application record,
// most recent first. Undated comments come last, keeping their relative
// original order.
func Resolve(r record.Record) []Comment {
	source := pickSource(r)
	if source == nil {
		return nil
	}

	type keyed struct {
		comment Comment
		sortKey int64
	}
	var entries []keyed

	add := func(pos int, v interface{}) {
		c, ok := normalizeElement(pos, v)
		if !ok {
			return
		}
		key := int64(undatedSortKey)
		if !c.CreatedAt.IsZero() {
			key = c.CreatedAt.UnixMilli()
		}
		entries = append(entries, keyed{comment: c, sortKey: key})
	}

	switch t := source.(type) {
	case []interface{}:
		for i, el := range t {
			add(i, el)
		}
	case map[string]interface{}:
		// Keyed maps iterate in sorted key order for determinism.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			add(i, t[k])
		}
	case string:
		add(0, t)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey > entries[j].sortKey
	})

	out := make([]Comment, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.comment)
	}
	return out
}

// pickSource returns the first comment-bearing field with a usable value.
// Subsequent fields are never consulted.
func pickSource(r record.Record) interface{} {
	for _, key := range sourceKeys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case []interface{}:
			if len(t) > 0 {
				return t
			}
		case string:
			if strings.TrimSpace(t) != "" {
				return t
			}
		case map[string]interface{}:
			return t
		}
	}
	return nil
}

func normalizeElement(pos int, v interface{}) (Comment, bool) {
	switch t := v.(type) {
	case string:
		msg := strings.TrimSpace(t)
		if msg == "" {
			return Comment{}, false
		}
		return Comment{ID: fmt.Sprintf("c-%d", pos), Message: msg}, true
	case map[string]interface{}:
		return normalizeObject(pos, record.Record(t))
	}
	return Comment{}, false
}

func normalizeObject(pos int, r record.Record) (Comment, bool) {
	subject := record.ResolveString(r, subjectKeys...)
	message := record.ResolveString(r, messageKeys...)
	if message == "" {
		message = subject
	}
	if message == "" {
		// Last resort: keep whatever the backend sent, serialized.
		if data, err := json.Marshal(r); err == nil {
			message = strings.TrimSpace(string(data))
		}
	}
	if message == "" || message == "{}" {
		return Comment{}, false
	}

	c := Comment{
		Subject: subject,
		Message: message,
	}

	if id := record.CoerceID(record.Resolve(r, commentIDKeys...)); !id.IsZero() {
		c.ID = id.Key()
	} else {
		c.ID = fmt.Sprintf("c-%d", pos)
	}

	c.CreatedAt = record.NormalizeDate(record.Resolve(r, createdAtKeys...))

	switch author := record.Resolve(r, authorKeys...).(type) {
	case string:
		c.Author = strings.TrimSpace(author)
	case map[string]interface{}:
		c.Author = record.ResolveString(record.Record(author), authorNameKeys...)
	}

	return c, true
}
