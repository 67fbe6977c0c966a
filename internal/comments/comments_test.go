package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

func TestResolveArraySource(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{
				"id":      1.0,
				"mensaje": "Buen perfil técnico",
				"fecha":   "2025-10-10T08:00:00",
				"autor":   "Ana",
			},
			map[string]interface{}{
				"id":      2.0,
				"mensaje": "Citar a entrevista",
				"fecha":   "2025-10-11T09:00:00",
			},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 2)
	// Most recent first.
	assert.Equal(t, "Citar a entrevista", got[0].Message)
	assert.Equal(t, "Buen perfil técnico", got[1].Message)
	assert.Equal(t, "Ana", got[1].Author)
	assert.Equal(t, "1", got[1].ID)
}

func TestResolveFirstSourceWinsEntirely(t *testing.T) {
	// The first candidate field is a non-empty array; the richer object
	// under "comments" must never be consulted.
	r := record.Record{
		"comentarios": []interface{}{"nota corta"},
		"comments": map[string]interface{}{
			"a": map[string]interface{}{"mensaje": "no debería aparecer"},
			"b": map[string]interface{}{"mensaje": "tampoco"},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 1)
	assert.Equal(t, "nota corta", got[0].Message)
}

func TestResolveFirstSourceWinsEvenWhenUseless(t *testing.T) {
	// An array of blank strings is still the chosen source, even though
	// it normalizes to zero comments.
	r := record.Record{
		"comentarios": []interface{}{"", "   "},
		"comments":    []interface{}{"visible"},
	}

	assert.Empty(t, Resolve(r))
}

func TestResolveStringSource(t *testing.T) {
	got := Resolve(record.Record{"notas": "Llamar el lunes"})
	require.Len(t, got, 1)
	assert.Equal(t, "Llamar el lunes", got[0].Message)
	assert.Equal(t, "c-0", got[0].ID)
}

func TestResolveKeyedMapSource(t *testing.T) {
	r := record.Record{
		"comentarios": map[string]interface{}{
			"b": map[string]interface{}{"mensaje": "segundo"},
			"a": map[string]interface{}{"mensaje": "primero"},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 2)
	// No dates: sorted-key iteration order is preserved.
	assert.Equal(t, "primero", got[0].Message)
	assert.Equal(t, "segundo", got[1].Message)
}

func TestResolveNeverReturnsEmptyMessages(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{"mensaje": "   "},
			map[string]interface{}{"mensaje": "útil"},
			"",
		},
	}

	got := Resolve(r)
	require.Len(t, got, 1)
	assert.Equal(t, "útil", got[0].Message)
}

func TestResolveMessageFallsBackToSubject(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{"asunto": "Seguimiento"},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 1)
	assert.Equal(t, "Seguimiento", got[0].Message)
	assert.Equal(t, "Seguimiento", got[0].Subject)
}

func TestResolveMessageFallsBackToSerialization(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{"puntaje": 5.0},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "puntaje")
}

func TestResolveUndatedSortAfterDatedPreservingOrder(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{"mensaje": "sin fecha A"},
			map[string]interface{}{"mensaje": "con fecha", "fecha": "2025-01-01"},
			map[string]interface{}{"mensaje": "sin fecha B"},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 3)
	assert.Equal(t, "con fecha", got[0].Message)
	assert.Equal(t, "sin fecha A", got[1].Message)
	assert.Equal(t, "sin fecha B", got[2].Message)
}

func TestResolveNoSource(t *testing.T) {
	assert.Empty(t, Resolve(record.Record{}))
	assert.Empty(t, Resolve(record.Record{"comentarios": []interface{}{}}))
	assert.Empty(t, Resolve(record.Record{"comentarios": nil}))
}

func TestResolveAuthorObject(t *testing.T) {
	r := record.Record{
		"comentarios": []interface{}{
			map[string]interface{}{
				"mensaje": "ok",
				"autor":   map[string]interface{}{"nombre": "Carlos Ruiz"},
			},
		},
	}

	got := Resolve(r)
	require.Len(t, got, 1)
	assert.Equal(t, "Carlos Ruiz", got[0].Author)
}
