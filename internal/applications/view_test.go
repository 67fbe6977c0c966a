package applications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/favorites"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

func TestBuildRowsEndToEnd(t *testing.T) {
	records := []record.Record{
		{
			"id": 10.0,
			"candidato": map[string]interface{}{
				"id":       1.0,
				"nombre":   "Ana",
				"apellido": "García",
				"correo":   "ana@x.com",
			},
			// No direct estado string, only the nested object.
			"estado":            map[string]interface{}{"nombre": "Rechazado"},
			"fecha_postulacion": "2025-10-10",
			"comentarios":       []interface{}{"buen perfil"},
		},
		{
			"id":           11.0,
			"candidato_id": 2.0,
			"nombre":       "Pedro",
		},
	}
	idx := favorites.Index{"1": record.CoerceID("fav-A")}

	rows := BuildRows(records, idx)
	require.Len(t, rows, 2)

	r1 := rows[0]
	assert.Equal(t, "app-10", r1.Slug)
	assert.Equal(t, "1", r1.CandidateID.Key())
	assert.Equal(t, "Ana García", r1.Name)
	assert.Equal(t, "ana@x.com", r1.Email)
	require.NotNil(t, r1.Status.Value)
	assert.Equal(t, "Rechazado", *r1.Status.Value)
	assert.Equal(t, "Rechazado", r1.Status.Label)
	assert.Equal(t, "estado-rechazado", r1.Status.Class)
	assert.Equal(t, "2025-10-10T00:00:00", r1.AppliedAt)
	require.Len(t, r1.Comments, 1)
	assert.True(t, r1.IsFavorite)
	assert.Equal(t, "fav-A", r1.FavoriteID.Key())

	r2 := rows[1]
	assert.Equal(t, "Pedro", r2.Name)
	assert.False(t, r2.IsFavorite)
	assert.True(t, r2.FavoriteID.IsZero())
	assert.Nil(t, r2.Status.Value)
	assert.Equal(t, record.NoDatePlaceholder, r2.AppliedAtDisplay)
}

func TestBuildRowSlugFallsBackToPosition(t *testing.T) {
	rows := BuildRows([]record.Record{{"nombre": "X"}}, favorites.Index{})
	require.Len(t, rows, 1)
	assert.Equal(t, "app-pos-0", rows[0].Slug)
}
