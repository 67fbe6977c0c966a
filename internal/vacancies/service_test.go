package vacancies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

type fakeAPI struct {
	vacancies []record.Record
}

func (f *fakeAPI) ListVacancies(_ context.Context) ([]record.Record, error) {
	return f.vacancies, nil
}

func TestList(t *testing.T) {
	svc := NewService(&fakeAPI{vacancies: []record.Record{
		{"id": 1.0, "titulo": "Backend Developer", "ciudad": "Bogotá", "estado": "Publicada"},
		{"id": 2.0, "title": "Data Analyst"},
	}})

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Backend Developer", views[0].Title)
	assert.Equal(t, "Bogotá", views[0].Location)
	assert.Equal(t, "Data Analyst", views[1].Title)
	assert.Equal(t, record.NoDatePlaceholder, views[1].CreatedAt)
}

func TestMineFiltersByAssignment(t *testing.T) {
	svc := NewService(&fakeAPI{vacancies: []record.Record{
		{"id": 1.0, "titulo": "Mía por email", "rrhh_email": "Ana@x.com"},
		{"id": 2.0, "titulo": "Mía por id", "responsable_id": 7.0},
		{"id": 3.0, "titulo": "De otra persona", "rrhh_email": "otro@x.com"},
		{"id": 4.0, "titulo": "Sin asignación"},
	}})

	views, err := svc.Mine(context.Background(), record.CoerceID(7.0), "ana@x.com")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Mía por email", views[0].Title)
	assert.Equal(t, "Mía por id", views[1].Title)
}
