package applications

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// fakeAPI serves scripted applications and favorites; listGate, when
// set, blocks ListApplications until released so tests can interleave
// two refreshes.
type fakeAPI struct {
	mu         sync.Mutex
	records    []record.Record
	favs       []record.Record
	addResult  record.ID
	listGate   chan struct{}
	listCalls  int
	favsCalls  int
}

func (f *fakeAPI) ListApplications(_ context.Context, _ record.ID) ([]record.Record, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.listGate
	recs := f.records
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return recs, nil
}

func (f *fakeAPI) ListFavorites(_ context.Context) ([]record.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favsCalls++
	return f.favs, nil
}

func (f *fakeAPI) AddFavorite(_ context.Context, _ record.ID) (record.ID, error) {
	return f.addResult, nil
}

func (f *fakeAPI) RemoveFavorite(_ context.Context, _ record.ID) error {
	return nil
}

func (f *fakeAPI) set(records, favs []record.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = records
	f.favs = favs
}

func TestRefreshMergesFavorites(t *testing.T) {
	api := &fakeAPI{}
	api.set(
		[]record.Record{{"id": 1.0, "candidato_id": 1.0}, {"id": 2.0, "candidato_id": 2.0}},
		[]record.Record{{"id": "fav-A", "candidato_id": 1.0}},
	)
	s := NewSession(api, record.CoerceID(3.0))

	rows, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsFavorite)
	assert.Equal(t, "fav-A", rows[0].FavoriteID.Key())
	assert.False(t, rows[1].IsFavorite)
}

func TestRefreshStaleResultDiscarded(t *testing.T) {
	api := &fakeAPI{}
	gate := make(chan struct{})
	api.listGate = gate
	api.set([]record.Record{{"id": 1.0, "nombre": "viejo"}}, nil)

	s := NewSession(api, record.CoerceID(3.0))

	slowDone := make(chan error, 1)
	go func() {
		_, err := s.Refresh(context.Background())
		slowDone <- err
	}()

	// Wait until the slow refresh is in flight, then run a newer one.
	for {
		api.mu.Lock()
		started := api.listCalls > 0
		api.mu.Unlock()
		if started {
			break
		}
		runtime.Gosched()
	}

	api.mu.Lock()
	api.listGate = nil
	api.records = []record.Record{{"id": 2.0, "nombre": "nuevo"}}
	api.mu.Unlock()

	rows, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "app-2", rows[0].Slug)

	// Release the older request; its result must be discarded.
	close(gate)
	assert.ErrorIs(t, <-slowDone, ErrStale)

	final := s.Rows()
	require.Len(t, final, 1)
	assert.Equal(t, "app-2", final[0].Slug, "stale refresh overwrote the newer snapshot")
}

func TestApplyPatchOverlaysUntilNextRefresh(t *testing.T) {
	api := &fakeAPI{}
	api.set([]record.Record{{"id": 1.0, "estado": "Postulado"}}, nil)
	s := NewSession(api, record.CoerceID(9.0))

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	s.ApplyPatch("app-1", record.Record{"estado": "Entrevista"})

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Entrevista", rows[0].Status.Label)

	// A successful full refresh discards the overlay wholesale.
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)
	rows = s.Rows()
	assert.Equal(t, "Postulado", rows[0].Status.Label)
}

func TestAddFavoriteRequeryScenario(t *testing.T) {
	// Toggling favorite on candidate 42 where the add call returns no
	// id: the session re-queries favorites, finds 42 -> fv-9, and marks
	// the row without any records refetch.
	api := &fakeAPI{}
	api.set(
		[]record.Record{{"id": 1.0, "candidato_id": 42.0}},
		nil,
	)
	s := NewSession(api, record.CoerceID(3.0))

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	listCallsAfterRefresh := api.listCalls

	api.set(api.records, []record.Record{{"id": "fv-9", "candidato_id": 42.0}})
	require.NoError(t, s.AddFavorite(context.Background(), record.CoerceID(42.0)))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsFavorite)
	assert.Equal(t, "fv-9", rows[0].FavoriteID.Key())
	assert.Equal(t, listCallsAfterRefresh, api.listCalls, "no full records refetch")
}

func TestRemoveFavoriteClearsRow(t *testing.T) {
	api := &fakeAPI{}
	api.set(
		[]record.Record{{"id": 1.0, "candidato_id": 42.0}},
		[]record.Record{{"id": "fv-9", "candidato_id": 42.0}},
	)
	s := NewSession(api, record.CoerceID(3.0))

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.True(t, s.Rows()[0].IsFavorite)

	require.NoError(t, s.RemoveFavorite(context.Background(), record.CoerceID(42.0)))
	row := s.Rows()[0]
	assert.False(t, row.IsFavorite)
	assert.True(t, row.FavoriteID.IsZero())
}
