package favorites

import (
	"context"
	"errors"
	"sync"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// ErrNeedsRefetch signals that the local index could not learn the new
// favorite id after an add; the caller should fall back to a full
// records refetch.
var ErrNeedsRefetch = errors.New("favorito agregado pero el id no pudo resolverse; se requiere recarga completa")

// API is the slice of the upstream client the reconciler needs.
type API interface {
	ListFavorites(ctx context.Context) ([]record.Record, error)
	AddFavorite(ctx context.Context, candidateID record.ID) (record.ID, error)
	RemoveFavorite(ctx context.Context, favoriteID record.ID) error
}

// Service owns one view's favorites index. Its lifecycle is tied to the
// view that created it; a new view builds a new service.
type Service struct {
	api API

	mu  sync.Mutex
	idx Index
}

// NewService creates a reconciler with an empty index.
func NewService(api API) *Service {
	return &Service{api: api, idx: Index{}}
}

// Index returns a snapshot copy of the current index for merging.
func (s *Service) Index() Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Index, len(s.idx))
	for k, v := range s.idx {
		out[k] = v
	}
	return out
}

// Reset replaces the index wholesale, typically with one built from a
// freshly fetched favorites collection.
func (s *Service) Reset(idx Index) {
	if idx == nil {
		idx = Index{}
	}
	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()
}

// Rebuild refetches the favorites collection and rebuilds the index.
func (s *Service) Rebuild(ctx context.Context) error {
	entries, err := s.api.ListFavorites(ctx)
	if err != nil {
		return err
	}
	s.Reset(BuildIndex(entries))
	return nil
}

// Add marks a candidate as favorite. The backend call runs first; on
// success the index is patched optimistically. When the response exposes
// no favorite id, the favorites collection is re-queried once; if the
// candidate still cannot be found, ErrNeedsRefetch is returned and the
// caller decides on a full refetch.
func (s *Service) Add(ctx context.Context, candidateID record.ID) error {
	if candidateID.IsZero() {
		return errors.New("candidato sin identificador")
	}

	favoriteID, err := s.api.AddFavorite(ctx, candidateID)
	if err != nil {
		return err
	}
	if !favoriteID.IsZero() {
		s.mu.Lock()
		s.idx.Put(candidateID, favoriteID)
		s.mu.Unlock()
		return nil
	}

	// The add succeeded but the response body had no id. One re-query
	// before giving up.
	if err := s.Rebuild(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	_, ok := s.idx.Lookup(candidateID)
	s.mu.Unlock()
	if !ok {
		return ErrNeedsRefetch
	}
	return nil
}

// Remove clears a candidate's favorite mark. Unknown candidates are a
// no-op: the index already reflects the desired state.
func (s *Service) Remove(ctx context.Context, candidateID record.ID) error {
	s.mu.Lock()
	favoriteID, ok := s.idx.Lookup(candidateID)
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := s.api.RemoveFavorite(ctx, favoriteID); err != nil {
		return err
	}
	s.mu.Lock()
	s.idx.Delete(candidateID)
	s.mu.Unlock()
	return nil
}
