package applications

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/JavierGuerrero99/talento-hub/internal/favorites"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// ErrStale is returned by Refresh when a newer refresh started while
// this one was in flight. The stale result is discarded, never applied.
var ErrStale = errors.New("resultado descartado: hay una recarga más reciente en curso")

// API is the slice of the upstream client the session needs.
type API interface {
	ListApplications(ctx context.Context, vacancyID record.ID) ([]record.Record, error)
	favorites.API
}

// Session holds one applications-list view's state: the authoritative
// last-fetched snapshot, the favorites reconciler, and a local overlay
// of optimistic patches keyed by slug. The overlay is discarded wholesale
// on every successful full refresh, so local edits can never diverge
// permanently from the backend. Lifecycle is one view: a remount builds
// a new session.
type Session struct {
	api       API
	vacancyID record.ID

	mu         sync.Mutex
	favs       *favorites.Service
	snapshot   []record.Record
	overlay    map[string]record.Record
	startedGen uint64
	appliedGen uint64
}

// NewSession creates the session for one vacancy's applications list.
func NewSession(api API, vacancyID record.ID) *Session {
	return &Session{
		api:       api,
		vacancyID: vacancyID,
		favs:      favorites.NewService(api),
		overlay:   map[string]record.Record{},
	}
}

// Refresh refetches records and favorites concurrently and replaces the
// snapshot. Last update wins: if a newer Refresh started while this one
// was fetching, the fetched result is dropped and ErrStale is returned.
func (s *Session) Refresh(ctx context.Context) ([]Row, error) {
	s.mu.Lock()
	s.startedGen++
	gen := s.startedGen
	s.mu.Unlock()

	var records, favEntries []record.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.api.ListApplications(gctx, s.vacancyID)
		if err != nil {
			return err
		}
		records = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.api.ListFavorites(gctx)
		if err != nil {
			return err
		}
		favEntries = fetched
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.startedGen || gen <= s.appliedGen {
		return nil, ErrStale
	}
	s.appliedGen = gen
	s.snapshot = records
	s.overlay = map[string]record.Record{}
	s.favs.Reset(favorites.BuildIndex(favEntries))
	return s.rowsLocked(), nil
}

// Rows rebuilds the view rows from the current snapshot, overlay and
// favorites index.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *Session) rowsLocked() []Row {
	effective := make([]record.Record, 0, len(s.snapshot))
	for i, r := range s.snapshot {
		if patch, ok := s.overlay[record.Slug(r, i)]; ok {
			merged := record.Clone(r)
			for k, v := range patch {
				merged[k] = v
			}
			effective = append(effective, merged)
			continue
		}
		effective = append(effective, r)
	}
	return BuildRows(effective, s.favs.Index())
}

// ApplyPatch records an optimistic local patch for one application,
// applied on top of the snapshot until the next successful refresh.
// Callers invoke it after the backend accepted the mutation.
func (s *Session) ApplyPatch(slug string, fields record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch, ok := s.overlay[slug]
	if !ok {
		patch = record.Record{}
		s.overlay[slug] = patch
	}
	for k, v := range fields {
		patch[k] = v
	}
}

// AddFavorite marks a candidate favorite through the reconciler; the
// next Rows call reflects it without a full records refetch, except when
// the reconciler reports ErrNeedsRefetch.
func (s *Session) AddFavorite(ctx context.Context, candidateID record.ID) error {
	return s.favs.Add(ctx, candidateID)
}

// RemoveFavorite clears a candidate's favorite mark.
func (s *Session) RemoveFavorite(ctx context.Context, candidateID record.ID) error {
	return s.favs.Remove(ctx, candidateID)
}

// Favorites exposes the reconciler index (read-only use).
func (s *Session) Favorites() favorites.Index {
	return s.favs.Index()
}
