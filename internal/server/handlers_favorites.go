package server

import (
	"errors"
	"net/http"

	"github.com/JavierGuerrero99/talento-hub/internal/favorites"
)

// handleAddFavorite marks a candidate as favorite. When the backend's
// response exposes no favorite id and a re-query cannot find it either,
// the response tells the client to do a full refetch.
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := pathID(r)
	if id.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	svc := favorites.NewService(client)
	if err := svc.Add(r.Context(), id); err != nil {
		if errors.Is(err, favorites.ErrNeedsRefetch) {
			s.jsonResponse(w, http.StatusOK, map[string]any{
				"is_favorite":   true,
				"needs_refetch": true,
			})
			return
		}
		s.upstreamError(w, r, sess, err)
		return
	}

	resp := map[string]any{"is_favorite": true}
	if favoriteID, ok := svc.Index().Lookup(id); ok {
		resp["favorite_id"] = favoriteID
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRemoveFavorite clears a candidate's favorite mark. The favorite
// entry id comes from a fresh index of the favorites collection.
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	client, sess, err := s.sessionClient(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := pathID(r)
	if id.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	svc := favorites.NewService(client)
	if err := svc.Rebuild(r.Context()); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	if err := svc.Remove(r.Context(), id); err != nil {
		s.upstreamError(w, r, sess, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"is_favorite": false})
}
