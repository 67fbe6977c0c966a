// Package favorites reconciles a collection's embedded "favorited" flags
// against the separately fetched favorites index, and keeps that index
// consistent across optimistic add/remove actions.
package favorites

import "github.com/JavierGuerrero99/talento-hub/internal/record"

// Index maps a candidate id (string key form) to its favorite-entry id.
// Keys always come from record.ID.Key so numeric and string spellings of
// the same id collide.
type Index map[string]record.ID

// favoriteEntryIDKeys locate the favorite entry's own id. When none is
// present, the candidate id doubles as the favorite id.
var favoriteEntryIDKeys = []string{
	"favorito_id",
	"favorite_id",
	"id_favorito",
	"fav_id",
	"id",
}

// candidateContainerKeys locate a nested candidate object inside a
// favorites entry.
var candidateContainerKeys = []string{
	"candidato",
	"candidate",
	"postulante",
	"postulacion",
	"application",
}

// candidateRefKeys locate the candidate id on a flat favorites entry.
// The bare "id" is deliberately absent: on an entry it names the
// favorite itself, not the candidate.
var candidateRefKeys = []string{
	"candidato_id",
	"candidate_id",
	"postulante_id",
	"usuario_id",
	"user_id",
}

// embeddedFlagKeys are the boolean favorite signals a record may carry.
var embeddedFlagKeys = []string{
	"es_favorito",
	"is_favorite",
	"favorito",
	"favorite",
}

// embeddedIDKeys are the favorite-id fields a record may carry directly.
var embeddedIDKeys = []string{
	"favorito_id",
	"favorite_id",
	"fav_id",
}

// BuildIndex builds the candidate→favorite index from the raw favorites
// collection. Entries whose candidate id cannot be resolved are skipped.
func BuildIndex(entries []record.Record) Index {
	idx := make(Index, len(entries))
	for _, entry := range entries {
		candidateID := entryCandidateID(entry)
		if candidateID.IsZero() {
			continue
		}
		favoriteID := record.CoerceID(record.Resolve(entry, favoriteEntryIDKeys...))
		if favoriteID.IsZero() {
			favoriteID = candidateID
		}
		idx[candidateID.Key()] = favoriteID
	}
	return idx
}

// entryCandidateID resolves which candidate a favorites entry points at,
// preferring a nested candidate object over flat reference fields.
func entryCandidateID(entry record.Record) record.ID {
	if ref := record.ResolveMap(entry, candidateContainerKeys...); ref != nil {
		if id := record.CandidateID(ref); !id.IsZero() {
			return id
		}
	}
	return record.CoerceID(record.Resolve(entry, candidateRefKeys...))
}

// Lookup returns the favorite id for a candidate, if indexed.
func (idx Index) Lookup(candidateID record.ID) (record.ID, bool) {
	if candidateID.IsZero() {
		return record.ID{}, false
	}
	fav, ok := idx[candidateID.Key()]
	return fav, ok
}

// Put registers a favorite id for a candidate.
func (idx Index) Put(candidateID, favoriteID record.ID) {
	if candidateID.IsZero() {
		return
	}
	if favoriteID.IsZero() {
		favoriteID = candidateID
	}
	idx[candidateID.Key()] = favoriteID
}

// Delete removes a candidate from the index.
func (idx Index) Delete(candidateID record.ID) {
	if candidateID.IsZero() {
		return
	}
	delete(idx, candidateID.Key())
}
