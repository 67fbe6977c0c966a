package favorites

import "github.com/JavierGuerrero99/talento-hub/internal/record"

// Annotation keys written by Merge. All embedded alias spellings are
// removed so a record can never keep a stale flag from an earlier pass.
const (
	FlagKey = "es_favorito"
	IDKey   = "favorito_id"
)

// Merge annotates a copy of every record with a consistent favorite
// state. The index always wins; a record's embedded signal is only used
// when the index has no entry for its candidate. Records that neither
// source marks as favorite come out explicitly non-favorite with all
// favorite fields cleared. The input records are never mutated.
func Merge(records []record.Record, idx Index) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		out = append(out, mergeOne(r, idx))
	}
	return out
}

func mergeOne(r record.Record, idx Index) record.Record {
	annotated := record.Clone(r)

	embeddedID := record.CoerceID(record.Resolve(r, embeddedIDKeys...))
	embeddedFlag := false
	for _, key := range embeddedFlagKeys {
		if record.Truthy(r[key]) {
			embeddedFlag = true
			break
		}
	}

	for _, key := range embeddedFlagKeys {
		delete(annotated, key)
	}
	for _, key := range embeddedIDKeys {
		delete(annotated, key)
	}

	if favID, ok := idx.Lookup(record.CandidateID(r)); ok {
		annotated[FlagKey] = true
		annotated[IDKey] = favID.Value()
		return annotated
	}

	if !embeddedID.IsZero() {
		annotated[FlagKey] = true
		annotated[IDKey] = embeddedID.Value()
		return annotated
	}
	if embeddedFlag {
		annotated[FlagKey] = true
		annotated[IDKey] = nil
		return annotated
	}

	annotated[FlagKey] = false
	annotated[IDKey] = nil
	return annotated
}

// State is the favorite state of a merged record, as read back by views.
type State struct {
	FavoriteID record.ID `json:"favorite_id"`
	IsFavorite bool      `json:"is_favorite"`
}

// StateOf reads the favorite annotation from a merged record.
func StateOf(r record.Record) State {
	return State{
		FavoriteID: record.CoerceID(r[IDKey]),
		IsFavorite: record.Truthy(r[FlagKey]),
	}
}
