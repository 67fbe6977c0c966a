package favorites

import (
	"testing"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

func TestBuildIndex(t *testing.T) {
	entries := []record.Record{
		{"id": "fav-A", "candidato": map[string]interface{}{"id": 1.0}},
		{"favorito_id": "fav-B", "candidato_id": 2.0},
		{"nota": "sin candidato"}, // skipped
	}

	idx := BuildIndex(entries)
	if len(idx) != 2 {
		t.Fatalf("len = %d, want 2", len(idx))
	}
	if fav, ok := idx.Lookup(record.CoerceID(1.0)); !ok || fav.Key() != "fav-A" {
		t.Errorf("candidate 1 -> %v, %v", fav, ok)
	}
	if fav, ok := idx.Lookup(record.CoerceID("2")); !ok || fav.Key() != "fav-B" {
		t.Errorf("candidate 2 via string key -> %v, %v", fav, ok)
	}
}

func TestBuildIndexFavoriteIDFallsBackToCandidateID(t *testing.T) {
	idx := BuildIndex([]record.Record{
		{"candidato_id": 5.0},
	})
	fav, ok := idx.Lookup(record.CoerceID(5.0))
	if !ok || fav.Key() != "5" {
		t.Errorf("favorite id should fall back to candidate id, got %v %v", fav, ok)
	}
}

func TestMergeIndexWinsAndAbsentIsCleared(t *testing.T) {
	records := []record.Record{
		{"candidato_id": 1.0},
		{"candidato_id": 2.0, "es_favorito": true, "favorito_id": "stale"},
	}
	idx := Index{"1": record.CoerceID("fav-A")}

	// Record 2 is not in the index but carries an embedded id, so the
	// embedded signal applies. Record 1 takes the index entry.
	merged := Merge(records, idx)

	s1 := StateOf(merged[0])
	if !s1.IsFavorite || s1.FavoriteID.Key() != "fav-A" {
		t.Errorf("record 1 state = %+v", s1)
	}
	s2 := StateOf(merged[1])
	if !s2.IsFavorite || s2.FavoriteID.Key() != "stale" {
		t.Errorf("record 2 state = %+v", s2)
	}
}

func TestMergeNonFavoriteIsExplicitlyCleared(t *testing.T) {
	records := []record.Record{
		{"candidato_id": 1.0},
		{"candidato_id": 2.0},
	}
	idx := Index{"1": record.CoerceID("fav-A")}

	merged := Merge(records, idx)

	s2 := StateOf(merged[1])
	if s2.IsFavorite {
		t.Error("record 2 should be explicitly non-favorite")
	}
	if !s2.FavoriteID.IsZero() {
		t.Errorf("record 2 favorite id = %v, want none", s2.FavoriteID)
	}
	if merged[1][FlagKey] != false || merged[1][IDKey] != nil {
		t.Errorf("favorite fields not cleared: %v", merged[1])
	}
}

func TestMergeIndexBeatsEmbeddedSignal(t *testing.T) {
	records := []record.Record{
		{"candidato_id": 1.0, "favorito_id": "embedded", "es_favorito": true},
	}
	idx := Index{"1": record.CoerceID("fav-real")}

	merged := Merge(records, idx)
	if got := StateOf(merged[0]).FavoriteID.Key(); got != "fav-real" {
		t.Errorf("favorite id = %q, index must win over embedded fields", got)
	}
}

func TestMergeEmbeddedBooleanWithoutID(t *testing.T) {
	merged := Merge([]record.Record{
		{"candidato_id": 3.0, "is_favorite": true},
	}, Index{})

	s := StateOf(merged[0])
	if !s.IsFavorite {
		t.Error("embedded boolean flag should mark the record favorite")
	}
	if !s.FavoriteID.IsZero() {
		t.Errorf("favorite id = %v, want none", s.FavoriteID)
	}
}

func TestMergeStaleFlagFromPreviousPassDoesNotSurvive(t *testing.T) {
	records := []record.Record{{"candidato_id": 1.0}}
	idx := Index{"1": record.CoerceID("fav-A")}

	first := Merge(records, idx)
	// The candidate was removed from the index; re-merging the same
	// snapshot must produce a cleared record, not keep the earlier state.
	idx.Delete(record.CoerceID(1.0))
	second := Merge(records, idx)

	if StateOf(first[0]).IsFavorite == StateOf(second[0]).IsFavorite {
		t.Error("favorite state should differ after index removal")
	}
	if StateOf(second[0]).IsFavorite {
		t.Error("stale favorite flag survived the second merge")
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	r := record.Record{"candidato_id": 1.0}
	Merge([]record.Record{r}, Index{"1": record.CoerceID("f")})
	if _, ok := r[FlagKey]; ok {
		t.Error("Merge mutated its input record")
	}
}
