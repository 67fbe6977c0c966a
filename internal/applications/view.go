// Package applications builds stable view rows for the "vacancy
// applications" list out of raw backend records, and owns the per-view
// session state: the favorites index, the authoritative snapshot and the
// optimistic local overlay.
package applications

import (
	"github.com/JavierGuerrero99/talento-hub/internal/comments"
	"github.com/JavierGuerrero99/talento-hub/internal/favorites"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
	"github.com/JavierGuerrero99/talento-hub/internal/status"
)

// Row is the normalized view of one application.
type Row struct {
	Slug             string             `json:"slug"`
	CandidateID      record.ID          `json:"candidate_id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone,omitempty"`
	Status           status.View        `json:"status"`
	AppliedAt        string             `json:"applied_at,omitempty"`
	AppliedAtDisplay string             `json:"applied_at_display"`
	Comments         []comments.Comment `json:"comments"`
	IsFavorite       bool               `json:"is_favorite"`
	FavoriteID       record.ID          `json:"favorite_id"`
}

var nameKeys = []string{"nombre_completo", "full_name", "nombre", "name", "nombres"}

var lastNameKeys = []string{"apellido", "apellidos", "last_name"}

var emailKeys = []string{"email", "correo", "correo_electronico", "user_email"}

var phoneKeys = []string{"telefono", "phone", "celular", "movil"}

var appliedAtKeys = []string{
	"fecha_postulacion",
	"fecha_aplicacion",
	"applied_at",
	"created_at",
	"fecha",
	"fecha_creacion",
}

// BuildRow normalizes one merged record into a Row. The record is
// expected to already carry the favorite annotation from a merge pass.
func BuildRow(r record.Record, position int) Row {
	candidate := record.CandidateRef(r)
	fav := favorites.StateOf(r)

	name := record.ResolveString(candidate, nameKeys...)
	if last := record.ResolveString(candidate, lastNameKeys...); last != "" && name != "" {
		name += " " + last
	}

	rawApplied := record.Resolve(r, appliedAtKeys...)
	applied := record.NormalizeDate(rawApplied)

	row := Row{
		Slug:             record.Slug(r, position),
		CandidateID:      record.CandidateID(r),
		Name:             name,
		Email:            record.ResolveString(candidate, emailKeys...),
		Phone:            record.ResolveString(candidate, phoneKeys...),
		Status:           status.Resolve(r),
		AppliedAtDisplay: record.FormatDateTime(rawApplied),
		Comments:         comments.Resolve(r),
		IsFavorite:       fav.IsFavorite,
		FavoriteID:       fav.FavoriteID,
	}
	if !applied.IsZero() {
		row.AppliedAt = applied.Format("2006-01-02T15:04:05")
	}
	return row
}

// BuildRows merges the favorites index into the records and normalizes
// every one of them, preserving list order.
func BuildRows(records []record.Record, idx favorites.Index) []Row {
	merged := favorites.Merge(records, idx)
	rows := make([]Row, 0, len(merged))
	for i, r := range merged {
		rows = append(rows, BuildRow(r, i))
	}
	return rows
}
