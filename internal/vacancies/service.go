// Package vacancies lists and filters the company's vacancies, including
// the "my vacancies" view that depends on the assignment heuristics.
package vacancies

import (
	"context"

	"github.com/JavierGuerrero99/talento-hub/internal/assignment"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
	"github.com/JavierGuerrero99/talento-hub/internal/status"
)

// API is the slice of the upstream client the service needs.
type API interface {
	ListVacancies(ctx context.Context) ([]record.Record, error)
}

// View is the normalized presentation of one vacancy.
type View struct {
	ID        record.ID   `json:"id"`
	Title     string      `json:"title"`
	Location  string      `json:"location,omitempty"`
	Status    status.View `json:"status"`
	CreatedAt string      `json:"created_at_display"`
}

var titleKeys = []string{"titulo", "title", "cargo", "nombre", "name"}

var locationKeys = []string{"ubicacion", "ciudad", "location", "city", "sede"}

var createdAtKeys = []string{"fecha_creacion", "created_at", "fecha", "fecha_publicacion"}

// Service wraps vacancy listing and assignment filtering.
type Service struct {
	api API
}

// NewService creates a vacancy service.
func NewService(api API) *Service {
	return &Service{api: api}
}

// List returns every vacancy, normalized.
func (s *Service) List(ctx context.Context) ([]View, error) {
	records, err := s.api.ListVacancies(ctx)
	if err != nil {
		return nil, err
	}
	return buildViews(records), nil
}

// Mine returns the vacancies assigned to the given user, matched by id
// or email over the speculative assignment fields.
func (s *Service) Mine(ctx context.Context, userID record.ID, userEmail string) ([]View, error) {
	records, err := s.api.ListVacancies(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make([]record.Record, 0, len(records))
	for _, r := range records {
		if assignment.IsAssignedToUser(r, userID, userEmail) {
			assigned = append(assigned, r)
		}
	}
	return buildViews(assigned), nil
}

func buildViews(records []record.Record) []View {
	views := make([]View, 0, len(records))
	for _, r := range records {
		views = append(views, View{
			ID:        record.CoerceID(record.Resolve(r, "id", "vacante_id", "vacancy_id")),
			Title:     record.ResolveString(r, titleKeys...),
			Location:  record.ResolveString(r, locationKeys...),
			Status:    status.Resolve(r),
			CreatedAt: record.FormatDateTime(record.Resolve(r, createdAtKeys...)),
		})
	}
	return views
}
