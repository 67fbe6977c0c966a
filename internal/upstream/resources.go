package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// ListVacancies fetches the company's vacancies.
func (c *Client) ListVacancies(ctx context.Context) ([]record.Record, error) {
	return c.getList(ctx, "/api/vacantes/")
}

// GetVacancy fetches one vacancy.
func (c *Client) GetVacancy(ctx context.Context, vacancyID record.ID) (record.Record, error) {
	return c.getRecord(ctx, "/api/vacantes/"+url.PathEscape(vacancyID.Key())+"/")
}

// CreateVacancy creates a vacancy from a loose payload and returns the
// created record.
func (c *Client) CreateVacancy(ctx context.Context, fields record.Record) (record.Record, error) {
	payload, err := c.doJSON(ctx, http.MethodPost, "/api/vacantes/", fields)
	if err != nil {
		return nil, err
	}
	r, _ := record.AsRecord(payload)
	return r, nil
}

// UpdateVacancy updates a vacancy.
func (c *Client) UpdateVacancy(ctx context.Context, vacancyID record.ID, fields record.Record) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/api/vacantes/"+url.PathEscape(vacancyID.Key())+"/", fields)
	return err
}

// DeleteVacancy deletes a vacancy.
func (c *Client) DeleteVacancy(ctx context.Context, vacancyID record.ID) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/vacantes/"+url.PathEscape(vacancyID.Key())+"/", nil)
	return err
}

// ListApplications fetches the applications of a vacancy.
func (c *Client) ListApplications(ctx context.Context, vacancyID record.ID) ([]record.Record, error) {
	return c.getList(ctx, "/api/vacantes/"+url.PathEscape(vacancyID.Key())+"/postulaciones/")
}

// ListFavorites fetches the recruiter's favorites collection.
func (c *Client) ListFavorites(ctx context.Context) ([]record.Record, error) {
	return c.getList(ctx, "/api/favoritos/")
}

// AddFavorite marks a candidate as favorite. The returned id is zero
// when the backend's response exposes none; the reconciler then falls
// back to re-querying the collection.
func (c *Client) AddFavorite(ctx context.Context, candidateID record.ID) (record.ID, error) {
	payload, err := c.doJSON(ctx, http.MethodPost, "/api/favoritos/", record.Record{
		"candidato_id": candidateID.Value(),
	})
	if err != nil {
		return record.ID{}, err
	}
	if r, ok := record.AsRecord(payload); ok {
		return record.CoerceID(record.Resolve(r, "id", "favorito_id", "favorite_id")), nil
	}
	return record.ID{}, nil
}

// RemoveFavorite deletes a favorite entry.
func (c *Client) RemoveFavorite(ctx context.Context, favoriteID record.ID) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/favoritos/"+url.PathEscape(favoriteID.Key())+"/", nil)
	return err
}

// SubmitComment attaches a comment to an application.
func (c *Client) SubmitComment(ctx context.Context, applicationID record.ID, subject, message string) error {
	_, err := c.doJSON(ctx, http.MethodPost,
		"/api/postulaciones/"+url.PathEscape(applicationID.Key())+"/comentarios/",
		record.Record{"asunto": subject, "mensaje": message})
	return err
}

// UpdateStatus changes an application's status.
func (c *Client) UpdateStatus(ctx context.Context, applicationID record.ID, newStatus string) error {
	_, err := c.doJSON(ctx, http.MethodPut,
		"/api/postulaciones/"+url.PathEscape(applicationID.Key())+"/estado/",
		record.Record{"estado": newStatus})
	return err
}

// ExportVacancyPDF downloads the vacancy metrics report. Returns the PDF
// bytes and the suggested filename embedding the vacancy id.
func (c *Client) ExportVacancyPDF(ctx context.Context, vacancyID record.ID) ([]byte, string, error) {
	path := "/api/vacantes/" + url.PathEscape(vacancyID.Key()) + "/reporte/"
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, path); err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{URL: path, Message: "failed to read PDF body", Cause: err}
	}

	filename := fmt.Sprintf("reporte-vacante-%s.pdf", vacancyID.Key())
	return data, filename, nil
}
