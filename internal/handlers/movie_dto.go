package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/goccy/go-json"
)

// MovieRequest is the body of POST /movies and PUT /movies/{id}. Year may be
// a JSON number or a numeric string.
type MovieRequest struct {
	Title       string          `json:"title" example:"Inception"`
	Year        json.RawMessage `json:"year" swaggertype:"integer" example:"2010"`
	Director    string          `json:"director" example:"Nolan"`
	Description *string         `json:"description,omitempty" example:"A thief who steals corporate secrets"`
}

func (r MovieRequest) toInput() services.MovieInput {
	return services.MovieInput{
		Title:       r.Title,
		Year:        string(r.Year),
		Director:    r.Director,
		Description: r.Description,
	}
}

type MovieCreatedResponse struct {
	Message string `json:"message" example:"Movie added successfully"`
	MovieID uint   `json:"movie_id" example:"1"`
}

type MoviesDeletedResponse struct {
	Message      string `json:"message" example:"All movies deleted successfully"`
	DeletedCount int64  `json:"deleted_count" example:"3"`
}

type ImportResponse struct {
	Message  string   `json:"message" example:"Legacy import finished"`
	Imported int      `json:"imported" example:"2"`
	Skipped  int      `json:"skipped" example:"0"`
	MovieIDs []uint   `json:"movie_ids"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportFailedResponse is the error envelope of an import that stopped after
// committing some rows. The listed movies remain stored.
type ImportFailedResponse struct {
	utils.ErrorBody
	Imported int      `json:"imported" example:"1"`
	Skipped  int      `json:"skipped" example:"0"`
	MovieIDs []uint   `json:"movie_ids"`
	Errors   []string `json:"errors,omitempty"`
}
