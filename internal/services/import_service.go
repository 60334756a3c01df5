package services

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// DefaultLegacyDirector is stored for legacy rows, which had no director column.
const DefaultLegacyDirector = "unknown"

// ImportService loads movies in the legacy format, where actors were a
// free-text list, into the normalized movie/actor/movie_actor schema.
type ImportService interface {
	ImportRows(ctx context.Context, rows []models.LegacyMovie) (*models.ImportResult, error)
	ImportObject(ctx context.Context, key string) (*models.ImportResult, error)
}

type importService struct {
	repo   repository.MovieRepository
	store  ObjectStore
	logger *logrus.Logger
}

// NewImportService builds the importer. store may be nil, in which case only
// rows sent in the request body can be imported.
func NewImportService(repo repository.MovieRepository, store ObjectStore, logger *logrus.Logger) ImportService {
	return &importService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (s *importService) ImportObject(ctx context.Context, key string) (*models.ImportResult, error) {
	if s.store == nil {
		return nil, apperrors.NewValidationError("object", "object storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return nil, apperrors.NewValidationError("object", "object is required")
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, apperrors.Upstream("object storage", err)
	}

	var rows []models.LegacyMovie
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.NewValidationError("object", "object is not a JSON array of legacy movies")
	}

	return s.ImportRows(ctx, rows)
}

// ImportRows imports each row in its own transaction. Invalid rows are
// skipped and reported; a store failure aborts the import.
func (s *importService) ImportRows(ctx context.Context, rows []models.LegacyMovie) (*models.ImportResult, error) {
	result := &models.ImportResult{MovieIDs: []uint{}}

	for i, row := range rows {
		movie, cast, err := convertLegacyRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i, err.Error()))
			continue
		}

		if err := s.repo.CreateWithCast(ctx, movie, cast); err != nil {
			s.logger.WithError(err).WithField("row", i).Error("Legacy import aborted")
			return result, err
		}
		result.Imported++
		result.MovieIDs = append(result.MovieIDs, movie.ID)
	}

	s.logger.WithFields(logrus.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Legacy import completed")

	return result, nil
}

func convertLegacyRow(row models.LegacyMovie) (*models.Movie, []models.Actor, error) {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(row.Title) == "" {
		verr.Add("title", "title is required")
	}
	if row.Year == 0 {
		verr.Add("year", "year is required")
	}
	if strings.TrimSpace(row.Actors) == "" {
		verr.Add("actors", "actors is required")
	}
	if !verr.Empty() {
		return nil, nil, verr
	}

	cast, err := ParseActorList(row.Actors)
	if err != nil {
		return nil, nil, err
	}

	director := strings.TrimSpace(row.Director)
	if director == "" {
		director = DefaultLegacyDirector
	}

	return &models.Movie{
		Title:    strings.TrimSpace(row.Title),
		Year:     row.Year,
		Director: director,
	}, cast, nil
}

// ParseActorList splits a free-text actor list such as
// "Al Pacino, Robert De Niro" into actors. The first word is the name and
// the rest the surname. Duplicates are dropped, order is kept.
func ParseActorList(list string) ([]models.Actor, error) {
	seen := make(map[[2]string]bool)
	var cast []models.Actor

	for _, entry := range strings.Split(list, ",") {
		words := strings.Fields(entry)
		if len(words) == 0 {
			continue
		}
		if len(words) == 1 {
			return nil, apperrors.NewValidationError("actors", fmt.Sprintf("actor %q needs a name and a surname", words[0]))
		}

		name, surname := words[0], strings.Join(words[1:], " ")
		key := [2]string{name, surname}
		if seen[key] {
			continue
		}
		seen[key] = true
		cast = append(cast, models.Actor{Name: name, Surname: surname})
	}

	if len(cast) == 0 {
		return nil, apperrors.NewValidationError("actors", "actors is required")
	}
	return cast, nil
}
