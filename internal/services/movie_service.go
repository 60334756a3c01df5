package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/validation"

	"github.com/sirupsen/logrus"
)

// MovieInput is the typed contract for creating or replacing a movie.
// Year holds the raw JSON literal so that numeric strings can be coerced
// and anything else reported as a field error. A nil Description on update
// keeps the stored value.
type MovieInput struct {
	Title       string  `json:"title" validate:"required"`
	Year        string  `json:"year"`
	Director    string  `json:"director" validate:"required"`
	Description *string `json:"description"`
}

type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, input MovieInput) (uint, error)
	UpdateMovie(ctx context.Context, id uint, input MovieInput) error
	DeleteMovie(ctx context.Context, id uint) error
	DeleteAllMovies(ctx context.Context) (int64, error)
	GetMovieActors(ctx context.Context, id uint) ([]models.Actor, error)
}

type movieService struct {
	repo   repository.MovieRepository
	cast   repository.CastResolver
	logger *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, cast repository.CastResolver, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:   repo,
		cast:   cast,
		logger: logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) CreateMovie(ctx context.Context, input MovieInput) (uint, error) {
	movie, err := input.toMovie()
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"title":    movie.Title,
	}).Info("Movie created")

	return movie.ID, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, input MovieInput) error {
	movie, err := input.toMovie()
	if err != nil {
		return err
	}
	movie.ID = id

	columns := append([]string{}, repository.MovieRequiredColumns...)
	if input.Description != nil {
		columns = append(columns, repository.MovieDescription)
	}

	if err := s.repo.Update(ctx, movie, columns); err != nil {
		return err
	}

	s.logger.WithField("movie_id", id).Info("Movie updated")
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("movie_id", id).Info("Movie deleted")
	return nil
}

func (s *movieService) DeleteAllMovies(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.WithField("deleted_count", deleted).Warn("All movies deleted")
	return deleted, nil
}

func (s *movieService) GetMovieActors(ctx context.Context, id uint) ([]models.Actor, error) {
	return s.cast.ActorsForMovie(ctx, id)
}

// toMovie validates the input and builds the record to persist. All field
// errors are reported together.
func (in MovieInput) toMovie() (*models.Movie, error) {
	verr := validation.Struct(in)
	if verr == nil {
		verr = &apperrors.ValidationError{}
	}

	year, msg := parseYear(in.Year)
	if msg != "" {
		verr.Add("year", msg)
	}

	if !verr.Empty() {
		return nil, verr
	}

	movie := &models.Movie{
		Title:    in.Title,
		Year:     year,
		Director: in.Director,
	}
	if in.Description != nil {
		movie.Description = *in.Description
	}
	return movie, nil
}

// parseYear coerces a raw JSON literal to an integer year. Numbers and
// numeric strings are accepted; an absent, null or zero year is missing.
func parseYear(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return 0, "year is required"
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			return 0, "year is required"
		}
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, "year must be an integer"
		}
		year = int(f)
	}
	if year == 0 {
		return 0, "year is required"
	}
	return year, ""
}
