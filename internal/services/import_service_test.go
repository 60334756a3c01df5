package services

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	objects map[string][]byte
}

func (s *fakeObjectStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("The specified key does not exist.")
	}
	return data, nil
}

func TestParseActorList(t *testing.T) {
	cast, err := ParseActorList(" Al Pacino,Robert  De Niro, , Al Pacino ")
	require.NoError(t, err)
	assert.Equal(t, []models.Actor{
		{Name: "Al", Surname: "Pacino"},
		{Name: "Robert", Surname: "De Niro"},
	}, cast)

	var verr *apperrors.ValidationError
	_, err = ParseActorList("Madonna, Sean Penn")
	assert.ErrorAs(t, err, &verr)

	_, err = ParseActorList(" , ")
	assert.ErrorAs(t, err, &verr)
}

func TestImportRows(t *testing.T) {
	f := newFixture(t)
	svc := NewImportService(f.movies, nil, f.logger)
	ctx := context.Background()

	rows := []models.LegacyMovie{
		{Title: "Heat", Year: 1995, Actors: "Al Pacino, Robert De Niro"},
		{Title: "", Year: 1972, Actors: "Al Pacino"},
		{Title: "The Godfather", Year: 1972, Actors: "Al Pacino, Marlon Brando", Director: "Coppola"},
		{Title: "Cher", Year: 1990, Actors: "Cher"},
	}

	result, err := svc.ImportRows(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 1")
	assert.Contains(t, result.Errors[1], "row 3")
	require.Len(t, result.MovieIDs, 2)

	heat, err := f.movies.FindByID(ctx, result.MovieIDs[0])
	require.NoError(t, err)
	assert.Equal(t, DefaultLegacyDirector, heat.Director)

	godfather, err := f.movies.FindByID(ctx, result.MovieIDs[1])
	require.NoError(t, err)
	assert.Equal(t, "Coppola", godfather.Director)

	actors, err := f.actors.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actors, 3, "Al Pacino is shared by both movies")

	cast, err := repository.NewCastResolver(f.db, repository.StrategyJoin)
	require.NoError(t, err)
	godfatherCast, err := cast.ActorsForMovie(ctx, godfather.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pacino", "Brando"}, []string{godfatherCast[0].Surname, godfatherCast[1].Surname})
}

func TestImportObject(t *testing.T) {
	f := newFixture(t)
	store := &fakeObjectStore{objects: map[string][]byte{
		"legacy/movies.json": []byte(`[{"title":"Heat","year":1995,"actors":"Al Pacino, Robert De Niro"}]`),
		"legacy/broken.json": []byte(`{"title":`),
	}}
	svc := NewImportService(f.movies, store, f.logger)
	ctx := context.Background()

	result, err := svc.ImportObject(ctx, "legacy/movies.json")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	var verr *apperrors.ValidationError
	_, err = svc.ImportObject(ctx, "legacy/broken.json")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.ImportObject(ctx, " ")
	assert.ErrorAs(t, err, &verr)

	var upstream *apperrors.UpstreamError
	_, err = svc.ImportObject(ctx, "legacy/missing.json")
	assert.ErrorAs(t, err, &upstream)
}

func TestImportObjectWithoutStore(t *testing.T) {
	f := newFixture(t)
	svc := NewImportService(f.movies, nil, f.logger)

	_, err := svc.ImportObject(context.Background(), "legacy/movies.json")

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["object"], "not configured")
}

// flakyMovieRepository fails every CreateWithCast after the first allowed ones.
type flakyMovieRepository struct {
	repository.MovieRepository
	allowed int
}

func (r *flakyMovieRepository) CreateWithCast(ctx context.Context, movie *models.Movie, cast []models.Actor) error {
	if r.allowed == 0 {
		return apperrors.Store("create movie with cast", errors.New("disk I/O error"))
	}
	r.allowed--
	return r.MovieRepository.CreateWithCast(ctx, movie, cast)
}

func TestImportRowsStoreFailureKeepsCommittedRows(t *testing.T) {
	f := newFixture(t)
	svc := NewImportService(&flakyMovieRepository{MovieRepository: f.movies, allowed: 1}, nil, f.logger)
	ctx := context.Background()

	rows := []models.LegacyMovie{
		{Title: "Heat", Year: 1995, Actors: "Al Pacino, Robert De Niro"},
		{Title: "Ronin", Year: 1998, Actors: "Robert De Niro, Jean Reno"},
		{Title: "Casino", Year: 1995, Actors: "Robert De Niro, Sharon Stone"},
	}

	result, err := svc.ImportRows(ctx, rows)

	var storeErr *apperrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.MovieIDs, 1)

	heat, err := f.movies.FindByID(ctx, result.MovieIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "Heat", heat.Title)

	count, err := f.movies.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
