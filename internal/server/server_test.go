package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app *fiber.App
	db  *database.Database
}

func newTestApp(t *testing.T, strategy repository.CastStrategy, geocodeURL string) *testApp {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         ":memory:",
			QueryTimeout: 5 * time.Second,
			AutoMigrate:  true,
		},
		Cast: config.CastConfig{Strategy: string(strategy)},
		Geocode: config.GeocodeConfig{
			BaseURL:       geocodeURL,
			UserAgent:     "movie-catalog-test",
			HTTPTimeout:   2 * time.Second,
			RatePerSecond: 100,
		},
	}

	db, err := database.Connect(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	movieRepo := repository.NewMovieRepository(db)
	cast, err := repository.NewCastResolver(db, strategy)
	require.NoError(t, err)

	h := routes.Handlers{
		Movies:  handlers.NewMovieHandler(services.NewMovieService(movieRepo, cast, log), log),
		Actors:  handlers.NewActorHandler(services.NewActorService(repository.NewActorRepository(db), log), log),
		Import:  handlers.NewImportHandler(services.NewImportService(movieRepo, nil, log), log),
		Utility: handlers.NewUtilityHandler(services.NewGeocodeService(cfg.Geocode, log), log),
	}

	return &testApp{
		app: New(cfg, db, h, log, Options{}),
		db:  db,
	}
}

func (a *testApp) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (a *testApp) count(t *testing.T, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, a.db.DB.Model(model).Count(&n).Error)
	return n
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func TestCreateMovieThenGet(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodPost, "/movies",
		`{"title":"Inception","year":2010,"director":"Nolan"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	created := decode[handlers.MovieCreatedResponse](t, body)
	assert.Equal(t, "Movie added successfully", created.Message)
	require.NotZero(t, created.MovieID)

	resp, body = a.do(t, http.MethodGet, "/movies/"+itoa(created.MovieID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`{"id":`+itoa(created.MovieID)+`,"title":"Inception","year":2010,"director":"Nolan","description":""}`,
		string(body))

	resp, body = a.do(t, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Movie](t, body), 1)
}

func TestListMoviesEmpty(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestGetMissingMovie(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodGet, "/movies/999999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "not found")
}

func TestRequestErrors(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed body", http.MethodPost, "/movies", `{"title":`, http.StatusBadRequest},
		{"missing director", http.MethodPost, "/movies", `{"title":"Heat","year":1995}`, http.StatusBadRequest},
		{"non integer year", http.MethodPost, "/movies", `{"title":"Heat","year":"soon","director":"Mann"}`, http.StatusBadRequest},
		{"non numeric id", http.MethodGet, "/movies/abc", "", http.StatusBadRequest},
		{"zero id", http.MethodDelete, "/movies/0", "", http.StatusBadRequest},
		{"update missing movie", http.MethodPut, "/movies/42", `{"title":"Heat","year":1995,"director":"Mann"}`, http.StatusNotFound},
		{"delete missing movie", http.MethodDelete, "/movies/42", "", http.StatusNotFound},
		{"actors of missing movie", http.MethodGet, "/movies/42/actors", "", http.StatusNotFound},
		{"missing actor", http.MethodGet, "/actors/42", "", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := a.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
		})
	}

	assert.Zero(t, a.count(t, &models.Movie{}))
}

func TestCreateActorMissingSurname(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodPost, "/actors", `{"name":"Tom"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decode[struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}](t, body)
	assert.Equal(t, "surname is required", errBody.Message)
	assert.Contains(t, errBody.Errors, "surname")
	assert.Zero(t, a.count(t, &models.Actor{}))
}

func TestUpdateAndDeleteMovie(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	_, body := a.do(t, http.MethodPost, "/movies",
		`{"title":"Heat","year":1995,"director":"Mann","description":"crime"}`)
	id := itoa(decode[handlers.MovieCreatedResponse](t, body).MovieID)

	resp, body := a.do(t, http.MethodPut, "/movies/"+id,
		`{"title":"Heat","year":"1995","director":"Michael Mann"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"message":"Movie `+id+` updated successfully"}`, string(body))

	_, body = a.do(t, http.MethodGet, "/movies/"+id, "")
	movie := decode[models.Movie](t, body)
	assert.Equal(t, "Michael Mann", movie.Director)
	assert.Equal(t, "crime", movie.Description)

	resp, _ = a.do(t, http.MethodDelete, "/movies/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/movies/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAllMovies(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	for _, title := range []string{"Alien", "Aliens", "Heat"} {
		resp, _ := a.do(t, http.MethodPost, "/movies", `{"title":"`+title+`","year":1990,"director":"X"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := a.do(t, http.MethodDelete, "/movies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	deleted := decode[handlers.MoviesDeletedResponse](t, body)
	assert.Equal(t, int64(3), deleted.DeletedCount)
	assert.Zero(t, a.count(t, &models.Movie{}))
}

func TestActorLifecycle(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodPost, "/actors", `{"name":"Tom","surname":"Hardy"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := itoa(decode[handlers.ActorCreatedResponse](t, body).ActorID)

	resp, _ = a.do(t, http.MethodPut, "/actors/"+id, `{"name":"Thomas","surname":"Hardy"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = a.do(t, http.MethodGet, "/actors/"+id, "")
	assert.JSONEq(t, `{"id":`+id+`,"name":"Thomas","surname":"Hardy"}`, string(body))

	resp, _ = a.do(t, http.MethodDelete, "/actors/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = a.do(t, http.MethodGet, "/actors", "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestImportThenListCast(t *testing.T) {
	for _, strategy := range []repository.CastStrategy{repository.StrategyJoin, repository.StrategyPreload} {
		t.Run(string(strategy), func(t *testing.T) {
			a := newTestApp(t, strategy, "")

			resp, body := a.do(t, http.MethodPost, "/movies/import",
				`[{"title":"Heat","year":1995,"actors":"Al Pacino, Robert De Niro","director":"Michael Mann"},
				  {"title":"Broken","year":0,"actors":"Nobody Here"}]`)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

			result := decode[handlers.ImportResponse](t, body)
			assert.Equal(t, 1, result.Imported)
			assert.Equal(t, 1, result.Skipped)
			require.Len(t, result.MovieIDs, 1)

			resp, body = a.do(t, http.MethodGet, "/movies/"+itoa(result.MovieIDs[0])+"/actors", "")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			cast := decode[[]models.Actor](t, body)
			require.Len(t, cast, 2)
			names := []string{cast[0].Name + " " + cast[0].Surname, cast[1].Name + " " + cast[1].Surname}
			assert.ElementsMatch(t, []string{"Al Pacino", "Robert De Niro"}, names)
		})
	}
}

func TestImportFromBucketWithoutStore(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, _ := a.do(t, http.MethodPost, "/movies/import?object=rows.json", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovieWithoutActorsHasEmptyCast(t *testing.T) {
	a := newTestApp(t, repository.StrategyPreload, "")

	_, body := a.do(t, http.MethodPost, "/movies", `{"title":"Alien","year":1979,"director":"Scott"}`)
	id := itoa(decode[handlers.MovieCreatedResponse](t, body).MovieID)

	resp, body := a.do(t, http.MethodGet, "/movies/"+id+"/actors", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestArithmeticEndpoints(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	tests := []struct {
		path string
		want string
	}{
		{"/sum", `10`},
		{"/sum?x=2&y=3", `5`},
		{"/subtract", `-10`},
		{"/subtract?x=7&y=2", `5`},
		{"/multiply", `1`},
		{"/multiply?x=6&y=7", `42`},
		{"/divide", `1`},
		{"/divide?x=10&y=4", `2.5`},
		{"/divide?x=1&y=0", `"Error: Division by zero"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := a.do(t, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, tt.want, string(body))
		})
	}

	resp, _ := a.do(t, http.MethodGet, "/sum?x=two", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeocodeProxy(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Warsaw"}`))
	}))
	defer upstream.Close()

	a := newTestApp(t, repository.StrategyJoin, upstream.URL)

	resp, body := a.do(t, http.MethodGet, "/geocode?lat=52.2297&lon=21.0122", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"display_name":"Warsaw"}`, string(body))

	resp, _ = a.do(t, http.MethodGet, "/geocode?lat=north", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeocodeUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	a := newTestApp(t, repository.StrategyJoin, upstream.URL)

	resp, _ := a.do(t, http.MethodGet, "/geocode?lat=1&lon=2", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHealthAndRequestID(t *testing.T) {
	a := newTestApp(t, repository.StrategyJoin, "")

	resp, body := a.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	health := decode[map[string]string](t, body)
	assert.Equal(t, "healthy", health["database"])

	resp, body = a.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Hello World"}`, string(body))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
