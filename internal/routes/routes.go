package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Movies  *handlers.MovieHandler
	Actors  *handlers.ActorHandler
	Import  *handlers.ImportHandler
	Utility *handlers.UtilityHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Get("/", h.Utility.Root)

	// Arithmetic helpers and reverse geocoding
	app.Get("/sum", h.Utility.Sum)
	app.Get("/subtract", h.Utility.Subtract)
	app.Get("/multiply", h.Utility.Multiply)
	app.Get("/divide", h.Utility.Divide)
	app.Get("/geocode", h.Utility.Geocode)

	movies := app.Group("/movies")
	{
		movies.Get("/", h.Movies.GetAllMovies)
		movies.Post("/", h.Movies.CreateMovie)
		movies.Delete("/", h.Movies.DeleteAllMovies)
		movies.Post("/import", h.Import.ImportLegacyMovies)
		movies.Get("/:id", h.Movies.GetMovieByID)
		movies.Put("/:id", h.Movies.UpdateMovie)
		movies.Delete("/:id", h.Movies.DeleteMovie)
		movies.Get("/:id/actors", h.Movies.GetMovieActors)
	}

	actors := app.Group("/actors")
	{
		actors.Get("/", h.Actors.GetAllActors)
		actors.Post("/", h.Actors.CreateActor)
		actors.Get("/:id", h.Actors.GetActorByID)
		actors.Put("/:id", h.Actors.UpdateActor)
		actors.Delete("/:id", h.Actors.DeleteActor)
	}
}
