package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

// CastStrategy selects how CastResolver reads the movie_actor association.
type CastStrategy string

const (
	// StrategyPreload lets GORM load the Actors collection of the movie.
	StrategyPreload CastStrategy = "preload"
	// StrategyJoin runs an explicit inner join against movie_actor.
	StrategyJoin CastStrategy = "join"
)

const castJoinQuery = `SELECT actor.id, actor.name, actor.surname
FROM actor
INNER JOIN movie_actor ON movie_actor.actor_id = actor.id
WHERE movie_actor.movie_id = ?`

// CastResolver lists the actors of a movie. Both strategies return the same
// set of actors for the same association rows.
type CastResolver interface {
	ActorsForMovie(ctx context.Context, movieID uint) ([]models.Actor, error)
}

func NewCastResolver(db *database.Database, strategy CastStrategy) (CastResolver, error) {
	switch strategy {
	case StrategyPreload:
		return &preloadCastResolver{db: db}, nil
	case StrategyJoin:
		return &joinCastResolver{db: db}, nil
	default:
		return nil, fmt.Errorf("unknown cast strategy %q", strategy)
	}
}

type preloadCastResolver struct {
	db *database.Database
}

func (r *preloadCastResolver) ActorsForMovie(ctx context.Context, movieID uint) ([]models.Actor, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	var movie models.Movie
	if err := session.Preload("Actors").Take(&movie, movieID).Error; err != nil {
		return nil, translate(err, "list movie actors", entityMovie, movieID)
	}
	if movie.Actors == nil {
		return []models.Actor{}, nil
	}
	return movie.Actors, nil
}

type joinCastResolver struct {
	db *database.Database
}

func (r *joinCastResolver) ActorsForMovie(ctx context.Context, movieID uint) ([]models.Actor, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	if err := session.Select("id").Take(&models.Movie{}, movieID).Error; err != nil {
		return nil, translate(err, "list movie actors", entityMovie, movieID)
	}

	actors := []models.Actor{}
	if err := session.Raw(castJoinQuery, movieID).Scan(&actors).Error; err != nil {
		return nil, translate(err, "list movie actors", entityMovie, movieID)
	}
	return actors, nil
}
