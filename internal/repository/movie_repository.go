package repository

import (
	"context"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns written by a movie update. Description is optional and only
// written when the caller supplied it.
var (
	MovieRequiredColumns = []string{"title", "year", "director"}
	MovieDescription     = "description"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	CreateWithCast(ctx context.Context, movie *models.Movie, cast []models.Actor) error
	Update(ctx context.Context, movie *models.Movie, columns []string) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	Count(ctx context.Context) (int64, error)
	LinkActors(ctx context.Context, movieID uint, actorIDs ...uint) error
}

type movieRepository struct {
	db *database.Database
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(movie).Error
	})
	return translate(err, "create movie", entityMovie, movie.ID)
}

// CreateWithCast inserts the movie, finds or creates every actor by
// (name, surname) and links them, all in one transaction.
func (r *movieRepository) CreateWithCast(ctx context.Context, movie *models.Movie, cast []models.Actor) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}

		links := make([]models.MovieActor, 0, len(cast))
		for i := range cast {
			actor := &cast[i]
			err := tx.Where("name = ? AND surname = ?", actor.Name, actor.Surname).
				FirstOrCreate(actor).Error
			if err != nil {
				return err
			}
			links = append(links, models.MovieActor{MovieID: movie.ID, ActorID: actor.ID})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	return translate(err, "create movie with cast", entityMovie, movie.ID)
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie, columns []string) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.Movie{}).
			Where("id = ?", movie.ID).
			Select(columns).
			Updates(movie)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound(entityMovie, movie.ID)
		}
		return nil
	})
	return translate(err, "update movie", entityMovie, movie.ID)
}

// Delete removes the movie and its association rows.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieActor{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Movie{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound(entityMovie, id)
		}
		return nil
	})
	return translate(err, "delete movie", entityMovie, id)
}

func (r *movieRepository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&models.MovieActor{}).Error; err != nil {
			return err
		}
		result := global.Delete(&models.Movie{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, apperrors.Store("delete all movies", err)
	}
	return deleted, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	var movie models.Movie
	if err := session.Take(&movie, id).Error; err != nil {
		return nil, translate(err, "get movie", entityMovie, id)
	}
	return &movie, nil
}

// FindAll returns every movie in the store's native row order.
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	movies := []models.Movie{}
	if err := session.Find(&movies).Error; err != nil {
		return nil, apperrors.Store("list movies", err)
	}
	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	var count int64
	if err := session.Model(&models.Movie{}).Count(&count).Error; err != nil {
		return 0, apperrors.Store("count movies", err)
	}
	return count, nil
}

// LinkActors associates existing actors with an existing movie. Pairs that
// are already linked are left untouched.
func (r *movieRepository) LinkActors(ctx context.Context, movieID uint, actorIDs ...uint) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		if err := tx.Select("id").Take(&models.Movie{}, movieID).Error; err != nil {
			return translate(err, "link actors", entityMovie, movieID)
		}

		links := make([]models.MovieActor, 0, len(actorIDs))
		for _, actorID := range actorIDs {
			if err := tx.Select("id").Take(&models.Actor{}, actorID).Error; err != nil {
				return translate(err, "link actors", entityActor, actorID)
			}
			links = append(links, models.MovieActor{MovieID: movieID, ActorID: actorID})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	return translate(err, "link actors", entityMovie, movieID)
}
