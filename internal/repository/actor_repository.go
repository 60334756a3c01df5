package repository

import (
	"context"

	"movie-catalog/internal/apperrors"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	Update(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Actor, error)
	FindAll(ctx context.Context) ([]models.Actor, error)
	Count(ctx context.Context) (int64, error)
}

type actorRepository struct {
	db *database.Database
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{db: db}
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		return tx.Create(actor).Error
	})
	return translate(err, "create actor", entityActor, actor.ID)
}

// Update replaces name and surname of an existing actor.
func (r *actorRepository) Update(ctx context.Context, actor *models.Actor) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.Actor{}).
			Where("id = ?", actor.ID).
			Select("name", "surname").
			Updates(actor)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound(entityActor, actor.ID)
		}
		return nil
	})
	return translate(err, "update actor", entityActor, actor.ID)
}

// Delete removes the actor and every link to it.
func (r *actorRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.Transact(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("actor_id = ?", id).Delete(&models.MovieActor{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Actor{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound(entityActor, id)
		}
		return nil
	})
	return translate(err, "delete actor", entityActor, id)
}

func (r *actorRepository) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	var actor models.Actor
	if err := session.Take(&actor, id).Error; err != nil {
		return nil, translate(err, "get actor", entityActor, id)
	}
	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]models.Actor, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	actors := []models.Actor{}
	if err := session.Find(&actors).Error; err != nil {
		return nil, apperrors.Store("list actors", err)
	}
	return actors, nil
}

func (r *actorRepository) Count(ctx context.Context) (int64, error) {
	session, cancel := r.db.Session(ctx)
	defer cancel()

	var count int64
	if err := session.Model(&models.Actor{}).Count(&count).Error; err != nil {
		return 0, apperrors.Store("count actors", err)
	}
	return count, nil
}
