package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/validation"

	"github.com/sirupsen/logrus"
)

type ActorInput struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

type ActorService interface {
	ListActors(ctx context.Context) ([]models.Actor, error)
	GetActor(ctx context.Context, id uint) (*models.Actor, error)
	CreateActor(ctx context.Context, input ActorInput) (uint, error)
	UpdateActor(ctx context.Context, id uint, input ActorInput) error
	DeleteActor(ctx context.Context, id uint) error
}

type actorService struct {
	repo   repository.ActorRepository
	logger *logrus.Logger
}

func NewActorService(repo repository.ActorRepository, logger *logrus.Logger) ActorService {
	return &actorService{
		repo:   repo,
		logger: logger,
	}
}

func (s *actorService) ListActors(ctx context.Context) ([]models.Actor, error) {
	return s.repo.FindAll(ctx)
}

func (s *actorService) GetActor(ctx context.Context, id uint) (*models.Actor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *actorService) CreateActor(ctx context.Context, input ActorInput) (uint, error) {
	if verr := validation.Struct(input); verr != nil {
		return 0, verr
	}

	actor := &models.Actor{Name: input.Name, Surname: input.Surname}
	if err := s.repo.Create(ctx, actor); err != nil {
		return 0, err
	}

	s.logger.WithField("actor_id", actor.ID).Info("Actor created")
	return actor.ID, nil
}

func (s *actorService) UpdateActor(ctx context.Context, id uint, input ActorInput) error {
	if verr := validation.Struct(input); verr != nil {
		return verr
	}

	actor := &models.Actor{ID: id, Name: input.Name, Surname: input.Surname}
	if err := s.repo.Update(ctx, actor); err != nil {
		return err
	}

	s.logger.WithField("actor_id", id).Info("Actor updated")
	return nil
}

func (s *actorService) DeleteActor(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("actor_id", id).Info("Actor deleted")
	return nil
}
