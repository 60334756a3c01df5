package repository

import (
	"errors"

	"movie-catalog/internal/apperrors"

	"gorm.io/gorm"
)

const (
	entityMovie = "movie"
	entityActor = "actor"
)

// translate maps a GORM error onto the application taxonomy. A missing
// record becomes NotFound for entity/id, everything else a StoreError.
func translate(err error, op, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity, id)
	}
	var notFound *apperrors.NotFoundError
	var storeErr *apperrors.StoreError
	if errors.As(err, &notFound) || errors.As(err, &storeErr) {
		return err
	}
	return apperrors.Store(op, err)
}
