package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// updateLocked loads the row with id under SELECT ... FOR UPDATE, lets apply
// change it and writes it back. It must run inside a transaction so concurrent
// writers to the same row are serialized and a concurrent delete cannot be undone.
func updateLocked[T any](tx *gorm.DB, id uuid.UUID, apply func(*T) error) (*T, error) {
	var row T
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := apply(&row); err != nil {
		return nil, err
	}

	// An UPDATE never inserts, unlike Save, so a vanished row stays gone.
	err := tx.Model(&row).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// updateError keeps validation failures from apply as they are and wraps
// everything else as a database error.
func updateError(entity string, err error) error {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return err
	}
	return errs.NewDatabaseError("update", entity, err)
}
