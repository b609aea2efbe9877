package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindFirst returns the stored profile, or an errs.ErrNotFound error when none was saved yet.
func (r *ProfileRepo) FindFirst(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", models.ProfileID).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	return &profile, nil
}

// Upsert applies patch to the stored profile, creating it on first write. The
// row is inserted with ON CONFLICT DO NOTHING and then locked, so concurrent
// first writes queue on the same row.
func (r *ProfileRepo) Upsert(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	var profile *models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		seed := models.Profile{ID: models.ProfileID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		profile, err = updateLocked(tx, models.ProfileID, func(p *models.Profile) error {
			patch.Apply(p)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, errs.NewDatabaseError("upsert", "profile", err)
	}
	return profile, nil
}
