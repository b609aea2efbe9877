package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// FindByUsername returns an errs.ErrNotFound error when no admin has that username.
func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	return &admin, nil
}

func (r *AdminRepo) Add(ctx context.Context, admin *models.Admin) error {
	assignID(&admin.ID)
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return errs.NewDatabaseError("create", "admin", err)
	}
	return nil
}

// Replace deletes every admin and stores admin as the only credential.
func (r *AdminRepo) Replace(ctx context.Context, admin *models.Admin) error {
	assignID(&admin.ID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Admin{}).Error; err != nil {
			return err
		}
		return tx.Create(admin).Error
	})
	if err != nil {
		return errs.NewDatabaseError("replace", "admin", err)
	}
	return nil
}
