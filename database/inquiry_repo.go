package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db}
}

// FindAll returns all inquiries, newest first
func (r *InquiryRepo) FindAll(ctx context.Context) ([]*models.Inquiry, error) {
	inquiries := []*models.Inquiry{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "inquiries", err)
	}
	return inquiries, nil
}

func (r *InquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "inquiry", err)
	}
	return &inquiry, nil
}

func (r *InquiryRepo) Add(ctx context.Context, inquiry *models.Inquiry) error {
	assignID(&inquiry.ID)
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return errs.NewDatabaseError("create", "inquiry", err)
	}
	return nil
}

// Update applies patch to the stored inquiry under its row lock.
func (r *InquiryRepo) Update(ctx context.Context, id uuid.UUID, patch models.InquiryPatch) (*models.Inquiry, error) {
	var inquiry *models.Inquiry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		inquiry, err = updateLocked(tx, id, func(i *models.Inquiry) error {
			patch.Apply(i)
			return i.Validate()
		})
		return err
	})
	if err != nil {
		return nil, updateError("inquiry", err)
	}
	return inquiry, nil
}

func (r *InquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Inquiry{}, "id = ?", id).Error; err != nil {
		return errs.NewDatabaseError("delete", "inquiry", err)
	}
	return nil
}
