package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by display_order, oldest first on ties
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).Order("display_order ASC").Order("created_at ASC").Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	assignID(&project.ID)
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update applies patch to the stored project while holding its row lock. Only the
// fields present in patch change; the merged project must still validate.
func (r *ProjectRepo) Update(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	var project *models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		project, err = updateLocked(tx, id, func(p *models.Project) error {
			patch.Apply(p)
			return p.Validate()
		})
		return err
	})
	if err != nil {
		return nil, updateError("project", err)
	}
	return project, nil
}

// Delete removes a project by id. Deleting a missing id is not an error.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
