package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

const (
	ProjectTypeWeb   = "web"
	ProjectTypeML    = "ml"
	ProjectTypeOther = "other"
)

var projectTypes = []string{ProjectTypeWeb, ProjectTypeML, ProjectTypeOther}

// Project represents a portfolio entry shown in the projects section
type Project struct {
	ID           uuid.UUID                   `json:"_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" gorm:"type:text;not null"`
	Type         string                      `json:"type" gorm:"type:text;not null;default:web"`
	Tags         datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	ImageURL     string                      `json:"image_url" gorm:"type:text"`
	LiveURL      string                      `json:"live_url" gorm:"type:text"`
	GithubURL    string                      `json:"github_url" gorm:"type:text"`
	IsFeatured   bool                        `json:"is_featured" gorm:"not null;default:false"`
	DisplayOrder int                         `json:"display_order" gorm:"not null;default:0;index"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// ProjectPatch carries the client-writable project fields. Nil fields are left untouched.
type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Type         *string   `json:"type"`
	Tags         *[]string `json:"tags"`
	ImageURL     *string   `json:"image_url"`
	LiveURL      *string   `json:"live_url"`
	GithubURL    *string   `json:"github_url"`
	IsFeatured   *bool     `json:"is_featured"`
	DisplayOrder *int      `json:"display_order"`
}

// NewProject builds a validated project from a create request.
func NewProject(patch ProjectPatch) (*Project, error) {
	project := &Project{}
	patch.Apply(project)
	project.ApplyDefaults()
	if err := project.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

// Apply overwrites the fields present in the patch.
func (p ProjectPatch) Apply(project *Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Type != nil {
		project.Type = *p.Type
	}
	if p.Tags != nil {
		project.Tags = append(datatypes.JSONSlice[string]{}, (*p.Tags)...)
	}
	if p.ImageURL != nil {
		project.ImageURL = *p.ImageURL
	}
	if p.LiveURL != nil {
		project.LiveURL = *p.LiveURL
	}
	if p.GithubURL != nil {
		project.GithubURL = *p.GithubURL
	}
	if p.IsFeatured != nil {
		project.IsFeatured = *p.IsFeatured
	}
	if p.DisplayOrder != nil {
		project.DisplayOrder = *p.DisplayOrder
	}
}

func (p *Project) ApplyDefaults() {
	if p.Type == "" {
		p.Type = ProjectTypeWeb
	}
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if !oneOf(p.Type, projectTypes) {
		return errs.NewInvalidFieldError("type", "must be one of "+strings.Join(projectTypes, ", "))
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
