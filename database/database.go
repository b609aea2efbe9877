package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type Database struct {
	db          *gorm.DB
	adminRepo   *AdminRepo
	projectRepo *ProjectRepo
	inquiryRepo *InquiryRepo
	profileRepo *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		adminRepo:   NewAdminRepo(db),
		projectRepo: NewProjectRepo(db),
		inquiryRepo: NewInquiryRepo(db),
		profileRepo: NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

// Migrate creates or updates the tables for every persisted model.
func (d Database) Migrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// Ping checks that the connection pool can reach the database.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
