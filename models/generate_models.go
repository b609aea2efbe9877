package models

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

/*
Column Mismatch Report Usage:

This file contains functionality to generate a report of database columns that aren't
accounted for as fields in the corresponding Go model structs.

To generate the report:

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the application: go run .

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: inquiries ---
Found 1 columns not accounted for in model:
  - phone

--- Table: projects ---
All columns are accounted for in the model.

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Project{},
		&Inquiry{},
		&Profile{},
	}
}

// GenerateModels migrates the schema and writes typed query helpers to ./generated.
func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	// Set up verbose logging for migration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 newLogger,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(migrateDB)
	g.ApplyBasic(All()...)

	fmt.Println("Migrating models...")
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("error during models migration: %w", err)
	}
	fmt.Println("Database migration completed successfully!")

	GenerateColumnMismatchReport(db)

	g.Execute()
	fmt.Println("Model generation complete!")
	return nil
}

// GenerateColumnMismatchReport prints database columns that aren't accounted for in Go models
func GenerateColumnMismatchReport(db *gorm.DB) {
	fmt.Println("=== COLUMN MISMATCH REPORT ===")

	totalMismatches := 0
	for _, model := range All() {
		s, err := schema.Parse(model, &sync.Map{}, db.NamingStrategy)
		if err != nil {
			fmt.Printf("Error parsing model %T: %v\n", model, err)
			continue
		}

		fmt.Printf("\n--- Table: %s ---\n", s.Table)

		dbColumns, err := getTableColumns(db, s.Table)
		if err != nil {
			if strings.Contains(err.Error(), "does not exist") {
				fmt.Println("Table does not exist yet (will be created during migration)")
			} else {
				fmt.Printf("Error getting columns for table %s: %v\n", s.Table, err)
			}
			continue
		}

		mismatches := findColumnMismatches(dbColumns, s.DBNames)
		if len(mismatches) > 0 {
			fmt.Printf("Found %d columns not accounted for in model:\n", len(mismatches))
			for _, col := range mismatches {
				fmt.Printf("  - %s\n", col)
			}
			totalMismatches += len(mismatches)
		} else {
			fmt.Println("All columns are accounted for in the model.")
		}
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Total mismatched columns across all tables: %d\n", totalMismatches)
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	var columns []string
	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = CURRENT_SCHEMA()
		ORDER BY ordinal_position
	`
	if err := db.Raw(query, tableName).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist", tableName)
	}

	return columns, nil
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)

	return mismatches
}
