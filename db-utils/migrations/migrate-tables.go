package migrations

import (
	"slices"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"zoo-service/db-utils/models"
)

func MigrateAllTables(db *gorm.DB) error {
	// one transaction per table, a failed migration must not leave the
	// earlier tables half done
	for _, model := range []any{&models.Animal{}, &models.Enclosure{}, &models.Zookeeper{}} {
		if err := migrateTable(db, model); err != nil {
			return err
		}
	}
	return nil
}

func migrateTable(db *gorm.DB, model any) error {
	// define as a transaction block
	return db.Transaction(func(tx *gorm.DB) error {
		// apply manual changes for every condition
		// no table
		if !tx.Migrator().HasTable(model) {
			if err := tx.Migrator().CreateTable(model); err != nil {
				return err
			}
			// no additional checks required
			return nil
		}
		// get column names in existing table
		columns, err := tx.Migrator().ColumnTypes(model)
		if err != nil {
			return err
		}
		// get column names in the gorm schema
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		if err != nil {
			panic("failed to parse schema")
		}
		var schemaColumns []string
		for _, field := range s.Fields {
			schemaColumns = append(schemaColumns, field.DBName)
		}
		// add missing columns
		for _, column := range schemaColumns {
			if !tx.Migrator().HasColumn(model, column) {
				tx.Migrator().AddColumn(model, column)
			}
		}
		// remove redundant columns
		for _, column := range columns {
			if !slices.Contains(schemaColumns, column.Name()) {
				tx.Migrator().DropColumn(model, column.Name())
			}
		}

		// table migrated
		return nil
	})
}
