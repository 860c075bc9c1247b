package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

// MigrateUp runs, in order, every Migration whose Key has not been recorded
// in the migrations table yet.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := ensureSchema(db, schema); err != nil {
		return err
	}

	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	ran, err := ranMigrationKeys(db)
	if err != nil {
		return err
	}

	for _, m := range migrationsToRun(ran, migrations) {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("failed migration %q: %w", m.Key, err)
		}

		// There was no error, so create a record for the migration
		if err := createMigrationRecord(db, m.Key); err != nil {
			return err
		}
	}

	return nil
}

func ensureSchema(db *gorm.DB, schema string) error {
	return db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error
}

func ensureMigrationsTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
}

func ranMigrationKeys(db *gorm.DB) ([]string, error) {
	var keys []string
	if err := db.Raw("SELECT key FROM migrations;").Scan(&keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}

// migrationsToRun compares recorded migration keys to all migration keys
// to determine which still need to run.
func migrationsToRun(ran []string, all []Migration) []Migration {
	if len(ran) == 0 {
		return all
	}

	ranSet := make(map[string]struct{}, len(ran))
	for _, key := range ran {
		ranSet[key] = struct{}{}
	}

	var toRun []Migration
	for _, m := range all {
		if _, ok := ranSet[m.Key]; !ok {
			toRun = append(toRun, m)
		}
	}

	return toRun
}

func createMigrationRecord(db *gorm.DB, key string) error {
	return db.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, key, time.Now().Unix()).Error
}
