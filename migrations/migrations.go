package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"demoday/config"
	"demoday/repository"

	_ "github.com/lib/pq"
)

// Brings the schema up to date without starting the server: the gorm models
// are migrated first, then numbered sql files from migrations/ are applied in
// order starting after the stored version.
func main() {
	cfg := config.Env()
	gormDB, err := config.InitDB(cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(gormDB); err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", config.DSN(cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db)
	if err != nil {
		log.Fatal(err)
	}

	for {
		err = migrateUp(db, version+1)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("Schema is at version %d\n", version)
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		version++
	}
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(file)); err != nil {
		tx.Rollback()
		return fmt.Errorf("error executing migration %d: %w", version, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("UPDATE %s.migrations SET version = $1", config.Schema), version); err != nil {
		tx.Rollback()
		return fmt.Errorf("error updating migration version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	err = db.QueryRow(fmt.Sprintf("SELECT version FROM %s.migrations", config.Schema)).Scan(&version)
	if err != nil {
		if err := generateMigrationTable(db); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s.migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO %[1]s.migrations (version) VALUES (0);
	`, config.Schema))
	return err
}
