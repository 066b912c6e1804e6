package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const Schema = "demoday"

var enumQueries = []string{
	`CREATE TYPE demoday.event_mode AS ENUM ('standard_judging', 'appreciation_only')`,
	`CREATE TYPE demoday.prize_type AS ENUM ('general', 'track', 'sponsor', 'track_sponsor')`,
	`CREATE TYPE demoday.score_basis AS ENUM ('overall', 'categories', 'none')`,
}

func DSN(host string, port string, user string, password string, dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, user, password, dbName, Schema)
}

func GormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   Schema + ".",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	}
}

// InitDB opens the connection and prepares the schema and enum types.
// Table migration lives in the repository package.
func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(host, port, user, password, dbName)), GormConfig())
	if err != nil {
		return nil, err
	}
	if err := PrepareSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func PrepareSchema(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS ` + Schema)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}
	return nil
}
