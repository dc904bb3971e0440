package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"portfolio/internal/domain/album"
	"portfolio/internal/domain/asset"
	"portfolio/internal/domain/project"
)

// Connect opens the content database. Postgres DSNs get the postgres
// driver; anything else is treated as a SQLite path for local development.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate keeps the content schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&project.Project{},
		&album.Album{},
		&album.Content{},
		&asset.Asset{},
	)
}
