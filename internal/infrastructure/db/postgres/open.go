package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL. TranslateError makes the driver surface
// unique-index violations as gorm.ErrDuplicatedKey, which the repositories
// rely on instead of check-then-insert.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &TaskModel{}, &TokenModel{})
}
