package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema from the repository models. Used for SQLite
// development databases and tests; PostgreSQL schema is owned by the goose
// migrations, which also carry the non-overlap exclusion constraint that
// AutoMigrate cannot express.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&branchModel{},
		&blockModel{},
		&bookingModel{},
	)
}
