package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every entity. The
// Postgres deployment applies the SQL migrations instead; this is the
// bootstrap path for the embedded SQLite database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PEFirm{},
		&Company{},
		&CompanyPEInvestment{},
		&CompanyTag{},
		&ScrapeRun{},
	)
}
