package store

import "github.com/caltrack/caltrack/internal/logger"

// Repositories bundles every repository the service layer depends on.
type Repositories struct {
	Catalog CatalogRepository
	Intake  IntakeRepository
}

// NewRepositories constructs all repositories over the shared database
// handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(db, log),
		Intake:  NewIntakeRepository(db, log),
	}
}
