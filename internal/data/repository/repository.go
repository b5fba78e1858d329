package repository

import (
	"secure-it/pkg/database"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository struct {
	Customer CustomerRepository
	SiteMode SiteModeRepository
}

// NewRepository wires the Postgres-backed repositories.
func NewRepository(db database.PgxIface, siteMode SiteModeRepository, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewCustomerRepository(db, log),
		SiteMode: siteMode,
	}
}

// NewMySQLRepository wires the MySQL-backed repositories.
func NewMySQLRepository(db *sqlx.DB, siteMode SiteModeRepository, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewMySQLCustomerRepository(db, log),
		SiteMode: siteMode,
	}
}
