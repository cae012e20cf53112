package repository

import (
	"errors"
	"fmt"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist. Handlers map it
// to a 404.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&ds.Vendor{},
		&ds.RFP{},
		&ds.Proposal{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
