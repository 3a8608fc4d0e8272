package store

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Provider opens a Store against a configured backend.
type Provider interface {
	Provide() (Store, error)
}

// SqliteProvider opens a file-backed sqlite store.
type SqliteProvider struct {
	Path string
}

func (p *SqliteProvider) Provide() (Store, error) {
	db, err := gorm.Open(sqlite.Open(p.Path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewGormStore(db), nil
}

// PostgresProvider opens a postgres store from a DSN.
type PostgresProvider struct {
	DSN string
}

func (p *PostgresProvider) Provide() (Store, error) {
	db, err := gorm.Open(postgres.Open(p.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewGormStore(db), nil
}

// NewProvider picks a provider by driver name.
func NewProvider(driver, path, dsn string) (Provider, error) {
	switch driver {
	case "sqlite":
		return &SqliteProvider{Path: path}, nil
	case "postgres":
		return &PostgresProvider{DSN: dsn}, nil
	default:
		return nil, ErrUnknownDriver
	}
}
