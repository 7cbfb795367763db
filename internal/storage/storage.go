package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/roi-server/internal/config"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

type Storage struct {
	DB       *sql.DB
	Revenues lineitem.IReader
	Expenses lineitem.IReader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return New(db), nil
}

// New wraps an open database handle.
func New(db *sql.DB) *Storage {
	reader := NewReader(bob.NewDB(db))
	return &Storage{
		DB:       db,
		Revenues: reader.Revenues,
		Expenses: reader.Expenses,
	}
}

// Write opens a transaction and returns a Writer bound to it.
// The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
