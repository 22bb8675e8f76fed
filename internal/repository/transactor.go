package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs fn against check-in and session repositories bound to a
// single database transaction. Returning an error from fn rolls back every
// write made through them.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(emas EMARepository, sessions SessionRepository) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) InTransaction(ctx context.Context, fn func(emas EMARepository, sessions SessionRepository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewEMARepository(tx), NewSessionRepository(tx))
	})
}
