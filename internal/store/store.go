// Package store is the data access layer. Every read and write is scoped
// to the owning user and excludes soft-deleted records; aggregations are
// pushed into the database as SQL pipelines.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound signals that an id does not resolve for the caller.
var ErrNotFound = errors.New("record not found")

// Store wraps the database handle with user/soft-delete scoping.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an initialized database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for auth and migration plumbing.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// owned starts a query scoped to the user's live records.
func (s *Store) owned(ctx context.Context, userID string, model interface{}) *gorm.DB {
	return s.db.WithContext(ctx).Model(model).
		Where("user_id = ? AND is_deleted = ?", userID, false)
}

// Query tunes a FindPage call. The zero value means "all records, newest
// first".
type Query struct {
	Filter func(*gorm.DB) *gorm.DB
	Sort   string
	Skip   int
	Limit  int
}

// Count counts the user's live records of type T matching the query filter.
func Count[T any](ctx context.Context, s *Store, userID string, q Query) (int64, error) {
	tx := s.owned(ctx, userID, new(T))
	if q.Filter != nil {
		tx = q.Filter(tx)
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// FindPage returns an ordered page of the user's live records of type T.
// Sort defaults to creation time descending.
func FindPage[T any](ctx context.Context, s *Store, userID string, q Query) ([]T, error) {
	tx := s.owned(ctx, userID, new(T))
	if q.Filter != nil {
		tx = q.Filter(tx)
	}
	sort := q.Sort
	if sort == "" {
		sort = "created_at DESC"
	}
	tx = tx.Order(sort)
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	return out, nil
}

// FindByID resolves one of the user's live records by id.
func FindByID[T any](ctx context.Context, s *Store, userID, id string) (*T, error) {
	var rec T
	err := s.owned(ctx, userID, new(T)).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &rec, nil
}

// Create inserts a record.
func (s *Store) Create(ctx context.Context, rec interface{}) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Save persists all fields of an already loaded record.
func (s *Store) Save(ctx context.Context, rec interface{}) error {
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// SoftDelete flips is_deleted on one of the user's live records. Records
// are never physically removed.
func SoftDelete[T any](ctx context.Context, s *Store, userID, id string) error {
	res := s.owned(ctx, userID, new(T)).Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return fmt.Errorf("soft delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DateBetween filters on the transaction date column, bounds inclusive.
func DateBetween(from, to interface{}) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("date >= ? AND date <= ?", from, to)
	}
}

// CreatedBetween filters on record creation time, bounds inclusive.
func CreatedBetween(from, to interface{}) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("created_at >= ? AND created_at <= ?", from, to)
	}
}
