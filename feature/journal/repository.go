package journal

import (
	"context"
	"fmt"

	"update-reconciler/core/reconcile"

	"gorm.io/gorm"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Repository stores journal entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the journal table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate journal: %w", err)
	}
	return nil
}

// Record implements reconcile.Recorder.
func (r *Repository) Record(ctx context.Context, rec reconcile.Record) error {
	entry := NewEntry(rec)
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
// A non-positive limit selects the default.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	var entries []Entry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	return entries, nil
}
