package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propview-backend/internal/model"
)

// GormSlot stores the value as a fixed-key row in the slots table.
type GormSlot struct {
	db  *gorm.DB
	key string
}

// NewGormSlot creates a database-backed slot under the given key.
func NewGormSlot(db *gorm.DB, key string) *GormSlot {
	return &GormSlot{db: db, key: key}
}

// Read returns the stored value, or (nil, nil) if no row exists for the key.
func (s *GormSlot) Read(ctx context.Context) ([]byte, error) {
	var record model.SlotRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", s.key, err)
	}
	return record.Value, nil
}

// Write upserts the row for the key.
func (s *GormSlot) Write(ctx context.Context, value []byte) error {
	record := model.SlotRecord{
		Key:       s.key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.key, err)
	}
	return nil
}
