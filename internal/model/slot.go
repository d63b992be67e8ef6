package model

import "time"

// SlotRecord is a single named blob in the database-backed key-value slot.
// The favorites collection is serialized wholesale into Value.
type SlotRecord struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides gorm's default pluralized name.
func (SlotRecord) TableName() string { return "slots" }
