package models

import "time"

// SettingsRecord stores one serialized preferences document per key.
// The value is kept as an opaque JSON blob so the schema never has to
// change when preference fields are added.
type SettingsRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the default table name
func (SettingsRecord) TableName() string {
	return "settings_records"
}
