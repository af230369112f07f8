package persistence

import (
	"context"
	"errors"

	"github.com/medigas/backend/internal/domain/shared"
	"github.com/medigas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements settings.Repository using GORM
type GormSettingsRepository struct {
	db  *gorm.DB
	key string
}

// NewGormSettingsRepository creates a repository bound to the given record key
func NewGormSettingsRepository(db *gorm.DB, key string) *GormSettingsRepository {
	return &GormSettingsRepository{db: db, key: key}
}

// Load returns the stored preferences document, or shared.ErrNotFound
// when nothing has been saved yet
func (r *GormSettingsRepository) Load(ctx context.Context) ([]byte, error) {
	var record models.SettingsRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", r.key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

// Save upserts the preferences document under the repository's key
func (r *GormSettingsRepository) Save(ctx context.Context, value []byte) error {
	record := models.SettingsRecord{Key: r.key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
}
