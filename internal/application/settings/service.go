package settings

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/medigas/backend/internal/domain/settings"
	"github.com/medigas/backend/internal/domain/shared"
)

// Service loads and updates the display-preferences record. All writes
// come from the single page client, so read-modify-write without
// storage-level locking is acceptable: last writer wins per field.
type Service struct {
	repo settings.Repository
	log  *zap.Logger
}

// NewService creates a settings service over the given repository
func NewService(repo settings.Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.Named("settings"),
	}
}

// Load reads the stored record and merges it over the defaults.
// A missing record yields the defaults; a corrupted record is treated
// as empty rather than failing startup.
func (s *Service) Load(ctx context.Context) (settings.Preferences, error) {
	prefs := settings.Default()

	raw, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return prefs, nil
		}
		return prefs, err
	}

	var stored settings.Partial
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn("Stored preferences record is not parseable, falling back to defaults",
			zap.Error(err))
		return prefs, nil
	}
	if err := stored.Validate(); err != nil {
		s.log.Warn("Stored preferences record carries invalid values, falling back to defaults",
			zap.Error(err))
		return prefs, nil
	}

	return prefs.Merge(stored), nil
}

// Update merges the partial into the stored record and returns the
// merged preferences with their derived visual state
func (s *Service) Update(ctx context.Context, partial settings.Partial) (settings.Preferences, error) {
	if err := partial.Validate(); err != nil {
		return settings.Preferences{}, err
	}
	if partial.IsEmpty() {
		return settings.Preferences{}, shared.NewDomainError("EMPTY_UPDATE", "Settings update carries no fields")
	}

	current, err := s.Load(ctx)
	if err != nil {
		return settings.Preferences{}, err
	}

	merged := current.Merge(partial)
	raw, err := json.Marshal(merged)
	if err != nil {
		return settings.Preferences{}, err
	}
	if err := s.repo.Save(ctx, raw); err != nil {
		return settings.Preferences{}, err
	}

	s.log.Info("Preferences updated",
		zap.Bool("dark_mode", merged.DarkMode),
		zap.String("font_size", string(merged.FontSize)),
		zap.Bool("animations_enabled", merged.AnimationsEnabled),
	)

	return merged, nil
}
