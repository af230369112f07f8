package settings

import (
	"github.com/medigas/backend/internal/domain/shared"
)

// FontSize is the page font-size preference
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// IsValid checks if the value is a known FontSize
func (f FontSize) IsValid() bool {
	switch f {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	}
	return false
}

// Preferences is the user display-preferences record. It is persisted
// as a single serialized document under one fixed storage key.
type Preferences struct {
	DarkMode          bool     `json:"darkMode"`
	FontSize          FontSize `json:"fontSize"`
	AnimationsEnabled bool     `json:"animationsEnabled"`
}

// Default returns the markup-defined control defaults used when a
// field is absent from storage
func Default() Preferences {
	return Preferences{
		DarkMode:          false,
		FontSize:          FontSizeMedium,
		AnimationsEnabled: true,
	}
}

// Partial is a sparse preferences update; nil fields are left alone.
// Each settings control writes exactly one field.
type Partial struct {
	DarkMode          *bool     `json:"darkMode,omitempty"`
	FontSize          *FontSize `json:"fontSize,omitempty"`
	AnimationsEnabled *bool     `json:"animationsEnabled,omitempty"`
}

// Validate checks the partial's field values
func (p Partial) Validate() error {
	if p.FontSize != nil && !p.FontSize.IsValid() {
		return shared.NewDomainError("INVALID_FONT_SIZE", "Font size must be small, medium or large")
	}
	return nil
}

// IsEmpty reports whether the partial carries no fields
func (p Partial) IsEmpty() bool {
	return p.DarkMode == nil && p.FontSize == nil && p.AnimationsEnabled == nil
}

// Merge applies the partial over the receiver, last writer wins per
// field, and returns the merged record
func (prefs Preferences) Merge(p Partial) Preferences {
	merged := prefs
	if p.DarkMode != nil {
		merged.DarkMode = *p.DarkMode
	}
	if p.FontSize != nil {
		merged.FontSize = *p.FontSize
	}
	if p.AnimationsEnabled != nil {
		merged.AnimationsEnabled = *p.AnimationsEnabled
	}
	return merged
}

// VisualState is the page-level presentation derived from preferences:
// the body classes the client applies and the mirrored control states
type VisualState struct {
	BodyClasses       []string `json:"body_classes"`
	DarkModeChecked   bool     `json:"dark_mode_checked"`
	FontSizeValue     FontSize `json:"font_size_value"`
	AnimationsChecked bool     `json:"animations_checked"`
}

// Visual derives the visual state for the record
func (prefs Preferences) Visual() VisualState {
	classes := make([]string, 0, 3)
	if prefs.DarkMode {
		classes = append(classes, "dark-theme")
	}
	classes = append(classes, "font-"+string(prefs.FontSize))
	if !prefs.AnimationsEnabled {
		classes = append(classes, "no-animations")
	}
	return VisualState{
		BodyClasses:       classes,
		DarkModeChecked:   prefs.DarkMode,
		FontSizeValue:     prefs.FontSize,
		AnimationsChecked: prefs.AnimationsEnabled,
	}
}
