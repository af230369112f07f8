package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/medigas/backend/internal/domain/settings"
)

// RegisterValidators installs custom binding validations used by the
// page's request shapes. Must run once before routes are served.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fontsize", validFontSize)
	}
}

// validFontSize accepts only the size values the settings panel offers
func validFontSize(fl validator.FieldLevel) bool {
	return settings.FontSize(fl.Field().String()).IsValid()
}
