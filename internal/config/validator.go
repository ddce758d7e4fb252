package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "console", "text", "json":
			return true
		}
		return false
	})
}

// ValidateConfig checks the loaded configuration against struct tags.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
