package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = newConfigValidator()

// newConfigValidator reports fields by their config keys (transfers.count, not
// Config.Transfers.Count) and adds the cross-field rules tags cannot express.
func newConfigValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})
	v.RegisterStructValidation(validatePool, PoolConfig{})
	v.RegisterStructValidation(validateThrottle, ThrottleConfig{})

	return v
}

func validateDatabase(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)

	switch db.Type {
	case "postgres":
		if db.URL == "" {
			return
		}
		u, err := url.Parse(db.URL)
		if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") || u.Host == "" {
			sl.ReportError(db.URL, "url", "URL", "postgresurl", "")
		}
	case "sqlite":
		if db.Path == "" {
			sl.ReportError(db.Path, "path", "Path", "required_for_sqlite", "")
		}
	}
}

func validatePool(sl validator.StructLevel) {
	pool := sl.Current().Interface().(PoolConfig)
	if pool.MaxIdle > pool.MaxOpen {
		sl.ReportError(pool.MaxIdle, "max_idle", "MaxIdle", "ltefield", "max_open")
	}
}

func validateThrottle(sl validator.StructLevel) {
	throttle := sl.Current().Interface().(ThrottleConfig)
	if throttle.Enabled() && throttle.Burst < 1 {
		sl.ReportError(throttle.Burst, "burst", "Burst", "min", "1")
	}
}

// describeFieldError turns one failed rule into a sentence about the config key
func describeFieldError(e validator.FieldError) string {
	key := strings.TrimPrefix(e.Namespace(), "Config.")

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", key)
	case "required_for_sqlite":
		return fmt.Sprintf("%s is required when database.type is sqlite", key)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got '%v'", key, e.Param(), e.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", key, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", key, e.Param(), e.Value())
	case "startswith":
		return fmt.Sprintf("%s must start with '%s', got '%v'", key, e.Param(), e.Value())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", key, e.Param())
	case "postgresurl":
		return fmt.Sprintf("%s must be a postgres:// or postgresql:// URL with a host", key)
	default:
		return fmt.Sprintf("%s failed '%s' validation (value: '%v')", key, e.Tag(), e.Value())
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		messages = append(messages, describeFieldError(e))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}
