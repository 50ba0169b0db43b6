package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldMode targets GenerationConfig.Mode.
	FieldMode = "mode"
	// FieldLength targets GenerationConfig.Length.
	FieldLength = "length"
	// FieldCategories targets GenerationConfig.Categories.
	FieldCategories = "categories"
	// FieldCustomChars targets GenerationConfig.CustomChars.
	FieldCustomChars = "custom_chars"
	// FieldWordCount targets GenerationConfig.WordCount.
	FieldWordCount = "word_count"
	// FieldSeparator targets GenerationConfig.Separator.
	FieldSeparator = "separator"
	// FieldPattern targets GenerationConfig.Pattern.
	FieldPattern = "pattern"
	// FieldBulkCount targets GenerationConfig.BulkCount.
	FieldBulkCount = "bulk_count"

	// FieldPresetName targets Preset.Name.
	FieldPresetName = "preset_name"
	// FieldPresetConfig validates the embedded GenerationConfig of a Preset.
	FieldPresetConfig = "preset_config"

	// FieldExportFormat targets ExportRequest.Format.
	FieldExportFormat = "export_format"
	// FieldExportPasswords targets ExportRequest.Passwords.
	FieldExportPasswords = "export_passwords"

	// FieldPassword targets SecretRequest.Password.
	FieldPassword = "password"
)

const (
	maxCustomChars    = 1024
	maxPresetNameSize = 64
)

var allGenerationFields = []string{
	FieldMode, FieldLength, FieldCategories, FieldCustomChars,
	FieldWordCount, FieldSeparator, FieldPattern, FieldBulkCount,
}

// GenerationValidator implements the Validator interface for generation
// configs, presets, export requests and single-secret requests. Upper bounds
// come from the generator configuration.
type GenerationValidator struct {
	limits config.Generator
}

// NewGenerationValidator constructs a GenerationValidator enforcing limits
// and returns it as the Validator interface.
func NewGenerationValidator(limits config.Generator) Validator {
	return &GenerationValidator{limits: limits}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.GenerationConfig / *models.GenerationConfig
//   - models.Preset / *models.Preset
//   - models.ExportRequest / *models.ExportRequest
//   - models.SecretRequest / *models.SecretRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *GenerationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerationConfig:
		return v.validateGenerationConfig(ctx, value, fields...)
	case *models.GenerationConfig:
		return v.validateGenerationConfig(ctx, *value, fields...)

	case models.Preset:
		return v.validatePreset(ctx, value, fields...)
	case *models.Preset:
		return v.validatePreset(ctx, *value, fields...)

	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	case models.SecretRequest:
		return v.validateSecretRequest(ctx, value, fields...)
	case *models.SecretRequest:
		return v.validateSecretRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateGenerationConfig checks every bounded field of cfg. Zero values are
// accepted: the generators turn them into empty output.
func (v *GenerationValidator) validateGenerationConfig(_ context.Context, cfg models.GenerationConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = allGenerationFields
	}

	for _, f := range fields {
		switch f {
		case FieldMode:
			if !isKnownMode(cfg.Mode) {
				return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
			}
		case FieldLength:
			if cfg.Length < 0 || cfg.Length > v.limits.MaxLength {
				return fmt.Errorf("%w: %d not in 0..%d", ErrInvalidLength, cfg.Length, v.limits.MaxLength)
			}
		case FieldCategories:
			for _, category := range cfg.Categories {
				if !isKnownCategory(category) {
					return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
				}
			}
		case FieldCustomChars:
			if !utf8.ValidString(cfg.CustomChars) || utf8.RuneCountInString(cfg.CustomChars) > maxCustomChars {
				return ErrInvalidCustomChars
			}
		case FieldWordCount:
			if cfg.WordCount < 0 || cfg.WordCount > v.limits.MaxWordCount {
				return fmt.Errorf("%w: %d not in 0..%d", ErrInvalidWordCount, cfg.WordCount, v.limits.MaxWordCount)
			}
		case FieldSeparator:
			if utf8.RuneCountInString(cfg.Separator) > 1 {
				return ErrInvalidSeparator
			}
		case FieldPattern:
			if !utf8.ValidString(cfg.Pattern) || utf8.RuneCountInString(cfg.Pattern) > v.limits.MaxLength {
				return fmt.Errorf("%w: longer than %d runes", ErrInvalidPattern, v.limits.MaxLength)
			}
		case FieldBulkCount:
			if cfg.BulkCount < 0 || cfg.BulkCount > v.limits.MaxBulkCount {
				return fmt.Errorf("%w: %d not in 0..%d", ErrInvalidBulkCount, cfg.BulkCount, v.limits.MaxBulkCount)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePreset validates the preset name and, by default, its config.
func (v *GenerationValidator) validatePreset(ctx context.Context, preset models.Preset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPresetName, FieldPresetConfig}
	}

	for _, f := range fields {
		switch f {
		case FieldPresetName:
			if err := ValidatePresetName(preset.Name); err != nil {
				return err
			}
		case FieldPresetConfig:
			if err := v.validateGenerationConfig(ctx, preset.Config); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateExportRequest(_ context.Context, req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExportFormat, FieldExportPasswords}
	}

	for _, f := range fields {
		switch f {
		case FieldExportFormat:
			if !isKnownFormat(req.Format) {
				return fmt.Errorf("%w: %q", ErrInvalidExportFormat, req.Format)
			}
		case FieldExportPasswords:
			if len(req.Passwords) == 0 {
				return ErrEmptyPasswords
			}
			if len(req.Passwords) > v.limits.MaxBulkCount {
				return ErrTooManyPasswords
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateSecretRequest(_ context.Context, req models.SecretRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(req.Password) > v.limits.MaxLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidatePresetName accepts 1 to 64 characters without control characters
// or surrounding whitespace.
func ValidatePresetName(name string) error {
	if name == "" || strings.TrimSpace(name) != name || utf8.RuneCountInString(name) > maxPresetNameSize {
		return ErrInvalidPresetName
	}
	for _, r := range name {
		if unicode.IsControl(r) || r == '/' {
			return ErrInvalidPresetName
		}
	}
	return nil
}

func isKnownMode(mode models.Mode) bool {
	for _, known := range models.Modes {
		if mode == known {
			return true
		}
	}
	return false
}

func isKnownCategory(category models.Category) bool {
	for _, known := range models.Categories {
		if category == known {
			return true
		}
	}
	return false
}

func isKnownFormat(format models.ExportFormat) bool {
	for _, known := range models.ExportFormats {
		if format == known {
			return true
		}
	}
	return false
}
