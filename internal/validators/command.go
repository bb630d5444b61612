package validators

import (
	"context"
	"strings"

	"github.com/promptdeck/promptdeck/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldTitle targets the unique display title of a command.
	FieldTitle = "title"

	// FieldDescription targets the short description of a command.
	FieldDescription = "description"

	// FieldCategory targets the category name of a command.
	FieldCategory = "category"

	// FieldLevel targets the difficulty level of a command.
	FieldLevel = "level"

	// FieldPrompt targets the prompt body of a command.
	FieldPrompt = "prompt"

	// FieldTags targets the tag list of a command.
	FieldTags = "tags"

	// FieldEmail targets the login email of a credentials pair.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credentials pair.
	FieldPassword = "password"
)

// CommandValidator implements the Validator interface for the command-facing
// domain models: NewCommand, CommandPatch, and User credentials.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
// All required-field checks trim whitespace first, so a title of "   " is
// rejected the same way as an empty one.
type CommandValidator struct {
}

// NewCommandValidator constructs a new CommandValidator
// and returns it as the Validator interface.
func NewCommandValidator() Validator {
	return &CommandValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.NewCommand / *models.NewCommand
//   - models.CommandPatch / *models.CommandPatch
//   - models.User / *models.User (credentials only)
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewCommand:
		return v.validateNewCommand(ctx, value, fields...)
	case *models.NewCommand:
		return v.validateNewCommand(ctx, *value, fields...)

	case models.CommandPatch:
		return v.validateCommandPatch(ctx, value, fields...)
	case *models.CommandPatch:
		return v.validateCommandPatch(ctx, *value, fields...)

	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateNewCommand validates a creation input.
//
// Default validated fields (when none specified):
// Title, Description, Category, Level, Prompt, Tags.
//
// Returns the first encountered validation error or nil.
func (v *CommandValidator) validateNewCommand(_ context.Context, input models.NewCommand, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldCategory, FieldLevel, FieldPrompt, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(input.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if blank(input.Description) {
				return ErrEmptyDescription
			}
		case FieldCategory:
			if blank(input.Category) {
				return ErrEmptyCategory
			}
		case FieldLevel:
			if !input.Level.Valid() {
				return ErrInvalidLevel
			}
		case FieldPrompt:
			if blank(input.Prompt) {
				return ErrEmptyPrompt
			}
		case FieldTags:
			for _, tag := range input.Tags {
				if blank(tag) {
					return ErrEmptyTag
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCommandPatch validates a sparse update descriptor.
//
// Field-level checks only trigger when the corresponding pointer is non-nil
// (partial update semantics: nil means "do not touch"). A non-nil required
// field must still be non-blank; optional fields (usage, estimated time) may
// be set to the empty string to clear them.
//
// After field-level checks, an additional structural rule is enforced:
// at least one field must be non-nil. Returns ErrEmptyPatch otherwise.
func (v *CommandValidator) validateCommandPatch(_ context.Context, patch models.CommandPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldCategory, FieldLevel, FieldPrompt, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if patch.Title != nil && blank(*patch.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if patch.Description != nil && blank(*patch.Description) {
				return ErrEmptyDescription
			}
		case FieldCategory:
			if patch.Category != nil && blank(*patch.Category) {
				return ErrEmptyCategory
			}
		case FieldLevel:
			if patch.Level != nil && !patch.Level.Valid() {
				return ErrInvalidLevel
			}
		case FieldPrompt:
			if patch.Prompt != nil && blank(*patch.Prompt) {
				return ErrEmptyPrompt
			}
		case FieldTags:
			if patch.Tags != nil {
				for _, tag := range *patch.Tags {
					if blank(tag) {
						return ErrEmptyTag
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if patch.Empty() {
		return ErrEmptyPatch
	}

	return nil
}

// validateCredentials validates the email/password pair of a login or
// registration request.
//
// Default validated fields: Email, Password.
func (v *CommandValidator) validateCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(user.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
