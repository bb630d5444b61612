package validators

import (
	"context"
	"testing"

	"github.com/promptdeck/promptdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNewCommand() models.NewCommand {
	return models.NewCommand{
		Title:       "Explain a stack trace",
		Description: "Walks through a Go panic output",
		Category:    "debugging",
		Level:       models.LevelBeginner,
		Prompt:      "Explain the following stack trace:",
		Tags:        models.Tags{"go", "debugging"},
	}
}

func TestCommandValidator_NewCommand(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.NewCommand)
		wantErr error
	}{
		{
			name:   "valid input",
			mutate: func(*models.NewCommand) {},
		},
		{
			name:    "empty title",
			mutate:  func(c *models.NewCommand) { c.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace-only title",
			mutate:  func(c *models.NewCommand) { c.Title = "   " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty description",
			mutate:  func(c *models.NewCommand) { c.Description = "" },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "empty category",
			mutate:  func(c *models.NewCommand) { c.Category = "" },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "unknown level",
			mutate:  func(c *models.NewCommand) { c.Level = "expert" },
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "empty prompt",
			mutate:  func(c *models.NewCommand) { c.Prompt = "" },
			wantErr: ErrEmptyPrompt,
		},
		{
			name:    "blank tag",
			mutate:  func(c *models.NewCommand) { c.Tags = models.Tags{"go", " "} },
			wantErr: ErrEmptyTag,
		},
		{
			name: "optional fields may be empty",
			mutate: func(c *models.NewCommand) {
				c.Usage = ""
				c.EstimatedTime = ""
				c.Tags = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validNewCommand()
			tt.mutate(&input)

			err := v.Validate(ctx, input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommandValidator_NewCommand_PointerForm(t *testing.T) {
	v := NewCommandValidator()
	input := validNewCommand()

	require.NoError(t, v.Validate(context.Background(), &input))
}

func TestCommandValidator_NewCommand_FieldScoping(t *testing.T) {
	v := NewCommandValidator()

	input := validNewCommand()
	input.Description = ""

	// only the title is checked, so the empty description passes
	require.NoError(t, v.Validate(context.Background(), input, FieldTitle))
}

func TestCommandValidator_CommandPatch(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }
	levelPtr := func(l models.Level) *models.Level { return &l }

	tests := []struct {
		name    string
		patch   models.CommandPatch
		wantErr error
	}{
		{
			name:  "single valid field",
			patch: models.CommandPatch{Title: strPtr("renamed")},
		},
		{
			name:    "empty patch",
			patch:   models.CommandPatch{},
			wantErr: ErrEmptyPatch,
		},
		{
			name:    "blank title",
			patch:   models.CommandPatch{Title: strPtr("  ")},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "invalid level",
			patch:   models.CommandPatch{Level: levelPtr("wizard")},
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "blank tag",
			patch:   models.CommandPatch{Tags: &models.Tags{""}},
			wantErr: ErrEmptyTag,
		},
		{
			name:  "clearing optional usage is allowed",
			patch: models.CommandPatch{Usage: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommandValidator_Credentials(t *testing.T) {
	v := NewCommandValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.User{Email: "a@b.c", Password: "secret"}))

	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Email: "a@b.c"}), ErrEmptyPassword)
}

func TestCommandValidator_UnsupportedType(t *testing.T) {
	v := NewCommandValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestCommandValidator_UnknownField(t *testing.T) {
	v := NewCommandValidator()

	err := v.Validate(context.Background(), validNewCommand(), "nonsense")
	assert.ErrorIs(t, err, ErrUnknownField)
}
