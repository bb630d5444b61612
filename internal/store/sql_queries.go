package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/promptdeck/promptdeck/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	getCommandByID = `SELECT id, title, description, category_name, level, prompt,
        usage_instructions, tags, estimated_time, views, copies, popularity,
        is_active, created_by, created_at, updated_at
    FROM commands
    WHERE id = $1 AND is_active;`

	insertCommand = `INSERT INTO commands (
			id,
			title,
			description,
			category_name,
			level,
			prompt,
			usage_instructions,
			tags,
			estimated_time,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, description, category_name, level, prompt,
			usage_instructions, tags, estimated_time, views, copies, popularity,
			is_active, created_by, created_at, updated_at;`

	deactivateCommand = `UPDATE commands
		SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active;`

	incrementCommandViews  = `SELECT increment_command_views($1);`
	incrementCommandCopies = `SELECT increment_command_copies($1);`

	logUserActivity = `SELECT log_user_activity($1, $2, $3, $4);`

	insertFavorite = `INSERT INTO favorites (user_id, command_id)
		VALUES ($1, $2)
		RETURNING id, user_id, command_id, created_at;`

	deleteFavorite = `DELETE FROM favorites
		WHERE user_id = $1 AND command_id = $2;`

	listFavoriteCommandIDs = `SELECT command_id
    FROM favorites
    WHERE user_id = $1
    ORDER BY created_at DESC;`
)

// commandColumns is the canonical column order for every commands-table
// SELECT and RETURNING clause. Scans must follow the same order.
var commandColumns = []string{
	"id",
	"title",
	"description",
	"category_name",
	"level",
	"prompt",
	"usage_instructions",
	"tags",
	"estimated_time",
	"views",
	"copies",
	"popularity",
	"is_active",
	"created_by",
	"created_at",
	"updated_at",
}

// buildListActiveCommandsQuery builds the SELECT returning every active
// command, newest first.
func buildListActiveCommandsQuery(_ context.Context) (string, []any, error) {
	query, args, err := sq.Select(commandColumns...).
		From(models.CommandRecord{}.TableName()).
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPatchCommandQuery builds a sparse UPDATE from the non-nil fields of
// patch. The updated_at column is always bumped. The statement returns the
// full updated row so the caller can hand the canonical record back to the
// client.
func buildPatchCommandQuery(_ context.Context, id string, patch models.CommandPatch) (string, []any, error) {
	builder := sq.Update(models.CommandRecord{}.TableName()).
		Set("updated_at", sq.Expr("now()"))

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Category != nil {
		builder = builder.Set("category_name", *patch.Category)
	}
	if patch.Level != nil {
		builder = builder.Set("level", *patch.Level)
	}
	if patch.Prompt != nil {
		builder = builder.Set("prompt", *patch.Prompt)
	}
	if patch.Usage != nil {
		builder = builder.Set("usage_instructions", *patch.Usage)
	}
	if patch.Tags != nil {
		builder = builder.Set("tags", *patch.Tags)
	}
	if patch.EstimatedTime != nil {
		builder = builder.Set("estimated_time", *patch.EstimatedTime)
	}
	if patch.Popularity != nil {
		builder = builder.Set("popularity", *patch.Popularity)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "is_active": true}).
		Suffix("RETURNING " + strings.Join(commandColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
