// SPDX-License-Identifier: Apache-2.0

package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS commands (
			id                 TEXT PRIMARY KEY,
			title              TEXT NOT NULL,
			description        TEXT NOT NULL,
			category_name      TEXT NOT NULL,
			level              TEXT NOT NULL,
			prompt             TEXT NOT NULL,
			usage_instructions TEXT,
			tags               TEXT NOT NULL DEFAULT '[]',
			estimated_time     TEXT,
			views              INTEGER NOT NULL DEFAULT 0,
			copies             INTEGER NOT NULL DEFAULT 0,
			popularity         REAL NOT NULL DEFAULT 0,
			is_active          BOOLEAN NOT NULL DEFAULT 1,
			created_by         INTEGER,
			created_at         TIMESTAMP,
			updated_at         TIMESTAMP
		);`

	clearCachedCommands = `DELETE FROM commands;`

	saveCachedCommand = `
		INSERT INTO commands (
			id,
			title,
			description,
			category_name,
			level,
			prompt,
			usage_instructions,
			tags,
			estimated_time,
			views,
			copies,
			popularity,
			is_active,
			created_by,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	getAllCachedCommands = `
		SELECT
			id,
			title,
			description,
			category_name,
			level,
			prompt,
			usage_instructions,
			tags,
			estimated_time,
			views,
			copies,
			popularity,
			is_active,
			created_by,
			created_at,
			updated_at
		FROM commands
		ORDER BY created_at DESC;`
)
