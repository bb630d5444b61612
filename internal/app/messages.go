// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// promptdeck server handlers and the client's error classification.
//
// All Msg* constants are canonical message strings written into HTTP response
// bodies. The client gateway matches on them (together with the status code)
// to turn a transport failure into a typed error, so the wording here is part
// of the wire contract and must stay stable.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgPermissionDenied is returned when the data service rejects an
	// operation on authorization grounds (insufficient privilege).
	MsgPermissionDenied = "permission denied"

	// MsgDuplicateTitle is returned when a command insert or update hits
	// the unique constraint on the title column.
	MsgDuplicateTitle = "a command with this title already exists"

	// MsgMissingRequiredField is returned when a not-null constraint fires
	// that client-side validation did not catch.
	MsgMissingRequiredField = "a required field is missing"

	// MsgCommandNotFound is returned when a read, patch, or soft-delete
	// targets a command id that does not exist or is inactive.
	MsgCommandNotFound = "command not found"

	// MsgAlreadyFavorite is returned when a favorite insert hits the unique
	// constraint on the (user, command) pair.
	MsgAlreadyFavorite = "command is already a favorite"

	// MsgFavoriteNotFound is returned when a favorite removal targets a
	// (user, command) pair that has no favorite row.
	MsgFavoriteNotFound = "favorite not found"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"
)
