package store

import (
	"context"

	"github.com/promptdeck/promptdeck/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CommandCache is the client-side warm-start snapshot of the command list.
// The whole snapshot is replaced after every successful full load; it is
// never mutated row by row.
type CommandCache interface {
	ReplaceAll(ctx context.Context, records []models.CommandRecord) error
	LoadAll(ctx context.Context) ([]models.CommandRecord, error)
}
