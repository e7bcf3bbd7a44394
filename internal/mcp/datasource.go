package mcp

import (
	"context"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/service"
)

// DataSource is the read-only view of the training program the MCP tools
// expose. *service.Service satisfies it.
type DataSource interface {
	Status(ctx context.Context) (service.Status, error)
	Next(ctx context.Context) (service.Workout, error)
	History(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// Compile-time check: *service.Service satisfies DataSource.
var _ DataSource = (*service.Service)(nil)
