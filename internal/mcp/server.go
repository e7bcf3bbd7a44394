package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("yawa", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("yawa strength program tracker. Read the active program's status, the next prescribed workout, and the lift history. All tools are read-only; workouts are completed from the yawa CLI."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetStatus, Handler: h.getStatus},
		server.ServerTool{Tool: toolGetNextWorkout, Handler: h.getNextWorkout},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentHistory, Handler: h.recentHistory},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentHistory = mcp.NewResource(
	"yawa://recent_history",
	"Recent History",
	mcp.WithResourceDescription("The last 20 recorded lift attempts with their results"),
	mcp.WithMIMEType("application/json"),
)
