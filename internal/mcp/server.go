// Package mcp exposes the workout archive and template catalog to MCP
// clients as read-only tools and resources.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/liftlog/internal/workout"
)

// New creates an MCP server with all tools and resources registered.
func New(templates *workout.TemplateStore, archive *workout.Archive, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout tracking server. Query workout templates, session history, training statistics, volume trends, and personal records."),
	)

	h := &handlers{templates: templates, archive: archive, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetTemplates, Handler: h.getTemplates},
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetSessionStats, Handler: h.getSessionStats},
		server.ServerTool{Tool: toolGetVolumeByDay, Handler: h.getVolumeByDay},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	templates *workout.TemplateStore
	archive   *workout.Archive
	log       *slog.Logger
}
