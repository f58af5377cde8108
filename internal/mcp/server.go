package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("liftcycle", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftcycle strength program server. Browse 5/3/1, nSuns and split templates, preview prescriptions for a set of training maxes, inspect logged cycles, and read estimated one-rep-max history per lift."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolPreviewProgram, Handler: h.previewProgram},
		server.ServerTool{Tool: toolListCycles, Handler: h.listCycles},
		server.ServerTool{Tool: toolGetCycle, Handler: h.getCycle},
		server.ServerTool{Tool: toolGetOneRepMaxHistory, Handler: h.getOneRepMaxHistory},
	)

	s.AddResources(
		server.ServerResource{Resource: resTemplateCatalog, Handler: h.templateCatalog},
		server.ServerResource{Resource: resCurrentCycle, Handler: h.currentCycle},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resTemplateCatalog = mcp.NewResource(
	"liftcycle://templates",
	"Template Catalog",
	mcp.WithResourceDescription("Every program template with its duration and whether it needs training maxes"),
	mcp.WithMIMEType("application/json"),
)

var resCurrentCycle = mcp.NewResource(
	"liftcycle://current_cycle",
	"Current Cycle",
	mcp.WithResourceDescription("The most recently started cycle that still has days left, with its full day tree"),
	mcp.WithMIMEType("application/json"),
)
