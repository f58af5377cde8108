package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftcycle/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) templateCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	templates, err := h.ds.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, templates)
}

func (h *handlers) currentCycle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cycles, err := h.ds.ListCycles(ctx)
	if err != nil {
		return nil, err
	}

	// Listing is oldest first, so the last open cycle is the current one.
	var current *models.Cycle
	for i := len(cycles) - 1; i >= 0; i-- {
		if cycles[i].IsCompleted {
			continue
		}
		current, err = h.ds.GetCycle(ctx, cycles[i].ID)
		if err != nil {
			return nil, err
		}
		break
	}
	if current == nil {
		return jsonResource(req.Params.URI, map[string]any{"cycle": nil})
	}
	return jsonResource(req.Params.URI, map[string]any{"cycle": current})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
