package mcp

import (
	"context"
	"errors"

	"github.com/claude/liftcycle/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the program templates a cycle can be started from, in display order."),
)

var toolPreviewProgram = mcp.NewTool("preview_program",
	mcp.WithDescription("Build a template's full day list for the given training maxes without saving it. Percentage-based templates (5/3/1, nSuns) need all four maxes; splits ignore them."),
	mcp.WithString("template_id", mcp.Required(), mcp.Description("Template ID from list_templates (e.g. 531-bbb, nsuns-4day)")),
	mcp.WithNumber("bench", mcp.Description("Bench press training max")),
	mcp.WithNumber("squat", mcp.Description("Squat training max")),
	mcp.WithNumber("deadlift", mcp.Description("Deadlift training max")),
	mcp.WithNumber("ohp", mcp.Description("Overhead press training max")),
	mcp.WithBoolean("next_cycle", mcp.Description("Apply the standard next-cycle increase (+5 upper, +10 lower) before building. Defaults to false.")),
)

var toolListCycles = mcp.NewTool("list_cycles",
	mcp.WithDescription("List logged cycles oldest first with day counts and completion state."),
	mcp.WithBoolean("include_completed", mcp.Description("Include fully completed cycles. Defaults to true.")),
)

var toolGetCycle = mcp.NewTool("get_cycle",
	mcp.WithDescription("Get one cycle with every day, exercise and set, including set status and recorded AMRAP reps."),
	mcp.WithString("cycle_id", mcp.Required(), mcp.Description("Cycle UUID from list_cycles")),
)

var toolGetOneRepMaxHistory = mcp.NewTool("get_one_rep_max_history",
	mcp.WithDescription("Estimated one-rep max (Epley) per completed training day for a lift, ascending by date, with the personal best and latest point."),
	mcp.WithString("lift", mcp.Required(), mcp.Description("Exercise name, matched exactly (e.g. Squat, Bench Press, Deadlift, Overhead Press)")),
)

// --- Tool handlers ---

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.ds.ListTemplates(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(templates)
}

func (h *handlers) previewProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templateID, err := req.RequireString("template_id")
	if err != nil {
		return mcp.NewToolResultError("template_id parameter is required"), nil
	}

	tm := trainingMaxesArg(req)
	if tm != nil && req.GetBool("next_cycle", false) {
		next := tm.NextCycle()
		tm = &next
	}

	days, err := h.ds.PreviewProgram(ctx, templateID, tm)
	if err != nil {
		return h.toolError("preview_program", err), nil
	}
	return jsonResult(days)
}

func (h *handlers) listCycles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cycles, err := h.ds.ListCycles(ctx)
	if err != nil {
		return h.toolError("list_cycles", err), nil
	}
	if !req.GetBool("include_completed", true) {
		open := cycles[:0]
		for _, c := range cycles {
			if !c.IsCompleted {
				open = append(open, c)
			}
		}
		cycles = open
	}
	return jsonResult(cycles)
}

func (h *handlers) getCycle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("cycle_id")
	if err != nil {
		return mcp.NewToolResultError("cycle_id parameter is required"), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid cycle_id: " + err.Error()), nil
	}
	cycle, err := h.ds.GetCycle(ctx, id)
	if err != nil {
		return h.toolError("get_cycle", err), nil
	}
	return jsonResult(cycle)
}

func (h *handlers) getOneRepMaxHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lift, err := req.RequireString("lift")
	if err != nil {
		return mcp.NewToolResultError("lift parameter is required"), nil
	}
	summary, err := h.ds.OneRepMaxHistory(ctx, lift)
	if err != nil {
		return h.toolError("get_one_rep_max_history", err), nil
	}
	return jsonResult(summary)
}

// trainingMaxesArg returns nil when no max was supplied so splits can be
// previewed without them.
func trainingMaxesArg(req mcp.CallToolRequest) *models.TrainingMaxes {
	args := req.GetArguments()
	supplied := false
	for _, k := range []string{"bench", "squat", "deadlift", "ohp"} {
		if _, ok := args[k]; ok {
			supplied = true
			break
		}
	}
	if !supplied {
		return nil
	}
	return &models.TrainingMaxes{
		Bench:    req.GetFloat("bench", 0),
		Squat:    req.GetFloat("squat", 0),
		Deadlift: req.GetFloat("deadlift", 0),
		OHP:      req.GetFloat("ohp", 0),
	}
}

// toolError reports caller mistakes verbatim and logs everything else.
func (h *handlers) toolError(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrInvalidInput) {
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
