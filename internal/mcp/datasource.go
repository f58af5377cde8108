package mcp

import (
	"context"

	"github.com/claude/liftcycle/internal/models"
	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/progress"
	"github.com/claude/liftcycle/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Both *Local (direct
// store access) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListTemplates(ctx context.Context) ([]program.Template, error)
	PreviewProgram(ctx context.Context, templateID string, tm *models.TrainingMaxes) ([]models.TrainingDay, error)
	ListCycles(ctx context.Context) ([]CycleSummary, error)
	GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error)
	OneRepMaxHistory(ctx context.Context, lift string) (*progress.Summary, error)
}

// CycleSummary is the compact listing form of a cycle.
type CycleSummary struct {
	ID            uuid.UUID `json:"id"`
	TemplateName  string    `json:"template_name"`
	StartDate     string    `json:"start_date"`
	Days          int       `json:"days"`
	CompletedDays int       `json:"completed_days"`
	IsCompleted   bool      `json:"is_completed"`
}

func summarize(c *models.Cycle) CycleSummary {
	s := CycleSummary{
		ID:           c.ID,
		TemplateName: c.TemplateName,
		StartDate:    c.StartDate.Format("2006-01-02"),
		Days:         len(c.TrainingDays),
		IsCompleted:  c.IsCompleted(),
	}
	for _, d := range c.TrainingDays {
		if d.CompletedDate != nil {
			s.CompletedDays++
		}
	}
	return s
}

// Local serves tool queries straight from a cycle store and template catalog.
type Local struct {
	store   storage.CycleStore
	catalog *program.Catalog
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

func NewLocal(store storage.CycleStore, catalog *program.Catalog) *Local {
	return &Local{store: store, catalog: catalog}
}

func (l *Local) ListTemplates(context.Context) ([]program.Template, error) {
	return l.catalog.Templates(), nil
}

func (l *Local) PreviewProgram(_ context.Context, templateID string, tm *models.TrainingMaxes) ([]models.TrainingDay, error) {
	return l.catalog.Instantiate(templateID, tm)
}

func (l *Local) ListCycles(ctx context.Context) ([]CycleSummary, error) {
	cycles, err := l.store.ListCycles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CycleSummary, 0, len(cycles))
	for i := range cycles {
		out = append(out, summarize(&cycles[i]))
	}
	return out, nil
}

func (l *Local) GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error) {
	return l.store.GetCycle(ctx, id)
}

func (l *Local) OneRepMaxHistory(ctx context.Context, lift string) (*progress.Summary, error) {
	cycles, err := l.store.ListCycles(ctx)
	if err != nil {
		return nil, err
	}
	s := progress.Summarize(cycles, lift)
	return &s, nil
}
