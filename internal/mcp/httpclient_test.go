package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/claude/liftcycle/internal/program"
	"github.com/claude/liftcycle/internal/server"
	"github.com/claude/liftcycle/internal/storage"
	"github.com/google/uuid"
)

// newAPIServer runs the real REST API over a temp SQLite store so the client
// is exercised against the paths and payloads it will meet in production.
func newAPIServer(t *testing.T) (*httptest.Server, *models.Cycle) {
	t.Helper()
	store, err := storage.OpenLite(filepath.Join(t.TempDir(), "cycles.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	catalog := program.NewCatalog(program.DefaultIncrement)
	tm := testMaxes
	cycle, err := catalog.NewCycle("nsuns-4day", &tm, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if err := cycle.CompleteDay(1, time.Date(2025, 2, 4, 18, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertCycle(context.Background(), cycle); err != nil {
		t.Fatal(err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(store, catalog, "secret", log))
	t.Cleanup(ts.Close)
	return ts, cycle
}

func TestHTTPClientListTemplates(t *testing.T) {
	ts, _ := newAPIServer(t)
	templates, err := NewHTTPClient(ts.URL + "/").ListTemplates(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) == 0 || templates[0].ID != "531-linear" {
		t.Errorf("templates = %+v", templates)
	}
}

func TestHTTPClientPreview(t *testing.T) {
	ts, _ := newAPIServer(t)
	client := NewHTTPClient(ts.URL)
	tm := testMaxes

	days, err := client.PreviewProgram(context.Background(), "531-bbb", &tm)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 16 {
		t.Errorf("days = %d, want 16", len(days))
	}

	if _, err := client.PreviewProgram(context.Background(), "531-bbb", nil); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("preview without maxes err = %v, want ErrInvalidInput", err)
	}
	if _, err := client.PreviewProgram(context.Background(), "gzclp", &tm); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown template err = %v, want ErrNotFound", err)
	}
}

func TestHTTPClientCycles(t *testing.T) {
	ts, cycle := newAPIServer(t)
	client := NewHTTPClient(ts.URL)

	summaries, err := client.ListCycles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || summaries[0].ID != cycle.ID || summaries[0].CompletedDays != 1 {
		t.Errorf("summaries = %+v", summaries)
	}

	got, err := client.GetCycle(context.Background(), cycle.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TemplateName != "nSuns 4-Day" || len(got.TrainingDays) != 4 {
		t.Errorf("cycle = %s with %d days", got.TemplateName, len(got.TrainingDays))
	}

	if _, err := client.GetCycle(context.Background(), uuid.New()); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("missing cycle err = %v, want ErrNotFound", err)
	}
}

func TestHTTPClientOneRepMax(t *testing.T) {
	ts, _ := newAPIServer(t)
	summary, err := NewHTTPClient(ts.URL).OneRepMaxHistory(context.Background(), string(models.Squat))
	if err != nil {
		t.Fatal(err)
	}
	if summary.Lift != "Squat" || len(summary.Points) != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

// TestHTTPClientServerError verifies non-2xx statuses other than 400/404 surface as plain errors.
func TestHTTPClientServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL).ListCycles(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("err = %v, should not map to a sentinel", err)
	}
}
