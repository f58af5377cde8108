package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/claude/liftcycle/internal/progress"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// cycleView is a cycle plus its derived completion flag.
type cycleView struct {
	models.Cycle
	IsCompleted bool `json:"is_completed"`
}

func viewOf(c *models.Cycle) cycleView {
	return cycleView{Cycle: *c, IsCompleted: c.IsCompleted()}
}

type previewRequest struct {
	TrainingMaxes *models.TrainingMaxes `json:"training_maxes"`
}

type createCycleRequest struct {
	TemplateID    string                `json:"template_id"`
	TrainingMaxes *models.TrainingMaxes `json:"training_maxes"`
	StartDate     string                `json:"start_date"`
}

type completeDayRequest struct {
	CompletedAt string `json:"completed_at"`
}

type setStatusRequest struct {
	Status models.CompletionStatus `json:"status"`
}

type amrapRequest struct {
	Reps int `json:"reps"`
}

type addSetRequest struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Templates())
}

func (s *Server) handlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	days, err := s.catalog.Instantiate(chi.URLParam(r, "templateID"), req.TrainingMaxes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleCreateCycle(w http.ResponseWriter, r *http.Request) {
	var req createCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.TemplateID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "template_id is required"})
		return
	}

	start := s.now()
	if req.StartDate != "" {
		var err error
		if start, err = parseFlexTime(req.StartDate); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date: " + err.Error()})
			return
		}
	}

	cycle, err := s.catalog.NewCycle(req.TemplateID, req.TrainingMaxes, start)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.InsertCycle(r.Context(), cycle); err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("cycle created", "cycle_id", cycle.ID, "template", req.TemplateID, "days", len(cycle.TrainingDays))
	writeJSON(w, http.StatusCreated, viewOf(cycle))
}

func (s *Server) handleListCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := s.store.ListCycles(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	views := make([]cycleView, 0, len(cycles))
	for i := range cycles {
		views = append(views, viewOf(&cycles[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetCycle(w http.ResponseWriter, r *http.Request) {
	id, ok := cycleIDParam(w, r)
	if !ok {
		return
	}
	cycle, err := s.store.GetCycle(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cycle))
}

func (s *Server) handleDeleteCycle(w http.ResponseWriter, r *http.Request) {
	id, ok := cycleIDParam(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteCycle(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteDay(w http.ResponseWriter, r *http.Request) {
	var req completeDayRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	at := s.now()
	if req.CompletedAt != "" {
		var err error
		if at, err = parseFlexTime(req.CompletedAt); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid completed_at: " + err.Error()})
			return
		}
	}
	s.mutateCycle(w, r, func(c *models.Cycle, day int) error {
		return c.CompleteDay(day, at)
	})
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	exIdx, err := strconv.Atoi(chi.URLParam(r, "exercise"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise index"})
		return
	}
	s.mutateCycle(w, r, func(c *models.Cycle, dayIdx int) error {
		day, err := c.Day(dayIdx)
		if err != nil {
			return err
		}
		return day.RemoveExercise(exIdx)
	})
}

func (s *Server) handleAddSet(w http.ResponseWriter, r *http.Request) {
	var req addSetRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.mutateExercise(w, r, func(ex *models.Exercise) error {
		return ex.AddSet(models.ExerciseSet{Weight: req.Weight, Reps: req.Reps})
	})
}

func (s *Server) handleRemoveSet(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(chi.URLParam(r, "set"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set position"})
		return
	}
	s.mutateExercise(w, r, func(ex *models.Exercise) error {
		return ex.RemoveSet(pos)
	})
}

func (s *Server) handleToggleSet(w http.ResponseWriter, r *http.Request) {
	s.mutateSet(w, r, func(set *models.ExerciseSet) error {
		set.Toggle()
		return nil
	})
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.mutateSet(w, r, func(set *models.ExerciseSet) error {
		switch req.Status {
		case models.StatusCompleted:
			set.MarkCompleted()
		case models.StatusFailed:
			set.MarkFailed()
		case models.StatusNotStarted:
			set.Reset()
		default:
			return fmt.Errorf("unknown status %q: %w", req.Status, models.ErrInvalidInput)
		}
		return nil
	})
}

func (s *Server) handleRecordAmrap(w http.ResponseWriter, r *http.Request) {
	var req amrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.mutateSet(w, r, func(set *models.ExerciseSet) error {
		return set.RecordAmrapReps(req.Reps)
	})
}

func (s *Server) handleOneRepMax(w http.ResponseWriter, r *http.Request) {
	lift := r.URL.Query().Get("lift")
	if lift == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lift parameter required"})
		return
	}
	cycles, err := s.store.ListCycles(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress.Summarize(cycles, lift))
}

// mutateCycle loads the cycle named in the URL, applies fn to it with the
// day index from the URL, and saves the result.
func (s *Server) mutateCycle(w http.ResponseWriter, r *http.Request, fn func(c *models.Cycle, day int) error) {
	id, ok := cycleIDParam(w, r)
	if !ok {
		return
	}
	dayIdx, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid day index"})
		return
	}

	cycle, err := s.store.GetCycle(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := fn(cycle, dayIdx); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.UpdateCycle(r.Context(), cycle); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cycle))
}

func (s *Server) mutateExercise(w http.ResponseWriter, r *http.Request, fn func(ex *models.Exercise) error) {
	exIdx, err := strconv.Atoi(chi.URLParam(r, "exercise"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise index"})
		return
	}
	s.mutateCycle(w, r, func(c *models.Cycle, dayIdx int) error {
		day, err := c.Day(dayIdx)
		if err != nil {
			return err
		}
		ex, err := day.Exercise(exIdx)
		if err != nil {
			return err
		}
		return fn(ex)
	})
}

func (s *Server) mutateSet(w http.ResponseWriter, r *http.Request, fn func(set *models.ExerciseSet) error) {
	pos, err := strconv.Atoi(chi.URLParam(r, "set"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set position"})
		return
	}
	s.mutateExercise(w, r, func(ex *models.Exercise) error {
		set, err := ex.Set(pos)
		if err != nil {
			return err
		}
		return fn(set)
	})
}

func cycleIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "cycleID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid cycle ID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps engine and storage errors to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeOptionalBody decodes a JSON body, treating an empty body as zero value.
func decodeOptionalBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
