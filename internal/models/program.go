package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a template, cycle, day, exercise or set
	// cannot be resolved.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for inputs the engine refuses to process.
	ErrInvalidInput = errors.New("invalid input")
)

// CompletionStatus is the state of a single set.
type CompletionStatus string

const (
	StatusNotStarted CompletionStatus = "not_started"
	StatusCompleted  CompletionStatus = "completed"
	StatusFailed     CompletionStatus = "failed"
)

// ExerciseSet is one prescribed or freeform set.
// AmrapTargetReps is only set when IsAmrap is true.
type ExerciseSet struct {
	Weight          *float64         `json:"weight,omitempty"`
	Reps            *int             `json:"reps,omitempty"`
	IsAmrap         bool             `json:"is_amrap"`
	AmrapTargetReps *int             `json:"amrap_target_reps,omitempty"`
	ActualReps      *int             `json:"actual_reps,omitempty"`
	IsEditable      bool             `json:"is_editable"`
	Status          CompletionStatus `json:"status"`
}

// Toggle cycles not_started -> completed -> failed -> not_started.
func (s *ExerciseSet) Toggle() {
	switch s.Status {
	case StatusCompleted:
		s.Status = StatusFailed
	case StatusFailed:
		s.Status = StatusNotStarted
	default:
		s.Status = StatusCompleted
	}
}

func (s *ExerciseSet) MarkCompleted() { s.Status = StatusCompleted }
func (s *ExerciseSet) MarkFailed()    { s.Status = StatusFailed }
func (s *ExerciseSet) Reset()         { s.Status = StatusNotStarted }

// RecordAmrapReps stores the reps achieved on an AMRAP set.
func (s *ExerciseSet) RecordAmrapReps(reps int) error {
	if !s.IsAmrap {
		return fmt.Errorf("set is not AMRAP: %w", ErrInvalidInput)
	}
	if reps < 0 {
		return fmt.Errorf("negative reps %d: %w", reps, ErrInvalidInput)
	}
	s.ActualReps = &reps
	return nil
}

// PerformedReps returns the reps to use for estimation: the recorded AMRAP
// result when present, otherwise the prescribed reps.
func (s ExerciseSet) PerformedReps() *int {
	if s.IsAmrap && s.ActualReps != nil {
		return s.ActualReps
	}
	return s.Reps
}

// Clone returns a copy sharing no pointers with s.
func (s ExerciseSet) Clone() ExerciseSet {
	c := s
	c.Weight = cloneFloat(s.Weight)
	c.Reps = cloneInt(s.Reps)
	c.AmrapTargetReps = cloneInt(s.AmrapTargetReps)
	c.ActualReps = cloneInt(s.ActualReps)
	return c
}

// Exercise groups the sets of a single movement within a day.
// Index is assigned at creation and survives deletions of sibling exercises.
type Exercise struct {
	Index        int           `json:"index"`
	Name         string        `json:"name"`
	CanAlterSets bool          `json:"can_alter_sets"`
	Sets         []ExerciseSet `json:"sets"`
}

// Set returns the set at position pos.
func (e *Exercise) Set(pos int) (*ExerciseSet, error) {
	if pos < 0 || pos >= len(e.Sets) {
		return nil, fmt.Errorf("set %d of exercise %d: %w", pos, e.Index, ErrNotFound)
	}
	return &e.Sets[pos], nil
}

// AddSet appends a freeform set. Prescribed exercises reject it.
func (e *Exercise) AddSet(set ExerciseSet) error {
	if !e.CanAlterSets {
		return fmt.Errorf("exercise %q has a fixed prescription: %w", e.Name, ErrInvalidInput)
	}
	if set.Status == "" {
		set.Status = StatusNotStarted
	}
	set.IsEditable = true
	set.IsAmrap = false
	set.AmrapTargetReps = nil
	set.ActualReps = nil
	e.Sets = append(e.Sets, set)
	return nil
}

// RemoveSet deletes the freeform set at position pos.
func (e *Exercise) RemoveSet(pos int) error {
	if !e.CanAlterSets {
		return fmt.Errorf("exercise %q has a fixed prescription: %w", e.Name, ErrInvalidInput)
	}
	if pos < 0 || pos >= len(e.Sets) {
		return fmt.Errorf("set %d of exercise %d: %w", pos, e.Index, ErrNotFound)
	}
	e.Sets = append(e.Sets[:pos], e.Sets[pos+1:]...)
	return nil
}

func (e Exercise) Clone() Exercise {
	c := e
	c.Sets = make([]ExerciseSet, len(e.Sets))
	for i, s := range e.Sets {
		c.Sets[i] = s.Clone()
	}
	return c
}

// TrainingDay is one session of a program. Week is 1-based for periodized
// schemes and 0 for static splits.
type TrainingDay struct {
	Index         int        `json:"index"`
	Name          string     `json:"name,omitempty"`
	Week          int        `json:"week,omitempty"`
	Exercises     []Exercise `json:"exercises"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

// Exercise looks up an exercise by its stable index.
func (d *TrainingDay) Exercise(index int) (*Exercise, error) {
	for i := range d.Exercises {
		if d.Exercises[i].Index == index {
			return &d.Exercises[i], nil
		}
	}
	return nil, fmt.Errorf("exercise %d in day %d: %w", index, d.Index, ErrNotFound)
}

// RemoveExercise deletes an exercise by stable index. Remaining exercises
// keep their indices.
func (d *TrainingDay) RemoveExercise(index int) error {
	for i := range d.Exercises {
		if d.Exercises[i].Index == index {
			d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("exercise %d in day %d: %w", index, d.Index, ErrNotFound)
}

func (d TrainingDay) Clone() TrainingDay {
	c := d
	if d.CompletedDate != nil {
		t := *d.CompletedDate
		c.CompletedDate = &t
	}
	c.Exercises = make([]Exercise, len(d.Exercises))
	for i, e := range d.Exercises {
		c.Exercises[i] = e.Clone()
	}
	return c
}

// CloneDays deep-copies a day list.
func CloneDays(days []TrainingDay) []TrainingDay {
	out := make([]TrainingDay, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

// Cycle is a persisted, independently mutable instance of a program.
type Cycle struct {
	ID           uuid.UUID     `json:"id"`
	StartDate    time.Time     `json:"start_date"`
	TemplateName string        `json:"template_name"`
	TrainingDays []TrainingDay `json:"training_days"`
}

// IsCompleted reports whether the cycle has days and every day is complete.
func (c *Cycle) IsCompleted() bool {
	if len(c.TrainingDays) == 0 {
		return false
	}
	for _, d := range c.TrainingDays {
		if d.CompletedDate == nil {
			return false
		}
	}
	return true
}

// Day looks up a training day by its stable index.
func (c *Cycle) Day(index int) (*TrainingDay, error) {
	for i := range c.TrainingDays {
		if c.TrainingDays[i].Index == index {
			return &c.TrainingDays[i], nil
		}
	}
	return nil, fmt.Errorf("day %d in cycle %s: %w", index, c.ID, ErrNotFound)
}

// CompleteDay stamps the day's completion date. A day can only be completed once.
func (c *Cycle) CompleteDay(index int, at time.Time) error {
	day, err := c.Day(index)
	if err != nil {
		return err
	}
	if day.CompletedDate != nil {
		return fmt.Errorf("day %d already completed on %s: %w",
			index, day.CompletedDate.Format(time.RFC3339), ErrInvalidInput)
	}
	day.CompletedDate = &at
	return nil
}

func (c Cycle) Clone() Cycle {
	out := c
	out.TrainingDays = CloneDays(c.TrainingDays)
	return out
}

// OneRMDataPoint is one point of an estimated 1RM series.
type OneRMDataPoint struct {
	Date               time.Time `json:"date"`
	EstimatedOneRepMax float64   `json:"estimated_one_rep_max"`
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
