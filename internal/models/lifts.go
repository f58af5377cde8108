package models

import "fmt"

// Lift is one of the four main barbell lifts.
type Lift string

const (
	Squat    Lift = "Squat"
	Bench    Lift = "Bench Press"
	Deadlift Lift = "Deadlift"
	OHP      Lift = "Overhead Press"
)

// TrainingMaxes holds the reference weight for each main lift.
type TrainingMaxes struct {
	Bench    float64 `json:"bench"`
	Squat    float64 `json:"squat"`
	Deadlift float64 `json:"deadlift"`
	OHP      float64 `json:"ohp"`
}

// Validate requires all four maxes to be positive and finite.
func (tm TrainingMaxes) Validate() error {
	for _, l := range []Lift{Bench, Squat, Deadlift, OHP} {
		if v := tm.ForLift(l); !isPositiveFinite(v) {
			return fmt.Errorf("training max for %s must be positive, got %v: %w", l, v, ErrInvalidInput)
		}
	}
	return nil
}

// ForLift returns the training max for the given lift, or 0 if unknown.
func (tm TrainingMaxes) ForLift(l Lift) float64 {
	switch l {
	case Bench:
		return tm.Bench
	case Squat:
		return tm.Squat
	case Deadlift:
		return tm.Deadlift
	case OHP:
		return tm.OHP
	}
	return 0
}

// NextCycle applies the standard 5/3/1 increases: +5 for upper body lifts,
// +10 for lower body lifts.
func (tm TrainingMaxes) NextCycle() TrainingMaxes {
	return TrainingMaxes{
		Bench:    tm.Bench + 5,
		Squat:    tm.Squat + 10,
		Deadlift: tm.Deadlift + 10,
		OHP:      tm.OHP + 5,
	}
}
