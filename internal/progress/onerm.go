// Package progress reconstructs estimated one-rep-max history from logged cycles.
package progress

import (
	"sort"

	"github.com/claude/liftcycle/internal/models"
)

// Epley estimates a one-rep max: weight * (1 + reps/30).
func Epley(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// Estimate returns one point per completed day that contains a qualifying set
// of lift, ascending by completion date. Cycles may be supplied in any order.
func Estimate(cycles []models.Cycle, lift string) []models.OneRMDataPoint {
	var points []models.OneRMDataPoint
	for _, c := range cycles {
		for _, day := range c.TrainingDays {
			if day.CompletedDate == nil {
				continue
			}
			if best, ok := dayBest(day, lift); ok {
				points = append(points, models.OneRMDataPoint{
					Date:               *day.CompletedDate,
					EstimatedOneRepMax: best,
				})
			}
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func dayBest(day models.TrainingDay, lift string) (float64, bool) {
	var best float64
	found := false
	for _, ex := range day.Exercises {
		if ex.Name != lift {
			continue
		}
		for _, set := range ex.Sets {
			reps := set.PerformedReps()
			if set.Weight == nil || reps == nil || *set.Weight <= 0 || *reps <= 0 {
				continue
			}
			if est := Epley(*set.Weight, *reps); !found || est > best {
				best = est
				found = true
			}
		}
	}
	return best, found
}

// PersonalBest returns the point with the highest estimate. Ties keep the earliest.
func PersonalBest(points []models.OneRMDataPoint) (models.OneRMDataPoint, bool) {
	if len(points) == 0 {
		return models.OneRMDataPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.EstimatedOneRepMax > best.EstimatedOneRepMax {
			best = p
		}
	}
	return best, true
}

// Latest returns the last point of a date-ordered series.
func Latest(points []models.OneRMDataPoint) (models.OneRMDataPoint, bool) {
	if len(points) == 0 {
		return models.OneRMDataPoint{}, false
	}
	return points[len(points)-1], true
}

// Summary bundles a lift's series with its personal best and latest point
// for chart consumers.
type Summary struct {
	Lift         string                  `json:"lift"`
	Points       []models.OneRMDataPoint `json:"points"`
	PersonalBest *models.OneRMDataPoint  `json:"personal_best,omitempty"`
	Latest       *models.OneRMDataPoint  `json:"latest,omitempty"`
}

// Summarize runs Estimate and fills in the personal best and latest points.
func Summarize(cycles []models.Cycle, lift string) Summary {
	s := Summary{Lift: lift, Points: Estimate(cycles, lift)}
	if s.Points == nil {
		s.Points = []models.OneRMDataPoint{}
	}
	if pb, ok := PersonalBest(s.Points); ok {
		s.PersonalBest = &pb
	}
	if l, ok := Latest(s.Points); ok {
		s.Latest = &l
	}
	return s
}
