package progress

import (
	"math"
	"testing"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/google/uuid"
)

var (
	d1 = time.Date(2025, 2, 3, 18, 0, 0, 0, time.UTC)
	d2 = time.Date(2025, 2, 10, 18, 0, 0, 0, time.UTC)
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func day(index int, completed *time.Time, exercises ...models.Exercise) models.TrainingDay {
	for i := range exercises {
		exercises[i].Index = i
	}
	return models.TrainingDay{Index: index, Exercises: exercises, CompletedDate: completed}
}

func lift(name string, sets ...models.ExerciseSet) models.Exercise {
	return models.Exercise{Name: name, Sets: sets}
}

func set(weight float64, reps int) models.ExerciseSet {
	return models.ExerciseSet{Weight: models.Float(weight), Reps: models.Int(reps)}
}

func cycle(days ...models.TrainingDay) models.Cycle {
	return models.Cycle{ID: uuid.New(), TrainingDays: days}
}

func TestEpley(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{200, 5, 233.33},
		{210, 3, 231.0},
		{100, 30, 200},
		{225, 1, 232.5},
	}
	for _, tt := range tests {
		if got := Epley(tt.weight, tt.reps); !approx(got, tt.want) {
			t.Errorf("Epley(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
		}
	}
}

// TestEstimateTwoDays covers a two-day history where the earlier day holds the best estimate.
func TestEstimateTwoDays(t *testing.T) {
	cycles := []models.Cycle{cycle(
		day(0, &d1, lift("Squat", set(200, 5))),
		day(1, &d2, lift("Squat", set(210, 3))),
	)}

	points := Estimate(cycles, "Squat")
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if !points[0].Date.Equal(d1) || !approx(points[0].EstimatedOneRepMax, 233.33) {
		t.Errorf("point 0 = %+v", points[0])
	}
	if !points[1].Date.Equal(d2) || !approx(points[1].EstimatedOneRepMax, 231.0) {
		t.Errorf("point 1 = %+v", points[1])
	}

	pb, ok := PersonalBest(points)
	if !ok || !pb.Date.Equal(d1) {
		t.Errorf("personal best = %+v, want D1", pb)
	}
	latest, ok := Latest(points)
	if !ok || !latest.Date.Equal(d2) {
		t.Errorf("latest = %+v, want D2", latest)
	}
}

// TestEstimateOrdersAcrossCycles verifies output is sorted regardless of cycle order.
func TestEstimateOrdersAcrossCycles(t *testing.T) {
	later := cycle(day(0, &d2, lift("Bench Press", set(150, 5))))
	earlier := cycle(day(0, &d1, lift("Bench Press", set(140, 5))))

	points := Estimate([]models.Cycle{later, earlier}, "Bench Press")
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if !points[0].Date.Equal(d1) || !points[1].Date.Equal(d2) {
		t.Errorf("points not ascending: %v, %v", points[0].Date, points[1].Date)
	}
}

// TestEstimateOnePointPerDay verifies the best set of a day is the only point emitted.
func TestEstimateOnePointPerDay(t *testing.T) {
	cycles := []models.Cycle{cycle(day(0, &d1,
		lift("Deadlift", set(300, 5), set(340, 3), set(380, 1)),
		lift("Deadlift", set(350, 3)),
	))}
	points := Estimate(cycles, "Deadlift")
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	// 380 x 1 = 392.67 beats 350 x 3 = 385 and 340 x 3 = 374
	if !approx(points[0].EstimatedOneRepMax, 392.67) {
		t.Errorf("estimate = %v, want 392.67", points[0].EstimatedOneRepMax)
	}
}

func TestEstimateSkipsUnqualifiedData(t *testing.T) {
	noWeight := models.ExerciseSet{Reps: models.Int(5)}
	noReps := models.ExerciseSet{Weight: models.Float(200)}

	tests := []struct {
		name   string
		cycles []models.Cycle
	}{
		{"no cycles", nil},
		{"incomplete day", []models.Cycle{cycle(day(0, nil, lift("Squat", set(200, 5))))}},
		{"other lift", []models.Cycle{cycle(day(0, &d1, lift("Front Squat", set(200, 5))))}},
		{"zero weight", []models.Cycle{cycle(day(0, &d1, lift("Squat", set(0, 5))))}},
		{"negative reps", []models.Cycle{cycle(day(0, &d1, lift("Squat", set(200, -1))))}},
		{"zero reps", []models.Cycle{cycle(day(0, &d1, lift("Squat", set(200, 0))))}},
		{"missing values", []models.Cycle{cycle(day(0, &d1, lift("Squat", noWeight, noReps)))}},
		{"empty accessory", []models.Cycle{cycle(day(0, &d1, lift("Squat")))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if points := Estimate(tt.cycles, "Squat"); len(points) != 0 {
				t.Errorf("points = %+v, want none", points)
			}
		})
	}
}

// TestEstimateUsesAmrapResult verifies recorded AMRAP reps replace the target reps.
func TestEstimateUsesAmrapResult(t *testing.T) {
	top := models.ExerciseSet{
		Weight:          models.Float(200),
		Reps:            models.Int(5),
		IsAmrap:         true,
		AmrapTargetReps: models.Int(5),
	}
	if err := top.RecordAmrapReps(10); err != nil {
		t.Fatal(err)
	}
	points := Estimate([]models.Cycle{cycle(day(0, &d1, lift("Squat", top)))}, "Squat")
	if len(points) != 1 || !approx(points[0].EstimatedOneRepMax, 266.67) {
		t.Errorf("points = %+v, want one at 266.67", points)
	}
}

func TestPersonalBestTieKeepsEarliest(t *testing.T) {
	points := []models.OneRMDataPoint{
		{Date: d1, EstimatedOneRepMax: 250},
		{Date: d2, EstimatedOneRepMax: 250},
	}
	pb, ok := PersonalBest(points)
	if !ok || !pb.Date.Equal(d1) {
		t.Errorf("personal best = %+v, want D1", pb)
	}
	if _, ok := PersonalBest(nil); ok {
		t.Error("personal best of empty series reported ok")
	}
	if _, ok := Latest(nil); ok {
		t.Error("latest of empty series reported ok")
	}
}

func TestSummarize(t *testing.T) {
	empty := Summarize(nil, "Squat")
	if empty.Points == nil || len(empty.Points) != 0 || empty.PersonalBest != nil || empty.Latest != nil {
		t.Errorf("empty summary = %+v", empty)
	}

	s := Summarize([]models.Cycle{cycle(
		day(0, &d1, lift("Squat", set(200, 5))),
		day(1, &d2, lift("Squat", set(210, 3))),
	)}, "Squat")
	if s.Lift != "Squat" || len(s.Points) != 2 {
		t.Fatalf("summary = %+v", s)
	}
	if !s.PersonalBest.Date.Equal(d1) || !s.Latest.Date.Equal(d2) {
		t.Errorf("personal best %v latest %v", s.PersonalBest.Date, s.Latest.Date)
	}
}
