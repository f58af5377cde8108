package program

import "github.com/claude/liftcycle/internal/models"

// Split identifies a static, non-percentage split.
type Split string

const (
	SplitPushPullLegs Split = "ppl"
	SplitUpperLower   Split = "upper-lower"
	SplitBodyweight   Split = "bodyweight"
)

type splitDay struct {
	Name      string
	Exercises []string
}

var splitDays = map[Split][]splitDay{
	SplitPushPullLegs: {
		{Name: "Push", Exercises: []string{"Bench Press", "Overhead Press", "Incline Dumbbell Press", "Lateral Raise", "Tricep Pushdown"}},
		{Name: "Pull", Exercises: []string{"Deadlift", "Barbell Row", "Pull-up", "Face Pull", "Bicep Curl"}},
		{Name: "Legs", Exercises: []string{"Squat", "Romanian Deadlift", "Leg Press", "Leg Curl", "Calf Raise"}},
	},
	SplitUpperLower: {
		{Name: "Upper A", Exercises: []string{"Bench Press", "Barbell Row", "Overhead Press", "Pull-up"}},
		{Name: "Lower A", Exercises: []string{"Squat", "Romanian Deadlift", "Leg Curl", "Calf Raise"}},
		{Name: "Upper B", Exercises: []string{"Overhead Press", "Chin-up", "Incline Bench Press", "Dumbbell Row"}},
		{Name: "Lower B", Exercises: []string{"Deadlift", "Front Squat", "Bulgarian Split Squat", "Hanging Leg Raise"}},
	},
	SplitBodyweight: {
		{Name: "Push", Exercises: []string{"Push-up", "Dips", "Pike Push-up"}},
		{Name: "Pull", Exercises: []string{"Pull-up", "Inverted Row", "Chin-up"}},
		{Name: "Legs & Core", Exercises: []string{"Bodyweight Squat", "Walking Lunge", "Plank", "Hanging Leg Raise"}},
	},
}

// staticDays returns a fresh day list for a split. Every exercise is freeform.
func staticDays(split Split) []models.TrainingDay {
	plan := splitDays[split]
	days := make([]models.TrainingDay, 0, len(plan))
	for i, sd := range plan {
		b := newDayBuilder(i, sd.Name, 0)
		b.accessories(sd.Exercises)
		days = append(days, b.day)
	}
	return days
}
