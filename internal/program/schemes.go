package program

import "github.com/claude/liftcycle/internal/models"

// Scheme identifies a percentage-based periodization scheme.
type Scheme string

const (
	SchemeLinear531 Scheme = "531-linear"
	SchemeBBB531    Scheme = "531-bbb"
	SchemeNSuns4Day Scheme = "nsuns-4day"
	SchemeNSuns5Day Scheme = "nsuns-5day"
)

// Row is one prescribed set: a percentage of the training max, a rep count,
// and whether the set is taken to as many reps as possible.
type Row struct {
	Percent int
	Reps    int
	Amrap   bool
}

func r(pct, reps int) Row     { return Row{Percent: pct, Reps: reps} }
func amrap(pct, reps int) Row { return Row{Percent: pct, Reps: reps, Amrap: true} }

func repeatRow(row Row, n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// fiveThreeOneWeeks is the main-lift wave, indexed by week-1. Week 4 is the deload.
var fiveThreeOneWeeks = [4][]Row{
	{r(65, 5), r(75, 5), amrap(85, 5)},
	{r(70, 3), r(80, 3), amrap(90, 3)},
	{r(75, 5), r(85, 3), amrap(95, 1)},
	{r(40, 5), r(50, 5), r(60, 5)},
}

const deloadWeek = 4

// bbbRows is the Boring But Big supplemental volume: 5x10 at 50%.
var bbbRows = repeatRow(r(50, 10), 5)

// linearLiftOrder is the day order within each 5/3/1 week.
var linearLiftOrder = []models.Lift{models.Squat, models.Bench, models.Deadlift, models.OHP}

var linearAccessories = map[models.Lift][]string{
	models.Squat:    {"Leg Curl", "Hanging Leg Raise"},
	models.Bench:    {"Dumbbell Row", "Dips"},
	models.Deadlift: {"Good Morning", "Back Extension"},
	models.OHP:      {"Face Pull", "Pull-up"},
}

// slot is a percentage-driven exercise within an nSuns day. Base names the
// training max the rows are computed from.
type slot struct {
	Name string
	Base models.Lift
	Rows []Row
}

type schemeDay struct {
	Name        string
	Slots       []slot
	Accessories []string
}

// nSuns T1 waves. The 95% single and the final set are AMRAP where the
// scheme calls for it.
var (
	nsunsBenchVolumeT1 = []Row{r(65, 8), r(75, 6), r(85, 4), r(85, 4), r(85, 4), r(80, 5), r(75, 6), r(70, 7), amrap(65, 8)}
	nsunsBenchHeavyT1  = []Row{r(75, 5), r(85, 3), amrap(95, 1), r(90, 3), r(85, 5), r(80, 3), r(75, 5), r(70, 3), amrap(65, 5)}
	nsunsSquatT1       = []Row{r(75, 5), r(85, 3), amrap(95, 1), r(90, 3), r(85, 3), r(80, 3), r(75, 5), r(70, 5), amrap(65, 5)}
	nsunsDeadliftT1    = []Row{r(75, 5), r(85, 3), amrap(95, 1), r(90, 3), r(85, 3), r(80, 3), r(75, 3), r(70, 3), amrap(65, 3)}
	nsunsOHPT1         = []Row{r(75, 5), r(85, 3), amrap(95, 1), r(90, 3), r(85, 3), r(80, 3), r(75, 5), r(70, 5), amrap(65, 5)}
)

// nSuns T2 waves, never AMRAP.
var (
	nsunsOHPT2        = []Row{r(50, 6), r(60, 5), r(70, 3), r(70, 5), r(70, 7), r(70, 4), r(70, 6), r(70, 8)}
	nsunsSumoT2       = []Row{r(50, 5), r(60, 5), r(70, 3), r(70, 5), r(70, 7), r(70, 4), r(70, 6), r(70, 8)}
	nsunsBenchT2      = []Row{r(40, 6), r(50, 5), r(60, 3), r(60, 5), r(60, 7), r(60, 4), r(60, 6), r(60, 8)}
	nsunsFrontSquatT2 = []Row{r(35, 5), r(45, 5), r(55, 3), r(55, 5), r(55, 7), r(55, 4), r(55, 6), r(55, 8)}
)

var (
	nsunsBenchOHPDay = schemeDay{
		Name: "Bench / OHP",
		Slots: []slot{
			{Name: string(models.Bench), Base: models.Bench, Rows: nsunsBenchVolumeT1},
			{Name: string(models.OHP), Base: models.OHP, Rows: nsunsOHPT2},
		},
		Accessories: []string{"Chest Accessory", "Arm Accessory", "Back Accessory"},
	}
	nsunsSquatSumoDay = schemeDay{
		Name: "Squat / Sumo Deadlift",
		Slots: []slot{
			{Name: string(models.Squat), Base: models.Squat, Rows: nsunsSquatT1},
			{Name: "Sumo Deadlift", Base: models.Deadlift, Rows: nsunsSumoT2},
		},
		Accessories: []string{"Leg Accessory", "Ab Accessory"},
	}
	nsunsOHPInclineDay = schemeDay{
		Name: "OHP / Incline Bench",
		Slots: []slot{
			{Name: string(models.OHP), Base: models.OHP, Rows: nsunsOHPT1},
			{Name: "Incline Bench Press", Base: models.Bench, Rows: nsunsBenchT2},
		},
		Accessories: []string{"Shoulder Accessory", "Arm Accessory", "Back Accessory"},
	}
	nsunsDeadliftFrontSquatDay = schemeDay{
		Name: "Deadlift / Front Squat",
		Slots: []slot{
			{Name: string(models.Deadlift), Base: models.Deadlift, Rows: nsunsDeadliftT1},
			{Name: "Front Squat", Base: models.Squat, Rows: nsunsFrontSquatT2},
		},
		Accessories: []string{"Back Accessory", "Ab Accessory"},
	}
	nsunsBenchCGDay = schemeDay{
		Name: "Bench / Close-Grip Bench",
		Slots: []slot{
			{Name: string(models.Bench), Base: models.Bench, Rows: nsunsBenchHeavyT1},
			{Name: "Close-Grip Bench Press", Base: models.Bench, Rows: nsunsBenchT2},
		},
		Accessories: []string{"Arm Accessory", "Back Accessory"},
	}
)

var nsunsDays = map[Scheme][]schemeDay{
	SchemeNSuns4Day: {nsunsBenchOHPDay, nsunsSquatSumoDay, nsunsBenchCGDay, nsunsDeadliftFrontSquatDay},
	SchemeNSuns5Day: {nsunsBenchOHPDay, nsunsSquatSumoDay, nsunsOHPInclineDay, nsunsDeadliftFrontSquatDay, nsunsBenchCGDay},
}
