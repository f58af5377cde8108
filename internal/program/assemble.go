package program

import (
	"fmt"

	"github.com/claude/liftcycle/internal/models"
)

// Expand turns a row sequence into prescribed sets for the given training max.
// Prescribed sets are not editable; only an AMRAP result can be recorded later.
func Expand(rows []Row, trainingMax, increment float64) ([]models.ExerciseSet, error) {
	sets := make([]models.ExerciseSet, 0, len(rows))
	for i, row := range rows {
		weight, err := RoundDown(trainingMax*float64(row.Percent)/100, increment)
		if err != nil {
			return nil, fmt.Errorf("row %d (%d%%): %w", i, row.Percent, err)
		}
		set := models.ExerciseSet{
			Weight: models.Float(weight),
			Reps:   models.Int(row.Reps),
			Status: models.StatusNotStarted,
		}
		if row.Amrap {
			set.IsAmrap = true
			set.AmrapTargetReps = models.Int(row.Reps)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Assemble builds the full ordered day list for a percentage-based scheme.
func Assemble(scheme Scheme, tm models.TrainingMaxes, increment float64) ([]models.TrainingDay, error) {
	if err := tm.Validate(); err != nil {
		return nil, err
	}
	switch scheme {
	case SchemeLinear531:
		return assembleLinear(tm, increment, false)
	case SchemeBBB531:
		return assembleLinear(tm, increment, true)
	case SchemeNSuns4Day, SchemeNSuns5Day:
		return assembleNSuns(nsunsDays[scheme], tm, increment)
	}
	return nil, fmt.Errorf("scheme %q: %w", scheme, models.ErrNotFound)
}

func assembleLinear(tm models.TrainingMaxes, increment float64, bbb bool) ([]models.TrainingDay, error) {
	days := make([]models.TrainingDay, 0, len(fiveThreeOneWeeks)*len(linearLiftOrder))
	for w, rows := range fiveThreeOneWeeks {
		week := w + 1
		for _, lift := range linearLiftOrder {
			b := newDayBuilder(len(days), linearDayName(week, lift), week)
			if err := b.prescribed(string(lift), rows, tm.ForLift(lift), increment); err != nil {
				return nil, fmt.Errorf("week %d %s: %w", week, lift, err)
			}
			if bbb {
				if err := b.prescribed(string(lift)+" (BBB)", bbbRows, tm.ForLift(lift), increment); err != nil {
					return nil, fmt.Errorf("week %d %s BBB: %w", week, lift, err)
				}
			}
			b.accessories(linearAccessories[lift])
			days = append(days, b.day)
		}
	}
	return days, nil
}

func linearDayName(week int, lift models.Lift) string {
	if week == deloadWeek {
		return fmt.Sprintf("Week %d (Deload) · %s", week, lift)
	}
	return fmt.Sprintf("Week %d · %s", week, lift)
}

func assembleNSuns(plan []schemeDay, tm models.TrainingMaxes, increment float64) ([]models.TrainingDay, error) {
	days := make([]models.TrainingDay, 0, len(plan))
	for i, sd := range plan {
		b := newDayBuilder(i, fmt.Sprintf("Day %d · %s", i+1, sd.Name), 1)
		for _, s := range sd.Slots {
			if err := b.prescribed(s.Name, s.Rows, tm.ForLift(s.Base), increment); err != nil {
				return nil, fmt.Errorf("%s %s: %w", sd.Name, s.Name, err)
			}
		}
		b.accessories(sd.Accessories)
		days = append(days, b.day)
	}
	return days, nil
}

// dayBuilder assigns sequential exercise indices as exercises are appended.
type dayBuilder struct {
	day models.TrainingDay
}

func newDayBuilder(index int, name string, week int) *dayBuilder {
	return &dayBuilder{day: models.TrainingDay{Index: index, Name: name, Week: week}}
}

func (b *dayBuilder) prescribed(name string, rows []Row, trainingMax, increment float64) error {
	sets, err := Expand(rows, trainingMax, increment)
	if err != nil {
		return err
	}
	b.day.Exercises = append(b.day.Exercises, models.Exercise{
		Index: len(b.day.Exercises),
		Name:  name,
		Sets:  sets,
	})
	return nil
}

func (b *dayBuilder) accessories(names []string) {
	for _, name := range names {
		b.day.Exercises = append(b.day.Exercises, models.Exercise{
			Index:        len(b.day.Exercises),
			Name:         name,
			CanAlterSets: true,
			Sets:         []models.ExerciseSet{},
		})
	}
}
