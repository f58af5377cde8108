package program

import (
	"fmt"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/google/uuid"
)

// Template describes a program the lifter can start a cycle from.
type Template struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	DurationLabel         string `json:"duration_label"`
	RequiresTrainingMaxes bool   `json:"requires_training_maxes"`

	factory func(tm models.TrainingMaxes, increment float64) ([]models.TrainingDay, error)
}

func schemeFactory(s Scheme) func(models.TrainingMaxes, float64) ([]models.TrainingDay, error) {
	return func(tm models.TrainingMaxes, increment float64) ([]models.TrainingDay, error) {
		return Assemble(s, tm, increment)
	}
}

func splitFactory(s Split) func(models.TrainingMaxes, float64) ([]models.TrainingDay, error) {
	return func(models.TrainingMaxes, float64) ([]models.TrainingDay, error) {
		return staticDays(s), nil
	}
}

var templates = []Template{
	{
		ID:                    string(SchemeLinear531),
		Name:                  "5/3/1",
		Description:           "Classic four-week wave: 5s, 3s, 5/3/1 and a deload week, with an AMRAP top set on the main lift.",
		DurationLabel:         "4 weeks",
		RequiresTrainingMaxes: true,
		factory:               schemeFactory(SchemeLinear531),
	},
	{
		ID:                    string(SchemeBBB531),
		Name:                  "5/3/1 Boring But Big",
		Description:           "5/3/1 main work followed by 5x10 at 50% of the same lift.",
		DurationLabel:         "4 weeks",
		RequiresTrainingMaxes: true,
		factory:               schemeFactory(SchemeBBB531),
	},
	{
		ID:                    string(SchemeNSuns4Day),
		Name:                  "nSuns 4-Day",
		Description:           "High-volume linear progression: nine-set T1 and eight-set T2 waves, four days a week.",
		DurationLabel:         "1 week, repeating",
		RequiresTrainingMaxes: true,
		factory:               schemeFactory(SchemeNSuns4Day),
	},
	{
		ID:                    string(SchemeNSuns5Day),
		Name:                  "nSuns 5-Day",
		Description:           "nSuns with an extra overhead press and incline bench day.",
		DurationLabel:         "1 week, repeating",
		RequiresTrainingMaxes: true,
		factory:               schemeFactory(SchemeNSuns5Day),
	},
	{
		ID:            string(SplitPushPullLegs),
		Name:          "Push / Pull / Legs",
		Description:   "Three-day body-part split. Log your own sets.",
		DurationLabel: "1 week, repeating",
		factory:       splitFactory(SplitPushPullLegs),
	},
	{
		ID:            string(SplitUpperLower),
		Name:          "Upper / Lower",
		Description:   "Four-day upper/lower split. Log your own sets.",
		DurationLabel: "1 week, repeating",
		factory:       splitFactory(SplitUpperLower),
	},
	{
		ID:            string(SplitBodyweight),
		Name:          "Bodyweight",
		Description:   "Equipment-free push, pull and legs days.",
		DurationLabel: "1 week, repeating",
		factory:       splitFactory(SplitBodyweight),
	},
}

// Catalog resolves template identifiers to day lists.
type Catalog struct {
	increment float64
}

// NewCatalog returns a catalog that rounds prescriptions down to increment.
// A non-positive increment falls back to DefaultIncrement.
func NewCatalog(increment float64) *Catalog {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &Catalog{increment: increment}
}

// Templates lists all templates in display order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Template returns the template with the given id.
func (c *Catalog) Template(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("template %q: %w", id, models.ErrNotFound)
}

// Instantiate builds a fresh day list for the template. tm may be nil for
// static splits. The result shares nothing with previous calls.
func (c *Catalog) Instantiate(id string, tm *models.TrainingMaxes) ([]models.TrainingDay, error) {
	t, err := c.Template(id)
	if err != nil {
		return nil, err
	}
	var maxes models.TrainingMaxes
	if t.RequiresTrainingMaxes {
		if tm == nil {
			return nil, fmt.Errorf("template %q requires training maxes: %w", id, models.ErrInvalidInput)
		}
		maxes = *tm
	}
	days, err := t.factory(maxes, c.increment)
	if err != nil {
		return nil, fmt.Errorf("building template %q: %w", id, err)
	}
	return models.CloneDays(days), nil
}

// NewCycle instantiates a template into a new cycle starting at start.
func (c *Catalog) NewCycle(id string, tm *models.TrainingMaxes, start time.Time) (*models.Cycle, error) {
	days, err := c.Instantiate(id, tm)
	if err != nil {
		return nil, err
	}
	t, _ := c.Template(id)
	return &models.Cycle{
		ID:           uuid.New(),
		StartDate:    start,
		TemplateName: t.Name,
		TrainingDays: days,
	}, nil
}
