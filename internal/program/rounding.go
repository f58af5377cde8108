package program

import (
	"fmt"
	"math"

	"github.com/claude/liftcycle/internal/models"
)

// DefaultIncrement is the smallest load change available with standard plates.
const DefaultIncrement = 5.0

// RoundDown rounds target down to the nearest multiple of increment so a
// prescription never exceeds the computed weight.
func RoundDown(target, increment float64) (float64, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) || target < 0 {
		return 0, fmt.Errorf("rounding target %v: %w", target, models.ErrInvalidInput)
	}
	if math.IsNaN(increment) || math.IsInf(increment, 0) || increment <= 0 {
		return 0, fmt.Errorf("rounding increment %v: %w", increment, models.ErrInvalidInput)
	}
	return math.Floor(target/increment) * increment, nil
}

// TrainingMaxFromOneRepMax returns 90% of a tested or estimated 1RM, rounded
// down to the increment.
func TrainingMaxFromOneRepMax(oneRM, increment float64) (float64, error) {
	return RoundDown(oneRM*0.9, increment)
}
