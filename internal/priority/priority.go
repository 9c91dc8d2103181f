// Package priority implements the urgency/importance scoring engine behind
// the Eisenhower-style task matrix. Urgency is derived from deadline
// proximity, importance from subtask count, and each task maps to one of
// four quadrants based on its matrix position.
package priority

import (
	"math"
	"time"
)

// Quadrant identifies one of the four regions of the priority matrix.
type Quadrant string

const (
	// DoFirst is the urgent and important quadrant.
	DoFirst Quadrant = "Do First"
	// Schedule is the important but not urgent quadrant.
	Schedule Quadrant = "Schedule"
	// Delegate is the urgent but not important quadrant.
	Delegate Quadrant = "Delegate"
	// Eliminate is the neither urgent nor important quadrant.
	Eliminate Quadrant = "Eliminate"
)

// String returns the display name of the quadrant.
func (q Quadrant) String() string {
	return string(q)
}

// Scores in the matrix run from 0 to 100 on both axes.
const (
	// ScoreMin is the lower bound of both axes.
	ScoreMin = 0
	// ScoreMax is the upper bound of both axes.
	ScoreMax = 100
	// Midpoint splits the matrix into quadrants. A coordinate exactly at
	// the midpoint counts as the high side.
	Midpoint = 50
)

// UrgencyScore maps deadline proximity to an urgency value.
// Tasks without a deadline sit at a low-moderate 25. Overdue tasks are
// maximally urgent and the score steps down as the deadline recedes.
func UrgencyScore(deadline *time.Time, now time.Time) int {
	if deadline == nil {
		return 25
	}

	days := deadline.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return 100
	case days < 1:
		return 95
	case days < 3:
		return 85
	case days < 7:
		return 70
	case days < 14:
		return 50
	case days < 30:
		return 30
	default:
		return 15
	}
}

// ImportanceScore maps subtask count to an importance value.
// More subtasks signal a bigger, more consequential piece of work.
func ImportanceScore(subtaskCount int) int {
	switch {
	case subtaskCount >= 8:
		return 90
	case subtaskCount >= 6:
		return 75
	case subtaskCount >= 4:
		return 60
	case subtaskCount >= 2:
		return 45
	default:
		return 30
	}
}

// QuadrantFor returns the matrix quadrant for a position. The x axis is
// urgency and the y axis is importance. Ties at the midpoint go to the
// high side, so (50, 50) is Do First.
func QuadrantFor(x, y float64) Quadrant {
	switch {
	case x >= Midpoint && y >= Midpoint:
		return DoFirst
	case x < Midpoint && y >= Midpoint:
		return Schedule
	case x >= Midpoint && y < Midpoint:
		return Delegate
	default:
		return Eliminate
	}
}

// Clamp bounds a coordinate to the matrix range.
func Clamp(v float64) float64 {
	return math.Min(ScoreMax, math.Max(ScoreMin, v))
}
