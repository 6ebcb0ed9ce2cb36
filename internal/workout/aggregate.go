package workout

import (
	"fmt"
	"math"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// Aggregate reduces a finished session's exercises into summary
// statistics. Warmup sets are excluded from volume, set and rep counts
// but count toward maxWeight (they reflect the heaviest weight handled).
// priorBests maps exerciseId to the best working-set weight found in the
// archive before this session; exercises with no entry never emit a PR —
// a first occurrence is not a record.
//
// The function is pure: it performs no I/O and does not mutate its
// inputs, so identical arguments always produce identical output.
func Aggregate(exercises []models.SessionExercise, start, end time.Time, priorBests map[string]float64) (models.AggregatedData, error) {
	var (
		totalVolume float64
		totalSets   int
		totalReps   int
		maxWeight   float64
	)
	prs := []models.PrRecord{}

	for _, ex := range exercises {
		bestWorking := 0.0
		for _, set := range ex.Sets {
			if set.Reps < 0 || set.Weight < 0 {
				return models.AggregatedData{}, fmt.Errorf("exercise %s has a set with negative reps or weight", ex.Name)
			}
			if !set.IsWarmup {
				totalVolume += float64(set.Reps) * set.Weight
				totalSets++
				totalReps += set.Reps
				if set.Weight > bestWorking {
					bestWorking = set.Weight
				}
			}
			if set.Weight > maxWeight {
				maxWeight = set.Weight
			}
		}

		prev, seen := priorBests[ex.ExerciseID]
		if seen && bestWorking > prev {
			prs = append(prs, models.PrRecord{
				ExerciseID:    ex.ExerciseID,
				ExerciseName:  ex.Name,
				Description:   fmt.Sprintf("New max weight: %g (was %g)", bestWorking, prev),
				PreviousValue: prev,
				NewValue:      bestWorking,
			})
		}
	}

	minutes := int(math.Round(end.Sub(start).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	return models.AggregatedData{
		TotalVolume:     math.Round(totalVolume),
		TotalSets:       totalSets,
		TotalReps:       totalReps,
		DurationMinutes: minutes,
		MaxWeight:       maxWeight,
		PrsAchieved:     prs,
	}, nil
}
