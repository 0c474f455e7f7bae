package metrics

import (
	"sort"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
)

// WeeklyLoad reduces one exercise's entries to a volume-weighted average load
// and the heaviest weight for every week it was trained.
func WeeklyLoad(workouts []models.Workout) []models.WeeklyExerciseData {
	buckets := GroupByWeek(workouts)
	weekly := make([]models.WeeklyExerciseData, 0, len(buckets))

	for _, bucket := range buckets {
		var totalVolumeWeight, topWeight float64
		var totalReps int

		for _, w := range bucket.Records {
			volume := w.Sets * w.Reps
			totalVolumeWeight += float64(volume) * w.Weight
			totalReps += volume
			if w.Weight > topWeight {
				topWeight = w.Weight
			}
		}

		var volumeWeightAverage float64
		if totalReps > 0 {
			volumeWeightAverage = totalVolumeWeight / float64(totalReps)
		}

		weekly = append(weekly, models.WeeklyExerciseData{
			Week:                bucket.Key,
			VolumeWeightAverage: volumeWeightAverage,
			TopSet:              topWeight,
		})
	}

	return weekly
}

type bubbleKey struct {
	day    string
	weight float64
}

// ExerciseBubbles merges entries done on the same day at the same weight into
// one scatter point, with a histogram of how many sets were done at each rep count.
// Points come out in order of first appearance.
func ExerciseBubbles(workouts []models.Workout) []models.BubblePoint {
	index := make(map[bubbleKey]int)
	var groups [][]models.Workout
	for _, w := range workouts {
		key := bubbleKey{day: w.Date.Format("2006-01-02"), weight: w.Weight}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], w)
	}

	points := make([]models.BubblePoint, 0, len(groups))
	for _, group := range groups {
		first := group[0]
		totalSets := 0
		maxReps := first.Reps
		repSets := make(map[int]int)

		for _, w := range group {
			totalSets += w.Sets
			if w.Reps > maxReps {
				maxReps = w.Reps
			}
			repSets[w.Reps] += w.Sets
		}

		breakdown := make([]models.RepCount, 0, len(repSets))
		for reps, sets := range repSets {
			breakdown = append(breakdown, models.RepCount{Reps: reps, Sets: sets})
		}
		sort.Slice(breakdown, func(i, j int) bool {
			return breakdown[i].Reps > breakdown[j].Reps
		})

		points = append(points, models.BubblePoint{
			X:            first.Date.UnixMilli(),
			Y:            first.Weight,
			TotalSets:    totalSets,
			MaxReps:      maxReps,
			RepBreakdown: breakdown,
			Date:         first.Date,
		})
	}

	return points
}

func TotalVolume(weekly []models.WeeklyVolume) float64 {
	var total float64
	for _, w := range weekly {
		total += w.TotalVolume
	}
	return total
}
