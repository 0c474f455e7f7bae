package metrics_test

import (
	"testing"
	"time"

	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyLoad(t *testing.T) {
	workouts := []models.Workout{
		{Exercise: "Squat", Week: 2, Sets: 3, Reps: 5, Weight: 120},
		{Exercise: "Squat", Week: 1, Sets: 3, Reps: 5, Weight: 100},
		{Exercise: "Squat", Week: 1, Sets: 2, Reps: 10, Weight: 80},
		{Exercise: "Squat", Week: 2, Sets: 1, Reps: 1, Weight: 140},
	}

	weekly := metrics.WeeklyLoad(workouts)
	require.Len(t, weekly, 2)

	// week 1: (15×100 + 20×80) / 35
	assert.Equal(t, 1, weekly[0].Week)
	assert.InDelta(t, 3100.0/35.0, weekly[0].VolumeWeightAverage, 1e-9)
	assert.Equal(t, 100.0, weekly[0].TopSet)

	// week 2: (15×120 + 1×140) / 16
	assert.Equal(t, 2, weekly[1].Week)
	assert.InDelta(t, 1940.0/16.0, weekly[1].VolumeWeightAverage, 1e-9)
	assert.Equal(t, 140.0, weekly[1].TopSet)
}

func TestWeeklyLoad_RecoversWeightedSum(t *testing.T) {
	workouts := []models.Workout{
		{Week: 4, Sets: 4, Reps: 8, Weight: 62.5},
		{Week: 4, Sets: 1, Reps: 12, Weight: 50},
		{Week: 4, Sets: 2, Reps: 3, Weight: 77.5},
	}

	weekly := metrics.WeeklyLoad(workouts)
	require.Len(t, weekly, 1)

	var volume, weighted float64
	for _, w := range workouts {
		volume += float64(w.Sets * w.Reps)
		weighted += float64(w.Sets*w.Reps) * w.Weight
	}
	assert.InDelta(t, weighted, weekly[0].VolumeWeightAverage*volume, 1e-9)
}

func TestWeeklyLoad_ZeroVolume(t *testing.T) {
	weekly := metrics.WeeklyLoad([]models.Workout{{Week: 1, Sets: 0, Reps: 5, Weight: 100}})
	require.Len(t, weekly, 1)
	assert.Equal(t, 0.0, weekly[0].VolumeWeightAverage)
	assert.Equal(t, 100.0, weekly[0].TopSet)
}

func TestWeeklyLoad_Empty(t *testing.T) {
	weekly := metrics.WeeklyLoad(nil)
	require.NotNil(t, weekly)
	assert.Empty(t, weekly)
}

func TestExerciseBubbles_MergesSameDayAndWeight(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{Date: day, Week: 1, Sets: 5, Reps: 5, Weight: 100},
		{Date: day, Week: 1, Sets: 3, Reps: 8, Weight: 100},
		{Date: day, Week: 1, Sets: 2, Reps: 3, Weight: 110},
	}

	points := metrics.ExerciseBubbles(workouts)
	require.Len(t, points, 2)

	merged := points[0]
	assert.Equal(t, day.UnixMilli(), merged.X)
	assert.Equal(t, 100.0, merged.Y)
	assert.Equal(t, 8, merged.TotalSets)
	assert.Equal(t, 8, merged.MaxReps)
	assert.Equal(t, []models.RepCount{{Reps: 8, Sets: 3}, {Reps: 5, Sets: 5}}, merged.RepBreakdown)
	assert.Equal(t, day, merged.Date)

	assert.Equal(t, 110.0, points[1].Y)
	assert.Equal(t, 2, points[1].TotalSets)
}

func TestExerciseBubbles_IgnoresWeekAndSumsRepeatedReps(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{Date: day, Week: 1, Sets: 2, Reps: 5, Weight: 60},
		{Date: day, Week: 2, Sets: 1, Reps: 5, Weight: 60},
		{Date: day.AddDate(0, 0, 1), Week: 2, Sets: 1, Reps: 5, Weight: 60},
	}

	points := metrics.ExerciseBubbles(workouts)
	require.Len(t, points, 2)
	assert.Equal(t, []models.RepCount{{Reps: 5, Sets: 3}}, points[0].RepBreakdown)
	assert.Equal(t, 3, points[0].TotalSets)
}

func TestAggregators_Idempotent(t *testing.T) {
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		{Date: day, Week: 1, Sets: 5, Reps: 5, Weight: 100},
		{Date: day, Week: 1, Sets: 3, Reps: 8, Weight: 100},
		{Date: day, Week: 1, Sets: 1, Reps: 12, Weight: 100},
		{Date: day.AddDate(0, 0, 7), Week: 2, Sets: 2, Reps: 3, Weight: 110},
	}

	assert.Equal(t, metrics.WeeklyLoad(workouts), metrics.WeeklyLoad(workouts))
	assert.Equal(t, metrics.ExerciseBubbles(workouts), metrics.ExerciseBubbles(workouts))
}

func TestTotalVolume(t *testing.T) {
	assert.Equal(t, 0.0, metrics.TotalVolume(nil))
	assert.Equal(t, 3500.0, metrics.TotalVolume([]models.WeeklyVolume{
		{WeekNumber: 1, TotalVolume: 1500},
		{WeekNumber: 2, TotalVolume: 2000},
	}))
}
