package models

import "time"

// Point is a single {x, y} datum of a line series.
type Point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

type RepCount struct {
	Reps int `json:"reps"`
	Sets int `json:"sets"`
}

// BubblePoint merges every entry of one exercise done on the same day at the same weight.
// The bubble radius is derived from TotalSets by the renderer.
type BubblePoint struct {
	X            int64      `json:"x"` // Unix milliseconds.
	Y            float64    `json:"y"`
	TotalSets    int        `json:"totalSets"`
	MaxReps      int        `json:"maxReps"`
	RepBreakdown []RepCount `json:"repBreakdown"` // Descending by reps.
	Date         time.Time  `json:"date"`
}

type WeeklyExerciseData struct {
	Week                int     `json:"week"`
	VolumeWeightAverage float64 `json:"volumeWeightAverage"`
	TopSet              float64 `json:"topSet"`
}

type BodyCompositionSeries struct {
	Weight           []Point `json:"weight"`
	BodyFatNavy      []Point `json:"bodyFatNavy"`
	BodyFatCalipers  []Point `json:"bodyFatCalipers"`
	BodyFatComposite []Point `json:"bodyFatComposite"`
}
