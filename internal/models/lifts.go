package models

import "time"

type Lift string

const (
	LiftBench    Lift = "Bench"
	LiftSquat    Lift = "Squat"
	LiftDeadlift Lift = "Deadlift"
)

// Lifts is the display order used everywhere a per-lift breakdown is printed.
var Lifts = []Lift{LiftBench, LiftSquat, LiftDeadlift}

func (l Lift) Valid() bool {
	switch l {
	case LiftBench, LiftSquat, LiftDeadlift:
		return true
	}
	return false
}

// Max is a tested one-rep max. Month is the label the max was recorded under
// and is the grouping key for Wilks and totals.
type Max struct {
	ID         string    `json:"id" toml:"id"`
	Lift       Lift      `json:"lift" toml:"lift"`
	Weight     float64   `json:"weight" toml:"weight"`
	BodyWeight float64   `json:"bodyWeight" toml:"body_weight"`
	Month      string    `json:"month" toml:"month"`
	Date       time.Time `json:"date" toml:"date"`
}

func (m Max) RecordDate() time.Time { return m.Date }
func (m Max) RecordMonth() string   { return m.Month }

type LiftWeights struct {
	Bench    *float64 `json:"bench,omitempty"`
	Squat    *float64 `json:"squat,omitempty"`
	Deadlift *float64 `json:"deadlift,omitempty"`
}

type WilksScore struct {
	Month      string      `json:"month"`
	Date       time.Time   `json:"date"`
	WilksScore float64     `json:"wilksScore"`
	Total      float64     `json:"total"`
	BodyWeight float64     `json:"bodyWeight"`
	Lifts      LiftWeights `json:"lifts"`
}

type LiftTotal struct {
	Month    string    `json:"month"`
	Date     time.Time `json:"date"`
	Total    float64   `json:"total"`
	Bench    float64   `json:"bench"`
	Squat    float64   `json:"squat"`
	Deadlift float64   `json:"deadlift"`
}
