package models

import "time"

type Workout struct {
	ID       string    `json:"id" toml:"id"`
	Date     time.Time `json:"date" toml:"date"`
	Week     int       `json:"week" toml:"week"`
	Day      int       `json:"day" toml:"day"`
	Exercise string    `json:"exercise" toml:"exercise"`
	Sets     int       `json:"sets" toml:"sets"`
	Reps     int       `json:"reps" toml:"reps"`
	Weight   float64   `json:"weight" toml:"weight"`
}

func (w Workout) RecordDate() time.Time { return w.Date }
func (w Workout) RecordWeek() int       { return w.Week }

// WeeklyVolume is the total load (sets × reps × weight) lifted in one program week.
type WeeklyVolume struct {
	WeekNumber  int     `json:"weekNumber"`
	TotalVolume float64 `json:"totalVolume"`
}

type ExerciseCount struct {
	Exercise string `json:"exercise"`
	Count    int    `json:"count"`
}

type Supplement struct {
	ID              string     `json:"id" toml:"id"`
	Type            string     `json:"type" toml:"type"` // Morning, Night or Preworkout.
	Supplement      string     `json:"supplement" toml:"supplement"`
	Dosage          string     `json:"dosage" toml:"dosage"`
	IncreasedDosage *string    `json:"increasedDosage,omitempty" toml:"increased_dosage,omitempty"`
	DateOfIncrease  *time.Time `json:"dateOfIncrease,omitempty" toml:"date_of_increase,omitempty"`
}
