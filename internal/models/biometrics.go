package models

import "time"

// BodyComposition is a single weigh-in. Either body fat reading may be missing.
type BodyComposition struct {
	ID              string    `json:"id" toml:"id"`
	Date            time.Time `json:"date" toml:"date"`
	Week            int       `json:"week" toml:"week"`
	Weight          float64   `json:"weight" toml:"weight"`
	BodyFatNavy     *float64  `json:"bodyFatNavy,omitempty" toml:"body_fat_navy,omitempty"`
	BodyFatCalipers *float64  `json:"bodyFatCalipers,omitempty" toml:"body_fat_calipers,omitempty"`
}

func (b BodyComposition) RecordDate() time.Time { return b.Date }
func (b BodyComposition) RecordWeek() int       { return b.Week }

type Hormone struct {
	ID                        string    `json:"id" toml:"id"`
	TotalTestosterone         float64   `json:"totalTestosterone" toml:"total_testosterone"`
	FreeTestosterone          float64   `json:"freeTestosterone" toml:"free_testosterone"`
	SexHormoneBindingGlobulin float64   `json:"sexHormoneBindingGlobulin" toml:"sex_hormone_binding_globulin"`
	FAI                       float64   `json:"fai" toml:"fai"`
	Date                      time.Time `json:"date" toml:"date"`
}

func (h Hormone) RecordDate() time.Time { return h.Date }

// Sleep holds the minutes spent in each stage. Overall excludes Awake.
type Sleep struct {
	ID      string    `json:"id" toml:"id"`
	Date    time.Time `json:"date" toml:"date"`
	Month   string    `json:"month" toml:"month"`
	Overall float64   `json:"overall" toml:"overall"`
	Awake   float64   `json:"awake" toml:"awake"`
	Core    float64   `json:"core" toml:"core"`
	REM     float64   `json:"rem" toml:"rem"`
	Deep    float64   `json:"deep" toml:"deep"`
}

func (s Sleep) RecordDate() time.Time { return s.Date }
func (s Sleep) RecordMonth() string   { return s.Month }
