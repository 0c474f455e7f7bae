package models

//
// For TOML import/export only
//

// Dataset is a full snapshot of every table in the store.
type Dataset struct {
	Workouts        []Workout         `toml:"workout"`
	BodyComposition []BodyComposition `toml:"body_composition"`
	Maxes           []Max             `toml:"max"`
	Sleep           []Sleep           `toml:"sleep"`
	Hormones        []Hormone         `toml:"hormone"`
	Supplements     []Supplement      `toml:"supplement"`
}
