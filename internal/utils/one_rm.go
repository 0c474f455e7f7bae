package utils

// EstimatedOneRM projects a set of reps at weight to a one rep max with the Epley formula.
// A single rep is its own max.
func EstimatedOneRM(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	return weight * (1 + float64(reps)/30)
}
