package metrics

import (
	"fmt"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/montanaflynn/stats"
)

// BodyFatBlockWeeks is the width of the blocks body fat readings are averaged over.
const BodyFatBlockWeeks = 4

// ProcessBodyComposition plots weight at full resolution and body fat as one
// averaged point per block. Each block point is dated at the block's middle
// sample. The composite series only has a point where both methods do.
func ProcessBodyComposition(samples []models.BodyComposition) models.BodyCompositionSeries {
	series := models.BodyCompositionSeries{
		Weight:           []models.Point{},
		BodyFatNavy:      []models.Point{},
		BodyFatCalipers:  []models.Point{},
		BodyFatComposite: []models.Point{},
	}
	if len(samples) == 0 {
		return series
	}

	sorted := sortByDate(samples)
	for _, s := range sorted {
		if !isFinite(s.Weight) {
			continue
		}
		series.Weight = append(series.Weight, models.Point{X: s.Date, Y: round(s.Weight, 1)})
	}

	for _, block := range GroupByBlock(sorted, BodyFatBlockWeeks) {
		date := block.Records[len(block.Records)/2].Date

		navy, hasNavy := blockMean(block.Records, func(b models.BodyComposition) *float64 {
			return b.BodyFatNavy
		})
		calipers, hasCalipers := blockMean(block.Records, func(b models.BodyComposition) *float64 {
			return b.BodyFatCalipers
		})

		if hasNavy {
			series.BodyFatNavy = append(series.BodyFatNavy, models.Point{X: date, Y: round(navy, 1)})
		}
		if hasCalipers {
			series.BodyFatCalipers = append(series.BodyFatCalipers, models.Point{X: date, Y: round(calipers, 1)})
		}
		if hasNavy && hasCalipers {
			composite := (navy + calipers) / 2
			series.BodyFatComposite = append(series.BodyFatComposite, models.Point{X: date, Y: round(composite, 1)})
		}
	}

	return series
}

// blockMean averages the finite readings of one method. False when there are none.
func blockMean(records []models.BodyComposition, reading func(models.BodyComposition) *float64) (float64, bool) {
	var valid stats.Float64Data
	for _, r := range records {
		if v := reading(r); v != nil && isFinite(*v) {
			valid = append(valid, *v)
		}
	}

	mean, err := stats.Mean(valid)
	if err != nil {
		return 0, false
	}
	return mean, true
}

// WeightChange compares the first and last weigh-in.
func WeightChange(samples []models.BodyComposition) (Change, error) {
	if len(samples) == 0 {
		return Change{}, fmt.Errorf("no body composition data found: %w", ErrNoData)
	}

	sorted := sortByDate(samples)
	return newChange(sorted[0].Weight, sorted[len(sorted)-1].Weight), nil
}
