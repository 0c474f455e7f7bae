package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/montanaflynn/stats"
)

// Wilks formula coefficients (men's, bodyweight in kg).
const (
	wilksA = -216.0475144
	wilksB = 16.2606339
	wilksC = -0.002388645
	wilksD = -0.00113732
	wilksE = 7.01863e-6
	wilksF = -1.291e-8

	wilksNumerator = 500.0
)

func WilksCoefficient(bodyWeight float64) float64 {
	bw := bodyWeight
	return wilksNumerator / (wilksA +
		wilksB*bw +
		wilksC*math.Pow(bw, 2) +
		wilksD*math.Pow(bw, 3) +
		wilksE*math.Pow(bw, 4) +
		wilksF*math.Pow(bw, 5))
}

// monthLifts holds the first recorded max of each lift in a month.
type monthLifts struct {
	month    string
	bench    *models.Max
	squat    *models.Max
	deadlift *models.Max
}

func (m monthLifts) total() float64 {
	return m.bench.Weight + m.squat.Weight + m.deadlift.Weight
}

// latest is the date of the most recent of the three lifts.
func (m monthLifts) latest() time.Time {
	latest := m.bench.Date
	for _, d := range []time.Time{m.squat.Date, m.deadlift.Date} {
		if d.After(latest) {
			latest = d
		}
	}
	return latest
}

// completeMonths returns only the months where all three lifts were tested.
func completeMonths(maxes []models.Max) []monthLifts {
	var months []monthLifts
	for _, bucket := range GroupByMonth(sortByDate(maxes)) {
		m := monthLifts{month: bucket.Label}
		for i := range bucket.Records {
			r := &bucket.Records[i]
			switch r.Lift {
			case models.LiftBench:
				if m.bench == nil {
					m.bench = r
				}
			case models.LiftSquat:
				if m.squat == nil {
					m.squat = r
				}
			case models.LiftDeadlift:
				if m.deadlift == nil {
					m.deadlift = r
				}
			}
		}
		if m.bench == nil || m.squat == nil || m.deadlift == nil {
			continue
		}
		months = append(months, m)
	}
	return months
}

// WilksScores scores every month with a complete set of maxes.
// Body weight comes from the squat, falling back to the deadlift.
func WilksScores(maxes []models.Max) []models.WilksScore {
	scores := []models.WilksScore{}

	for _, m := range completeMonths(maxes) {
		bodyWeight := m.squat.BodyWeight
		if bodyWeight == 0 || math.IsNaN(bodyWeight) {
			bodyWeight = m.deadlift.BodyWeight
		}
		if !(bodyWeight > 0) {
			continue
		}

		total := m.total()
		score := total * WilksCoefficient(bodyWeight)
		if !isFinite(score) {
			continue
		}

		scores = append(scores, models.WilksScore{
			Month:      m.month,
			Date:       m.latest(),
			WilksScore: round(score, 2),
			Total:      total,
			BodyWeight: bodyWeight,
			Lifts: models.LiftWeights{
				Bench:    ptr(m.bench.Weight),
				Squat:    ptr(m.squat.Weight),
				Deadlift: ptr(m.deadlift.Weight),
			},
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Date.Before(scores[j].Date)
	})
	return scores
}

// MonthlyTotals sums bench, squat and deadlift for every complete month.
func MonthlyTotals(maxes []models.Max) []models.LiftTotal {
	totals := []models.LiftTotal{}
	for _, m := range completeMonths(maxes) {
		totals = append(totals, models.LiftTotal{
			Month:    m.month,
			Date:     m.latest(),
			Total:    m.total(),
			Bench:    m.bench.Weight,
			Squat:    m.squat.Weight,
			Deadlift: m.deadlift.Weight,
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

// CurrentMaxes returns the heaviest max ever recorded for each lift, 0 if never tested.
func CurrentMaxes(maxes []models.Max) map[models.Lift]float64 {
	weights := make(map[models.Lift]stats.Float64Data)
	for _, m := range maxes {
		weights[m.Lift] = append(weights[m.Lift], m.Weight)
	}

	current := make(map[models.Lift]float64, len(models.Lifts))
	for _, lift := range models.Lifts {
		best, err := stats.Max(weights[lift])
		if err != nil || best < 0 {
			best = 0
		}
		current[lift] = best
	}
	return current
}

// TotalLiftIncrease compares the sum of the first max of each lift with the
// sum of the most recent ones.
func TotalLiftIncrease(maxes []models.Max) (Change, error) {
	sorted := sortByDate(maxes)

	var firstTotal, recentTotal float64
	for _, lift := range models.Lifts {
		var liftMaxes []models.Max
		for _, m := range sorted {
			if m.Lift == lift {
				liftMaxes = append(liftMaxes, m)
			}
		}
		if len(liftMaxes) == 0 {
			return Change{}, fmt.Errorf("no data found for %s: %w", lift, ErrNoData)
		}

		firstTotal += liftMaxes[0].Weight
		recentTotal += liftMaxes[len(liftMaxes)-1].Weight
	}

	return newChange(firstTotal, recentTotal), nil
}

// LiftSeries is the dated history of a single lift, ascending.
func LiftSeries(maxes []models.Max, lift models.Lift) []models.Point {
	series := []models.Point{}
	for _, m := range sortByDate(maxes) {
		if m.Lift != lift || !isFinite(m.Weight) {
			continue
		}
		series = append(series, models.Point{X: m.Date, Y: m.Weight})
	}
	return series
}
