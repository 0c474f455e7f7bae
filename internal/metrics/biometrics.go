package metrics

import (
	"sort"
	"time"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/montanaflynn/stats"
)

const (
	MetricOverallSleep      = "overall_sleep"
	MetricTotalTestosterone = "total_testosterone"
	MetricFreeTestosterone  = "free_testosterone"
	MetricSHBG              = "shbg"
	MetricFAI               = "fai"
	MetricWeight            = "weight"
	MetricBodyFatNavy       = "body_fat_navy"
	MetricBodyFatCalipers   = "body_fat_calipers"
	MetricBodyFatComposite  = "body_fat_composite"
)

// UnitTime marks sleep metrics, which are stored in minutes and shown in hours.
const UnitTime = "time"

// DefaultMetrics returns a fresh copy of the biometrics catalogue with weight
// and composite body fat enabled.
func DefaultMetrics() []Metric {
	return []Metric{
		{ID: MetricOverallSleep, Label: "Overall Sleep", Unit: UnitTime},
		{ID: MetricTotalTestosterone, Label: "Total Testosterone", Unit: "ng/dl"},
		{ID: MetricFreeTestosterone, Label: "Free Testosterone", Unit: "ng/dl - Free Testosterone"},
		{ID: MetricSHBG, Label: "SHBG", Unit: "ng/dl"},
		{ID: MetricFAI, Label: "FAI", Unit: "% - FAI"},
		{ID: MetricWeight, Label: "Weight", Unit: "kg", Enabled: true},
		{ID: MetricBodyFatNavy, Label: "Body Fat - Navy", Unit: "%"},
		{ID: MetricBodyFatCalipers, Label: "Body Fat - Calipers", Unit: "%"},
		{ID: MetricBodyFatComposite, Label: "Body Fat - Composite", Unit: "%", Enabled: true},
	}
}

// BiometricData is the raw snapshot every biometric series is derived from.
type BiometricData struct {
	Sleep           []models.Sleep
	Hormones        []models.Hormone
	BodyComposition []models.BodyComposition
}

// BiometricSeries returns the chart series for a metric id. Unknown ids yield
// an empty series.
func BiometricSeries(id string, data BiometricData) []models.Point {
	switch id {
	case MetricOverallSleep:
		return seriesOf(data.Sleep, func(s models.Sleep) float64 { return s.Overall })
	case MetricTotalTestosterone:
		return seriesOf(data.Hormones, func(h models.Hormone) float64 { return h.TotalTestosterone })
	case MetricFreeTestosterone:
		return seriesOf(data.Hormones, func(h models.Hormone) float64 { return h.FreeTestosterone })
	case MetricSHBG:
		return seriesOf(data.Hormones, func(h models.Hormone) float64 { return h.SexHormoneBindingGlobulin })
	case MetricFAI:
		return seriesOf(data.Hormones, func(h models.Hormone) float64 { return h.FAI })
	}

	bodyComp := ProcessBodyComposition(data.BodyComposition)
	switch id {
	case MetricWeight:
		return bodyComp.Weight
	case MetricBodyFatNavy:
		return bodyComp.BodyFatNavy
	case MetricBodyFatCalipers:
		return bodyComp.BodyFatCalipers
	case MetricBodyFatComposite:
		return bodyComp.BodyFatComposite
	}
	return []models.Point{}
}

func seriesOf[T Dated](records []T, value func(T) float64) []models.Point {
	series := make([]models.Point, 0, len(records))
	for _, r := range sortByDate(records) {
		v := value(r)
		if !isFinite(v) {
			continue
		}
		series = append(series, models.Point{X: r.RecordDate(), Y: v})
	}
	return series
}

func sortPoints(points []models.Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].X.Before(points[j].X)
	})
}

// SleepMonth holds the mean nightly minutes of one month.
type SleepMonth struct {
	Month   string    `json:"month"`
	Date    time.Time `json:"date"` // First night of the month.
	Nights  int       `json:"nights"`
	Overall float64   `json:"overall"`
	Awake   float64   `json:"awake"`
	Core    float64   `json:"core"`
	REM     float64   `json:"rem"`
	Deep    float64   `json:"deep"`
}

// MonthlySleep averages nightly readings per month label, oldest month first.
func MonthlySleep(nights []models.Sleep) []SleepMonth {
	months := []SleepMonth{}
	for _, b := range GroupByMonth(sortByDate(nights)) {
		months = append(months, SleepMonth{
			Month:   b.Label,
			Date:    b.Records[0].Date,
			Nights:  len(b.Records),
			Overall: sleepMean(b.Records, func(s models.Sleep) float64 { return s.Overall }),
			Awake:   sleepMean(b.Records, func(s models.Sleep) float64 { return s.Awake }),
			Core:    sleepMean(b.Records, func(s models.Sleep) float64 { return s.Core }),
			REM:     sleepMean(b.Records, func(s models.Sleep) float64 { return s.REM }),
			Deep:    sleepMean(b.Records, func(s models.Sleep) float64 { return s.Deep }),
		})
	}
	return months
}

func sleepMean(nights []models.Sleep, value func(models.Sleep) float64) float64 {
	var data stats.Float64Data
	for _, n := range nights {
		if v := value(n); isFinite(v) {
			data = append(data, v)
		}
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return 0
	}
	return round(mean, 1)
}
