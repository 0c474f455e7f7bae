package metrics_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMetrics(t *testing.T) {
	defaults := metrics.DefaultMetrics()
	require.Len(t, defaults, 9)
	assert.Equal(t, []string{metrics.MetricWeight, metrics.MetricBodyFatComposite}, enabledIDs(defaults))
	assert.Len(t, metrics.EnabledUnits(defaults), 2)

	defaults[0].Enabled = true
	assert.False(t, metrics.DefaultMetrics()[0].Enabled)
}

func TestBiometricSeries(t *testing.T) {
	data := metrics.BiometricData{
		Sleep: []models.Sleep{
			{Date: day(time.February, 1), Overall: 420},
			{Date: day(time.January, 1), Overall: 400},
		},
		Hormones: []models.Hormone{
			{Date: day(time.January, 5), TotalTestosterone: 550, FreeTestosterone: 12, SexHormoneBindingGlobulin: 30, FAI: 60},
			{Date: day(time.March, 5), TotalTestosterone: math.NaN(), FreeTestosterone: 14},
		},
		BodyComposition: []models.BodyComposition{
			withFat(bodyComp(1, 80), f(15), f(13)),
		},
	}

	sleep := metrics.BiometricSeries(metrics.MetricOverallSleep, data)
	assert.Equal(t, []models.Point{
		{X: day(time.January, 1), Y: 400},
		{X: day(time.February, 1), Y: 420},
	}, sleep)

	tt := metrics.BiometricSeries(metrics.MetricTotalTestosterone, data)
	require.Len(t, tt, 1)
	assert.Equal(t, 550.0, tt[0].Y)

	assert.Len(t, metrics.BiometricSeries(metrics.MetricFreeTestosterone, data), 2)
	assert.Equal(t, 30.0, metrics.BiometricSeries(metrics.MetricSHBG, data)[0].Y)
	assert.Equal(t, 60.0, metrics.BiometricSeries(metrics.MetricFAI, data)[0].Y)
	assert.Equal(t, 80.0, metrics.BiometricSeries(metrics.MetricWeight, data)[0].Y)
	assert.Equal(t, 15.0, metrics.BiometricSeries(metrics.MetricBodyFatNavy, data)[0].Y)
	assert.Equal(t, 13.0, metrics.BiometricSeries(metrics.MetricBodyFatCalipers, data)[0].Y)
	assert.Equal(t, 14.0, metrics.BiometricSeries(metrics.MetricBodyFatComposite, data)[0].Y)

	unknown := metrics.BiometricSeries("steps", data)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestTestosteroneIncrease(t *testing.T) {
	change, err := metrics.TestosteroneIncrease([]models.Hormone{
		{Date: day(time.March, 1), TotalTestosterone: 600},
		{Date: day(time.January, 1), TotalTestosterone: 400},
		{Date: day(time.May, 1), TotalTestosterone: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, change.Start)
	assert.Equal(t, 600.0, change.End)
	assert.InDelta(t, 50.0, change.Percent, 1e-9)

	_, err = metrics.TestosteroneIncrease(nil)
	assert.True(t, errors.Is(err, metrics.ErrNoData))
}

func TestMonthTimeline(t *testing.T) {
	slots := metrics.MonthTimeline([]models.Point{
		{X: day(time.April, 20), Y: 300},
		{X: day(time.January, 10), Y: 250},
		{X: day(time.April, 2), Y: 290},
	})

	require.Len(t, slots, 4)
	assert.Equal(t, day(time.January, 1), slots[0].Month)
	require.NotNil(t, slots[0].Value)
	assert.Equal(t, 250.0, *slots[0].Value)
	assert.Nil(t, slots[1].Value)
	assert.Nil(t, slots[2].Value)
	assert.Equal(t, day(time.April, 1), slots[3].Month)
	require.NotNil(t, slots[3].Value)
	assert.Equal(t, 290.0, *slots[3].Value)

	assert.Empty(t, metrics.MonthTimeline(nil))
}

func TestMonthTimeline_SpansYears(t *testing.T) {
	slots := metrics.MonthTimeline([]models.Point{
		{X: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC), Y: 1},
		{X: time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), Y: 2},
	})
	require.Len(t, slots, 4)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), slots[1].Month)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), slots[2].Month)
}

func TestMonthlySleep(t *testing.T) {
	nights := []models.Sleep{
		{Date: day(time.February, 2), Month: "February", Overall: 450, Deep: 60},
		{Date: day(time.January, 1), Month: "January", Overall: 400, Awake: 20, Deep: 50},
		{Date: day(time.January, 2), Month: "January", Overall: 421, Awake: math.NaN(), Deep: 55},
	}

	months := metrics.MonthlySleep(nights)
	require.Len(t, months, 2)

	assert.Equal(t, "January", months[0].Month)
	assert.Equal(t, day(time.January, 1), months[0].Date)
	assert.Equal(t, 2, months[0].Nights)
	assert.Equal(t, 410.5, months[0].Overall)
	assert.Equal(t, 20.0, months[0].Awake)
	assert.Equal(t, 52.5, months[0].Deep)

	assert.Equal(t, "February", months[1].Month)
	assert.Equal(t, 1, months[1].Nights)
	assert.Equal(t, 0.0, months[1].Awake)

	assert.Empty(t, metrics.MonthlySleep(nil))
}
