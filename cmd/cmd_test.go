package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/fraserkalirai/fraser-2025-recap/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM workouts`).WillReturnRows(
		sqlmock.NewRows([]string{"week", "volume"}).AddRow(1, 1000.0).AddRow(2, 1500.0))
	mock.ExpectQuery(`FROM hormones`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "total_testosterone", "free_testosterone", "sex_hormone_binding_globulin", "fai", "date"}))
	mock.ExpectQuery(`FROM maxes`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "lift", "weight", "body_weight", "month", "date"}).
			AddRow("1", "Bench", 100.0, 80.0, "January", "2025-01-20").
			AddRow("2", "Squat", 150.0, 80.0, "January", "2025-01-21").
			AddRow("3", "Deadlift", 180.0, 80.0, "January", "2025-01-22").
			AddRow("4", "Bench", 110.0, 81.0, "June", "2025-06-20"))
	mock.ExpectQuery(`FROM body_composition`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "date", "week", "weight", "body_fat_navy", "body_fat_calipers"}).
			AddRow("1", "2025-01-06", 1, 80.0, nil, nil).
			AddRow("2", "2025-06-02", 22, 84.0, nil, nil))

	cards, err := buildSummary(context.Background(), storage.New(db))
	require.NoError(t, err)
	require.Len(t, cards, 4)

	require.NotNil(t, cards[0].Total)
	assert.Equal(t, 2500.0, *cards[0].Total)

	assert.Equal(t, "Testosterone increase", cards[1].Title)
	assert.Nil(t, cards[1].Change)

	require.NotNil(t, cards[2].Change)
	assert.Equal(t, 430.0, cards[2].Change.Start)
	assert.Equal(t, 440.0, cards[2].Change.End)

	require.NotNil(t, cards[3].Change)
	assert.Equal(t, 4.0, cards[3].Change.Delta)
	assert.Equal(t, 5.0, cards[3].Change.Percent)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChartSeries(t *testing.T) {
	maxes := []models.Max{
		{Lift: models.LiftBench, Weight: 100, BodyWeight: 80, Month: "January", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{Lift: models.LiftSquat, Weight: 150, BodyWeight: 80, Month: "January", Date: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)},
		{Lift: models.LiftDeadlift, Weight: 180, BodyWeight: 80, Month: "January", Date: time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)},
	}

	name, series, err := chartSeries("squat")
	require.NoError(t, err)
	assert.Equal(t, "Squat", name)
	require.Len(t, series(maxes), 1)
	assert.Equal(t, 150.0, series(maxes)[0].Y)

	name, series, err = chartSeries("TOTAL")
	require.NoError(t, err)
	assert.Equal(t, chartTotal, name)
	require.Len(t, series(maxes), 1)
	assert.Equal(t, 430.0, series(maxes)[0].Y)

	name, series, err = chartSeries("wilks")
	require.NoError(t, err)
	assert.Equal(t, chartWilks, name)
	require.Len(t, series(maxes), 1)
	assert.Equal(t, 293.56, series(maxes)[0].Y)

	_, _, err = chartSeries("Overhead")
	assert.Error(t, err)
}

func TestFormatBreakdown(t *testing.T) {
	assert.Equal(t, "2×8, 1×6", formatBreakdown([]models.RepCount{{Reps: 8, Sets: 2}, {Reps: 6, Sets: 1}}))
	assert.Equal(t, "", formatBreakdown(nil))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, []models.RepCount{{Reps: 5, Sets: 3}}))
	assert.JSONEq(t, `[{"reps":5,"sets":3}]`, buf.String())
}

func TestSeriesColorWraps(t *testing.T) {
	assert.Equal(t, seriesColor(0, false), seriesColor(len(lightSeriesColors), false))
	assert.NotEqual(t, seriesColor(0, false), seriesColor(0, true))
}
