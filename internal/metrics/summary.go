package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/montanaflynn/stats"
)

// ErrNoData is returned by the headline summaries when there is nothing to compare.
var ErrNoData = errors.New("no data")

// Change describes how a value moved between a starting and an ending reading.
type Change struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Delta   float64 `json:"delta"`
	Percent float64 `json:"percent"`
}

// newChange leaves Percent at 0 when Start is 0.
func newChange(start, end float64) Change {
	c := Change{Start: start, End: end, Delta: end - start}
	if start != 0 {
		c.Percent = (end - start) / start * 100
	}
	return c
}

// TestosteroneIncrease compares the first total testosterone reading with the peak.
func TestosteroneIncrease(hormones []models.Hormone) (Change, error) {
	if len(hormones) == 0 {
		return Change{}, fmt.Errorf("no testosterone data found: %w", ErrNoData)
	}

	sorted := sortByDate(hormones)
	readings := make(stats.Float64Data, 0, len(sorted))
	for _, h := range sorted {
		readings = append(readings, h.TotalTestosterone)
	}

	peak, err := stats.Max(readings)
	if err != nil {
		return Change{}, fmt.Errorf("failed to find peak testosterone: %w", err)
	}
	return newChange(sorted[0].TotalTestosterone, peak), nil
}

// MonthSlot is one calendar month of a contiguous timeline. Value is nil for
// months with no reading so charts can leave a gap.
type MonthSlot struct {
	Month time.Time `json:"month"`
	Value *float64  `json:"value"`
}

// MonthTimeline spreads points over every calendar month from the first to the
// last one. When a month has several points the earliest wins.
func MonthTimeline(points []models.Point) []MonthSlot {
	slots := []MonthSlot{}
	if len(points) == 0 {
		return slots
	}

	sorted := make([]models.Point, len(points))
	copy(sorted, points)
	sortPoints(sorted)

	values := make(map[int]float64)
	for _, p := range sorted {
		key := monthKey(p.X)
		if _, ok := values[key]; !ok {
			values[key] = p.Y
		}
	}

	first, last := sorted[0].X, sorted[len(sorted)-1].X
	current := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location())
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, first.Location())
	for !current.After(end) {
		slot := MonthSlot{Month: current}
		if v, ok := values[monthKey(current)]; ok {
			slot.Value = ptr(v)
		}
		slots = append(slots, slot)
		current = current.AddDate(0, 1, 0)
	}
	return slots
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
