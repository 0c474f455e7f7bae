package metrics

// MaxUnits is how many distinct units may be charted at once, one per Y axis.
const MaxUnits = 2

type AxisID string

const (
	AxisPrimary   AxisID = "y"
	AxisSecondary AxisID = "y1"
)

// Series colours, indexed by a counter that runs across every enabled metric.
var (
	LightPalette = [...]string{
		"rgb(28, 57, 142)",
		"rgb(20, 71, 230)",
		"rgb(43, 127, 255)",
		"rgb(77, 23, 154)",
		"rgb(112, 8, 231)",
	}
	DarkPalette = [...]string{
		"rgb(255, 255, 255)",
		"rgb(142, 197, 255)",
		"rgb(43, 127, 255)",
		"rgb(196, 180, 255)",
		"rgb(142, 81, 255)",
	}
)

// Metric is a user togglable chart series.
type Metric struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Unit    string `json:"unit"`
	Enabled bool   `json:"enabled"`
}

// AllocatedMetric is an enabled metric with its derived axis and colour.
type AllocatedMetric struct {
	Metric
	YAxisID    AxisID `json:"yAxisID"`
	Color      string `json:"color"`
	ColorIndex int    `json:"colorIndex"`
}

// EnabledUnits lists the distinct units of the enabled metrics in declaration order.
func EnabledUnits(selection []Metric) []string {
	seen := make(map[string]bool)
	var units []string
	for _, m := range selection {
		if !m.Enabled || seen[m.Unit] {
			continue
		}
		seen[m.Unit] = true
		units = append(units, m.Unit)
	}
	return units
}

// ToggleMetric flips one metric and returns the new selection. A toggle that
// would enable a third distinct unit, or names an unknown metric, is rejected:
// the returned selection equals the input and ok is false.
// The input slice is never modified.
func ToggleMetric(selection []Metric, id string) (_ []Metric, ok bool) {
	next := make([]Metric, len(selection))
	copy(next, selection)

	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return next, false
	}

	next[idx].Enabled = !next[idx].Enabled
	if next[idx].Enabled && len(EnabledUnits(next)) > MaxUnits {
		copy(next, selection)
		return next, false
	}
	return next, true
}

// CanToggle reports whether toggling id would be accepted.
func CanToggle(selection []Metric, id string) bool {
	_, ok := ToggleMetric(selection, id)
	return ok
}

// AllocateAxes groups the enabled metrics by unit. The first unit in declaration
// order goes on the primary axis, the next on the secondary one.
func AllocateAxes(selection []Metric, dark bool) []AllocatedMetric {
	palette := LightPalette[:]
	if dark {
		palette = DarkPalette[:]
	}

	allocated := []AllocatedMetric{}
	colorIndex := 0
	for i, unit := range EnabledUnits(selection) {
		axis := AxisPrimary
		if i > 0 {
			axis = AxisSecondary
		}

		for _, m := range selection {
			if !m.Enabled || m.Unit != unit {
				continue
			}
			allocated = append(allocated, AllocatedMetric{
				Metric:     m,
				YAxisID:    axis,
				Color:      palette[colorIndex%len(palette)],
				ColorIndex: colorIndex,
			})
			colorIndex++
		}
	}
	return allocated
}

// AxisUnit returns the unit charted on an axis, or "" when the axis is unused.
func AxisUnit(allocated []AllocatedMetric, axis AxisID) string {
	for _, m := range allocated {
		if m.YAxisID == axis {
			return m.Unit
		}
	}
	return ""
}
