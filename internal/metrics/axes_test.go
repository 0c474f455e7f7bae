package metrics_test

import (
	"testing"

	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection() []metrics.Metric {
	return []metrics.Metric{
		{ID: "sleep", Label: "Sleep", Unit: "time"},
		{ID: "tt", Label: "Total T", Unit: "ng/dl"},
		{ID: "shbg", Label: "SHBG", Unit: "ng/dl"},
		{ID: "weight", Label: "Weight", Unit: "kg"},
		{ID: "navy", Label: "Navy", Unit: "%"},
	}
}

func enabledIDs(sel []metrics.Metric) []string {
	var ids []string
	for _, m := range sel {
		if m.Enabled {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func TestToggleMetric_RejectsThirdUnit(t *testing.T) {
	sel := selection()

	sel, ok := metrics.ToggleMetric(sel, "weight")
	require.True(t, ok)
	sel, ok = metrics.ToggleMetric(sel, "navy")
	require.True(t, ok)

	next, ok := metrics.ToggleMetric(sel, "tt")
	assert.False(t, ok)
	assert.Equal(t, sel, next)
	assert.Equal(t, []string{"weight", "navy"}, enabledIDs(next))
	assert.Len(t, metrics.EnabledUnits(next), 2)
}

func TestToggleMetric_SameUnitAllowed(t *testing.T) {
	sel := selection()
	sel, _ = metrics.ToggleMetric(sel, "tt")
	sel, _ = metrics.ToggleMetric(sel, "weight")

	sel, ok := metrics.ToggleMetric(sel, "shbg")
	require.True(t, ok)
	assert.Equal(t, []string{"tt", "shbg", "weight"}, enabledIDs(sel))
}

func TestToggleMetric_DisableAlwaysAllowed(t *testing.T) {
	sel := selection()
	sel, _ = metrics.ToggleMetric(sel, "tt")
	sel, _ = metrics.ToggleMetric(sel, "weight")

	sel, ok := metrics.ToggleMetric(sel, "tt")
	require.True(t, ok)
	assert.Equal(t, []string{"weight"}, enabledIDs(sel))

	sel, ok = metrics.ToggleMetric(sel, "sleep")
	require.True(t, ok)
	assert.Equal(t, []string{"sleep", "weight"}, enabledIDs(sel))
}

func TestToggleMetric_UnknownIDAndNoMutation(t *testing.T) {
	sel := selection()
	next, ok := metrics.ToggleMetric(sel, "missing")
	assert.False(t, ok)
	assert.Equal(t, sel, next)

	next, ok = metrics.ToggleMetric(sel, "sleep")
	require.True(t, ok)
	assert.True(t, next[0].Enabled)
	assert.False(t, sel[0].Enabled)
}

func TestCanToggle(t *testing.T) {
	sel := selection()
	sel, _ = metrics.ToggleMetric(sel, "tt")
	sel, _ = metrics.ToggleMetric(sel, "weight")

	assert.True(t, metrics.CanToggle(sel, "tt"))
	assert.True(t, metrics.CanToggle(sel, "shbg"))
	assert.False(t, metrics.CanToggle(sel, "navy"))
	assert.False(t, metrics.CanToggle(sel, "sleep"))
}

func TestAllocateAxes(t *testing.T) {
	sel := selection()
	sel, _ = metrics.ToggleMetric(sel, "tt")
	sel, _ = metrics.ToggleMetric(sel, "weight")
	sel, _ = metrics.ToggleMetric(sel, "shbg")

	allocated := metrics.AllocateAxes(sel, false)
	require.Len(t, allocated, 3)

	assert.Equal(t, "tt", allocated[0].ID)
	assert.Equal(t, metrics.AxisPrimary, allocated[0].YAxisID)
	assert.Equal(t, "shbg", allocated[1].ID)
	assert.Equal(t, metrics.AxisPrimary, allocated[1].YAxisID)
	assert.Equal(t, "weight", allocated[2].ID)
	assert.Equal(t, metrics.AxisSecondary, allocated[2].YAxisID)

	for i, m := range allocated {
		assert.Equal(t, i, m.ColorIndex)
		assert.Equal(t, metrics.LightPalette[i], m.Color)
	}

	assert.Equal(t, "ng/dl", metrics.AxisUnit(allocated, metrics.AxisPrimary))
	assert.Equal(t, "kg", metrics.AxisUnit(allocated, metrics.AxisSecondary))
}

func TestAllocateAxes_PrimaryFollowsDeclarationOrder(t *testing.T) {
	sel := selection()
	sel, _ = metrics.ToggleMetric(sel, "navy")
	sel, _ = metrics.ToggleMetric(sel, "sleep")

	allocated := metrics.AllocateAxes(sel, true)
	require.Len(t, allocated, 2)
	assert.Equal(t, "sleep", allocated[0].ID)
	assert.Equal(t, metrics.AxisPrimary, allocated[0].YAxisID)
	assert.Equal(t, metrics.DarkPalette[0], allocated[0].Color)
	assert.Equal(t, "navy", allocated[1].ID)
	assert.Equal(t, metrics.AxisSecondary, allocated[1].YAxisID)
	assert.Equal(t, metrics.DarkPalette[1], allocated[1].Color)
}

func TestAllocateAxes_ColorsWrap(t *testing.T) {
	var sel []metrics.Metric
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		sel = append(sel, metrics.Metric{ID: id, Unit: "kg", Enabled: true})
	}

	allocated := metrics.AllocateAxes(sel, false)
	require.Len(t, allocated, 7)
	assert.Equal(t, metrics.LightPalette[0], allocated[5].Color)
	assert.Equal(t, metrics.LightPalette[1], allocated[6].Color)
	assert.Empty(t, metrics.AxisUnit(allocated, metrics.AxisSecondary))
}

func TestAllocateAxes_NothingEnabled(t *testing.T) {
	allocated := metrics.AllocateAxes(selection(), false)
	assert.NotNil(t, allocated)
	assert.Empty(t, allocated)
}
