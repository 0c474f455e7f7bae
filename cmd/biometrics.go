package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/chart"
	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	toggledMetrics []string
	listMetrics    bool
)

type biometricSeries struct {
	metrics.AllocatedMetric
	Points []models.Point `json:"points"`
}

var biometricsCmd = &cobra.Command{
	Use:   "biometrics",
	Short: "Chart sleep, hormone and body composition metrics on at most two axes",
	Long: `Starts from the default selection (weight and composite body fat) and applies
every --metric toggle in order. A toggle that would bring a third unit onto the
chart is rejected and reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selection := metrics.DefaultMetrics()
		for _, id := range toggledMetrics {
			next, ok := metrics.ToggleMetric(selection, id)
			if !ok {
				log.WithField("metric", id).Warn("toggle rejected")
				fmt.Println(color.YellowString("⚠ Cannot toggle %s: unknown metric or too many units", id))
				continue
			}
			selection = next
		}

		if listMetrics {
			return listSelection(cmd, selection)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		var data metrics.BiometricData
		if data.Sleep, err = st.FetchSleep(ctx); err != nil {
			return err
		}
		if data.Hormones, err = st.FetchHormones(ctx); err != nil {
			return err
		}
		if data.BodyComposition, err = st.FetchBodyComposition(ctx); err != nil {
			return err
		}

		dark := cfg.Display.Dark
		allocated := metrics.AllocateAxes(selection, dark)
		series := make([]biometricSeries, 0, len(allocated))
		for _, m := range allocated {
			series = append(series, biometricSeries{AllocatedMetric: m, Points: metrics.BiometricSeries(m.ID, data)})
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), series)
		}

		if len(series) == 0 {
			fmt.Println(color.MagentaString("No metrics enabled."))
			return nil
		}

		printBoxedHeader("BIOMETRICS")
		printMetric("Left axis", metrics.AxisUnit(allocated, metrics.AxisPrimary))
		if unit := metrics.AxisUnit(allocated, metrics.AxisSecondary); unit != "" {
			printMetric("Right axis", unit)
		}
		fmt.Println()

		for _, s := range series {
			c := seriesColor(s.ColorIndex, dark)
			fmt.Printf("%s %s\n", c.Sprint("● "+s.Label), color.New(color.Faint).Sprintf("(%s, axis %s)", s.Color, s.YAxisID))
			if len(s.Points) == 0 {
				fmt.Println(color.MagentaString("  No data."))
			}
			for _, p := range s.Points {
				fmt.Printf("  %-10s %s\n", chart.FormatDateShort(p.X), formatReading(p.Y, s.Unit))
			}
			fmt.Println()
		}
		return nil
	},
}

func listSelection(cmd *cobra.Command, selection []metrics.Metric) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), selection)
	}

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Println(boldGreen("Metrics:"))
	for _, m := range selection {
		state := color.New(color.Faint).Sprint("off")
		if m.Enabled {
			state = color.GreenString("on")
		} else if !metrics.CanToggle(selection, m.ID) {
			state = color.RedString("blocked")
		}
		fmt.Printf("  %-20s %-26s %s\n", m.ID, m.Label, state)
	}
	return nil
}

func formatReading(v float64, unit string) string {
	if unit == metrics.UnitTime {
		return chart.FormatMinutes(v)
	}
	return fmt.Sprintf("%.1f %s", v, unit)
}

func init() {
	rootCmd.AddCommand(biometricsCmd)
	biometricsCmd.Flags().StringSliceVarP(&toggledMetrics, "metric", "m", nil, "Toggle a metric by id (repeatable)")
	biometricsCmd.Flags().BoolVarP(&listMetrics, "list", "l", false, "List the metric catalogue and exit")
}
