package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/chart"
	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/spf13/cobra"
)

const (
	chartTotal = "Total"
	chartWilks = "Wilks"
)

var maxesChart string

type maxesReport struct {
	Current  map[models.Lift]float64 `json:"current"`
	Wilks    []models.WilksScore     `json:"wilks"`
	Chart    string                  `json:"chart"`
	Timeline []metrics.MonthSlot     `json:"timeline"`
}

var maxesCmd = &cobra.Command{
	Use:   "maxes",
	Short: "Show current maxes, Wilks history and a monthly chart of one lift, the total or the Wilks score",
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, points, err := chartSeries(maxesChart)
		if err != nil {
			return err
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		maxes, err := st.FetchMaxes(cmd.Context())
		if err != nil {
			return err
		}

		report := maxesReport{
			Current:  metrics.CurrentMaxes(maxes),
			Wilks:    metrics.WilksScores(maxes),
			Chart:    selected,
			Timeline: metrics.MonthTimeline(points(maxes)),
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), report)
		}

		printBoxedHeader("MAXES")
		for _, lift := range models.Lifts {
			printMetric(string(lift), fmt.Sprintf("%.1f kg", report.Current[lift]))
		}
		fmt.Println()

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Println(boldGreen("Wilks history:"))
		if len(report.Wilks) == 0 {
			fmt.Println(color.MagentaString("  No month with all three lifts tested."))
		} else {
			fmt.Printf("  %-12s | %-8s | %-10s | %-8s\n", "Date", "Total", "Bodyweight", "Wilks")
			printRule(48)
			for _, w := range report.Wilks {
				fmt.Printf("  %-12s | %-8.1f | %-10.1f | %-8.2f\n", chart.FormatDateShort(w.Date), w.Total, w.BodyWeight, w.WilksScore)
			}
		}
		fmt.Println()

		fmt.Println(boldGreen(selected + " by month:"))
		for _, slot := range report.Timeline {
			value := color.New(color.Faint).Sprint("–")
			if slot.Value != nil {
				value = fmt.Sprintf("%.1f", *slot.Value)
			}
			fmt.Printf("  %-4s %s\n", chart.MonthLabel(slot.Month), value)
		}
		return nil
	},
}

// chartSeries resolves a --lift value to its canonical name and series builder.
func chartSeries(name string) (string, func([]models.Max) []models.Point, error) {
	for _, lift := range models.Lifts {
		if strings.EqualFold(name, string(lift)) {
			return string(lift), func(maxes []models.Max) []models.Point {
				return metrics.LiftSeries(maxes, lift)
			}, nil
		}
	}

	switch {
	case strings.EqualFold(name, chartTotal):
		return chartTotal, func(maxes []models.Max) []models.Point {
			var points []models.Point
			for _, t := range metrics.MonthlyTotals(maxes) {
				points = append(points, models.Point{X: t.Date, Y: t.Total})
			}
			return points
		}, nil
	case strings.EqualFold(name, chartWilks):
		return chartWilks, func(maxes []models.Max) []models.Point {
			var points []models.Point
			for _, w := range metrics.WilksScores(maxes) {
				points = append(points, models.Point{X: w.Date, Y: w.WilksScore})
			}
			return points
		}, nil
	}
	return "", nil, fmt.Errorf("unknown chart %q: expected Bench, Squat, Deadlift, Total or Wilks", name)
}

func init() {
	rootCmd.AddCommand(maxesCmd)
	maxesCmd.Flags().StringVarP(&maxesChart, "lift", "l", chartTotal, "Chart to show: Bench, Squat, Deadlift, Total or Wilks")
}
