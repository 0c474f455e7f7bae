package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/chart"
	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/fraserkalirai/fraser-2025-recap/internal/utils"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List every logged exercise with its number of entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		types, err := st.FetchExerciseTypes(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), types)
		}

		if len(types) == 0 {
			fmt.Println(color.MagentaString("No exercises logged yet."))
			return nil
		}
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Println(boldGreen("Exercises:"))
		for _, t := range types {
			fmt.Printf("  • %s (%d entries)\n", color.New(color.FgMagenta, color.Bold).Sprint(t.Exercise), t.Count)
		}
		return nil
	},
}

type exerciseReport struct {
	Exercise string                      `json:"exercise"`
	Weekly   []models.WeeklyExerciseData `json:"weekly"`
	Bubbles  []models.BubblePoint        `json:"bubbles"`
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise [exercise-name]",
	Short: "Show the weekly load and the rep/set breakdown of one exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := st.FetchExercise(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		report := exerciseReport{
			Exercise: args[0],
			Weekly:   metrics.WeeklyLoad(workouts),
			Bubbles:  metrics.ExerciseBubbles(workouts),
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), report)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		if len(workouts) == 0 {
			fmt.Println(magenta(fmt.Sprintf("No entries found for %s.", args[0])))
			return nil
		}

		fmt.Printf("%s %s\n", boldGreen("Weekly load for"), args[0])
		fmt.Printf("  %-6s | %-14s | %-12s\n", "Week", "Avg load (kg)", "Top set (kg)")
		printRule(40)
		for _, w := range report.Weekly {
			fmt.Printf("  %-6d | %-14.1f | %-12.1f\n", w.Week, w.VolumeWeightAverage, w.TopSet)
		}
		fmt.Println()

		compact := chart.IsCompact(cfg.Display.Width)
		fmt.Println(boldCyan("Sessions:"))
		fmt.Printf("  %-12s | %-8s | %-5s | %-8s | %-7s | %-7s | %s\n", "Date", "Weight", "Sets", "Max reps", "e1RM", "Radius", "Breakdown")
		printRule(82)
		for _, b := range report.Bubbles {
			fmt.Printf("  %-12s | %-8.1f | %-5d | %-8d | %-7.1f | %-7.2f | %s\n",
				chart.FormatDateShort(b.Date), b.Y, b.TotalSets, b.MaxReps,
				utils.EstimatedOneRM(b.Y, b.MaxReps),
				chart.BubbleRadius(b.TotalSets, compact), formatBreakdown(b.RepBreakdown))
		}
		return nil
	},
}

// formatBreakdown renders rep counts as "2×8, 1×6".
func formatBreakdown(counts []models.RepCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d×%d", c.Sets, c.Reps))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(exerciseCmd)
}
