package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/chart"
	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Show average nightly sleep and its stages per month",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		nights, err := st.FetchSleep(cmd.Context())
		if err != nil {
			return err
		}

		months := metrics.MonthlySleep(nights)
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), months)
		}
		if len(months) == 0 {
			fmt.Println(color.MagentaString("No sleep data found."))
			return nil
		}

		printBoxedHeader("SLEEP")
		fmt.Printf("  %-4s | %-6s | %-9s | %-9s | %-9s | %-9s | %-9s\n", "", "Nights", "Overall", "Awake", "Core", "REM", "Deep")
		printRule(72)
		for _, m := range months {
			fmt.Printf("  %-4s | %-6d | %-9s | %-9s | %-9s | %-9s | %-9s\n",
				chart.MonthLabel(m.Date), m.Nights,
				chart.FormatMinutes(m.Overall), chart.FormatMinutes(m.Awake), chart.FormatMinutes(m.Core),
				chart.FormatMinutes(m.REM), chart.FormatMinutes(m.Deep))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
}
