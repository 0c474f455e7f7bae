package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/metrics"
	"github.com/fraserkalirai/fraser-2025-recap/internal/storage"
	"github.com/spf13/cobra"
)

// summaryCard is one headline figure. Change is nil when there was nothing to compare.
type summaryCard struct {
	Title  string          `json:"title"`
	Unit   string          `json:"unit"`
	Change *metrics.Change `json:"change,omitempty"`
	Total  *float64        `json:"total,omitempty"`
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the headline figures of the year",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		cards, err := buildSummary(cmd.Context(), st)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), cards)
		}

		printBoxedHeader("2025 RECAP")
		for _, c := range cards {
			switch {
			case c.Total != nil:
				printMetric(c.Title, fmt.Sprintf("%.0f %s", *c.Total, c.Unit))
			case c.Change != nil:
				printMetric(c.Title, fmt.Sprintf("%.1f → %.1f %s (%s, %s)",
					c.Change.Start, c.Change.End, c.Unit,
					formatSigned(c.Change.Delta, " "+c.Unit), formatSigned(c.Change.Percent, "%")))
			default:
				printMetric(c.Title, color.New(color.Faint).Sprint("no data"))
			}
		}
		fmt.Println()
		return nil
	},
}

func buildSummary(ctx context.Context, st *storage.Storage) ([]summaryCard, error) {
	weekly, err := st.FetchWeeklyVolume(ctx)
	if err != nil {
		return nil, err
	}
	total := metrics.TotalVolume(weekly)
	cards := []summaryCard{{Title: "Total volume lifted", Unit: "kg", Total: &total}}

	hormones, err := st.FetchHormones(ctx)
	if err != nil {
		return nil, err
	}
	maxes, err := st.FetchMaxes(ctx)
	if err != nil {
		return nil, err
	}
	bodyComp, err := st.FetchBodyComposition(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range []struct {
		title, unit string
		compute     func() (metrics.Change, error)
	}{
		{"Testosterone increase", "ng/dl", func() (metrics.Change, error) { return metrics.TestosteroneIncrease(hormones) }},
		{"Total lift increase", "kg", func() (metrics.Change, error) { return metrics.TotalLiftIncrease(maxes) }},
		{"Weight change", "kg", func() (metrics.Change, error) { return metrics.WeightChange(bodyComp) }},
	} {
		card := summaryCard{Title: c.title, Unit: c.unit}
		change, err := c.compute()
		switch {
		case errors.Is(err, metrics.ErrNoData):
			// Rendered as "no data".
		case err != nil:
			return nil, fmt.Errorf("failed to compute %s: %w", c.title, err)
		default:
			card.Change = &change
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
