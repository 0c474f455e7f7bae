package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fraserkalirai/fraser-2025-recap/internal/chart"
	"github.com/fraserkalirai/fraser-2025-recap/internal/models"
	"github.com/spf13/cobra"
)

var supplementType string

var supplementsCmd = &cobra.Command{
	Use:   "supplements",
	Short: "List the supplement stack, optionally filtered by type (Morning, Night, Preworkout)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		supplements, err := st.FetchSupplements(cmd.Context())
		if err != nil {
			return err
		}

		// Case insensitive filtering by type.
		if supplementType != "" {
			filtered := []models.Supplement{}
			for _, s := range supplements {
				if strings.EqualFold(s.Type, supplementType) {
					filtered = append(filtered, s)
				}
			}
			supplements = filtered
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), supplements)
		}
		if len(supplements) == 0 {
			fmt.Println(color.MagentaString("No supplements found."))
			return nil
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		current := ""
		for _, s := range supplements {
			if s.Type != current {
				if current != "" {
					fmt.Println()
				}
				current = s.Type
				fmt.Println(boldGreen(current + ":"))
			}

			line := fmt.Sprintf("  • %s %s", s.Supplement, s.Dosage)
			if s.IncreasedDosage != nil {
				line += yellow(" → " + *s.IncreasedDosage)
				if s.DateOfIncrease != nil {
					line += yellow(" from " + chart.FormatDateLong(*s.DateOfIncrease))
				}
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supplementsCmd)
	supplementsCmd.Flags().StringVarP(&supplementType, "type", "t", "", "Filter by type (case insensitive)")
}
