package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal stand-ins for the chart palettes, same order and length.
var (
	lightSeriesColors = []color.Attribute{color.FgBlue, color.FgHiBlue, color.FgCyan, color.FgMagenta, color.FgHiMagenta}
	darkSeriesColors  = []color.Attribute{color.FgHiWhite, color.FgHiCyan, color.FgCyan, color.FgHiMagenta, color.FgMagenta}
)

func seriesColor(index int, dark bool) *color.Color {
	palette := lightSeriesColors
	if dark {
		palette = darkSeriesColors
	}
	return color.New(palette[index%len(palette)], color.Bold)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func printRule(n int) {
	fmt.Println("  " + strings.Repeat("─", n))
}

func formatSigned(v float64, unit string) string {
	return fmt.Sprintf("%+.1f%s", v, unit)
}
