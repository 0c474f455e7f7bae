package chart

import (
	"fmt"
	"time"
)

// Widths at or below CompactWidth use the small-screen styling.
const CompactWidth = 640

// Bubble radius regimes: radius = totalSets × scale + offset.
const (
	compactBubbleScale   = 1.75
	compactBubbleOffset  = 0.125
	standardBubbleScale  = 4.0
	standardBubbleOffset = 1.0
)

func IsCompact(width int) bool {
	return width <= CompactWidth
}

func BubbleRadius(totalSets int, compact bool) float64 {
	if compact {
		return float64(totalSets)*compactBubbleScale + compactBubbleOffset
	}
	return float64(totalSets)*standardBubbleScale + standardBubbleOffset
}

func PointRadius(width int) float64 {
	if IsCompact(width) {
		return 2
	}
	return 3
}

func PointHoverRadius(width int) float64 {
	if IsCompact(width) {
		return 4
	}
	return 6
}

// Ordinal returns n with its English suffix: 1st, 2nd, 11th, 23rd.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// FormatDateLong renders a tooltip date such as "7th March".
func FormatDateLong(t time.Time) string {
	return Ordinal(t.Day()) + " " + t.Month().String()
}

// FormatDateShort renders an axis date such as "7th Mar".
func FormatDateShort(t time.Time) string {
	return Ordinal(t.Day()) + " " + t.Format("Jan")
}

func MonthLabel(t time.Time) string {
	return t.Format("Jan")
}

// FormatMinutes renders sleep minutes as hours, e.g. "7.5 hrs".
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%.1f hrs", minutes/60)
}
