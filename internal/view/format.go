package view

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Title turns "strength_training" into "Strength Training"
func Title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// Number formats n with thousands separators
func Number(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Bar draws a textual progress bar of width cells
func Bar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func ratio(progress, maxValue int) float64 {
	if maxValue <= 0 {
		return 0
	}
	r := float64(progress) / float64(maxValue)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}
