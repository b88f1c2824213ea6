package layouts

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Sevahub"
	}
	return "Sevahub"
}

// Label title-cases a machine value such as "pending" for display.
// A Caser is not safe for concurrent use, so one is built per call.
func Label(value string) string {
	return cases.Title(language.English).String(value)
}
