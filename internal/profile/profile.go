// Package profile shapes remote principal records into the view models the
// dashboards render.
package profile

import "strings"

const (
	// NotSpecified replaces missing free-text profile fields.
	NotSpecified = "Not specified"
	// DefaultCategory is used for NGOs that have not picked a category.
	DefaultCategory = "NGO"
)

// Initials returns the upper-cased first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
