package classify

import "strings"

// activeStatusKeywords mark a raw scraped status as a live investment.
var activeStatusKeywords = []string{"active", "current", "portfolio"}

// NormalizeStatus derives the Active/Exit label for an investment.
// Rule order, first match wins:
//  1. the company has IPO'd -> Exit
//  2. an exit type is recorded -> Exit
//  3. the raw status mentions active/current/portfolio -> Active
//  4. default -> Exit
//
// A missing or garbled raw status therefore lands on Exit; callers log
// the raw value so unknowns remain visible in run output.
func NormalizeStatus(rawStatus, exitType string, isPublic bool) string {
	if isPublic {
		return "Exit"
	}

	if exitType != "" && exitType != "None" {
		return "Exit"
	}

	statusLower := strings.ToLower(rawStatus)
	for _, keyword := range activeStatusKeywords {
		if strings.Contains(statusLower, keyword) {
			return "Active"
		}
	}

	return "Exit"
}
