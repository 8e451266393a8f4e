package classify

import "strings"

func newSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// usStates holds US state names and postal abbreviations.
var usStates = newSet(
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming", "District of Columbia",
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN",
	"IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV",
	"NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN",
	"TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
)

var canadianProvinces = newSet(
	"Alberta", "British Columbia", "Manitoba", "New Brunswick", "Newfoundland and Labrador",
	"Northwest Territories", "Nova Scotia", "Nunavut", "Ontario", "Prince Edward Island",
	"Quebec", "Saskatchewan", "Yukon",
	"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT",
)

var ukNames = newSet(
	"England", "Scotland", "Wales", "Northern Ireland", "United Kingdom", "UK",
)

func inSet(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

// ParseLocation splits a free-text headquarters string into
// (city, stateRegion, country). The second comma part is checked against
// fixed US-state / Canadian-province / UK-constituent sets to infer the
// country; otherwise it is taken as the country itself. Malformed input
// yields partial or empty results, never an error.
func ParseLocation(headquarters string) (city, stateRegion, country string) {
	if strings.TrimSpace(headquarters) == "" {
		return "", "", ""
	}

	rawParts := strings.Split(headquarters, ",")
	parts := make([]string, 0, len(rawParts))
	for _, p := range rawParts {
		parts = append(parts, strings.TrimSpace(p))
	}

	switch {
	case len(parts) == 1:
		// Just a city or a country; no way to tell which.
		return parts[0], "", ""

	case len(parts) == 2:
		city, region := parts[0], parts[1]
		switch {
		case inSet(usStates, region):
			return city, region, "United States"
		case inSet(canadianProvinces, region):
			return city, region, "Canada"
		case inSet(ukNames, region):
			return city, region, "United Kingdom"
		default:
			return city, "", region
		}

	default: // 3+ parts: City, State, Country
		city := parts[0]
		stateRegion := parts[1]
		countryPart := parts[len(parts)-1]

		switch {
		case inSet(usStates, stateRegion):
			return city, stateRegion, "United States"
		case inSet(canadianProvinces, stateRegion):
			return city, stateRegion, "Canada"
		case inSet(ukNames, countryPart):
			return city, stateRegion, "United Kingdom"
		default:
			return city, stateRegion, countryPart
		}
	}
}
