package classify

import (
	"strconv"
	"strings"
)

// sizeCategories maps Crunchbase employee-count codes to size labels.
var sizeCategories = map[string]string{
	"c_00001_00010": "Startup",    // 1-10
	"c_00011_00050": "Startup",    // 11-50
	"c_00051_00100": "Small",      // 51-100
	"c_00101_00250": "Small",      // 101-250
	"c_00251_00500": "Medium",     // 251-500
	"c_00501_01000": "Medium",     // 501-1,000
	"c_01001_05000": "Large",      // 1,001-5,000
	"c_05001_10000": "Enterprise", // 5,001-10,000
	"c_10001_max":   "Enterprise", // 10,001+
}

// revenueTiers maps Crunchbase revenue-range codes to tier labels.
var revenueTiers = map[string]string{
	"r_00000000": "Pre-Revenue",  // Less than $1M
	"r_00001000": "Early Stage",  // $1M - $10M
	"r_00010000": "Growth Stage", // $10M - $50M
	"r_00050000": "Growth Stage", // $50M - $100M
	"r_00100000": "Scale-up",     // $100M - $500M
	"r_00500000": "Scale-up",     // $500M - $1B
	"r_01000000": "Unicorn",      // $1B - $10B
	"r_10000000": "Unicorn",      // $10B+
}

// CategorizeCompanySize converts an employee-count code to one of
// Startup/Small/Medium/Large/Enterprise, or "" when the code is unknown.
func CategorizeCompanySize(employeeCode string) string {
	return sizeCategories[employeeCode]
}

// CategorizeRevenueTier converts a revenue-range code to one of
// Pre-Revenue/Early Stage/Growth Stage/Scale-up/Unicorn, or "" when unknown.
func CategorizeRevenueTier(revenueCode string) string {
	return revenueTiers[revenueCode]
}

// CategorizeInvestmentStage buckets an investment year: 2020 and later is
// Recent, 2015-2019 Mature, earlier Legacy. Non-numeric input yields "".
func CategorizeInvestmentStage(investmentYear string) string {
	year, err := strconv.Atoi(strings.TrimSpace(investmentYear))
	if err != nil {
		return ""
	}

	switch {
	case year >= 2020:
		return "Recent"
	case year >= 2015:
		return "Mature"
	default:
		return "Legacy"
	}
}
