package classify

// revenueRangeLabels maps Crunchbase revenue codes to readable strings.
var revenueRangeLabels = map[string]string{
	"r_00000000": "Less than $1M",
	"r_00001000": "$1M - $10M",
	"r_00010000": "$10M - $50M",
	"r_00050000": "$50M - $100M",
	"r_00100000": "$100M - $500M",
	"r_00500000": "$500M - $1B",
	"r_01000000": "$1B - $10B",
	"r_10000000": "$10B+",
}

// employeeRangeLabels maps Crunchbase employee codes to readable strings.
var employeeRangeLabels = map[string]string{
	"c_00001_00010": "1-10",
	"c_00011_00050": "11-50",
	"c_00051_00100": "51-100",
	"c_00101_00250": "101-250",
	"c_00251_00500": "251-500",
	"c_00501_01000": "501-1,000",
	"c_01001_05000": "1,001-5,000",
	"c_05001_10000": "5,001-10,000",
	"c_10001_max":   "10,001+",
}

// DecodeRevenueRange converts a Crunchbase revenue code to a readable
// string. Unknown codes pass through; empty input becomes "N/A".
func DecodeRevenueRange(code string) string {
	if label, ok := revenueRangeLabels[code]; ok {
		return label
	}
	if code == "" {
		return "N/A"
	}
	return code
}

// DecodeEmployeeCount converts a Crunchbase employee code to a readable string.
func DecodeEmployeeCount(code string) string {
	if label, ok := employeeRangeLabels[code]; ok {
		return label
	}
	if code == "" {
		return "N/A"
	}
	return code
}
