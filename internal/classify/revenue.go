package classify

// employeeMidpoints maps Crunchbase employee codes to the midpoint of
// the bracket, used as the headcount estimate for revenue prediction.
var employeeMidpoints = map[string]float64{
	"c_00001_00010": 5,
	"c_00011_00050": 30,
	"c_00051_00100": 75,
	"c_00101_00250": 175,
	"c_00251_00500": 375,
	"c_00501_01000": 750,
	"c_01001_05000": 3000,
	"c_05001_10000": 7500,
	"c_10001_max":   15000,
}

// industryEfficiency holds approximate revenue-per-employee benchmarks
// in USD by industry category.
var industryEfficiency = map[string]float64{
	"Technology & Software":          500000,
	"Artificial Intelligence & Data": 600000,
	"Financial Services":             400000,
	"Healthcare & Biotech":           350000,
	"Manufacturing & Industrial":     300000,
	"Energy & Sustainability":        800000,
	"E-commerce & Retail":            250000,
	"Real Estate & Construction":     300000,
	"Education & HR":                 150000,
	"Media & Entertainment":          350000,
	"Transportation & Automotive":    400000,
	"Legal & Compliance":             250000,
	"Marketing & Advertising":        200000,
	"Agriculture & Food":             300000,
	"Consulting & Services":          200000,
}

const defaultEfficiency = 300000

// EstimatePredictedRevenue estimates annual revenue in USD from the
// employee bracket midpoint and the industry's revenue-per-employee
// benchmark. Returns 0 when the employee code is unknown.
func EstimatePredictedRevenue(employeeCode, industryCategory string) float64 {
	employees, ok := employeeMidpoints[employeeCode]
	if !ok {
		return 0
	}
	efficiency, ok := industryEfficiency[industryCategory]
	if !ok {
		efficiency = defaultEfficiency
	}
	return employees * efficiency
}
