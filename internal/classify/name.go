package classify

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiSpace      = regexp.MustCompile(`\s+`)
	ipoTickerRe     = regexp.MustCompile(`IPO[:\s]+(?:([A-Z]{2,6})[:\s]+)?([A-Z]{1,6})\b`)
	exitYearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// NormalizeName produces the dedup key for a company name: lowercase,
// punctuation stripped, whitespace collapsed. "Datadog, Inc." and
// "Datadog Inc" normalize to the same key.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = nonAlphanumeric.ReplaceAllString(n, "")
	n = multiSpace.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// ExtractIPOInfo pulls a stock ticker and optional exchange out of
// free-text exit info.
//
//	"IPO: FB"        -> ("FB", "")
//	"IPO: LON: WPS"  -> ("WPS", "LON")
func ExtractIPOInfo(exitInfo string) (ticker, exchange string) {
	if !strings.Contains(exitInfo, "IPO") {
		return "", ""
	}

	match := ipoTickerRe.FindStringSubmatch(exitInfo)
	if match == nil {
		return "", ""
	}
	return match[2], match[1]
}

// ExtractExitYear pulls the first four-digit year out of free-text
// exit info, e.g. "Acquired by BigCo in 2021" -> "2021".
func ExtractExitYear(exitInfo string) string {
	return exitYearRe.FindString(exitInfo)
}
