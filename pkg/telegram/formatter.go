package telegram

import (
	"fmt"
	"strings"

	"pe-portfolio-aggregator/internal/entity"
)

// FormatScrapeRunSummary renders a pipeline run summary as a Markdown message.
func FormatScrapeRunSummary(runs []entity.ScrapeRun) string {
	var b strings.Builder
	b.WriteString("*PE Portfolio Pipeline Run*\n\n")

	for _, run := range runs {
		icon := "✅"
		if run.Status != entity.ScrapeRunStatusSuccess {
			icon = "⚠️"
		}
		b.WriteString(fmt.Sprintf("%s *%s*: %d found, %d added, %d updated",
			icon, run.PEFirmName, run.CompaniesFound, run.CompaniesAdded, run.CompaniesUpdated))
		if len(run.FailedCompanies) > 0 {
			b.WriteString(fmt.Sprintf(", %d failed", len(run.FailedCompanies)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
