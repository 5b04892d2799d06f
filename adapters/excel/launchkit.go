package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/stat"

	"ventureforge/domain/content"
	domres "ventureforge/domain/research"
	"ventureforge/domain/venture"
)

// BuildLaunchKit renders a downloadable launch-kit workbook for one idea:
// a summary sheet with the viability scores and a competitor sheet from
// the scraped insights.
func BuildLaunchKit(idea venture.Idea, profile venture.FounderProfile, report *content.ViabilityReport, insights []domres.CompetitorInsight) (*excelize.File, error) {
	f := excelize.NewFile()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Idea", idea.Name},
		{"Tagline", idea.Tagline},
		{"Venture type", profile.VentureType},
		{"Commitment", string(profile.Commitment.Normalize())},
		{},
		{"Overall viability", report.OverallScore},
	}
	for _, factor := range content.Factors() {
		rows = append(rows, []interface{}{factor, report.ScoreBreakdown[factor]})
	}

	scores := make([]float64, 0, len(report.ScoreBreakdown))
	for _, factor := range content.Factors() {
		scores = append(scores, report.ScoreBreakdown[factor])
	}
	mean, std := stat.MeanStdDev(scores, nil)
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Factor mean", mean},
		[]interface{}{"Factor spread (stddev)", std},
		[]interface{}{},
		[]interface{}{"Summary", report.Summary},
		[]interface{}{"Key risks", report.KeyRisks},
		[]interface{}{"Recommendation", report.Recommendation},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if len(insights) > 0 {
		if err := writeCompetitorSheet(f, insights); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeCompetitorSheet(f *excelize.File, insights []domres.CompetitorInsight) error {
	const sheet = "Competitors"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create competitor sheet: %w", err)
	}

	header := []interface{}{"Name", "URL", "Description", "Pricing", "Target audience"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write competitor header: %w", err)
	}

	for i, ins := range insights {
		row := []interface{}{ins.Name, ins.URL, ins.Description, ins.PricingModel, ins.TargetAudience}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address competitor row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write competitor row %d: %w", i+2, err)
		}
	}
	return nil
}
