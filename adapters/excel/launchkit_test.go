package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventureforge/domain/content"
	domres "ventureforge/domain/research"
	"ventureforge/domain/venture"
)

func sampleReport() *content.ViabilityReport {
	return &content.ViabilityReport{
		OverallScore: 7.2,
		ScoreBreakdown: content.ScoreBreakdown{
			content.FactorMarketOpportunity: 8.0,
			content.FactorCompetitionLevel:  6.0,
			content.FactorFeasibility:       7.0,
			content.FactorRevenuePotential:  6.5,
			content.FactorImpactPotential:   8.5,
		},
		Summary:        "A workable idea with real demand signals.",
		KeyRisks:       "Crowded local market.",
		Recommendation: "Validate with ten customer interviews.",
	}
}

func TestBuildLaunchKit_SummarySheet(t *testing.T) {
	idea := venture.Idea{Name: "Compost Collective", Tagline: "Curbside compost pickup"}
	profile := venture.FounderProfile{VentureType: "business", Commitment: venture.CommitmentSideHustle}

	f, err := BuildLaunchKit(idea, profile, sampleReport(), nil)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Summary")
	assert.NotContains(t, f.GetSheetList(), "Competitors", "no insights means no competitor sheet")

	name, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Compost Collective", name)

	commitment, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "side_hustle", commitment)

	overall, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "7.2", overall)
}

func TestBuildLaunchKit_CompetitorSheet(t *testing.T) {
	insights := []domres.CompetitorInsight{
		{Name: "Acme Compost", URL: "https://acme.test", Description: "City-wide pickup", PricingModel: "subscription"},
		{Name: "Globex Green", URL: "https://globex.test", Description: "Drop-off network"},
	}

	f, err := BuildLaunchKit(venture.Idea{Name: "Compost Collective"}, venture.FounderProfile{VentureType: "business"}, sampleReport(), insights)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Competitors")

	first, err := f.GetCellValue("Competitors", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Compost", first)

	pricing, err := f.GetCellValue("Competitors", "D2")
	require.NoError(t, err)
	assert.Equal(t, "subscription", pricing)

	second, err := f.GetCellValue("Competitors", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Globex Green", second)
}
