package content

import "testing"

func distinctRounded(breakdown ScoreBreakdown) int {
	seen := make(map[float64]struct{})
	for _, score := range breakdown {
		seen[roundScore(score)] = struct{}{}
	}
	return len(seen)
}

func assertWellFormed(t *testing.T, breakdown ScoreBreakdown) {
	t.Helper()
	if len(breakdown) != len(Factors()) {
		t.Fatalf("expected %d factors, got %d", len(Factors()), len(breakdown))
	}
	for _, factor := range Factors() {
		score, ok := breakdown[factor]
		if !ok {
			t.Fatalf("missing factor %q", factor)
		}
		if score < 1 || score > 10 {
			t.Fatalf("factor %q out of range: %v", factor, score)
		}
	}
	if n := distinctRounded(breakdown); n < 3 {
		t.Fatalf("expected at least 3 distinct values, got %d", n)
	}
}

func TestNormalizeScores_SynthesizesMissingBreakdown(t *testing.T) {
	report := NormalizeScores(ViabilityReport{OverallScore: 6.5})
	assertWellFormed(t, report.ScoreBreakdown)
}

func TestNormalizeScores_ReplacesUniformBreakdown(t *testing.T) {
	uniform := make(ScoreBreakdown)
	for _, factor := range Factors() {
		uniform[factor] = 7.0
	}
	report := NormalizeScores(ViabilityReport{OverallScore: 7.0, ScoreBreakdown: uniform})
	assertWellFormed(t, report.ScoreBreakdown)
	if distinctRounded(report.ScoreBreakdown) < 3 {
		t.Fatal("uniform breakdown must be replaced with a spread one")
	}
}

func TestNormalizeScores_AcceptsHealthyBreakdown(t *testing.T) {
	healthy := ScoreBreakdown{
		FactorMarketOpportunity: 8.2,
		FactorCompetitionLevel:  5.1,
		FactorFeasibility:       7.0,
		FactorRevenuePotential:  6.4,
		FactorImpactPotential:   9.0,
	}
	report := NormalizeScores(ViabilityReport{OverallScore: 7.1, ScoreBreakdown: healthy})
	for factor, want := range healthy {
		if got := report.ScoreBreakdown[factor]; got != want {
			t.Fatalf("healthy breakdown must pass through unchanged: %s = %v, want %v", factor, got, want)
		}
	}
}

func TestNormalizeScores_RejectsExtraFactors(t *testing.T) {
	padded := ScoreBreakdown{
		FactorMarketOpportunity: 8.2,
		FactorCompetitionLevel:  5.1,
		FactorFeasibility:       7.0,
		FactorRevenuePotential:  6.4,
		FactorImpactPotential:   9.0,
		"brandStrength":         7.7,
	}
	report := NormalizeScores(ViabilityReport{OverallScore: 7.1, ScoreBreakdown: padded})
	assertWellFormed(t, report.ScoreBreakdown)
	if _, ok := report.ScoreBreakdown["brandStrength"]; ok {
		t.Fatal("unknown factor names must not survive normalization")
	}
}

func TestNormalizeScores_RejectsPartialBreakdown(t *testing.T) {
	partial := ScoreBreakdown{
		FactorMarketOpportunity: 8.0,
		FactorCompetitionLevel:  5.0,
	}
	report := NormalizeScores(ViabilityReport{OverallScore: 6.0, ScoreBreakdown: partial})
	assertWellFormed(t, report.ScoreBreakdown)
}

func TestNormalizeScores_MarketSignalsShiftOpportunity(t *testing.T) {
	base := NormalizeScores(ViabilityReport{OverallScore: 6.0})
	billions := NormalizeScores(ViabilityReport{
		OverallScore:       6.0,
		MarketSizeAnalysis: "The global market is worth $4 billion annually.",
	})
	niche := NormalizeScores(ViabilityReport{
		OverallScore:       6.0,
		MarketSizeAnalysis: "A niche segment of hobbyist growers.",
	})

	baseScore := base.ScoreBreakdown[FactorMarketOpportunity]
	if got := billions.ScoreBreakdown[FactorMarketOpportunity]; got <= baseScore {
		t.Fatalf("billion-scale market must raise opportunity: %v vs base %v", got, baseScore)
	}
	if got := niche.ScoreBreakdown[FactorMarketOpportunity]; got >= baseScore {
		t.Fatalf("niche market must lower opportunity: %v vs base %v", got, baseScore)
	}
}

func TestNormalizeScores_SparseCompetitionRaisesCompetitionScore(t *testing.T) {
	crowded := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a", "b", "c", "d"},
	})
	sparse := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a"},
	})
	if sparse.ScoreBreakdown[FactorCompetitionLevel] <= crowded.ScoreBreakdown[FactorCompetitionLevel] {
		t.Fatal("fewer than three competitors must improve the competition score")
	}
}

func TestNormalizeScores_RegulatoryRiskLowersFeasibility(t *testing.T) {
	calm := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a", "b", "c"},
		KeyRisks:     "Seasonal demand swings.",
	})
	risky := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a", "b", "c"},
		KeyRisks:     "Heavily regulated industry with complex licensing.",
	})
	if risky.ScoreBreakdown[FactorFeasibility] >= calm.ScoreBreakdown[FactorFeasibility] {
		t.Fatal("regulatory complexity must lower feasibility")
	}
}

func TestNormalizeScores_RecurringRevenueRaisesRevenuePotential(t *testing.T) {
	oneOff := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a", "b", "c"},
		Summary:      "One-time installation fees.",
	})
	recurring := NormalizeScores(ViabilityReport{
		OverallScore: 6.0,
		Competitors:  []string{"a", "b", "c"},
		Summary:      "Monthly subscription with tiered plans.",
	})
	if recurring.ScoreBreakdown[FactorRevenuePotential] <= oneOff.ScoreBreakdown[FactorRevenuePotential] {
		t.Fatal("recurring revenue language must raise revenue potential")
	}
}

func TestNormalizeScores_ClampedExtremesStayDistinct(t *testing.T) {
	low := NormalizeScores(ViabilityReport{OverallScore: 1.0})
	assertWellFormed(t, low.ScoreBreakdown)

	high := NormalizeScores(ViabilityReport{
		OverallScore:       10.0,
		MarketSizeAnalysis: "a billion dollar market",
	})
	assertWellFormed(t, high.ScoreBreakdown)
}

func TestNormalizeScores_DoesNotMutateInput(t *testing.T) {
	uniform := make(ScoreBreakdown)
	for _, factor := range Factors() {
		uniform[factor] = 5.0
	}
	input := ViabilityReport{OverallScore: 5.0, ScoreBreakdown: uniform}
	NormalizeScores(input)
	for factor, score := range uniform {
		if score != 5.0 {
			t.Fatalf("input breakdown mutated at %q: %v", factor, score)
		}
	}
}
