package research

import (
	"strings"
	"unicode/utf8"

	domres "ventureforge/domain/research"
)

// Quality gate thresholds.
const (
	minMarketSizeChars   = 100
	minFundingChars      = 50
	minCompetitorSignals = 2
)

// EvaluateResearchQuality scores a research payload against three
// independent heuristics and grants trust on a simple majority. Any single
// weak signal cannot veto an otherwise information-rich result, but a
// broadly empty result must not masquerade as research-backed. Pure and
// deterministic.
func EvaluateResearchQuality(payload *domres.Payload) bool {
	if payload == nil {
		return false
	}

	passed := 0
	if marketSizeSubstantive(payload.MarketSize) {
		passed++
	}
	if competitorCoverage(payload) {
		passed++
	}
	if fundingSubstantive(payload.FundingLandscape) {
		passed++
	}
	return passed >= 2
}

func marketSizeSubstantive(text string) bool {
	if utf8.RuneCountInString(text) <= minMarketSizeChars {
		return false
	}
	lower := strings.ToLower(text)
	return !strings.Contains(lower, "unavailable") && !strings.Contains(lower, "error")
}

func competitorCoverage(payload *domres.Payload) bool {
	return len(payload.CompetitorNames) >= minCompetitorSignals ||
		len(payload.CompetitorURLs) >= minCompetitorSignals
}

func fundingSubstantive(text string) bool {
	if utf8.RuneCountInString(text) <= minFundingChars {
		return false
	}
	return !strings.Contains(strings.ToLower(text), "unavailable")
}
