package content

import "fmt"

// Section identifies one of the four disjoint deep-dive content shapes.
type Section string

const (
	SectionViability Section = "viability"
	SectionPlan      Section = "plan"
	SectionMarketing Section = "marketing"
	SectionRoadmap   Section = "roadmap"
)

// ParseSection validates a requested section name.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionViability, SectionPlan, SectionMarketing, SectionRoadmap:
		return Section(s), nil
	default:
		return "", fmt.Errorf("unrecognized section: %q", s)
	}
}

// The five fixed viability score factors. Order matters for synthesis.
const (
	FactorMarketOpportunity = "marketOpportunity"
	FactorCompetitionLevel  = "competitionLevel"
	FactorFeasibility       = "feasibility"
	FactorRevenuePotential  = "revenuePotential"
	FactorImpactPotential   = "impactPotential"
)

// Factors returns the factor names in canonical order.
func Factors() []string {
	return []string{
		FactorMarketOpportunity,
		FactorCompetitionLevel,
		FactorFeasibility,
		FactorRevenuePotential,
		FactorImpactPotential,
	}
}

// ScoreBreakdown maps factor name to a 1-10 score.
type ScoreBreakdown map[string]float64

// ViabilityReport is the market-research-backed viability assessment.
// ScoreBreakdown is the only substructure the pipeline inspects and may
// rewrite; everything else is opaque to the core.
type ViabilityReport struct {
	OverallScore       float64        `json:"overallScore"`
	ScoreBreakdown     ScoreBreakdown `json:"scoreBreakdown"`
	Summary            string         `json:"summary"`
	MarketSizeAnalysis string         `json:"marketSizeAnalysis"`
	Competitors        []string       `json:"competitors"`
	CompetitiveEdge    string         `json:"competitiveEdge"`
	KeyRisks           string         `json:"keyRisks"`
	Recommendation     string         `json:"recommendation"`
}

// BusinessPlan is the generated plan section.
type BusinessPlan struct {
	ExecutiveSummary string      `json:"executiveSummary"`
	MissionStatement string      `json:"missionStatement"`
	TargetMarket     string      `json:"targetMarket"`
	RevenueModel     string      `json:"revenueModel"`
	Operations       string      `json:"operations"`
	Milestones       []Milestone `json:"milestones"`
}

// Milestone is one dated step inside a plan.
type Milestone struct {
	Title    string `json:"title"`
	Timeline string `json:"timeline"`
	Detail   string `json:"detail"`
}

// MarketingAssets is the generated marketing section. LandingCopy is
// markdown; the API layer renders an HTML preview from it.
type MarketingAssets struct {
	BrandVoice  string       `json:"brandVoice"`
	Taglines    []string     `json:"taglines"`
	SocialPosts []SocialPost `json:"socialPosts"`
	LandingCopy string       `json:"landingCopy"`
	EmailOpener string       `json:"emailOpener"`
}

// SocialPost is one ready-to-publish social media post.
type SocialPost struct {
	Platform string   `json:"platform"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

// LaunchRoadmap is the generated roadmap section.
type LaunchRoadmap struct {
	Phases []RoadmapPhase `json:"phases"`
}

// RoadmapPhase is one phase of the launch roadmap.
type RoadmapPhase struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Objectives []string `json:"objectives"`
	Tasks      []string `json:"tasks"`
}
