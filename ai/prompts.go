package ai

import (
	"fmt"
	"strings"

	"ventureforge/domain/content"
	"ventureforge/domain/research"
	"ventureforge/domain/venture"
	"ventureforge/ports"
)

// Per-section sampling constants. Tuned per section type, never
// caller-configurable: viability wants low-variance scoring, marketing
// benefits from a looser temperature, plan and roadmap sit in between.
var sectionParams = map[content.Section]ports.GenerationParams{
	content.SectionViability: {Temperature: 0.2, MaxTokens: 2500},
	content.SectionPlan:      {Temperature: 0.5, MaxTokens: 3500},
	content.SectionMarketing: {Temperature: 0.8, MaxTokens: 3000},
	content.SectionRoadmap:   {Temperature: 0.4, MaxTokens: 2500},
}

// ParamsFor returns the fixed generation parameters for a section.
func ParamsFor(section content.Section) ports.GenerationParams {
	return sectionParams[section]
}

// SystemPromptFor returns the system message for a section.
func SystemPromptFor(section content.Section) string {
	base := "You are a startup research analyst. Respond with a single valid JSON object matching the requested schema exactly. No prose outside the JSON."
	if section == content.SectionMarketing {
		base = "You are a brand strategist for early-stage ventures. Respond with a single valid JSON object matching the requested schema exactly. No prose outside the JSON."
	}
	return base
}

// BuildSectionPrompt assembles the prompt for a section. When payload is
// non-nil the research-enhanced variant is produced: the same schema, but
// the model is instructed to ground its output in the supplied research
// rather than general knowledge.
func BuildSectionPrompt(section content.Section, idea venture.Idea, profile venture.FounderProfile, payload *research.Payload, insights []research.CompetitorInsight) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business idea: %s\n", idea.Name)
	if idea.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", idea.Tagline)
	}
	if idea.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", idea.Description)
	}
	fmt.Fprintf(&b, "Venture type: %s\n", profile.VentureType)
	if len(profile.CauseAreas) > 0 {
		fmt.Fprintf(&b, "Cause areas: %s\n", strings.Join(profile.CauseAreas, ", "))
	}
	if profile.DeliveryFormat != "" {
		fmt.Fprintf(&b, "Delivery format: %s\n", profile.DeliveryFormat)
	}
	fmt.Fprintf(&b, "Founder commitment: %s\n", profile.Commitment.Normalize())
	if profile.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", profile.Location)
	}

	if payload != nil {
		b.WriteString("\n--- MARKET RESEARCH (ground your output in this) ---\n")
		writeResearchContext(&b, payload, insights)
		b.WriteString("--- END MARKET RESEARCH ---\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionInstructions(section, payload != nil))
	b.WriteString("\n\nReturn a JSON object with exactly this shape:\n")
	b.WriteString(sectionSchema(section))

	return b.String()
}

func writeResearchContext(b *strings.Builder, payload *research.Payload, insights []research.CompetitorInsight) {
	if payload.MarketSize != "" {
		fmt.Fprintf(b, "Market size: %s\n", payload.MarketSize)
	}
	if payload.FundingLandscape != "" {
		fmt.Fprintf(b, "Funding landscape: %s\n", payload.FundingLandscape)
	}
	if payload.DemandSignals != "" {
		fmt.Fprintf(b, "Demand signals: %s\n", payload.DemandSignals)
	}
	if len(payload.CompetitorNames) > 0 {
		fmt.Fprintf(b, "Known competitors: %s\n", strings.Join(payload.CompetitorNames, ", "))
	}
	for _, ins := range insights {
		fmt.Fprintf(b, "Competitor %s (%s): %s", ins.Name, ins.URL, ins.Description)
		if ins.PricingModel != "" {
			fmt.Fprintf(b, " Pricing: %s.", ins.PricingModel)
		}
		if len(ins.Differentiators) > 0 {
			fmt.Fprintf(b, " Differentiators: %s.", strings.Join(ins.Differentiators, "; "))
		}
		b.WriteString("\n")
	}
}

func sectionInstructions(section content.Section, researched bool) string {
	grounding := "Base your analysis on general knowledge of comparable ventures."
	if researched {
		grounding = "Base your analysis on the market research above; cite specific competitors and figures from it where relevant."
	}
	switch section {
	case content.SectionViability:
		return "Assess the viability of this idea. Score every factor from 1 to 10 with one-decimal precision; scores must differentiate between factors, not repeat a single number. " + grounding
	case content.SectionPlan:
		return "Write a practical early-stage business plan sized to the founder's stated commitment. " + grounding
	case content.SectionMarketing:
		return "Produce launch marketing assets in a voice that fits the venture. LandingCopy must be markdown. " + grounding
	case content.SectionRoadmap:
		return "Lay out a phased launch roadmap sized to the founder's stated commitment. " + grounding
	default:
		return grounding
	}
}

func sectionSchema(section content.Section) string {
	switch section {
	case content.SectionViability:
		return `{
  "overallScore": 7.5,
  "scoreBreakdown": {"marketOpportunity": 8.0, "competitionLevel": 6.5, "feasibility": 7.0, "revenuePotential": 7.5, "impactPotential": 8.5},
  "summary": "...",
  "marketSizeAnalysis": "...",
  "competitors": ["..."],
  "competitiveEdge": "...",
  "keyRisks": "...",
  "recommendation": "..."
}`
	case content.SectionPlan:
		return `{
  "executiveSummary": "...",
  "missionStatement": "...",
  "targetMarket": "...",
  "revenueModel": "...",
  "operations": "...",
  "milestones": [{"title": "...", "timeline": "...", "detail": "..."}]
}`
	case content.SectionMarketing:
		return `{
  "brandVoice": "...",
  "taglines": ["..."],
  "socialPosts": [{"platform": "linkedin", "body": "...", "hashtags": ["..."]}],
  "landingCopy": "## markdown...",
  "emailOpener": "..."
}`
	case content.SectionRoadmap:
		return `{
  "phases": [{"name": "...", "duration": "...", "objectives": ["..."], "tasks": ["..."]}]
}`
	default:
		return "{}"
	}
}
