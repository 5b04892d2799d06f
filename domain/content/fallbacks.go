package content

import "ventureforge/domain/venture"

// Static fallback content, hand-authored per commitment tier. Returned by
// the dispatcher whenever generation fails so the caller always receives a
// valid section object.

// FallbackFor returns the static substitute for the given section and tier.
func FallbackFor(section Section, tier venture.CommitmentTier) any {
	tier = tier.Normalize()
	switch section {
	case SectionViability:
		return fallbackViability(tier)
	case SectionPlan:
		return fallbackPlan(tier)
	case SectionMarketing:
		return fallbackMarketing(tier)
	case SectionRoadmap:
		return fallbackRoadmap(tier)
	default:
		return nil
	}
}

func fallbackViability(tier venture.CommitmentTier) *ViabilityReport {
	report := &ViabilityReport{
		OverallScore:       6.0,
		Summary:            "We couldn't complete a full automated assessment right now, so this is a conservative baseline read. The idea sits in a workable range; validate demand directly with potential customers before investing heavily.",
		MarketSizeAnalysis: "Market sizing data was not available for this assessment. Start with the segment you can reach this month and measure willingness to pay firsthand.",
		KeyRisks:           "The biggest near-term risk is building before validating. Talk to at least ten potential customers before committing significant time or money.",
		Recommendation:     "Run a lightweight validation experiment, then revisit this deep dive once research is available.",
	}
	switch tier {
	case venture.CommitmentFullTime:
		report.Recommendation = "You have the time to validate fast: spend the next two weeks on customer interviews and a landing-page test, then revisit this deep dive."
	case venture.CommitmentSideHustle:
		report.Recommendation = "Protect your evenings: pick one validation experiment you can finish in two weekends, then revisit this deep dive."
	}
	return NormalizeScores(*report).clone()
}

func fallbackPlan(tier venture.CommitmentTier) *BusinessPlan {
	plan := &BusinessPlan{
		ExecutiveSummary: "A starter plan to carry you until a tailored one can be generated. It favors cheap validation over polish.",
		MissionStatement: "Prove people want this before building more of it.",
		TargetMarket:     "The narrowest group of people you can describe in one sentence and reach this week.",
		RevenueModel:     "Start with a single, simple price. Complexity in pricing is a tax on early learning.",
		Operations:       "Keep everything manual until it hurts. Manual operations are research.",
		Milestones: []Milestone{
			{Title: "Ten customer conversations", Timeline: "Weeks 1-2", Detail: "Talk to ten people who have the problem. Write down their words, not yours."},
			{Title: "First paid commitment", Timeline: "Weeks 3-6", Detail: "One person paying anything beats a hundred saying they would."},
			{Title: "Repeatable channel", Timeline: "Months 2-3", Detail: "Find one acquisition channel you can repeat without heroics."},
		},
	}
	switch tier {
	case venture.CommitmentExploring:
		plan.Milestones = plan.Milestones[:2]
		plan.ExecutiveSummary = "A gentle starter plan for exploring the idea without overcommitting."
	case venture.CommitmentFullTime:
		plan.Milestones = append(plan.Milestones, Milestone{
			Title: "Sustainability checkpoint", Timeline: "Month 4",
			Detail: "Decide with real numbers whether this can pay you within a year.",
		})
	}
	return plan
}

func fallbackMarketing(tier venture.CommitmentTier) *MarketingAssets {
	assets := &MarketingAssets{
		BrandVoice: "Plainspoken and specific. Say what it does, who it's for, and what changes for them.",
		Taglines: []string{
			"Built for the people it serves.",
			"Small idea. Real change.",
		},
		SocialPosts: []SocialPost{
			{Platform: "linkedin", Body: "I'm working on something new and looking for people who live this problem daily. If that's you, I'd love fifteen minutes of brutal honesty.", Hashtags: []string{"buildinpublic"}},
			{Platform: "instagram", Body: "Every venture starts with one honest conversation. Starting mine this week.", Hashtags: []string{"startupjourney"}},
		},
		LandingCopy: "## Something worth building\n\nWe're starting with a simple question: does this problem matter enough to you that you'd pay to make it go away?\n\n**Tell us.** Your answer shapes what we build next.",
		EmailOpener: "I'm reaching out because you know this problem better than anyone.",
	}
	switch tier {
	case venture.CommitmentExploring:
		assets.SocialPosts = assets.SocialPosts[:1]
	case venture.CommitmentFullTime:
		assets.SocialPosts = append(assets.SocialPosts, SocialPost{
			Platform: "twitter",
			Body:     "Day 1 of going all in. Documenting everything, including the faceplants.",
			Hashtags: []string{"buildinpublic", "day1"},
		})
	}
	return assets
}

func fallbackRoadmap(tier venture.CommitmentTier) *LaunchRoadmap {
	weeks := map[venture.CommitmentTier][3]string{
		venture.CommitmentExploring:  {"4 weeks", "8 weeks", "12 weeks"},
		venture.CommitmentSideHustle: {"3 weeks", "6 weeks", "8 weeks"},
		venture.CommitmentFullTime:   {"1 week", "3 weeks", "4 weeks"},
	}[tier]

	return &LaunchRoadmap{
		Phases: []RoadmapPhase{
			{
				Name:       "Validate",
				Duration:   weeks[0],
				Objectives: []string{"Confirm the problem is real and felt"},
				Tasks:      []string{"Interview ten potential customers", "Write a one-line problem statement in their words"},
			},
			{
				Name:       "Prototype",
				Duration:   weeks[1],
				Objectives: []string{"Put something usable in front of real people"},
				Tasks:      []string{"Build the smallest thing that delivers the core value", "Get five people to use it twice"},
			},
			{
				Name:       "Launch",
				Duration:   weeks[2],
				Objectives: []string{"First paying customers"},
				Tasks:      []string{"Set a simple price", "Ask every user for the next introduction"},
			},
		},
	}
}

// clone deep-copies the breakdown map and competitor slice.
func (r ViabilityReport) clone() *ViabilityReport {
	out := r
	out.ScoreBreakdown = make(ScoreBreakdown, len(r.ScoreBreakdown))
	for k, v := range r.ScoreBreakdown {
		out.ScoreBreakdown[k] = v
	}
	out.Competitors = append([]string(nil), r.Competitors...)
	return &out
}
