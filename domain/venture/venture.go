package venture

import (
	"sort"
	"strings"
)

// CommitmentTier describes how much time the founder intends to put in.
// It selects which static fallback content a failed generation degrades to.
type CommitmentTier string

const (
	CommitmentExploring  CommitmentTier = "exploring"
	CommitmentSideHustle CommitmentTier = "side_hustle"
	CommitmentFullTime   CommitmentTier = "full_time"
)

// Normalize maps arbitrary profile input onto one of the three tiers.
// Unknown values degrade to the exploring tier.
func (c CommitmentTier) Normalize() CommitmentTier {
	switch CommitmentTier(strings.ToLower(strings.TrimSpace(string(c)))) {
	case CommitmentSideHustle:
		return CommitmentSideHustle
	case CommitmentFullTime:
		return CommitmentFullTime
	default:
		return CommitmentExploring
	}
}

// Idea is one generated business idea selected for a deep dive.
type Idea struct {
	Name        string `json:"name" binding:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// FounderProfile captures the questionnaire answers that shape research
// and content generation for an idea.
type FounderProfile struct {
	VentureType    string         `json:"ventureType" binding:"required"`
	CauseAreas     []string       `json:"causeAreas"`
	DeliveryFormat string         `json:"deliveryFormat"`
	Commitment     CommitmentTier `json:"commitment"`
	Location       string         `json:"location"`
}

// PrimaryCause returns the first selected cause area, or empty.
func (p FounderProfile) PrimaryCause() string {
	if len(p.CauseAreas) == 0 {
		return ""
	}
	return p.CauseAreas[0]
}

// SubjectKey derives the composite research identity for an (idea, profile)
// pair. Two requests with the same key are the same research question: the
// key covers the idea name, the venture type, and the set of cause areas,
// order-insensitive. Other profile fields do not participate.
func SubjectKey(idea Idea, profile FounderProfile) string {
	causes := make([]string, 0, len(profile.CauseAreas))
	for _, c := range profile.CauseAreas {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			causes = append(causes, c)
		}
	}
	sort.Strings(causes)

	parts := []string{
		strings.ToLower(strings.TrimSpace(idea.Name)),
		strings.ToLower(strings.TrimSpace(profile.VentureType)),
		strings.Join(causes, ","),
	}
	return strings.Join(parts, "|")
}
