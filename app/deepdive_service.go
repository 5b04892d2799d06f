package app

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"ventureforge/ai"
	"ventureforge/domain/content"
	domres "ventureforge/domain/research"
	"ventureforge/domain/venture"
	"ventureforge/internal/errors"
	"ventureforge/internal/research"
	"ventureforge/ports"
)

// DeepDiveService is the content dispatcher: it resolves the cached trust
// decision for a subject, selects the prompt variant, invokes the
// generative model, and substitutes static fallback content on any
// generation failure. Only structural errors surface to the caller.
type DeepDiveService struct {
	cache        *research.Cache
	orchestrator *research.Orchestrator
	generator    ports.StructuredGenerator
}

// DeepDiveRequest is the dispatcher-facing request.
type DeepDiveRequest struct {
	Idea    venture.Idea
	Profile venture.FounderProfile
	Section string
}

// DeepDiveResult is one generated section plus the pipeline facts the
// caller persists alongside it.
type DeepDiveResult struct {
	SubjectKey    string
	Section       content.Section
	Content       any
	TrustResearch bool
	UsedFallback  bool
	Insights      []domres.CompetitorInsight
	RuntimeMs     int64
}

// NewDeepDiveService creates the dispatcher.
func NewDeepDiveService(cache *research.Cache, orchestrator *research.Orchestrator, generator ports.StructuredGenerator) *DeepDiveService {
	return &DeepDiveService{
		cache:        cache,
		orchestrator: orchestrator,
		generator:    generator,
	}
}

// Generate produces the requested content section. Research is fetched at
// most once per subject within the cache TTL; every section reuses the
// same cached trust decision.
func (s *DeepDiveService) Generate(ctx context.Context, req DeepDiveRequest) (*DeepDiveResult, error) {
	start := time.Now()

	section, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	subjectKey := venture.SubjectKey(req.Idea, req.Profile)
	entry, err := s.cache.GetOrRun(ctx, subjectKey, func(ctx context.Context) domres.Entry {
		return s.orchestrator.Run(ctx, req.Idea, req.Profile)
	})
	if err != nil {
		// Only context cancellation reaches here; the orchestrator itself
		// never fails.
		return nil, err
	}

	trusted := entry.TrustResearch && entry.Payload != nil

	var payload *domres.Payload
	var insights []domres.CompetitorInsight
	if trusted {
		payload = entry.Payload
		insights = entry.Insights
	}

	generated, usedFallback := s.generateSection(ctx, section, req, payload, insights)

	result := &DeepDiveResult{
		SubjectKey:    subjectKey,
		Section:       section,
		Content:       generated,
		TrustResearch: entry.TrustResearch,
		UsedFallback:  usedFallback,
		Insights:      entry.Insights,
		RuntimeMs:     time.Since(start).Milliseconds(),
	}
	return result, nil
}

// validate rejects structurally invalid requests before any generation is
// attempted.
func (s *DeepDiveService) validate(req DeepDiveRequest) (content.Section, error) {
	if strings.TrimSpace(req.Idea.Name) == "" {
		return "", errors.InvalidInput("idea name is required")
	}
	if strings.TrimSpace(req.Profile.VentureType) == "" {
		return "", errors.InvalidInput("profile venture type is required")
	}
	if strings.TrimSpace(req.Section) == "" {
		return "", errors.InvalidInput("section is required")
	}
	section, err := content.ParseSection(req.Section)
	if err != nil {
		return "", errors.InvalidInput(err.Error())
	}
	return section, nil
}

// generateSection invokes the model and parses its output. Every failure
// path lands on the commitment-tier fallback, never on an error.
func (s *DeepDiveService) generateSection(ctx context.Context, section content.Section, req DeepDiveRequest, payload *domres.Payload, insights []domres.CompetitorInsight) (any, bool) {
	prompt := ai.BuildSectionPrompt(section, req.Idea, req.Profile, payload, insights)
	system := ai.SystemPromptFor(section)
	params := ai.ParamsFor(section)

	raw, err := s.generator.GenerateJSON(ctx, prompt, system, params)
	if err != nil {
		log.Printf("[DeepDive] Generation failed for section=%s idea=%q, using fallback: %v", section, req.Idea.Name, err)
		return content.FallbackFor(section, req.Profile.Commitment), true
	}

	parsed, err := parseSection(section, raw)
	if err != nil {
		log.Printf("[DeepDive] Malformed model output for section=%s idea=%q, using fallback: %v", section, req.Idea.Name, err)
		return content.FallbackFor(section, req.Profile.Commitment), true
	}
	return parsed, false
}

// parseSection unmarshals raw model output into the section's shape,
// normalizing viability scores on the way through.
func parseSection(section content.Section, raw json.RawMessage) (any, error) {
	switch section {
	case content.SectionViability:
		var report content.ViabilityReport
		if err := json.Unmarshal(raw, &report); err != nil {
			return nil, err
		}
		normalized := content.NormalizeScores(report)
		return &normalized, nil
	case content.SectionPlan:
		var plan content.BusinessPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return nil, err
		}
		return &plan, nil
	case content.SectionMarketing:
		var assets content.MarketingAssets
		if err := json.Unmarshal(raw, &assets); err != nil {
			return nil, err
		}
		return &assets, nil
	case content.SectionRoadmap:
		var roadmap content.LaunchRoadmap
		if err := json.Unmarshal(raw, &roadmap); err != nil {
			return nil, err
		}
		return &roadmap, nil
	default:
		return nil, errors.InvalidInput("unrecognized section: " + string(section))
	}
}
