package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"ventureforge/adapters/excel"
	"ventureforge/app"
	"ventureforge/domain/content"
	"ventureforge/domain/venture"
	"ventureforge/internal/errors"
	"ventureforge/ports"
)

// deepDiveRequest is the wire shape of a deep-dive call.
type deepDiveRequest struct {
	Idea    deepDiveIdea    `json:"idea" binding:"required"`
	Profile deepDiveProfile `json:"profile" binding:"required"`
	Section string          `json:"section" binding:"required"`
	UserID  string          `json:"userId"`
}

type deepDiveIdea struct {
	Name        string `json:"name" binding:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

type deepDiveProfile struct {
	VentureType    string   `json:"ventureType" binding:"required"`
	CauseAreas     []string `json:"causeAreas"`
	DeliveryFormat string   `json:"deliveryFormat"`
	Commitment     string   `json:"commitment"`
	Location       string   `json:"location"`
}

// deepDiveResponse is the dispatcher-facing response envelope. Generation
// and research failures never surface as success=false; only structural
// rejection does.
type deepDiveResponse struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Meta    *deepDiveMeta `json:"meta,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type deepDiveMeta struct {
	Section       string `json:"section"`
	SubjectKey    string `json:"subjectKey"`
	TrustResearch bool   `json:"trustResearch"`
	UsedFallback  bool   `json:"usedFallback"`
	RuntimeMs     int64  `json:"runtimeMs"`
	LandingHTML   string `json:"landingHtml,omitempty"`
}

func (s *Server) handleDeepDive(c *gin.Context) {
	var req deepDiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, deepDiveResponse{Success: false, Error: "invalid request: " + err.Error()})
		return
	}

	if !s.allow(c, req.UserID) {
		return
	}

	result, err := s.deepDive.Generate(c.Request.Context(), toServiceRequest(req))
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	s.persist(c, req.UserID, result)

	meta := &deepDiveMeta{
		Section:       string(result.Section),
		SubjectKey:    result.SubjectKey,
		TrustResearch: result.TrustResearch,
		UsedFallback:  result.UsedFallback,
		RuntimeMs:     result.RuntimeMs,
	}
	if assets, ok := result.Content.(*content.MarketingAssets); ok && assets.LandingCopy != "" {
		meta.LandingHTML = string(markdown.ToHTML([]byte(assets.LandingCopy), nil, nil))
	}

	c.JSON(http.StatusOK, deepDiveResponse{Success: true, Data: result.Content, Meta: meta})
}

// handleLatestDeepDive returns the most recently persisted section for a
// subject, keyed by the same subjectKey the generation response reports.
func (s *Server) handleLatestDeepDive(c *gin.Context) {
	if s.reports == nil {
		s.renderServiceError(c, errors.NotFound("deep dive report"))
		return
	}

	subjectKey := c.Query("subjectKey")
	if subjectKey == "" {
		c.JSON(http.StatusBadRequest, deepDiveResponse{Success: false, Error: "subjectKey is required"})
		return
	}
	section, err := content.ParseSection(c.Query("section"))
	if err != nil {
		c.JSON(http.StatusBadRequest, deepDiveResponse{Success: false, Error: err.Error()})
		return
	}

	rec, err := s.reports.LatestBySubject(c.Request.Context(), subjectKey, section)
	if err != nil {
		log.Printf("[API] Failed to load deep dive report: %v", err)
		c.JSON(http.StatusInternalServerError, deepDiveResponse{Success: false, Error: "deep dive lookup failed"})
		return
	}
	if rec == nil {
		s.renderServiceError(c, errors.NotFound("deep dive report"))
		return
	}

	meta := &deepDiveMeta{
		Section:       string(rec.Section),
		SubjectKey:    rec.SubjectKey,
		TrustResearch: rec.TrustResearch,
		UsedFallback:  rec.Fallback,
	}
	c.JSON(http.StatusOK, deepDiveResponse{Success: true, Data: rec.Content, Meta: meta})
}

// launchKitRequest is a deep-dive request with the section implied.
type launchKitRequest struct {
	Idea    deepDiveIdea    `json:"idea" binding:"required"`
	Profile deepDiveProfile `json:"profile" binding:"required"`
	UserID  string          `json:"userId"`
}

func (s *Server) handleLaunchKit(c *gin.Context) {
	var kit launchKitRequest
	if err := c.ShouldBindJSON(&kit); err != nil {
		c.JSON(http.StatusBadRequest, deepDiveResponse{Success: false, Error: "invalid request: " + err.Error()})
		return
	}
	req := deepDiveRequest{
		Idea:    kit.Idea,
		Profile: kit.Profile,
		Section: string(content.SectionViability),
		UserID:  kit.UserID,
	}

	if !s.allow(c, req.UserID) {
		return
	}

	result, err := s.deepDive.Generate(c.Request.Context(), toServiceRequest(req))
	if err != nil {
		s.renderServiceError(c, err)
		return
	}

	report, ok := result.Content.(*content.ViabilityReport)
	if !ok {
		c.JSON(http.StatusInternalServerError, deepDiveResponse{Success: false, Error: "launch kit unavailable"})
		return
	}

	svcReq := toServiceRequest(req)
	workbook, err := excel.BuildLaunchKit(svcReq.Idea, svcReq.Profile, report, result.Insights)
	if err != nil {
		log.Printf("[API] Launch kit build failed: %v", err)
		c.JSON(http.StatusInternalServerError, deepDiveResponse{Success: false, Error: "launch kit unavailable"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="launch-kit.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		log.Printf("[API] Launch kit stream failed: %v", err)
	}
}

// allow enforces the entitlement decision. Writes the response on deny.
func (s *Server) allow(c *gin.Context, userID string) bool {
	allowed, err := s.entitlement.AllowDeepDive(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[API] Entitlement check failed, denying: %v", err)
		allowed = false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, deepDiveResponse{Success: false, Error: "deep dive not available on your plan"})
		return false
	}
	return true
}

// persist saves the generated section. Persistence failure is logged, not
// surfaced; the content was already produced.
func (s *Server) persist(c *gin.Context, userID string, result *app.DeepDiveResult) {
	if s.reports == nil {
		return
	}
	raw, err := json.Marshal(result.Content)
	if err != nil {
		log.Printf("[API] Failed to marshal content for persistence: %v", err)
		return
	}
	rec := &ports.DeepDiveRecord{
		UserID:        userID,
		SubjectKey:    result.SubjectKey,
		Section:       result.Section,
		TrustResearch: result.TrustResearch,
		Fallback:      result.UsedFallback,
		Content:       raw,
	}
	if err := s.reports.Save(c.Request.Context(), rec); err != nil {
		log.Printf("[API] Failed to persist deep dive record: %v", err)
	}
}

func (s *Server) renderServiceError(c *gin.Context, err error) {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		c.JSON(http.StatusBadRequest, deepDiveResponse{Success: false, Error: err.Error()})
		return
	case errors.CodeNotFound:
		c.JSON(http.StatusNotFound, deepDiveResponse{Success: false, Error: err.Error()})
		return
	}
	// Context cancellation or other unexpected failure.
	log.Printf("[API] Deep dive failed: %v", err)
	c.JSON(http.StatusInternalServerError, deepDiveResponse{Success: false, Error: "deep dive failed"})
}

func toServiceRequest(req deepDiveRequest) app.DeepDiveRequest {
	return app.DeepDiveRequest{
		Idea: venture.Idea{
			Name:        req.Idea.Name,
			Tagline:     req.Idea.Tagline,
			Description: req.Idea.Description,
		},
		Profile: venture.FounderProfile{
			VentureType:    req.Profile.VentureType,
			CauseAreas:     req.Profile.CauseAreas,
			DeliveryFormat: req.Profile.DeliveryFormat,
			Commitment:     venture.CommitmentTier(req.Profile.Commitment),
			Location:       req.Profile.Location,
		},
		Section: req.Section,
	}
}
