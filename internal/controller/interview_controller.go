package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// StartSession godoc
// @Summary Start a mock interview session
// @Description Creates a session for the given skill and returns the first generated question.
// @Tags mock
// @Accept json
// @Produce json
// @Param session body dto.StartInterviewRequest true "clerkId, skill and optional totalQuestions"
// @Success 200 {object} dto.StartInterviewResponse
// @Failure 400 {object} dto.ErrorResponse "clerkId and skill required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/mock/start [post]
func (ctrl *InterviewController) StartSession(c *gin.Context) {
	var req dto.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartInterviewRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := ctrl.interviewService.Start(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextQuestion godoc
// @Summary Fetch or generate the next question
// @Description Returns the question at the session's current index, generating one when none exists yet. Safe to call twice.
// @Tags mock
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.NextQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Session finished"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/mock/next/{sessionId} [get]
func (ctrl *InterviewController) NextQuestion(c *gin.Context) {
	resp, err := ctrl.interviewService.Next(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err, "Failed to fetch next question")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Record an answer
// @Description Records correctness, advances the session and, on a wrong answer, asks the model for an improvement tip (best effort).
// @Tags mock
// @Accept json
// @Produce json
// @Param answer body dto.AnswerRequest true "sessionId, qId and selectedOption"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Missing ids or session finished"
// @Failure 404 {object} dto.ErrorResponse "Session or question not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/mock/answer [post]
func (ctrl *InterviewController) SubmitAnswer(c *gin.Context) {
	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := ctrl.interviewService.Answer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record answer")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FinishSession godoc
// @Summary Finish a session and synthesize its report
// @Description Seals the session, requests a structured analysis from the model and persists the report.
// @Tags mock
// @Accept json
// @Produce json
// @Param finish body dto.FinishRequest true "sessionId"
// @Success 200 {object} dto.FinishInterviewResponse
// @Failure 400 {object} dto.ErrorResponse "sessionId required"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/mock/finish [post]
func (ctrl *InterviewController) FinishSession(c *gin.Context) {
	var req dto.FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind FinishRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := ctrl.interviewService.Finish(c.Request.Context(), req.SessionID)
	if err != nil {
		respondError(c, err, "Failed to finish session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetReport godoc
// @Summary Fetch a persisted interview report
// @Tags mock
// @Produce json
// @Param reportId path string true "Report ID"
// @Success 200 {object} dto.InterviewReportResponse
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/mock/report/{reportId} [get]
func (ctrl *InterviewController) GetReport(c *gin.Context) {
	resp, err := ctrl.interviewService.GetReport(c.Request.Context(), c.Param("reportId"))
	if err != nil {
		respondError(c, err, "Failed to fetch report")
		return
	}
	c.JSON(http.StatusOK, resp)
}
