package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/service"
)

type ResumeController struct {
	storageService  service.StorageService
	pdfParser       service.PDFParserService
	analyzerService service.ResumeAnalyzerService
}

func NewResumeController(
	storageService service.StorageService,
	pdfParser service.PDFParserService,
	analyzerService service.ResumeAnalyzerService,
) *ResumeController {
	return &ResumeController{
		storageService:  storageService,
		pdfParser:       pdfParser,
		analyzerService: analyzerService,
	}
}

// UploadResume godoc
// @Summary Analyze an uploaded PDF resume
// @Description Extracts contact fields and skills from the PDF, scores the resume and matches it against an optional job description.
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume PDF"
// @Param jd formData string false "Job description text"
// @Success 200 {object} dto.ResumeAnalysisResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or non-PDF file"
// @Failure 500 {object} dto.ErrorResponse "PDF parsing failed"
// @Router /api/resume/upload [post]
func (ctrl *ResumeController) UploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "resume file required"})
		return
	}
	jdText := c.PostForm("jd")

	filePath, err := ctrl.storageService.SaveFile(file)
	if err != nil {
		log.Warn().Err(err).Str("filename", file.Filename).Msg("Failed to store uploaded resume")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	// The stored copy only exists for the parser; drop it once analyzed.
	defer func() {
		if err := ctrl.storageService.DeleteFile(filePath); err != nil {
			log.Warn().Err(err).Str("filePath", filePath).Msg("Failed to remove stored resume")
		}
	}()

	text, err := ctrl.pdfParser.ExtractText(filePath)
	if err != nil {
		log.Error().Err(err).Str("filePath", filePath).Msg("PDF parse error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "PDF parsing failed"})
		return
	}

	analysis := ctrl.analyzerService.Analyze(text, jdText)
	c.JSON(http.StatusOK, analysis)
}
