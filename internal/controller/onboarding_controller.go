package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/service"
)

type OnboardingController struct {
	onboardingService service.OnboardingService
}

func NewOnboardingController(onboardingService service.OnboardingService) *OnboardingController {
	return &OnboardingController{onboardingService: onboardingService}
}

// CreateProfile godoc
// @Summary Create an onboarding profile
// @Description Creates the caller's profile on first onboarding. One profile per clerkId.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param profile body dto.OnboardingRequest true "Profile data"
// @Success 201 {object} dto.OnboardingResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/onboarding [post]
func (ctrl *OnboardingController) CreateProfile(c *gin.Context) {
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind OnboardingRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	profile, err := ctrl.onboardingService.CreateProfile(req)
	if err != nil {
		respondError(c, err, "Server Error")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile godoc
// @Summary Get an onboarding profile by clerk id
// @Tags onboarding
// @Produce json
// @Param clerkId path string true "Clerk ID"
// @Success 200 {object} dto.OnboardingResponse
// @Failure 404 {object} dto.ErrorResponse "Not onboarded yet"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/onboarding/{clerkId} [get]
func (ctrl *OnboardingController) GetProfile(c *gin.Context) {
	profile, err := ctrl.onboardingService.GetProfile(c.Param("clerkId"))
	if err != nil {
		respondError(c, err, "Error fetching onboarding info")
		return
	}
	c.JSON(http.StatusOK, profile)
}
