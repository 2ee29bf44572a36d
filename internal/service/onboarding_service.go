package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
	"github.com/garimatiwari2004/jobeefie-backend/internal/repository"
)

// OnboardingService creates a user profile on first onboarding and serves it
// back by clerk id. Profiles are immutable once created.
type OnboardingService interface {
	CreateProfile(req dto.OnboardingRequest) (*dto.OnboardingResponse, error)
	GetProfile(clerkID string) (*dto.OnboardingResponse, error)
}

type onboardingService struct {
	onboardingRepo repository.OnboardingRepository
}

func NewOnboardingService(onboardingRepo repository.OnboardingRepository) OnboardingService {
	return &onboardingService{onboardingRepo: onboardingRepo}
}

func (s *onboardingService) CreateProfile(req dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	if req.ClerkID == "" || req.Name == "" || req.Email == "" {
		return nil, apperrors.Validationf("missing required fields")
	}

	profile := &model.Onboarding{
		ClerkID:      req.ClerkID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       model.StringList(req.Skills),
		City:         req.City,
		Industry:     req.Industry,
		HasOnboarded: true,
	}
	if err := s.onboardingRepo.Create(profile); err != nil {
		log.Error().Err(err).Str("clerkId", req.ClerkID).Msg("Failed to create onboarding profile")
		return nil, err
	}

	return profileToDTO(profile)
}

func (s *onboardingService) GetProfile(clerkID string) (*dto.OnboardingResponse, error) {
	profile, err := s.onboardingRepo.FindByClerkID(clerkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("not onboarded yet")
		}
		log.Error().Err(err).Str("clerkId", clerkID).Msg("Failed to fetch onboarding profile")
		return nil, err
	}
	return profileToDTO(profile)
}

func profileToDTO(profile *model.Onboarding) (*dto.OnboardingResponse, error) {
	var resp dto.OnboardingResponse
	if err := copier.Copy(&resp, profile); err != nil {
		return nil, fmt.Errorf("error preparing onboarding response: %w", err)
	}
	resp.ID = profile.ID.String()
	return &resp, nil
}
