package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

type OnboardingRepository interface {
	Create(profile *model.Onboarding) error
	FindByClerkID(clerkID string) (*model.Onboarding, error)
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

func (r *onboardingRepository) Create(profile *model.Onboarding) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return r.db.Create(profile).Error
}

func (r *onboardingRepository) FindByClerkID(clerkID string) (*model.Onboarding, error) {
	var profile model.Onboarding
	if err := r.db.Where("clerk_id = ?", clerkID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
