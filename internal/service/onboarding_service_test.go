package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

type memOnboardingRepo struct {
	profiles map[string]model.Onboarding
}

func newMemOnboardingRepo() *memOnboardingRepo {
	return &memOnboardingRepo{profiles: make(map[string]model.Onboarding)}
}

func (r *memOnboardingRepo) Create(profile *model.Onboarding) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ClerkID] = *profile
	return nil
}

func (r *memOnboardingRepo) FindByClerkID(clerkID string) (*model.Onboarding, error) {
	profile, ok := r.profiles[clerkID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func TestCreateProfile(t *testing.T) {
	svc := NewOnboardingService(newMemOnboardingRepo())

	resp, err := svc.CreateProfile(dto.OnboardingRequest{
		ClerkID:  "clerk_1",
		Name:     "Nikhil Sihare",
		Email:    "nikhil@example.com",
		Skills:   []string{"react", "node"},
		City:     "Bhopal",
		Industry: "software",
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if !resp.HasOnboarded {
		t.Errorf("hasOnboarded = false, want true")
	}
	if resp.ClerkID != "clerk_1" || resp.Name != "Nikhil Sihare" || len(resp.Skills) != 2 {
		t.Errorf("response = %+v", resp)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Errorf("id %q not a uuid: %v", resp.ID, err)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	svc := NewOnboardingService(newMemOnboardingRepo())

	tests := []struct {
		name string
		req  dto.OnboardingRequest
	}{
		{"missing clerkId", dto.OnboardingRequest{Name: "N", Email: "n@e.co"}},
		{"missing name", dto.OnboardingRequest{ClerkID: "c", Email: "n@e.co"}},
		{"missing email", dto.OnboardingRequest{ClerkID: "c", Name: "N"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateProfile(tt.req); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	repo := newMemOnboardingRepo()
	svc := NewOnboardingService(repo)

	created, err := svc.CreateProfile(dto.OnboardingRequest{ClerkID: "clerk_1", Name: "Nikhil Sihare", Email: "nikhil@example.com"})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	got, err := svc.GetProfile("clerk_1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ID != created.ID || got.Email != "nikhil@example.com" {
		t.Errorf("got %+v, want the created profile", got)
	}

	if _, err := svc.GetProfile("clerk_unknown"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown clerk: got %v, want not found", err)
	}
}
