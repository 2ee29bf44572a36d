package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

type SessionRepository interface {
	Create(session *model.InterviewSession) error
	FindByID(id uuid.UUID) (*model.InterviewSession, error)
	Update(session *model.InterviewSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.InterviewSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*model.InterviewSession, error) {
	var session model.InterviewSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Update saves the whole session row, jsonb columns included. Last write wins
// when two callers mutate the same session.
func (r *sessionRepository) Update(session *model.InterviewSession) error {
	return r.db.Save(session).Error
}
