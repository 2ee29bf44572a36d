package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

type ReportRepository interface {
	Create(report *model.InterviewReport) error
	FindByID(id uuid.UUID) (*model.InterviewReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.InterviewReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id uuid.UUID) (*model.InterviewReport, error) {
	var report model.InterviewReport
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
