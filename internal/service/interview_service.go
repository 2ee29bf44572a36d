package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
	"github.com/garimatiwari2004/jobeefie-backend/internal/repository"
)

const defaultTotalQuestions = 5

// InterviewService drives one interview session through its lifecycle:
// start -> next/answer (repeated) -> finish.
type InterviewService interface {
	Start(ctx context.Context, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	Next(ctx context.Context, sessionID string) (*dto.NextQuestionResponse, error)
	Answer(ctx context.Context, req dto.AnswerRequest) (*dto.AnswerResponse, error)
	Finish(ctx context.Context, sessionID string) (*dto.FinishInterviewResponse, error)
	GetReport(ctx context.Context, reportID string) (*dto.InterviewReportResponse, error)
}

type interviewService struct {
	sessionRepo repository.SessionRepository
	reportRepo  repository.ReportRepository
	aiService   InterviewAIService
}

func NewInterviewService(
	sessionRepo repository.SessionRepository,
	reportRepo repository.ReportRepository,
	aiService InterviewAIService,
) InterviewService {
	return &interviewService{
		sessionRepo: sessionRepo,
		reportRepo:  reportRepo,
		aiService:   aiService,
	}
}

func sanitize(q *model.Question) dto.SanitizedQuestion {
	return dto.SanitizedQuestion{
		QID:      q.QID,
		Question: q.Question,
		Options:  q.Options,
	}
}

// findSession resolves a client-supplied session id. Ids that cannot name any
// record (including unparsable ones) come back as not found.
func (s *interviewService) findSession(sessionID string) (*model.InterviewSession, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, apperrors.NotFoundf("session %s not found", sessionID)
	}
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("session %s not found", sessionID)
		}
		return nil, err
	}
	return session, nil
}

func (s *interviewService) Start(ctx context.Context, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	if req.ClerkID == "" || req.Skill == "" {
		return nil, apperrors.Validationf("clerkId and skill required")
	}

	totalQuestions := req.TotalQuestions
	if totalQuestions <= 0 {
		totalQuestions = defaultTotalQuestions
	}

	question, err := s.aiService.GenerateQuestion(ctx, req.Skill)
	if err != nil {
		return nil, err
	}

	session := &model.InterviewSession{
		ClerkID:        req.ClerkID,
		Skill:          req.Skill,
		TotalQuestions: totalQuestions,
		Questions:      model.QuestionList{*question},
		Answers:        model.AnswerList{},
	}
	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Str("clerkId", req.ClerkID).Msg("Failed to persist new interview session")
		return nil, err
	}

	log.Info().Str("sessionID", session.ID.String()).Str("skill", req.Skill).Int("totalQuestions", totalQuestions).Msg("Interview session started")

	return &dto.StartInterviewResponse{
		SessionID:      session.ID.String(),
		Question:       sanitize(&session.Questions[0]),
		CurrentIndex:   session.CurrentIndex,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

func (s *interviewService) Next(ctx context.Context, sessionID string) (*dto.NextQuestionResponse, error) {
	session, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, apperrors.InvalidStatef("session %s already finished", sessionID)
	}

	// Re-fetching the current question is idempotent: generate only when the
	// requested index has no question yet.
	if session.CurrentIndex < len(session.Questions) {
		q := &session.Questions[session.CurrentIndex]
		return &dto.NextQuestionResponse{
			Question:       sanitize(q),
			CurrentIndex:   session.CurrentIndex,
			TotalQuestions: session.TotalQuestions,
		}, nil
	}

	question, err := s.aiService.GenerateQuestion(ctx, session.Skill)
	if err != nil {
		return nil, err
	}
	session.Questions = append(session.Questions, *question)
	if err := s.sessionRepo.Update(session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to persist generated question")
		return nil, err
	}

	q := &session.Questions[session.CurrentIndex]
	return &dto.NextQuestionResponse{
		Question:       sanitize(q),
		CurrentIndex:   session.CurrentIndex,
		TotalQuestions: session.TotalQuestions,
	}, nil
}

func (s *interviewService) Answer(ctx context.Context, req dto.AnswerRequest) (*dto.AnswerResponse, error) {
	if req.SessionID == "" || req.QID == "" {
		return nil, apperrors.Validationf("sessionId and qId required")
	}

	session, err := s.findSession(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, apperrors.InvalidStatef("session %s already finished", req.SessionID)
	}

	question := session.QuestionByID(req.QID)
	if question == nil {
		return nil, apperrors.NotFoundf("question %s not found in session", req.QID)
	}

	correct := question.CorrectOption == req.SelectedOption
	session.Answers = append(session.Answers, model.Answer{
		QID:            req.QID,
		SelectedOption: req.SelectedOption,
		Correct:        correct,
	})
	if correct {
		session.Score++
	}
	if session.CurrentIndex < session.TotalQuestions {
		session.CurrentIndex++
	}
	if err := s.sessionRepo.Update(session); err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("Failed to persist answer")
		return nil, err
	}

	// Best effort: a failed tip call must not fail the recorded answer.
	var improvementTip *string
	if !correct {
		tip, tipErr := s.aiService.GenerateImprovementTip(ctx, session.Skill, question, req.SelectedOption)
		if tipErr != nil {
			log.Warn().Err(tipErr).Str("sessionID", req.SessionID).Str("qId", req.QID).Msg("Improvement tip generation failed, returning null tip")
		} else {
			improvementTip = &tip
		}
	}

	return &dto.AnswerResponse{
		Correct:        correct,
		Explanation:    question.Explanation,
		ImprovementTip: improvementTip,
	}, nil
}

func (s *interviewService) Finish(ctx context.Context, sessionID string) (*dto.FinishInterviewResponse, error) {
	if sessionID == "" {
		return nil, apperrors.Validationf("sessionId required")
	}

	session, err := s.findSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.Finished = true
	if err := s.sessionRepo.Update(session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to mark session finished")
		return nil, err
	}

	analysis, err := s.aiService.GenerateAnalysis(ctx, session)
	if err != nil {
		return nil, err
	}

	report := &model.InterviewReport{
		ClerkID:        session.ClerkID,
		SessionID:      session.ID,
		Skill:          session.Skill,
		Score:          session.Score,
		TotalQuestions: session.TotalQuestions,
		Accuracy:       analysis.Accuracy,
		Strengths:      model.StringList(analysis.Strengths),
		Weaknesses:     model.StringList(analysis.Weaknesses),
		Tips:           model.StringList(analysis.Recommendations),
	}
	if err := s.reportRepo.Create(report); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to persist interview report")
		return nil, err
	}

	log.Info().Str("sessionID", sessionID).Str("reportID", report.ID.String()).Int("score", session.Score).Msg("Interview session finished")

	return &dto.FinishInterviewResponse{
		ReportID: report.ID.String(),
		Report:   *analysis,
		Score:    session.Score,
		Total:    session.TotalQuestions,
	}, nil
}

func (s *interviewService) GetReport(ctx context.Context, reportID string) (*dto.InterviewReportResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, apperrors.NotFoundf("report %s not found", reportID)
	}
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("report %s not found", reportID)
		}
		return nil, err
	}

	var resp dto.InterviewReportResponse
	if err := copier.Copy(&resp, report); err != nil {
		return nil, fmt.Errorf("error preparing report response: %w", err)
	}
	resp.ID = report.ID.String()
	resp.SessionID = report.SessionID.String()
	return &resp, nil
}
