package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

// memSessionRepo persists value copies, so mutations only stick after Update,
// like the real store.
type memSessionRepo struct {
	sessions map[uuid.UUID]model.InterviewSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[uuid.UUID]model.InterviewSession)}
}

func (r *memSessionRepo) Create(session *model.InterviewSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *memSessionRepo) FindByID(id uuid.UUID) (*model.InterviewSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (r *memSessionRepo) Update(session *model.InterviewSession) error {
	r.sessions[session.ID] = *session
	return nil
}

type memReportRepo struct {
	reports map[uuid.UUID]model.InterviewReport
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[uuid.UUID]model.InterviewReport)}
}

func (r *memReportRepo) Create(report *model.InterviewReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	r.reports[report.ID] = *report
	return nil
}

func (r *memReportRepo) FindByID(id uuid.UUID) (*model.InterviewReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &report, nil
}

// fakeAIService hands out scripted questions with option A always correct.
type fakeAIService struct {
	generated   int
	questionErr error
	tip         string
	tipErr      error
	analysis    *dto.AnalysisResult
	analysisErr error
}

func (f *fakeAIService) GenerateQuestion(ctx context.Context, skill string) (*model.Question, error) {
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	f.generated++
	return &model.Question{
		QID:           fmt.Sprintf("q%07d", f.generated),
		Question:      fmt.Sprintf("question %d about %s", f.generated, skill),
		Options:       map[string]string{"A": "right", "B": "wrong", "C": "wrong", "D": "wrong"},
		CorrectOption: "A",
		Explanation:   "because A",
	}, nil
}

func (f *fakeAIService) GenerateImprovementTip(ctx context.Context, skill string, question *model.Question, selectedOption string) (string, error) {
	if f.tipErr != nil {
		return "", f.tipErr
	}
	return f.tip, nil
}

func (f *fakeAIService) GenerateAnalysis(ctx context.Context, session *model.InterviewSession) (*dto.AnalysisResult, error) {
	if f.analysisErr != nil {
		return nil, f.analysisErr
	}
	if f.analysis != nil {
		return f.analysis, nil
	}
	return &dto.AnalysisResult{
		Accuracy:        float64(session.Score) / float64(session.TotalQuestions) * 100,
		Strengths:       []string{"fundamentals"},
		Weaknesses:      []string{"edge cases"},
		Recommendations: []string{"practice more"},
		ReadinessScore:  70,
	}, nil
}

func newTestInterviewService(ai *fakeAIService) (InterviewService, *memSessionRepo, *memReportRepo) {
	sessionRepo := newMemSessionRepo()
	reportRepo := newMemReportRepo()
	return NewInterviewService(sessionRepo, reportRepo, ai), sessionRepo, reportRepo
}

func checkSessionInvariant(t *testing.T, s *model.InterviewSession) {
	t.Helper()
	if len(s.Answers) > s.CurrentIndex {
		t.Errorf("invariant broken: %d answers > currentIndex %d", len(s.Answers), s.CurrentIndex)
	}
	if s.CurrentIndex > s.TotalQuestions {
		t.Errorf("invariant broken: currentIndex %d > totalQuestions %d", s.CurrentIndex, s.TotalQuestions)
	}
	if len(s.Questions) < s.CurrentIndex {
		t.Errorf("invariant broken: %d questions < currentIndex %d", len(s.Questions), s.CurrentIndex)
	}
}

func TestStartValidation(t *testing.T) {
	svc, _, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	_, err := svc.Start(ctx, dto.StartInterviewRequest{Skill: "python"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("missing clerkId: got %v, want validation error", err)
	}
	_, err = svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("missing skill: got %v, want validation error", err)
	}
}

func TestStartCreatesSessionWithOneQuestion(t *testing.T) {
	svc, sessionRepo, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	resp, err := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "python"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if resp.CurrentIndex != 0 {
		t.Errorf("currentIndex = %d, want 0", resp.CurrentIndex)
	}
	if resp.TotalQuestions != defaultTotalQuestions {
		t.Errorf("totalQuestions = %d, want default %d", resp.TotalQuestions, defaultTotalQuestions)
	}
	if resp.Question.QID == "" || resp.Question.Question == "" || len(resp.Question.Options) == 0 {
		t.Errorf("sanitized question incomplete: %+v", resp.Question)
	}

	id, err := uuid.Parse(resp.SessionID)
	if err != nil {
		t.Fatalf("session id %q not a uuid: %v", resp.SessionID, err)
	}
	stored, err := sessionRepo.FindByID(id)
	if err != nil {
		t.Fatalf("stored session not found: %v", err)
	}
	if len(stored.Questions) != 1 {
		t.Errorf("stored questions = %d, want 1", len(stored.Questions))
	}
	checkSessionInvariant(t, stored)
}

func TestStartQuestionFailureCreatesNothing(t *testing.T) {
	ai := &fakeAIService{questionErr: apperrors.ModelResponsef("no parsable JSON object")}
	svc, sessionRepo, _ := newTestInterviewService(ai)

	_, err := svc.Start(context.Background(), dto.StartInterviewRequest{ClerkID: "u1", Skill: "go"})
	if !errors.Is(err, apperrors.ErrModelResponse) {
		t.Fatalf("got %v, want model response error", err)
	}
	if len(sessionRepo.sessions) != 0 {
		t.Errorf("session persisted despite generation failure")
	}
}

func TestNextIsIdempotentForUnansweredQuestion(t *testing.T) {
	svc, sessionRepo, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	start, err := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	first, err := svc.Next(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	second, err := svc.Next(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Next again: %v", err)
	}
	if first.Question.QID != second.Question.QID {
		t.Errorf("re-fetch returned a different question: %s vs %s", first.Question.QID, second.Question.QID)
	}

	id, _ := uuid.Parse(start.SessionID)
	stored, _ := sessionRepo.FindByID(id)
	if len(stored.Questions) != 1 {
		t.Errorf("questions grew to %d on idempotent re-fetch", len(stored.Questions))
	}
}

func TestNextUnknownSession(t *testing.T) {
	svc, _, _ := newTestInterviewService(&fakeAIService{})

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		if _, err := svc.Next(context.Background(), id); !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("Next(%q): got %v, want not found", id, err)
		}
	}
}

func TestNextGenerationFailureLeavesSessionUnmodified(t *testing.T) {
	ai := &fakeAIService{}
	svc, sessionRepo, _ := newTestInterviewService(ai)
	ctx := context.Background()

	start, err := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go", TotalQuestions: 3})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: start.SessionID, QID: start.Question.QID, SelectedOption: "A"}); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	ai.questionErr = apperrors.ModelResponsef("no parsable JSON object")
	if _, err := svc.Next(ctx, start.SessionID); !errors.Is(err, apperrors.ErrModelResponse) {
		t.Fatalf("got %v, want model response error", err)
	}

	id, _ := uuid.Parse(start.SessionID)
	stored, _ := sessionRepo.FindByID(id)
	if len(stored.Questions) != 1 {
		t.Errorf("partial question appended on failure: %d questions", len(stored.Questions))
	}
	checkSessionInvariant(t, stored)
}

func TestAnswerValidationAndLookups(t *testing.T) {
	svc, _, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	if _, err := svc.Answer(ctx, dto.AnswerRequest{QID: "q1"}); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("missing sessionId: got %v, want validation error", err)
	}
	if _, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: "s"}); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("missing qId: got %v, want validation error", err)
	}

	start, err := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: start.SessionID, QID: "missing", SelectedOption: "A"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown question: got %v, want not found", err)
	}
}

func TestAnswerWrongOptionGetsTip(t *testing.T) {
	ai := &fakeAIService{tip: "revise pointers"}
	svc, _, _ := newTestInterviewService(ai)
	ctx := context.Background()

	start, _ := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go"})
	resp, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: start.SessionID, QID: start.Question.QID, SelectedOption: "B"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if resp.Correct {
		t.Errorf("wrong option marked correct")
	}
	if resp.Explanation != "because A" {
		t.Errorf("explanation = %q", resp.Explanation)
	}
	if resp.ImprovementTip == nil || *resp.ImprovementTip != "revise pointers" {
		t.Errorf("improvementTip = %v, want revise pointers", resp.ImprovementTip)
	}
}

func TestAnswerTipFailureReturnsNullTip(t *testing.T) {
	ai := &fakeAIService{tipErr: apperrors.Upstreamf("model timeout")}
	svc, sessionRepo, _ := newTestInterviewService(ai)
	ctx := context.Background()

	start, _ := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go"})
	resp, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: start.SessionID, QID: start.Question.QID, SelectedOption: "C"})
	if err != nil {
		t.Fatalf("tip failure must not fail the answer: %v", err)
	}
	if resp.ImprovementTip != nil {
		t.Errorf("improvementTip = %q, want nil", *resp.ImprovementTip)
	}

	// Answer itself is recorded despite the failed tip call.
	id, _ := uuid.Parse(start.SessionID)
	stored, _ := sessionRepo.FindByID(id)
	if len(stored.Answers) != 1 {
		t.Errorf("answers = %d, want 1", len(stored.Answers))
	}
}

func TestAnswerFinishedSessionRejected(t *testing.T) {
	svc, _, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	start, _ := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go", TotalQuestions: 1})
	if _, err := svc.Finish(ctx, start.SessionID); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	_, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: start.SessionID, QID: start.Question.QID, SelectedOption: "A"})
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("answer on finished session: got %v, want invalid state", err)
	}
	if _, err := svc.Next(ctx, start.SessionID); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("next on finished session: got %v, want invalid state", err)
	}
}

func TestFullSessionScenario(t *testing.T) {
	ai := &fakeAIService{}
	svc, sessionRepo, reportRepo := newTestInterviewService(ai)
	ctx := context.Background()

	start, err := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "python", TotalQuestions: 3})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	sessionID := start.SessionID
	id, _ := uuid.Parse(sessionID)

	question := start.Question
	for i := 0; i < 3; i++ {
		resp, err := svc.Answer(ctx, dto.AnswerRequest{SessionID: sessionID, QID: question.QID, SelectedOption: "A"})
		if err != nil {
			t.Fatalf("Answer #%d: %v", i+1, err)
		}
		if !resp.Correct {
			t.Errorf("answer #%d marked incorrect", i+1)
		}

		stored, _ := sessionRepo.FindByID(id)
		checkSessionInvariant(t, stored)
		if stored.Score != i+1 {
			t.Errorf("score after answer #%d = %d, want %d", i+1, stored.Score, i+1)
		}
		if stored.CurrentIndex != i+1 {
			t.Errorf("currentIndex after answer #%d = %d, want %d", i+1, stored.CurrentIndex, i+1)
		}

		if i < 2 {
			next, err := svc.Next(ctx, sessionID)
			if err != nil {
				t.Fatalf("Next after answer #%d: %v", i+1, err)
			}
			question = next.Question
		}
	}

	finish, err := svc.Finish(ctx, sessionID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if finish.Score != 3 || finish.Total != 3 {
		t.Errorf("finish score %d/%d, want 3/3", finish.Score, finish.Total)
	}
	if len(reportRepo.reports) != 1 {
		t.Fatalf("reports = %d, want exactly 1", len(reportRepo.reports))
	}

	stored, _ := sessionRepo.FindByID(id)
	if !stored.Finished {
		t.Errorf("session not marked finished")
	}

	reportID, _ := uuid.Parse(finish.ReportID)
	report, err := reportRepo.FindByID(reportID)
	if err != nil {
		t.Fatalf("report not found: %v", err)
	}
	if report.Score != 3 || report.TotalQuestions != 3 || report.SessionID != id {
		t.Errorf("report fields wrong: %+v", report)
	}
}

func TestGetReport(t *testing.T) {
	svc, _, _ := newTestInterviewService(&fakeAIService{})
	ctx := context.Background()

	start, _ := svc.Start(ctx, dto.StartInterviewRequest{ClerkID: "u1", Skill: "go", TotalQuestions: 1})
	finish, err := svc.Finish(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	report, err := svc.GetReport(ctx, finish.ReportID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if report.ID != finish.ReportID || report.ClerkID != "u1" {
		t.Errorf("report = %+v", report)
	}

	if _, err := svc.GetReport(ctx, uuid.NewString()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown report: got %v, want not found", err)
	}
}
