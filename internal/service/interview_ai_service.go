package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
)

// InterviewAIService produces questions, improvement tips and the finish-time
// analysis by prompting the generative model and parsing its free-text output.
type InterviewAIService interface {
	GenerateQuestion(ctx context.Context, skill string) (*model.Question, error)
	GenerateImprovementTip(ctx context.Context, skill string, question *model.Question, selectedOption string) (string, error)
	GenerateAnalysis(ctx context.Context, session *model.InterviewSession) (*dto.AnalysisResult, error)
}

type interviewAIService struct {
	client GenerativeClient
}

func NewInterviewAIService(client GenerativeClient) InterviewAIService {
	return &interviewAIService{client: client}
}

// jsonSpanRe grabs everything from the first '{' to the last '}'. The model is
// asked for JSON only, but wraps it in prose often enough that this is needed.
var jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON parses the single JSON object expected somewhere in raw. Falls
// back to parsing the whole text when no brace span is found.
func extractJSON(raw string, dest interface{}) error {
	span := jsonSpanRe.FindString(raw)
	if span == "" {
		span = raw
	}
	if err := json.Unmarshal([]byte(span), dest); err != nil {
		return apperrors.ModelResponsef("no parsable JSON object in model output: %v", err)
	}
	return nil
}

// newQuestionID returns a short random id for an embedded question.
func newQuestionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// generatedQuestion matches the JSON shape the question prompt asks for.
type generatedQuestion struct {
	Q           string            `json:"q"`
	Options     map[string]string `json:"options"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}

func (s *interviewAIService) GenerateQuestion(ctx context.Context, skill string) (*model.Question, error) {
	prompt := fmt.Sprintf(`Generate ONE multiple-choice technical interview question for skill: %q.
Return JSON ONLY, exactly in this format:
{
  "q": "Question text",
  "options": { "A": "Option A", "B": "Option B", "C": "Option C", "D": "Option D" },
  "correct": "B",
  "explanation": "Short explanation (1-2 lines)"
}
Rules:
- Provide one correct answer only.
- Use interview-level phrasing.
- Return ONLY JSON and no extra commentary.
`, skill)

	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var gen generatedQuestion
	if err := extractJSON(raw, &gen); err != nil {
		log.Warn().Str("skill", skill).Msg("Failed to parse generated question from model output")
		return nil, err
	}

	return &model.Question{
		QID:           newQuestionID(),
		Question:      gen.Q,
		Options:       gen.Options,
		CorrectOption: gen.Correct,
		Explanation:   gen.Explanation,
	}, nil
}

func (s *interviewAIService) GenerateImprovementTip(ctx context.Context, skill string, question *model.Question, selectedOption string) (string, error) {
	selectedText, ok := question.Options[selectedOption]
	if !ok {
		selectedText = "N/A"
	}

	prompt := fmt.Sprintf(`The user answered incorrectly.
Skill: %s
Question: %s
Correct: %s -> %s
User Answer: %s -> %s

Give a concise improvement tip (max 2 sentences). Return plain text only.
`, skill, question.Question, question.CorrectOption, question.Options[question.CorrectOption], selectedOption, selectedText)

	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// incorrectAnswer is the per-question detail fed into the analysis prompt.
type incorrectAnswer struct {
	Question string `json:"question"`
	Correct  string `json:"correct"`
	Selected string `json:"selected"`
}

func (s *interviewAIService) GenerateAnalysis(ctx context.Context, session *model.InterviewSession) (*dto.AnalysisResult, error) {
	var incorrect []incorrectAnswer
	for _, a := range session.Answers {
		if a.Correct {
			continue
		}
		q := session.QuestionByID(a.QID)
		if q == nil {
			continue
		}
		incorrect = append(incorrect, incorrectAnswer{
			Question: q.Question,
			Correct:  q.CorrectOption,
			Selected: a.SelectedOption,
		})
	}

	incorrectJSON, err := json.Marshal(incorrect)
	if err != nil {
		return nil, fmt.Errorf("failed to encode incorrect answers: %w", err)
	}

	prompt := fmt.Sprintf(`Create a JSON analysis for this mock interview.

Skill: %s
Score: %d/%d
Incorrect questions: %s

Return JSON only with keys:
{
  "accuracy": number,
  "strengths": [string],
  "weaknesses": [string],
  "recommendations": [string],
  "readinessScore": number
}
Make weaknesses specific and actionable. Keep recommendations to 3 short items.
`, session.Skill, session.Score, session.TotalQuestions, incorrectJSON)

	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis dto.AnalysisResult
	if err := extractJSON(raw, &analysis); err != nil {
		log.Warn().Str("sessionID", session.ID.String()).Msg("Failed to parse analysis from model output")
		return nil, err
	}
	return &analysis, nil
}
