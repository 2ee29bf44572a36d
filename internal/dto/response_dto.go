package dto

import "time"

type ErrorResponse struct {
	Message string `json:"message"`
}

type OnboardingResponse struct {
	ID           string    `json:"id"`
	ClerkID      string    `json:"clerkId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       []string  `json:"skills"`
	City         string    `json:"city"`
	Industry     string    `json:"industry"`
	HasOnboarded bool      `json:"hasOnboarded"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SanitizedQuestion is a question as shown to the client: the correct option
// and the explanation are withheld until the question is answered.
type SanitizedQuestion struct {
	QID      string            `json:"qId"`
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
}

type StartInterviewResponse struct {
	SessionID      string            `json:"sessionId"`
	Question       SanitizedQuestion `json:"question"`
	CurrentIndex   int               `json:"currentIndex"`
	TotalQuestions int               `json:"totalQuestions"`
}

type NextQuestionResponse struct {
	Question       SanitizedQuestion `json:"question"`
	CurrentIndex   int               `json:"currentIndex"`
	TotalQuestions int               `json:"totalQuestions"`
}

type AnswerResponse struct {
	Correct        bool    `json:"correct"`
	Explanation    string  `json:"explanation"`
	ImprovementTip *string `json:"improvementTip"`
}

// AnalysisResult is the structured analysis parsed out of the model's
// finish-time response.
type AnalysisResult struct {
	Accuracy        float64  `json:"accuracy"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	ReadinessScore  float64  `json:"readinessScore"`
}

type FinishInterviewResponse struct {
	ReportID string         `json:"reportId"`
	Report   AnalysisResult `json:"report"`
	Score    int            `json:"score"`
	Total    int            `json:"total"`
}

type InterviewReportResponse struct {
	ID             string    `json:"id"`
	ClerkID        string    `json:"clerkId"`
	SessionID      string    `json:"sessionId"`
	Skill          string    `json:"skill"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Accuracy       float64   `json:"accuracy"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	Tips           []string  `json:"tips"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ResumeAnalysisResponse is the full result of one resume upload.
type ResumeAnalysisResponse struct {
	Message         string   `json:"message"`
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Skills          []string `json:"skills"`
	JDSkills        []string `json:"jdSkills"`
	MissingSkills   []string `json:"missingSkills"`
	JDMatchScore    int      `json:"jdMatchScore"`
	NormalizedScore int      `json:"normalizedScore"`
	Text            string   `json:"text"`
}
