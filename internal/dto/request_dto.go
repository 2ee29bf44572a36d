package dto

type OnboardingRequest struct {
	ClerkID  string   `json:"clerkId"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Skills   []string `json:"skills"`
	City     string   `json:"city"`
	Industry string   `json:"industry"`
}

type StartInterviewRequest struct {
	ClerkID        string `json:"clerkId"`
	Skill          string `json:"skill"`
	TotalQuestions int    `json:"totalQuestions"`
}

type AnswerRequest struct {
	SessionID      string `json:"sessionId"`
	QID            string `json:"qId"`
	SelectedOption string `json:"selectedOption"`
}

type FinishRequest struct {
	SessionID string `json:"sessionId"`
}
