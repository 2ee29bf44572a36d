package service

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/garimatiwari2004/jobeefie-backend/internal/dto"
)

// skillKeywords is the fixed vocabulary matched case-insensitively against
// resume and job-description text.
var skillKeywords = []string{
	"javascript", "java", "python", "c++", "c", "c#", "typescript",
	"react", "redux", "angular", "vue", "node", "express",
	"mongodb", "mysql", "postgresql", "sqlite",
	"aws", "azure", "gcp", "cloud",
	"docker", "kubernetes", "git", "github", "jira",
	"tensorflow", "pytorch", "machine learning", "deep learning",
	"html", "css", "bootstrap", "tailwind",
	"django", "flask", "fastapi",
	"firebase", "graphql",
	"linux", "bash",
}

// skillStopwords drops section headers, month names, place names and generic
// verbs that survive the capitalized-token pass.
var skillStopwords = map[string]bool{
	"achieved": true, "achievements": true, "solved": true, "engineered": true,
	"designed": true, "bacheloroftechnologyincomputerscience": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true, "jun": true,
	"july": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
	"bhopal": true, "madhyapradesh": true, "datia": true, "india": true, "link": true,
	"technicalskills": true, "project": true, "experience": true, "education": true,
}

var (
	spaceDashRunRe   = regexp.MustCompile(`[\s-]+`)
	nonASCIIRe       = regexp.MustCompile(`[^\x00-\x7F]`)
	blankLineRunRe   = regexp.MustCompile(`\n\s*\n`)
	whitespaceRunRe  = regexp.MustCompile(`\s+`)
	emailRe          = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe          = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{9}`)
	camelBoundaryRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	capitalizedRe    = regexp.MustCompile(`[A-Z][a-z]+`)
	tokenSplitRe     = regexp.MustCompile(`[\s,()]+`)
	capitalTokenRe   = regexp.MustCompile(`^[A-Z][a-zA-Z0-9.+-]*$`)
	lettersSymbolsRe = regexp.MustCompile(`^[a-zA-Z.+-]+$`)
)

// ResumeAnalyzerService turns extracted resume text (plus an optional job
// description) into contact fields, a skill list and a rubric score.
type ResumeAnalyzerService interface {
	Analyze(text, jdText string) *dto.ResumeAnalysisResponse
}

type resumeAnalyzerService struct{}

func NewResumeAnalyzerService() ResumeAnalyzerService {
	return &resumeAnalyzerService{}
}

func (s *resumeAnalyzerService) Analyze(text, jdText string) *dto.ResumeAnalysisResponse {
	cleaned := cleanText(text)

	name := extractName(cleaned)
	email := extractEmail(cleaned)
	phone := extractPhone(cleaned)
	skills := extractSkills(cleaned)

	jdSkills := extractJDKeywords(jdText)
	jdMatch := scoreJDMatch(skills, jdSkills)
	missing := missingJDKeywords(skills, jdSkills)

	total := scoreContact(name, email, phone) +
		scoreSkills(skills) +
		scoreExperience(cleaned) +
		scoreProjects(cleaned) +
		scoreEducation(cleaned) +
		scoreAchievements(cleaned) +
		jdMatch

	normalized := int(math.Round(float64(total) / 130.0 * 100.0))

	return &dto.ResumeAnalysisResponse{
		Message:         "Resume analyzed successfully!",
		Name:            name,
		Email:           email,
		Phone:           phone,
		Skills:          skills,
		JDSkills:        jdSkills,
		MissingSkills:   missing,
		JDMatchScore:    jdMatch,
		NormalizedScore: normalized,
		Text:            cleaned,
	}
}

// cleanText collapses whitespace/dash runs, strips non-ASCII bytes and
// collapses blank-line runs.
func cleanText(text string) string {
	text = spaceDashRunRe.ReplaceAllString(text, " ")
	text = nonASCIIRe.ReplaceAllString(text, "")
	text = blankLineRunRe.ReplaceAllString(text, "\n")
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func extractEmail(text string) *string {
	if match := emailRe.FindString(text); match != "" {
		return &match
	}
	return nil
}

func extractPhone(text string) *string {
	if match := phoneRe.FindString(text); match != "" {
		return &match
	}
	return nil
}

// extractName takes the first line, splits camel-case boundaries and returns
// the first two capitalized words. Known-weak heuristic; fails on many real
// resumes.
func extractName(text string) *string {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	spaced := camelBoundaryRe.ReplaceAllString(firstLine, "$1 $2")

	matches := capitalizedRe.FindAllString(spaced, -1)
	if len(matches) >= 2 {
		name := matches[0] + " " + matches[1]
		return &name
	}
	return nil
}

// extractCapitalizedWords splits on whitespace/comma/paren and keeps tokens
// starting with a capital letter.
func extractCapitalizedWords(text string) []string {
	var out []string
	for _, w := range tokenSplitRe.Split(text, -1) {
		if capitalTokenRe.MatchString(w) {
			out = append(out, w)
		}
	}
	return out
}

// extractSkills unions vocabulary hits with capitalized-token candidates, then
// filters. Filter order matters: the trailing ".js" strip happens after the
// length and stopword filters, so "Collaborated.js"-style blobs never survive
// and a >12-char token keeps its ".js" while being dropped.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)

	var filtered []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, skill) {
			filtered = append(filtered, skill)
		}
	}
	filtered = append(filtered, extractCapitalizedWords(text)...)

	var kept []string
	for _, w := range filtered {
		if len(w) > 12 {
			continue
		}
		if !lettersSymbolsRe.MatchString(w) {
			continue
		}
		if skillStopwords[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, strings.Replace(strings.ToLower(w), ".js", "", 1))
	}

	return finalizeSkills(kept)
}

// finalizeSkills dedupes and sorts; applying it twice yields the same result.
func finalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func scoreContact(name, email, phone *string) int {
	score := 0
	if name != nil {
		score += 4
	}
	if email != nil {
		score += 3
	}
	if phone != nil {
		score += 3
	}
	return score
}

func scoreSkills(skills []string) int {
	switch {
	case len(skills) == 0:
		return 0
	case len(skills) < 5:
		return 10
	case len(skills) < 10:
		return 20
	default:
		return 30
	}
}

var experienceWords = []string{"experience", "intern", "internship", "worked", "company", "developer", "employment"}

func scoreExperience(text string) int {
	return scoreKeywordHits(text, experienceWords, 4, 20)
}

var projectWords = []string{"project", "built", "developed", "engineered", "created", "designed"}

func scoreProjects(text string) int {
	return scoreKeywordHits(text, projectWords, 4, 20)
}

var educationWords = []string{"btech", "bachelor", "college", "university", "cgpa", "gpa"}

func scoreEducation(text string) int {
	return scoreKeywordHits(text, educationWords, 2, 10)
}

var achievementWords = []string{"rank", "award", "achievement", "certification", "certificate", "scholar", "hackathon"}

func scoreAchievements(text string) int {
	return scoreKeywordHits(text, achievementWords, 2, 10)
}

func scoreKeywordHits(text string, words []string, perHit, limit int) int {
	lower := strings.ToLower(text)
	score := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			score += perHit
		}
	}
	if score > limit {
		score = limit
	}
	return score
}

func extractJDKeywords(jdText string) []string {
	lower := strings.ToLower(jdText)
	var out []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, skill) {
			out = append(out, skill)
		}
	}
	return out
}

// scoreJDMatch awards up to 30 points proportional to JD-keyword coverage.
// An empty JD vocabulary scores 0 rather than dividing by zero.
func scoreJDMatch(resumeSkills, jdSkills []string) int {
	if len(jdSkills) == 0 {
		return 0
	}
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	matches := 0
	for _, s := range jdSkills {
		if have[s] {
			matches++
		}
	}
	return int(math.Round(float64(matches) / float64(len(jdSkills)) * 30.0))
}

func missingJDKeywords(resumeSkills, jdSkills []string) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	missing := []string{}
	for _, s := range jdSkills {
		if !have[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
