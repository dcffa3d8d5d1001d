// Package analyze derives the deeper, rule-based assessment of a resume
// against a target role: experience level, structural quality, strengths and
// weaknesses, and an overall role readiness score.
//
// Everything here is deterministic. The same resume and job inputs always
// produce the same assessment, independent of wall-clock time.
package analyze

import (
	"regexp"
	"strconv"
	"strings"
)

// Experience levels, ordered.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// ExperienceLevel classifies a candidate's seniority.
type ExperienceLevel struct {
	Level       string `json:"level"`
	Years       int    `json:"years_experience"`
	Description string `json:"description"`
}

// StructureQuality scores the resume's section coverage.
type StructureQuality struct {
	Score           int             `json:"score"`
	Quality         string          `json:"quality"`
	SectionsPresent map[string]bool `json:"sections_present"`
	Issues          []string        `json:"issues"`
}

// Fundamental is one role expectation found in the resume.
type Fundamental struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
}

// MissingFundamental is one role expectation absent from the resume.
type MissingFundamental struct {
	Skill        string `json:"skill"`
	Priority     string `json:"priority"`
	Importance   string `json:"importance"`
	WhyImportant string `json:"why_important"`
}

// Strengths groups what the resume demonstrates for the target role.
type Strengths struct {
	Fundamentals    []Fundamental `json:"fundamentals"`
	TechnicalSkills []Fundamental `json:"technical_skills"`
}

// Weaknesses groups what the resume lacks for the target role.
type Weaknesses struct {
	MissingFundamentals []MissingFundamental `json:"missing_fundamentals"`
	ImprovementAreas    []string             `json:"improvement_areas"`
}

// Readiness is the overall role readiness verdict.
type Readiness struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// Bundle is the complete rule-based assessment for one analysis request.
type Bundle struct {
	TargetRole string
	Experience ExperienceLevel
	Structure  StructureQuality
	Strengths  Strengths
	Weaknesses Weaknesses
	Readiness  Readiness
}

// ReadinessWeights parameterizes the readiness score. Zero values mean the
// corresponding term contributes nothing, so callers tuning the formula
// should start from DefaultReadinessWeights.
type ReadinessWeights struct {
	Base             int
	FundamentalBonus int
	FundamentalCap   int
	SkillBonus       int
	SkillCap         int
	HighPenalty      int
	MediumPenalty    int
}

// DefaultReadinessWeights returns the standard scoring weights: start at 50,
// add up to 25 for demonstrated fundamentals and up to 15 for technical
// skills, subtract 10 per missing high-priority fundamental and 5 per
// missing medium-priority one, clamped to [0,100].
func DefaultReadinessWeights() ReadinessWeights {
	return ReadinessWeights{
		Base:             50,
		FundamentalBonus: 5,
		FundamentalCap:   25,
		SkillBonus:       3,
		SkillCap:         15,
		HighPenalty:      10,
		MediumPenalty:    5,
	}
}

// Analyzer performs the rule-based assessment.
type Analyzer struct {
	weights ReadinessWeights
}

// New returns an Analyzer using the default readiness weights.
func New() *Analyzer {
	return &Analyzer{weights: DefaultReadinessWeights()}
}

// NewWithWeights returns an Analyzer with custom readiness weights.
func NewWithWeights(w ReadinessWeights) *Analyzer {
	return &Analyzer{weights: w}
}

// Analyze assesses a resume against the role implied by the job description.
// roleHint, when non-empty, overrides role detection.
func (a *Analyzer) Analyze(resumeText, jobText, roleHint string) Bundle {
	role := DetectRole(jobText, roleHint)
	reqs := RequirementsFor(role)
	resumeLower := strings.ToLower(resumeText)

	strengths := findStrengths(resumeLower, reqs)
	weaknesses := findWeaknesses(resumeText, resumeLower, role, reqs)

	return Bundle{
		TargetRole: role,
		Experience: AssessExperience(resumeText),
		Structure:  AssessStructure(resumeText),
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Readiness:  a.scoreReadiness(strengths, weaknesses),
	}
}

var (
	durationSpanRe = regexp.MustCompile(`(?i)\b(\d{4})\s*[-\x{2013}]\s*(\d{4}|present|current|now)\b`)
	yearRe         = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	statedYearsRe  = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?|yr)\b`)
)

// AssessExperience estimates years of experience and the resulting level.
//
// Years come from employment date spans when the resume has any; an open
// "Present" end resolves to the latest year mentioned anywhere in the text,
// keeping the result stable over time. Resumes without date spans fall back
// to the largest stated "N years" figure.
func AssessExperience(resumeText string) ExperienceLevel {
	years := yearsFromSpans(resumeText)
	if years == 0 {
		years = yearsFromStatements(resumeText)
	}

	level := ExperienceLevel{Years: years}
	switch {
	case years <= 2:
		level.Level = LevelEntry
		level.Description = "Entry-level candidate building professional experience"
	case years <= 5:
		level.Level = LevelMid
		level.Description = "Mid-level professional with 3-5 years of experience"
	default:
		level.Level = LevelSenior
		level.Description = "Experienced professional with over 5 years of expertise"
	}
	return level
}

func yearsFromSpans(text string) int {
	spans := durationSpanRe.FindAllStringSubmatch(text, -1)
	if len(spans) == 0 {
		return 0
	}

	latest := 0
	for _, y := range yearRe.FindAllString(text, -1) {
		if n, err := strconv.Atoi(y); err == nil && n > latest {
			latest = n
		}
	}

	total := 0
	for _, span := range spans {
		start, err := strconv.Atoi(span[1])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(span[2])
		if err != nil {
			end = latest
		}
		if end >= start {
			total += end - start
		}
	}
	return total
}

func yearsFromStatements(text string) int {
	most := 0
	for _, m := range statedYearsRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > most {
			most = n
		}
	}
	return most
}

// Section detection for structure scoring. Each present section is worth 20
// points.
var structureSections = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"summary", regexp.MustCompile(`(?i)(summary|objective|profile)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|work history|employment)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic|qualification)`)},
	{"skills", regexp.MustCompile(`(?i)(skills?|technical skills?|competencies)`)},
	{"projects", regexp.MustCompile(`(?i)(projects?|portfolio)`)},
}

const pointsPerSection = 20

// AssessStructure scores the resume's structural completeness out of 100.
func AssessStructure(resumeText string) StructureQuality {
	sq := StructureQuality{
		SectionsPresent: make(map[string]bool, len(structureSections)),
		Issues:          []string{},
	}

	for _, section := range structureSections {
		present := section.pattern.MatchString(resumeText)
		sq.SectionsPresent[section.name] = present
		if present {
			sq.Score += pointsPerSection
		}
	}

	if !sq.SectionsPresent["summary"] {
		sq.Issues = append(sq.Issues, "Missing summary/objective section")
	}
	if !sq.SectionsPresent["skills"] {
		sq.Issues = append(sq.Issues, "Missing dedicated skills section")
	}
	if !sq.SectionsPresent["projects"] {
		sq.Issues = append(sq.Issues, "No projects section found")
	}

	switch {
	case sq.Score >= 80:
		sq.Quality = "Excellent"
	case sq.Score >= 60:
		sq.Quality = "Good"
	default:
		sq.Quality = "Needs Improvement"
	}
	return sq
}

func findStrengths(resumeLower string, reqs RoleRequirements) Strengths {
	s := Strengths{
		Fundamentals:    []Fundamental{},
		TechnicalSkills: []Fundamental{},
	}
	for _, priority := range priorityOrder {
		for _, skill := range reqs.Fundamentals[priority] {
			if strings.Contains(resumeLower, strings.ToLower(skill)) {
				s.Fundamentals = append(s.Fundamentals, Fundamental{Skill: skill, Priority: priority})
			}
		}
	}
	for _, priority := range priorityOrder {
		for _, skill := range reqs.Skills[priority] {
			if strings.Contains(resumeLower, strings.ToLower(skill)) {
				s.TechnicalSkills = append(s.TechnicalSkills, Fundamental{Skill: skill, Priority: priority})
			}
		}
	}
	return s
}

var (
	quantifiedRe = regexp.MustCompile(`(?i)\d+%|\d+\s*(?:users|projects)`)
	portfolioRe  = regexp.MustCompile(`(?i)(github|git|portfolio)`)
)

const minResumeWords = 200

func findWeaknesses(resumeText, resumeLower, role string, reqs RoleRequirements) Weaknesses {
	w := Weaknesses{
		MissingFundamentals: []MissingFundamental{},
		ImprovementAreas:    []string{},
	}

	importance := map[string]string{
		"high":   "Critical",
		"medium": "Important",
		"low":    "Nice to have",
	}
	for _, priority := range priorityOrder {
		for _, skill := range reqs.Fundamentals[priority] {
			if !strings.Contains(resumeLower, strings.ToLower(skill)) {
				w.MissingFundamentals = append(w.MissingFundamentals, MissingFundamental{
					Skill:        skill,
					Priority:     priority,
					Importance:   importance[priority],
					WhyImportant: WhyImportant(skill, role),
				})
			}
		}
	}

	if !quantifiedRe.MatchString(resumeLower) {
		w.ImprovementAreas = append(w.ImprovementAreas, "Add quantified achievements (metrics, numbers)")
	}
	if len(strings.Fields(resumeText)) < minResumeWords {
		w.ImprovementAreas = append(w.ImprovementAreas, "Resume is too short - add more detail")
	}
	if !portfolioRe.MatchString(resumeLower) {
		w.ImprovementAreas = append(w.ImprovementAreas, "Add links to GitHub or portfolio")
	}

	return w
}

func (a *Analyzer) scoreReadiness(s Strengths, w Weaknesses) Readiness {
	weights := a.weights

	fundamentalBonus := min(len(s.Fundamentals)*weights.FundamentalBonus, weights.FundamentalCap)
	skillBonus := min(len(s.TechnicalSkills)*weights.SkillBonus, weights.SkillCap)

	penalty := 0
	for _, missing := range w.MissingFundamentals {
		switch missing.Priority {
		case "high":
			penalty += weights.HighPenalty
		case "medium":
			penalty += weights.MediumPenalty
		}
	}

	score := weights.Base + fundamentalBonus + skillBonus - penalty
	score = max(0, min(100, score))

	return Readiness{Score: score, Level: readinessLevel(score)}
}

func readinessLevel(score int) string {
	switch {
	case score >= 80:
		return "Highly Ready"
	case score >= 60:
		return "Ready with Minor Gaps"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Significant Gaps"
	}
}
