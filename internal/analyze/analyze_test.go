package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRole_Patterns(t *testing.T) {
	cases := map[string]string{
		"We need a backend developer for our REST API.": "Backend Developer",
		"React engineer wanted":                         "Frontend Developer",
		"Data science team is hiring":                   "Data Scientist",
		"MLOps and model deployment experience":         "ML Engineer",
		"SWE position, generalist":                      "Software Engineer",
		"Looking for a plumber":                         "Software Engineer",
	}
	for jobText, want := range cases {
		assert.Equal(t, want, DetectRole(jobText, ""), "job %q", jobText)
	}
}

func TestDetectRole_HintOverridesDetection(t *testing.T) {
	role := DetectRole("We need a backend developer.", "Data Scientist")
	assert.Equal(t, "Data Scientist", role)
}

func TestRequirementsFor_FallbackToDefault(t *testing.T) {
	reqs := RequirementsFor("Underwater Welder")
	assert.Equal(t, roleRequirements[DefaultRole], reqs)
}

func TestAssessExperience_FromDateSpans(t *testing.T) {
	text := `EXPERIENCE
Software Engineer 2018 - 2021
Senior Engineer 2021 - 2024`

	exp := AssessExperience(text)
	assert.Equal(t, 6, exp.Years)
	assert.Equal(t, LevelSenior, exp.Level)
}

func TestAssessExperience_PresentResolvesToLatestYear(t *testing.T) {
	text := `Software Engineer 2020 - Present
Published paper in 2023.`

	exp := AssessExperience(text)
	assert.Equal(t, 3, exp.Years)
	assert.Equal(t, LevelMid, exp.Level)

	// Deterministic: same text, same answer.
	assert.Equal(t, exp, AssessExperience(text))
}

func TestAssessExperience_StatedYearsFallback(t *testing.T) {
	exp := AssessExperience("Over 7 years of software development experience.")
	assert.Equal(t, 7, exp.Years)
	assert.Equal(t, LevelSenior, exp.Level)
}

func TestAssessExperience_NoSignalIsEntry(t *testing.T) {
	exp := AssessExperience("Recent graduate with strong fundamentals.")
	assert.Equal(t, 0, exp.Years)
	assert.Equal(t, LevelEntry, exp.Level)
}

func TestAssessExperience_Boundaries(t *testing.T) {
	assert.Equal(t, LevelEntry, AssessExperience("2 years of experience").Level)
	assert.Equal(t, LevelMid, AssessExperience("3 years of experience").Level)
	assert.Equal(t, LevelMid, AssessExperience("5 years of experience").Level)
	assert.Equal(t, LevelSenior, AssessExperience("6 years of experience").Level)
}

func TestAssessStructure_AllSections(t *testing.T) {
	text := `SUMMARY
EXPERIENCE
EDUCATION
SKILLS
PROJECTS`

	sq := AssessStructure(text)
	assert.Equal(t, 100, sq.Score)
	assert.Equal(t, "Excellent", sq.Quality)
	assert.Empty(t, sq.Issues)
}

func TestAssessStructure_PartialSections(t *testing.T) {
	sq := AssessStructure("EXPERIENCE\nEDUCATION\nSKILLS")
	assert.Equal(t, 60, sq.Score)
	assert.Equal(t, "Good", sq.Quality)
	assert.Contains(t, sq.Issues, "Missing summary/objective section")
	assert.Contains(t, sq.Issues, "No projects section found")
}

func TestAssessStructure_Bare(t *testing.T) {
	sq := AssessStructure("just some text")
	assert.Equal(t, 0, sq.Score)
	assert.Equal(t, "Needs Improvement", sq.Quality)
	assert.Len(t, sq.Issues, 3)
}

func TestAnalyze_StrongBackendResume(t *testing.T) {
	resume := `SUMMARY
Backend engineer focused on API design and database systems.
EXPERIENCE
Software Engineer 2019 - 2024
Designed microservices with caching and message queues.
Built authentication and authorization for the public API.
System architecture and security reviews. Monitoring and logging.
API development against REST/GraphQL backends. Database optimization work.
Backend frameworks experience with testing and performance tuning.
github.com/example - improved throughput by 40% for 10000 users
SKILLS
Python, PostgreSQL
PROJECTS
DevOps basics lab with documentation`

	a := New()
	bundle := a.Analyze(resume, "Hiring a backend developer", "")

	assert.Equal(t, "Backend Developer", bundle.TargetRole)
	assert.Equal(t, LevelMid, bundle.Experience.Level)
	assert.NotEmpty(t, bundle.Strengths.Fundamentals)
	assert.NotEmpty(t, bundle.Strengths.TechnicalSkills)
	assert.GreaterOrEqual(t, bundle.Readiness.Score, 60)
	assert.Contains(t, []string{"Highly Ready", "Ready with Minor Gaps"}, bundle.Readiness.Level)
}

func TestAnalyze_WeakResumeHasGaps(t *testing.T) {
	a := New()
	bundle := a.Analyze("I like computers.", "Software engineer role", "")

	assert.Equal(t, "Software Engineer", bundle.TargetRole)
	assert.NotEmpty(t, bundle.Weaknesses.MissingFundamentals)
	assert.LessOrEqual(t, bundle.Readiness.Score, 40)
	assert.Contains(t, []string{"Needs Improvement", "Significant Gaps"}, bundle.Readiness.Level)

	var high *MissingFundamental
	for i := range bundle.Weaknesses.MissingFundamentals {
		if bundle.Weaknesses.MissingFundamentals[i].Priority == "high" {
			high = &bundle.Weaknesses.MissingFundamentals[i]
			break
		}
	}
	require.NotNil(t, high)
	assert.Equal(t, "Critical", high.Importance)
	assert.NotEmpty(t, high.WhyImportant)
}

func TestAnalyze_ImprovementAreas(t *testing.T) {
	a := New()
	bundle := a.Analyze("short resume", "swe", "")

	assert.Contains(t, bundle.Weaknesses.ImprovementAreas, "Add quantified achievements (metrics, numbers)")
	assert.Contains(t, bundle.Weaknesses.ImprovementAreas, "Resume is too short - add more detail")
	assert.Contains(t, bundle.Weaknesses.ImprovementAreas, "Add links to GitHub or portfolio")

	long := strings.Repeat("word ", 250) + "github.com/me improved latency by 30%"
	bundle = a.Analyze(long, "swe", "")
	assert.Empty(t, bundle.Weaknesses.ImprovementAreas)
}

func TestScoreReadiness_Clamping(t *testing.T) {
	a := New()

	// Many missing high-priority fundamentals drive the score to the floor.
	w := Weaknesses{MissingFundamentals: make([]MissingFundamental, 0, 10)}
	for i := 0; i < 10; i++ {
		w.MissingFundamentals = append(w.MissingFundamentals, MissingFundamental{Priority: "high"})
	}
	r := a.scoreReadiness(Strengths{}, w)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, "Significant Gaps", r.Level)

	// Bonuses are capped at 25 and 15, so the ceiling is 90 with no gaps.
	s := Strengths{
		Fundamentals:    make([]Fundamental, 10),
		TechnicalSkills: make([]Fundamental, 10),
	}
	r = a.scoreReadiness(s, Weaknesses{})
	assert.Equal(t, 90, r.Score)
	assert.Equal(t, "Highly Ready", r.Level)
}

func TestReadinessLevel_Bands(t *testing.T) {
	assert.Equal(t, "Highly Ready", readinessLevel(80))
	assert.Equal(t, "Ready with Minor Gaps", readinessLevel(60))
	assert.Equal(t, "Needs Improvement", readinessLevel(40))
	assert.Equal(t, "Significant Gaps", readinessLevel(39))
}

func TestKnownRoles(t *testing.T) {
	roles := KnownRoles()
	assert.Len(t, roles, 5)
	assert.Contains(t, roles, "Backend Developer")
}
