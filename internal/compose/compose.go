package compose

import (
	"fmt"

	"github.com/careeriq/engine/internal/analyze"
	"github.com/careeriq/engine/internal/enrich"
	"github.com/careeriq/engine/internal/match"
	"github.com/careeriq/engine/internal/profile"
	"github.com/careeriq/engine/internal/roadmap"
	"github.com/careeriq/engine/internal/suggest"
)

// InvariantError reports an internally inconsistent envelope. It signals a
// bug in an upstream component and is never silently corrected.
type InvariantError struct {
	Message string
	Cause   error
}

func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("composer invariant violated: %s: %v", e.Message, e.Cause)
	}
	return "composer invariant violated: " + e.Message
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}

// Inputs collects everything the composer merges.
type Inputs struct {
	Match                match.Result
	Resume               *profile.ResumeProfile
	Bundle               analyze.Bundle
	Recommendations      suggest.Recommendations
	SkillRecommendations []suggest.SkillRecommendation
	Suggestions          suggest.Suggestions
	Roadmap              roadmap.Roadmap
	Enrichment           enrich.Result
}

// Compose builds the result envelope. The four core match fields are always
// populated with non-nil values; degraded enrichment sections are omitted
// entirely rather than included with placeholder text.
func Compose(in Inputs) (Envelope, error) {
	if err := in.Match.Validate(); err != nil {
		return Envelope{}, &InvariantError{Message: "match result inconsistent", Cause: err}
	}

	env := Envelope{
		MatchScore:        in.Match.Score,
		MatchedSkills:     nonNil(in.Match.Matched),
		MissingSkills:     nonNil(in.Match.Missing),
		ExtraSkills:       nonNil(in.Match.Extra),
		MatchedSkillCount: len(in.Match.Matched),

		ResumeData: in.Resume,

		Recommendations:      in.Recommendations,
		SkillRecommendations: in.SkillRecommendations,
		AdvancedAnalysis: AdvancedAnalysis{
			RoleReadinessScore: in.Bundle.Readiness,
			TargetRole:         in.Bundle.TargetRole,
			ExperienceLevel:    in.Bundle.Experience,
			Strengths:          in.Bundle.Strengths,
			Weaknesses:         in.Bundle.Weaknesses,
			ResumeStructure:    in.Bundle.Structure,
		},
		SmartSuggestions: in.Suggestions,
		LearningRoadmap:  in.Roadmap,
	}
	if env.SkillRecommendations == nil {
		env.SkillRecommendations = []suggest.SkillRecommendation{}
	}

	// Suppression: only sections the adapter marked present make it into
	// the envelope.
	if in.Enrichment.Analysis.Present() {
		env.AIAnalysis = in.Enrichment.Analysis.Content
	}
	if in.Enrichment.RoleAnalysis.Present() {
		env.RoleAnalysis = in.Enrichment.RoleAnalysis.Content
	}
	if in.Enrichment.ResumeImprovement.Present() {
		env.ResumeImprovement = in.Enrichment.ResumeImprovement.Content
	}
	env.AIEnabled = in.Enrichment.AnyPresent()

	return env, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
