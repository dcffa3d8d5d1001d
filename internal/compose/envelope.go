// Package compose merges all analysis artifacts into the single result
// envelope consumed by the presentation layer. The composer owns the
// degraded-enrichment suppression policy: a consumer never sees placeholder
// narrative content and never needs to detect it.
package compose

import (
	"github.com/careeriq/engine/internal/analyze"
	"github.com/careeriq/engine/internal/profile"
	"github.com/careeriq/engine/internal/roadmap"
	"github.com/careeriq/engine/internal/suggest"
)

// Envelope is the complete analysis result. match_score, matched_skills,
// missing_skills and extra_skills are always present, even for empty inputs.
type Envelope struct {
	MatchScore        int      `json:"match_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	ExtraSkills       []string `json:"extra_skills"`
	MatchedSkillCount int      `json:"matched_skill_count"`

	ResumeData *profile.ResumeProfile `json:"resume_data,omitempty"`

	Recommendations      suggest.Recommendations       `json:"recommendations"`
	SkillRecommendations []suggest.SkillRecommendation `json:"skill_recommendations"`
	AdvancedAnalysis     AdvancedAnalysis              `json:"advanced_analysis"`
	SmartSuggestions     suggest.Suggestions           `json:"smart_suggestions"`
	LearningRoadmap      roadmap.Roadmap               `json:"learning_roadmap"`

	AIEnabled         bool           `json:"ai_enabled"`
	AIAnalysis        map[string]any `json:"ai_analysis,omitempty"`
	RoleAnalysis      map[string]any `json:"role_analysis,omitempty"`
	ResumeImprovement map[string]any `json:"resume_improvement,omitempty"`
}

// AdvancedAnalysis is the envelope view of the rule-based assessment.
type AdvancedAnalysis struct {
	RoleReadinessScore analyze.Readiness        `json:"role_readiness_score"`
	TargetRole         string                   `json:"target_role"`
	ExperienceLevel    analyze.ExperienceLevel  `json:"experience_level"`
	Strengths          analyze.Strengths        `json:"strengths"`
	Weaknesses         analyze.Weaknesses       `json:"weaknesses"`
	ResumeStructure    analyze.StructureQuality `json:"resume_structure"`
}
