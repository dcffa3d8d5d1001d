package compose

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeriq/engine/internal/enrich"
	"github.com/careeriq/engine/internal/match"
)

func baseInputs() Inputs {
	return Inputs{
		Match: match.Match(
			[]string{"Python", "SQL", "React"},
			[]string{"Python", "SQL", "Docker"},
		),
	}
}

func TestCompose_CoreFields(t *testing.T) {
	env, err := Compose(baseInputs())
	require.NoError(t, err)

	assert.Equal(t, 67, env.MatchScore)
	assert.Equal(t, []string{"Python", "SQL"}, env.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, env.MissingSkills)
	assert.Equal(t, []string{"React"}, env.ExtraSkills)
	assert.Equal(t, 2, env.MatchedSkillCount)
}

func TestCompose_EmptyInputsStillPopulateCoreFields(t *testing.T) {
	env, err := Compose(Inputs{Match: match.Match(nil, nil)})
	require.NoError(t, err)

	assert.Equal(t, 0, env.MatchScore)
	assert.NotNil(t, env.MatchedSkills)
	assert.NotNil(t, env.MissingSkills)
	assert.NotNil(t, env.ExtraSkills)
	assert.NotNil(t, env.SkillRecommendations)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"matched_skills":[]`)
	assert.Contains(t, string(data), `"missing_skills":[]`)
	assert.Contains(t, string(data), `"extra_skills":[]`)
}

func TestCompose_InvariantViolationFailsLoudly(t *testing.T) {
	in := baseInputs()
	in.Match.Missing = append(in.Match.Missing, in.Match.Matched[0])

	_, err := Compose(in)
	require.Error(t, err)

	var ie *InvariantError
	require.True(t, errors.As(err, &ie))
	var me *match.InvariantError
	assert.True(t, errors.As(err, &me))
}

func TestCompose_DegradedEnrichmentSuppressed(t *testing.T) {
	in := baseInputs()
	in.Enrichment = enrich.Result{
		Analysis:          enrich.Section{Degraded: true, Reason: "timeout"},
		RoleAnalysis:      enrich.Section{Degraded: true, Reason: "timeout"},
		ResumeImprovement: enrich.Section{Degraded: true, Reason: "timeout"},
	}

	env, err := Compose(in)
	require.NoError(t, err)

	assert.False(t, env.AIEnabled)
	assert.Nil(t, env.AIAnalysis)
	assert.Nil(t, env.RoleAnalysis)
	assert.Nil(t, env.ResumeImprovement)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ai_analysis")
	assert.NotContains(t, string(data), "role_analysis")
	assert.NotContains(t, string(data), "resume_improvement")
}

func TestCompose_PartialEnrichment(t *testing.T) {
	in := baseInputs()
	in.Enrichment = enrich.Result{
		Analysis:          enrich.Section{Content: map[string]any{"role_fit": 7}},
		RoleAnalysis:      enrich.Section{Degraded: true, Reason: "placeholder content detected"},
		ResumeImprovement: enrich.Section{Content: map[string]any{"priority_fix": "add metrics"}},
	}

	env, err := Compose(in)
	require.NoError(t, err)

	assert.True(t, env.AIEnabled)
	assert.NotNil(t, env.AIAnalysis)
	assert.Nil(t, env.RoleAnalysis)
	assert.NotNil(t, env.ResumeImprovement)
}

func TestCompose_DegradedEnrichmentDoesNotChangeStructuralFields(t *testing.T) {
	degraded := baseInputs()
	degraded.Enrichment = enrich.Result{
		Analysis: enrich.Section{Degraded: true, Reason: "timeout"},
	}
	present := baseInputs()
	present.Enrichment = enrich.Result{
		Analysis: enrich.Section{Content: map[string]any{"role_fit": 9}},
	}

	envDegraded, err := Compose(degraded)
	require.NoError(t, err)
	envPresent, err := Compose(present)
	require.NoError(t, err)

	assert.Equal(t, envPresent.MatchScore, envDegraded.MatchScore)
	assert.Equal(t, envPresent.MatchedSkills, envDegraded.MatchedSkills)
	assert.Equal(t, envPresent.MissingSkills, envDegraded.MissingSkills)
	assert.Equal(t, envPresent.ExtraSkills, envDegraded.ExtraSkills)
}

func TestCompose_EnvelopeJSONKeys(t *testing.T) {
	env, err := Compose(baseInputs())
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"match_score", "matched_skills", "missing_skills", "extra_skills",
		"matched_skill_count", "recommendations", "skill_recommendations",
		"advanced_analysis", "smart_suggestions", "learning_roadmap", "ai_enabled",
	} {
		assert.Contains(t, decoded, key)
	}

	roadmapField, ok := decoded["learning_roadmap"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, roadmapField, "target_role")
	assert.Contains(t, roadmapField, "30_day")
	assert.Contains(t, roadmapField, "60_day")
	assert.Contains(t, roadmapField, "90_day")
}
