package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeriq/engine/internal/vocab"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	v, err := vocab.Load()
	require.NoError(t, err)
	return NewBuilder(v)
}

func TestBuild_AllHorizonsPresent(t *testing.T) {
	b := newBuilder(t)
	r := b.Build([]string{"Docker", "Kubernetes", "AWS", "Terraform"}, "Software Engineer")

	assert.Equal(t, "Software Engineer", r.TargetRole)
	assert.Equal(t, "30 days", r.Plan30.Duration)
	assert.Equal(t, "60 days", r.Plan60.Duration)
	assert.Equal(t, "90 days", r.Plan90.Duration)

	assert.Len(t, r.Plan30.Phases, 4)
	assert.Len(t, r.Plan60.Phases, 4)
	assert.Len(t, r.Plan90.Phases, 3)

	assert.Equal(t, 2, r.Plan30.TotalProjects)
	assert.Equal(t, 5, r.Plan60.TotalProjects)
	assert.Equal(t, 10, r.Plan90.TotalProjects)
	assert.NotEmpty(t, r.Plan90.SuccessCriteria)
}

func TestBuild_Deterministic(t *testing.T) {
	b := newBuilder(t)
	missing := []string{"Python", "SQL", "Docker", "System Design", "Kubernetes"}

	first := b.Build(missing, "Backend Developer")
	second := b.Build(missing, "Backend Developer")
	assert.Equal(t, first, second)
}

func TestBuild_MonotonicEffortIn30DayPlan(t *testing.T) {
	b := newBuilder(t)
	v, err := vocab.Load()
	require.NoError(t, err)

	missing := []string{"Machine Learning", "Git", "AWS", "SQL", "Python", "Docker"}
	r := b.Build(missing, "Software Engineer")

	prev := 0.0
	for _, phase := range r.Plan30.Phases {
		if len(phase.Skills) == 0 {
			continue
		}
		total := 0
		for _, skill := range phase.Skills {
			total += v.EffortWeeks(skill)
		}
		avg := float64(total) / float64(len(phase.Skills))
		assert.GreaterOrEqual(t, avg, prev, "phase %s", phase.Label)
		prev = avg
	}
}

func TestBuild_PhaseSkillsCoverSelection(t *testing.T) {
	b := newBuilder(t)
	missing := []string{"Docker", "SQL", "Git"}
	r := b.Build(missing, "Software Engineer")

	var planned []string
	for _, phase := range r.Plan30.Phases {
		planned = append(planned, phase.Skills...)
	}
	assert.ElementsMatch(t, missing, planned)
}

func TestBuild_HighPriorityFundamentalsLeadFocusAreas(t *testing.T) {
	b := newBuilder(t)
	r := b.Build([]string{"Redis", "System Design"}, "Software Engineer")

	// System Design is a high-priority fundamental for the role.
	require.NotEmpty(t, r.Plan30.FocusAreas)
	assert.Equal(t, "System Design", r.Plan30.FocusAreas[0])
}

func TestBuild_EmptyMissingSkills(t *testing.T) {
	b := newBuilder(t)
	r := b.Build(nil, "Software Engineer")

	assert.Len(t, r.Plan30.Phases, 4)
	for _, phase := range r.Plan30.Phases {
		assert.NotNil(t, phase.Skills)
		assert.Empty(t, phase.Skills)
		assert.NotEmpty(t, phase.Tasks)
		assert.NotEmpty(t, phase.Milestone)
	}
	assert.Empty(t, r.Plan30.FocusAreas)
}

func TestBuild_DeduplicatesInput(t *testing.T) {
	b := newBuilder(t)
	r := b.Build([]string{"Docker", "Docker", "SQL"}, "Software Engineer")

	var planned []string
	for _, phase := range r.Plan30.Phases {
		planned = append(planned, phase.Skills...)
	}
	assert.ElementsMatch(t, []string{"Docker", "SQL"}, planned)
}

func TestChunk(t *testing.T) {
	skills := []rankedSkill{{name: "a"}, {name: "b"}, {name: "c"}, {name: "d"}, {name: "e"}}

	buckets := chunk(skills, 2)
	require.Len(t, buckets, 2)
	assert.Len(t, buckets[0], 3)
	assert.Len(t, buckets[1], 2)

	buckets = chunk(skills[:2], 4)
	assert.Len(t, buckets, 2)

	assert.Nil(t, chunk(nil, 3))
}
