// Package roadmap builds the phased 30/60/90-day learning plans from missing
// skills. Plans are deterministic: identical inputs always produce identical
// plans, and within a plan earlier phases hold higher-priority, lower-effort
// skills.
package roadmap

import (
	"fmt"
	"sort"

	"github.com/careeriq/engine/internal/analyze"
	"github.com/careeriq/engine/internal/vocab"
)

// Phase is one time-boxed bucket of a learning plan.
type Phase struct {
	Label     string   `json:"label"`
	Focus     string   `json:"focus"`
	Skills    []string `json:"skills"`
	Tasks     []string `json:"tasks"`
	Milestone string   `json:"milestone"`
}

// Plan is a complete learning plan for one horizon.
type Plan struct {
	Duration        string   `json:"duration"`
	Phases          []Phase  `json:"phases"`
	TotalProjects   int      `json:"total_projects"`
	FocusAreas      []string `json:"focus_areas"`
	SuccessCriteria string   `json:"success_criteria"`
}

// Roadmap bundles the three plan horizons.
type Roadmap struct {
	TargetRole string `json:"target_role"`
	Plan30     Plan   `json:"30_day"`
	Plan60     Plan   `json:"60_day"`
	Plan90     Plan   `json:"90_day"`
}

// phaseTemplate fixes the narrative frame for each phase of a horizon.
type phaseTemplate struct {
	label     string
	focus     string
	tasks     []string
	milestone string
}

var phases30 = []phaseTemplate{
	{
		label: "Week 1", focus: "Foundation Building",
		tasks:     []string{"Learn the basics of this phase's skills", "Complete an online course or tutorial", "Practice with small exercises"},
		milestone: "Understand the fundamentals",
	},
	{
		label: "Week 2", focus: "Hands-on Practice",
		tasks:     []string{"Build small practice projects", "Solve coding problems related to the skills", "Review and reinforce concepts"},
		milestone: "Complete first project",
	},
	{
		label: "Week 3", focus: "Advanced Learning",
		tasks:     []string{"Learn advanced concepts", "Study best practices", "Review industry standards"},
		milestone: "Gain deeper understanding",
	},
	{
		label: "Week 4", focus: "Integration & Portfolio",
		tasks:     []string{"Build a portfolio project", "Add projects to GitHub", "Update resume with new skills"},
		milestone: "Complete portfolio project and update resume",
	},
}

var phases60 = []phaseTemplate{
	{
		label: "Weeks 1-2", focus: "Core Fundamentals",
		tasks:     []string{"Complete comprehensive courses", "Practice daily coding problems", "Build understanding of core concepts"},
		milestone: "Strong foundation in core skills",
	},
	{
		label: "Weeks 3-4", focus: "Practical Application",
		tasks:     []string{"Build real-world projects", "Implement best practices", "Get code reviews"},
		milestone: "Portfolio with 3+ projects",
	},
	{
		label: "Weeks 5-6", focus: "Advanced Topics & Specialization",
		tasks:     []string{"Learn advanced concepts", "Study system design", "Prepare for interviews"},
		milestone: "Ready for technical interviews",
	},
	{
		label: "Weeks 7-8", focus: "Mastery & Portfolio Building",
		tasks:     []string{"Refine portfolio projects", "Write technical blog posts", "Contribute to open source", "Update resume comprehensively"},
		milestone: "Strong portfolio ready for job applications",
	},
}

var phases90 = []phaseTemplate{
	{
		label: "Days 1-30", focus: "Build Strong Foundation",
		tasks:     []string{"Complete comprehensive courses", "Daily coding practice", "Build foundational projects"},
		milestone: "Strong foundation established",
	},
	{
		label: "Days 31-60", focus: "Real-World Application",
		tasks:     []string{"Build complex projects", "Implement best practices", "Get mentorship and feedback"},
		milestone: "Portfolio with 7+ projects",
	},
	{
		label: "Days 61-90", focus: "Mastery & Specialization",
		tasks:     []string{"Advanced projects", "Open source contributions", "Technical writing", "Interview preparation", "Resume optimization"},
		milestone: "Job-ready with strong portfolio",
	},
}

// horizon fixes the shape and ambition of one plan.
type horizon struct {
	duration        string
	templates       []phaseTemplate
	maxSkills       int
	totalProjects   int
	successCriteria string
}

var (
	horizon30 = horizon{"30 days", phases30, 4, 2, "Complete 2 projects and add skills to resume"}
	horizon60 = horizon{"60 days", phases60, 8, 5, "Complete 5+ projects, strong portfolio, interview-ready"}
	horizon90 = horizon{"90 days", phases90, 12, 10, "Complete 10+ projects, strong portfolio, interview-ready, job applications ready"}
)

// Builder constructs roadmaps using vocabulary effort estimates.
type Builder struct {
	vocab *vocab.Vocabulary
}

// NewBuilder returns a Builder backed by the given vocabulary.
func NewBuilder(v *vocab.Vocabulary) *Builder {
	return &Builder{vocab: v}
}

// Build assembles the 30/60/90-day roadmap for the missing skills. Skill
// selection is priority-first against the target role's expectation tables;
// the selected skills are then packed into phases in ascending effort order,
// so earlier phases always carry the cheaper skills.
func (b *Builder) Build(missingSkills []string, targetRole string) Roadmap {
	ranked := b.rank(missingSkills, targetRole)

	return Roadmap{
		TargetRole: targetRole,
		Plan30:     b.plan(ranked, horizon30),
		Plan60:     b.plan(ranked, horizon60),
		Plan90:     b.plan(ranked, horizon90),
	}
}

// rankedSkill carries the sort keys for one missing skill.
type rankedSkill struct {
	name     string
	priority int // 0 high, 1 medium, 2 low or unknown
	effort   int
	index    int // original position, the final tiebreak
}

func (b *Builder) rank(missingSkills []string, targetRole string) []rankedSkill {
	reqs := analyze.RequirementsFor(targetRole)
	tier := make(map[string]int)
	for i, priority := range []string{"high", "medium", "low"} {
		for _, s := range reqs.Fundamentals[priority] {
			tier[s] = i
		}
		for _, s := range reqs.Skills[priority] {
			if _, ok := tier[s]; !ok {
				tier[s] = i
			}
		}
	}

	ranked := make([]rankedSkill, 0, len(missingSkills))
	seen := make(map[string]struct{}, len(missingSkills))
	for i, skill := range missingSkills {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		priority, ok := tier[skill]
		if !ok {
			priority = 2
		}
		ranked = append(ranked, rankedSkill{
			name:     skill,
			priority: priority,
			effort:   b.vocab.EffortWeeks(skill),
			index:    i,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority < ranked[j].priority
		}
		return ranked[i].index < ranked[j].index
	})
	return ranked
}

func (b *Builder) plan(ranked []rankedSkill, h horizon) Plan {
	selected := ranked[:min(h.maxSkills, len(ranked))]

	// Phase packing is by ascending effort, contiguously, which keeps the
	// average effort per phase non-decreasing.
	byEffort := make([]rankedSkill, len(selected))
	copy(byEffort, selected)
	sort.SliceStable(byEffort, func(i, j int) bool {
		return byEffort[i].effort < byEffort[j].effort
	})

	plan := Plan{
		Duration:        h.duration,
		Phases:          make([]Phase, 0, len(h.templates)),
		TotalProjects:   h.totalProjects,
		FocusAreas:      []string{},
		SuccessCriteria: h.successCriteria,
	}
	for _, s := range selected {
		if s.priority == 0 {
			plan.FocusAreas = append(plan.FocusAreas, s.name)
		}
	}
	if len(plan.FocusAreas) == 0 {
		for _, s := range selected {
			plan.FocusAreas = append(plan.FocusAreas, s.name)
		}
	}

	buckets := chunk(byEffort, len(h.templates))
	for i, template := range h.templates {
		phase := Phase{
			Label:     template.label,
			Focus:     template.focus,
			Skills:    []string{},
			Tasks:     template.tasks,
			Milestone: template.milestone,
		}
		if i < len(buckets) {
			for _, s := range buckets[i] {
				phase.Skills = append(phase.Skills, s.name)
			}
		}
		if len(phase.Skills) > 0 {
			phase.Milestone = fmt.Sprintf("%s: %s", template.milestone, phase.Skills[0])
		}
		plan.Phases = append(plan.Phases, phase)
	}
	return plan
}

// chunk splits an ordered slice into up to n contiguous, near-equal buckets,
// earlier buckets receiving the remainder.
func chunk(skills []rankedSkill, n int) [][]rankedSkill {
	if len(skills) == 0 || n <= 0 {
		return nil
	}
	if n > len(skills) {
		n = len(skills)
	}
	size := len(skills) / n
	rem := len(skills) % n

	buckets := make([][]rankedSkill, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		buckets = append(buckets, skills[start:end])
		start = end
	}
	return buckets
}
