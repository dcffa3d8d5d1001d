// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careeriq/engine/internal/compose"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(label + "\n")
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

// PrintMatchSummary outputs the core match result for an analysis.
func (p *Printer) PrintMatchSummary(env *compose.Envelope) {
	if env == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d%%\n", env.MatchScore))
	sb.WriteString(fmt.Sprintf("Matched:  %d of %d required skills\n",
		env.MatchedSkillCount, env.MatchedSkillCount+len(env.MissingSkills)))
	sb.WriteString("\n")

	writeSkillList(&sb, "Matched Skills:", env.MatchedSkills)
	writeSkillList(&sb, "Missing Skills:", env.MissingSkills)

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdvancedAnalysis outputs the rule-based role assessment.
func (p *Printer) PrintAdvancedAnalysis(env *compose.Envelope) {
	if env == nil {
		return
	}
	aa := env.AdvancedAnalysis

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", aa.TargetRole))
	sb.WriteString(fmt.Sprintf("Readiness:  %d (%s)\n", aa.RoleReadinessScore.Score, aa.RoleReadinessScore.Level))
	sb.WriteString(fmt.Sprintf("Experience: %s (%d years)\n", aa.ExperienceLevel.Level, aa.ExperienceLevel.Years))
	sb.WriteString(fmt.Sprintf("Structure:  %d (%s)\n", aa.ResumeStructure.Score, aa.ResumeStructure.Quality))
	sb.WriteString("\n")

	if len(aa.Strengths.Fundamentals) > 0 {
		sb.WriteString("Fundamentals Present:\n")
		count := min(len(aa.Strengths.Fundamentals), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := aa.Strengths.Fundamentals[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", f.Skill, f.Priority))
		}
		if len(aa.Strengths.Fundamentals) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(aa.Strengths.Fundamentals)-maxItemsToShow))
		}
	}

	if len(aa.Weaknesses.MissingFundamentals) > 0 {
		sb.WriteString("Missing Fundamentals:\n")
		count := min(len(aa.Weaknesses.MissingFundamentals), maxItemsToShow)
		for i := 0; i < count; i++ {
			mf := aa.Weaknesses.MissingFundamentals[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", mf.Skill, mf.Priority))
		}
		if len(aa.Weaknesses.MissingFundamentals) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(aa.Weaknesses.MissingFundamentals)-maxItemsToShow))
		}
	}

	p.printBox("ROLE READINESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs a condensed view of the learning roadmap.
func (p *Printer) PrintRoadmap(env *compose.Envelope) {
	if env == nil {
		return
	}
	rm := env.LearningRoadmap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target Role: %s\n\n", rm.TargetRole))

	for _, plan := range []struct {
		label string
		total int
		focus []string
	}{
		{"30-day", rm.Plan30.TotalProjects, rm.Plan30.FocusAreas},
		{"60-day", rm.Plan60.TotalProjects, rm.Plan60.FocusAreas},
		{"90-day", rm.Plan90.TotalProjects, rm.Plan90.FocusAreas},
	} {
		focus := strings.Join(plan.focus, ", ")
		if len(focus) > 40 {
			focus = focus[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %d projects\n", plan.label, plan.total))
		if focus != "" {
			sb.WriteString(fmt.Sprintf("  Focus: %s\n", focus))
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnrichmentStatus outputs which AI sections made it into the result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEnrichmentStatus(env *compose.Envelope) {
	if env == nil {
		return
	}

	if !env.AIEnabled {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "AI ENRICHMENT: disabled or degraded")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sections := []struct {
		name    string
		present bool
	}{
		{"Resume analysis", env.AIAnalysis != nil},
		{"Role analysis", env.RoleAnalysis != nil},
		{"Resume improvement", env.ResumeImprovement != nil},
	}
	for _, s := range sections {
		mark := "✗"
		if s.present {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, s.name))
	}

	p.printBox("AI ENRICHMENT", strings.TrimSuffix(sb.String(), "\n"))
}
