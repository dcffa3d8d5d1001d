// Package suggest turns match and analysis results into concrete advice:
// detailed resume recommendations, related-skill suggestions, and smart
// role-targeted action plans.
package suggest

import (
	"fmt"
	"strings"
)

// Recommendations is the detailed, beginner-friendly advice block.
type Recommendations struct {
	Summary            string             `json:"summary"`
	ResumeChanges      []ResumeChange     `json:"resume_changes"`
	SkillImprovements  []SkillImprovement `json:"skill_improvements"`
	StrengthenExisting []StrengthenTip    `json:"strengthen_existing"`
	GeneralTips        []Tip              `json:"general_tips"`
}

// ResumeChange is one concrete edit to make to the resume document.
type ResumeChange struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// SkillImprovement is a learning plan for one missing skill.
type SkillImprovement struct {
	Skill         string `json:"skill"`
	CurrentStatus string `json:"current_status"`
	ActionPlan    string `json:"action_plan"`
	Timeline      string `json:"timeline"`
}

// StrengthenTip is advice for making an already-matched skill stand out.
type StrengthenTip struct {
	Skill           string `json:"skill"`
	HowToStrengthen string `json:"how_to_strengthen"`
}

// Tip is one general resume-writing tip.
type Tip struct {
	Tip         string `json:"tip"`
	Description string `json:"description"`
}

const (
	maxResumeChangeSkills = 5
	maxSkillImprovements  = 5
	maxStrengthenExisting = 3
)

// Recommend builds the detailed recommendation block from a match outcome.
// The summary tone follows the score band: below 50 is a significant gap,
// below 70 a good foundation, and 70 or above a strong alignment.
func Recommend(score int, matched, missing []string) Recommendations {
	r := Recommendations{
		ResumeChanges:      []ResumeChange{},
		SkillImprovements:  []SkillImprovement{},
		StrengthenExisting: []StrengthenTip{},
	}

	switch {
	case score < 50:
		r.Summary = fmt.Sprintf(
			"Your resume has a %d%% match score, which indicates significant gaps. "+
				"Don't worry - this is fixable! Focus on aligning your resume with the job requirements.", score)
	case score < 70:
		r.Summary = fmt.Sprintf(
			"Your resume shows a %d%% match - good foundation, but needs improvement. "+
				"With some targeted changes, you can significantly increase your match score.", score)
	default:
		r.Summary = fmt.Sprintf(
			"Excellent! Your resume has a %d%% match score. "+
				"You're well-aligned with the job requirements. Focus on highlighting your strengths.", score)
	}

	if len(missing) > 0 {
		top := missing[:min(maxResumeChangeSkills, len(missing))]
		joined := strings.Join(top, ", ")
		r.ResumeChanges = append(r.ResumeChanges, ResumeChange{
			Title: "Add Missing Skills Section",
			Description: fmt.Sprintf(
				"Create a dedicated 'Technical Skills' section and include: %s. "+
					"Even if you're a beginner, mention if you've taken courses or worked on projects with these technologies.", joined),
			Action: "Add these keywords to your resume: " + joined,
		})
	}

	for _, skill := range missing[:min(maxSkillImprovements, len(missing))] {
		r.SkillImprovements = append(r.SkillImprovements, SkillImprovement{
			Skill:         skill,
			CurrentStatus: "Not in resume",
			ActionPlan:    improvementTip(skill),
			Timeline:      "1-2 weeks for basics, 1-3 months for proficiency",
		})
	}

	for _, skill := range matched[:min(maxStrengthenExisting, len(matched))] {
		r.StrengthenExisting = append(r.StrengthenExisting, StrengthenTip{
			Skill: skill,
			HowToStrengthen: fmt.Sprintf(
				"You already have %[1]s! To strengthen it: add specific projects where you used %[1]s, "+
					"quantify your experience (e.g., 'Built 3 applications using %[1]s'), "+
					"mention any certifications or courses related to %[1]s, "+
					"and add %[1]s to your resume summary.", skill),
		})
	}

	r.GeneralTips = []Tip{
		{Tip: "Use Action Verbs", Description: "Replace passive language with action verbs: 'Developed', 'Implemented', 'Designed', 'Optimized', 'Led'"},
		{Tip: "Quantify Achievements", Description: "Add numbers: 'Improved performance by 30%', 'Managed team of 5', 'Reduced costs by $10K'"},
		{Tip: "Match Keywords", Description: "Use the exact same keywords from the job description in your resume (naturally, not forced)"},
		{Tip: "Highlight Relevant Experience", Description: "Move the most relevant experience to the top of your resume"},
		{Tip: "Add Projects Section", Description: "If you're missing required skills, add a 'Projects' section showing you've worked with those technologies"},
	}

	return r
}

// improvementTip returns a beginner-friendly plan for picking up a skill.
func improvementTip(skill string) string {
	tips := []struct {
		key string
		tip string
	}{
		{"python", "Start with Python basics on freeCodeCamp or Codecademy. Build 2-3 small projects (calculator, todo app, web scraper)."},
		{"javascript", "Learn JavaScript fundamentals on MDN Web Docs. Practice by building interactive web pages."},
		{"react", "Complete React's official tutorial. Build a portfolio website or todo app to practice."},
		{"aws", "Start with AWS Free Tier. Follow AWS's 'Getting Started' guides. Try deploying a simple website."},
		{"docker", "Install Docker Desktop. Follow Docker's 'Get Started' tutorial. Containerize a simple web app."},
		{"machine learning", "Take Andrew Ng's Machine Learning course on Coursera. Start with simple projects like house price prediction."},
		{"sql", "Practice on SQLBolt or LeetCode. Learn JOINs, subqueries, and window functions."},
		{"git", "Complete GitHub's 'Hello World' guide. Practice by creating a GitHub repository and making commits."},
	}

	skillLower := strings.ToLower(skill)
	for _, t := range tips {
		if strings.Contains(skillLower, t.key) {
			return t.tip
		}
	}
	return fmt.Sprintf(
		"To learn %s: find a beginner-friendly tutorial or course, practice with small projects, "+
			"and add it to your resume once you've built something with it.", skill)
}
