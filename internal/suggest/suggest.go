package suggest

import (
	"fmt"

	"github.com/careeriq/engine/internal/analyze"
)

// Suggestions is the smart, role-targeted action plan.
type Suggestions struct {
	SkillsToAdd        []SkillToAdd        `json:"skills_to_add"`
	ProjectsToBuild    []ProjectIdea       `json:"projects_to_build"`
	TopicsToLearn      []Topic             `json:"topics_to_learn"`
	Certifications     []Certification     `json:"certifications"`
	ResumeImprovements []ResumeImprovement `json:"resume_improvements"`
	ActionableSteps    []Step              `json:"actionable_steps"`
}

// SkillToAdd is one prioritized skill gap with a concrete learning action.
type SkillToAdd struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Timeline string `json:"timeline"`
}

// ProjectIdea is a buildable project that demonstrates role-relevant skills.
type ProjectIdea struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Complexity  string   `json:"complexity"`
	Timeline    string   `json:"timeline"`
}

// Topic is a study topic with pointers to resources.
type Topic struct {
	Topic     string `json:"topic"`
	Priority  string `json:"priority"`
	Resources string `json:"resources"`
}

// Certification is a role-relevant credential worth pursuing. All suggested
// certifications are optional; none of the supported roles require one.
type Certification struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional"`
	Cost     string `json:"cost"`
}

// ResumeImprovement is a structural fix for the resume document itself.
type ResumeImprovement struct {
	Section string `json:"section"`
	Action  string `json:"action"`
	Example string `json:"example"`
}

// Step is one numbered action in the immediate plan.
type Step struct {
	Step     int    `json:"step"`
	Action   string `json:"action"`
	Why      string `json:"why"`
	Timeline string `json:"timeline"`
}

const (
	maxSkillsToAdd     = 10
	maxProjects        = 5
	maxTopics          = 8
	maxCertifications  = 3
	maxActionableSteps = 5
)

var roleProjects = map[string][]ProjectIdea{
	"Software Engineer": {
		{Name: "REST API Backend", Description: "Build a REST API with authentication and database", Skills: []string{"REST API", "Authentication", "Database"}, Complexity: "medium", Timeline: "2-3 weeks"},
		{Name: "Full-Stack Web App", Description: "Create a full-stack application with frontend and backend", Skills: []string{"Frontend", "Backend", "Database"}, Complexity: "high", Timeline: "4-6 weeks"},
		{Name: "System Design Project", Description: "Design and implement a scalable system (e.g., URL shortener)", Skills: []string{"System Design", "Scalability", "Architecture"}, Complexity: "high", Timeline: "3-4 weeks"},
	},
	"Backend Developer": {
		{Name: "Microservices API", Description: "Build a microservices architecture with 2-3 services", Skills: []string{"Microservices", "API Design", "Docker"}, Complexity: "high", Timeline: "3-4 weeks"},
		{Name: "Authentication Service", Description: "Implement JWT-based authentication with refresh tokens", Skills: []string{"Authentication", "Security", "JWT"}, Complexity: "medium", Timeline: "2 weeks"},
	},
	"Frontend Developer": {
		{Name: "React Dashboard", Description: "Build a responsive dashboard with charts and data visualization", Skills: []string{"React", "State Management", "API Integration"}, Complexity: "medium", Timeline: "2-3 weeks"},
		{Name: "E-commerce Frontend", Description: "Create a modern e-commerce UI with cart and checkout", Skills: []string{"React", "State Management", "Responsive Design"}, Complexity: "high", Timeline: "3-4 weeks"},
	},
	"Data Scientist": {
		{Name: "ML Prediction Model", Description: "Build and deploy a machine learning prediction model", Skills: []string{"Machine Learning", "Python", "Model Deployment"}, Complexity: "medium", Timeline: "3 weeks"},
		{Name: "Data Analysis Dashboard", Description: "Analyze a dataset and create visualizations", Skills: []string{"Data Analysis", "Data Visualization", "Pandas"}, Complexity: "medium", Timeline: "2 weeks"},
	},
}

var roleCerts = map[string][]Certification{
	"Software Engineer": {
		{Name: "AWS Certified Solutions Architect", Optional: true, Cost: "Paid"},
		{Name: "Google Cloud Professional", Optional: true, Cost: "Paid"},
		{Name: "FreeCodeCamp Certifications", Optional: true, Cost: "Free"},
	},
	"Backend Developer": {
		{Name: "REST API Design", Optional: true, Cost: "Free (Coursera)"},
		{Name: "Database Design", Optional: true, Cost: "Free (edX)"},
	},
	"Data Scientist": {
		{Name: "Google Data Analytics Certificate", Optional: true, Cost: "Paid (Coursera)"},
		{Name: "Kaggle Micro-Courses", Optional: true, Cost: "Free"},
	},
}

var roleTopics = map[string][]Topic{
	"Software Engineer": {
		{Topic: "Data Structures & Algorithms", Priority: "high", Resources: "LeetCode, GeeksforGeeks"},
		{Topic: "System Design Fundamentals", Priority: "high", Resources: "System Design Primer, Grokking"},
		{Topic: "OOP Principles", Priority: "medium", Resources: "FreeCodeCamp, MDN"},
		{Topic: "Database Design", Priority: "medium", Resources: "SQL Tutorial, Database Design Course"},
	},
	"Backend Developer": {
		{Topic: "API Design Best Practices", Priority: "high", Resources: "REST API Tutorial"},
		{Topic: "Database Optimization", Priority: "high", Resources: "SQL Performance Guide"},
		{Topic: "Microservices Architecture", Priority: "medium", Resources: "Microservices Patterns"},
		{Topic: "Authentication & Security", Priority: "medium", Resources: "OWASP Guidelines"},
	},
	"Frontend Developer": {
		{Topic: "JavaScript ES6+ Features", Priority: "high", Resources: "MDN Web Docs, JavaScript.info"},
		{Topic: "React State Management", Priority: "high", Resources: "Official Docs"},
		{Topic: "Web Performance Optimization", Priority: "medium", Resources: "Web.dev Performance"},
		{Topic: "Responsive Design Patterns", Priority: "medium", Resources: "CSS-Tricks, MDN"},
	},
	"Data Scientist": {
		{Topic: "Statistics Fundamentals", Priority: "high", Resources: "Khan Academy, Coursera"},
		{Topic: "Machine Learning Basics", Priority: "high", Resources: "Andrew Ng's Course"},
		{Topic: "Data Visualization", Priority: "medium", Resources: "Matplotlib, Seaborn Docs"},
		{Topic: "Feature Engineering", Priority: "medium", Resources: "Kaggle Learn"},
	},
}

// Generate builds the smart suggestion plan from the rule-based assessment
// and the missing job skills. Actionable steps are ordered learn-first, then
// build, then fix the resume document.
func Generate(bundle analyze.Bundle, missingSkills []string) Suggestions {
	s := Suggestions{
		SkillsToAdd:        skillsToAdd(bundle, missingSkills),
		ProjectsToBuild:    projectsToBuild(bundle, missingSkills),
		TopicsToLearn:      topicsToLearn(bundle.TargetRole, missingSkills),
		Certifications:     certifications(bundle.TargetRole),
		ResumeImprovements: resumeImprovements(bundle.Structure),
		ActionableSteps:    actionableSteps(bundle),
	}
	return s
}

func skillsToAdd(bundle analyze.Bundle, missingSkills []string) []SkillToAdd {
	timeline := skillTimeline(bundle.Experience.Level)

	out := []SkillToAdd{}
	priorityByMissingFundamental := make(map[string]string, len(bundle.Weaknesses.MissingFundamentals))
	for _, mf := range bundle.Weaknesses.MissingFundamentals {
		priorityByMissingFundamental[mf.Skill] = mf.Priority
	}

	for _, skill := range missingSkills {
		if len(out) >= maxSkillsToAdd {
			break
		}
		priority := priorityByMissingFundamental[skill]
		if priority == "" {
			priority = "medium"
		}
		out = append(out, SkillToAdd{
			Skill:    skill,
			Priority: priority,
			Action:   fmt.Sprintf("Take an online course on %s and build a small project", skill),
			Timeline: timeline,
		})
	}
	return out
}

func skillTimeline(level string) string {
	switch level {
	case analyze.LevelEntry:
		return "3-4 weeks"
	case analyze.LevelMid:
		return "2-3 weeks"
	default:
		return "1-2 weeks"
	}
}

func projectsToBuild(bundle analyze.Bundle, missingSkills []string) []ProjectIdea {
	templates, ok := roleProjects[bundle.TargetRole]
	if !ok {
		templates = roleProjects["Software Engineer"]
	}

	out := []ProjectIdea{}

	// Gap-specific projects come first.
	for _, skill := range missingSkills {
		switch skill {
		case "REST API":
			out = append(out, ProjectIdea{
				Name:        "REST API Project",
				Description: "Build 1 backend project using REST APIs and authentication",
				Skills:      []string{"REST API", "Authentication"},
				Complexity:  "medium",
				Timeline:    "2 weeks",
			})
		case "System Design":
			out = append(out, ProjectIdea{
				Name:        "System Design Practice",
				Description: "Design and document a scalable system (e.g., Twitter clone)",
				Skills:      []string{"System Design", "Architecture"},
				Complexity:  "high",
				Timeline:    "2-3 weeks",
			})
		}
	}

	for _, project := range templates {
		if len(out) >= maxProjects {
			break
		}
		// Entry-level candidates get achievable projects only.
		if bundle.Experience.Level == analyze.LevelEntry && project.Complexity == "high" {
			continue
		}
		out = append(out, project)
	}
	if len(out) > maxProjects {
		out = out[:maxProjects]
	}
	return out
}

func topicsToLearn(role string, missingSkills []string) []Topic {
	topics, ok := roleTopics[role]
	if !ok {
		topics = roleTopics["Software Engineer"]
	}

	out := make([]Topic, len(topics))
	copy(out, topics)

	for _, skill := range missingSkills[:min(5, len(missingSkills))] {
		if len(out) >= maxTopics {
			break
		}
		if topicCovered(out, skill) {
			continue
		}
		out = append(out, Topic{
			Topic:     skill,
			Priority:  "medium",
			Resources: "Online courses and documentation",
		})
	}
	return out[:min(maxTopics, len(out))]
}

func topicCovered(topics []Topic, skill string) bool {
	for _, t := range topics {
		if t.Topic == skill {
			return true
		}
	}
	return false
}

func certifications(role string) []Certification {
	certs := roleCerts[role]
	out := make([]Certification, 0, maxCertifications)
	out = append(out, certs[:min(maxCertifications, len(certs))]...)
	return out
}

func resumeImprovements(structure analyze.StructureQuality) []ResumeImprovement {
	out := []ResumeImprovement{}

	if !structure.SectionsPresent["summary"] {
		out = append(out, ResumeImprovement{
			Section: "Summary",
			Action:  "Add a 2-3 line professional summary highlighting your key strengths",
			Example: "Experienced software engineer with expertise in...",
		})
	}
	if structure.Score < 70 {
		out = append(out, ResumeImprovement{
			Section: "Structure",
			Action:  "Ensure all sections are present: Summary, Experience, Education, Skills, Projects",
			Example: "Organize resume into clear sections",
		})
	}
	if !structure.SectionsPresent["projects"] {
		out = append(out, ResumeImprovement{
			Section: "Projects",
			Action:  "Add a projects section with measurable impact. Use numbers and metrics.",
			Example: "'Improved performance by 30%' instead of 'Worked on performance optimization'",
		})
	}
	return out
}

func actionableSteps(bundle analyze.Bundle) []Step {
	steps := []Step{}

	for _, mf := range bundle.Weaknesses.MissingFundamentals {
		if mf.Priority != "high" || len(steps) >= 3 {
			continue
		}
		steps = append(steps, Step{
			Step:     len(steps) + 1,
			Action:   "Learn " + mf.Skill,
			Why:      mf.WhyImportant,
			Timeline: "2-3 weeks",
		})
	}

	if bundle.Structure.Score < 80 && len(steps) < maxActionableSteps {
		steps = append(steps, Step{
			Step:     len(steps) + 1,
			Action:   "Improve resume structure",
			Why:      "Better structure increases readability and ATS compatibility",
			Timeline: "1 week",
		})
	}

	if len(steps) > maxActionableSteps {
		steps = steps[:maxActionableSteps]
	}
	return steps
}
