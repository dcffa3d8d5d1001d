package analyze

import "strings"

// RoleRequirements lists the fundamentals and technical skills expected for a
// role, grouped by priority tier.
type RoleRequirements struct {
	Fundamentals map[string][]string
	Skills       map[string][]string
}

// Priority tiers, checked in this order.
var priorityOrder = []string{"high", "medium", "low"}

// DefaultRole is used when no role pattern matches the job description.
const DefaultRole = "Software Engineer"

// roleRequirements carries the per-role expectation tables.
var roleRequirements = map[string]RoleRequirements{
	"Software Engineer": {
		Fundamentals: map[string][]string{
			"high":   {"Data Structures", "Algorithms", "OOP", "System Design"},
			"medium": {"Database Design", "Operating Systems", "Computer Networks"},
			"low":    {"Software Testing", "Version Control", "CI/CD"},
		},
		Skills: map[string][]string{
			"high":   {"Programming Languages", "Problem Solving", "Code Quality"},
			"medium": {"API Development", "Database Management", "Git"},
			"low":    {"Documentation", "Code Review", "Agile"},
		},
	},
	"Backend Developer": {
		Fundamentals: map[string][]string{
			"high":   {"API Design", "Database Systems", "System Architecture", "Security"},
			"medium": {"Microservices", "Caching", "Message Queues", "REST/GraphQL"},
			"low":    {"DevOps Basics", "Monitoring", "Logging"},
		},
		Skills: map[string][]string{
			"high":   {"Backend Frameworks", "Database Optimization", "API Development"},
			"medium": {"Authentication", "Authorization", "API Security"},
			"low":    {"Documentation", "Testing", "Performance Tuning"},
		},
	},
	"Frontend Developer": {
		Fundamentals: map[string][]string{
			"high":   {"JavaScript", "HTML/CSS", "React/Vue/Angular", "Responsive Design"},
			"medium": {"State Management", "Web Performance", "Browser APIs"},
			"low":    {"Testing", "Accessibility", "SEO"},
		},
		Skills: map[string][]string{
			"high":   {"Frontend Frameworks", "UI/UX", "JavaScript ES6+"},
			"medium": {"Build Tools", "Package Managers", "CSS Preprocessors"},
			"low":    {"Progressive Web Apps", "WebAssembly", "Design Systems"},
		},
	},
	"Data Scientist": {
		Fundamentals: map[string][]string{
			"high":   {"Statistics", "Machine Learning", "Data Analysis", "Python/R"},
			"medium": {"Data Visualization", "SQL", "Data Cleaning", "Feature Engineering"},
			"low":    {"Big Data Tools", "Cloud Platforms", "MLOps"},
		},
		Skills: map[string][]string{
			"high":   {"Pandas", "NumPy", "Scikit-learn", "Jupyter"},
			"medium": {"TensorFlow/PyTorch", "Data Visualization", "SQL"},
			"low":    {"Spark", "Docker", "Kubernetes"},
		},
	},
	"ML Engineer": {
		Fundamentals: map[string][]string{
			"high":   {"Machine Learning", "Deep Learning", "Model Deployment", "Python"},
			"medium": {"MLOps", "Model Optimization", "Data Pipelines"},
			"low":    {"Cloud ML Services", "Containerization", "Monitoring"},
		},
		Skills: map[string][]string{
			"high":   {"TensorFlow", "PyTorch", "Model Training", "Feature Engineering"},
			"medium": {"Model Deployment", "MLOps", "Data Processing"},
			"low":    {"Kubernetes", "Monitoring", "A/B Testing"},
		},
	},
}

// rolePattern maps a role to the job-description phrases that indicate it.
// Detection checks roles in order, so the more specific roles come first.
type rolePattern struct {
	role     string
	keywords []string
}

var rolePatterns = []rolePattern{
	{"Backend Developer", []string{"backend", "back-end", "server", "api developer", "rest api", "microservices", "database"}},
	{"Frontend Developer", []string{"frontend", "front-end", "react", "vue", "angular", "ui developer", "javascript developer"}},
	{"Data Scientist", []string{"data scientist", "data science", "machine learning", "data analysis", "statistics"}},
	{"ML Engineer", []string{"ml engineer", "machine learning engineer", "deep learning", "model deployment", "mlops"}},
	{"Software Engineer", []string{"software engineer", "sde", "swe", "software developer", "full stack", "fullstack"}},
}

// DetectRole determines the target role from the job description. An explicit
// caller-provided hint wins over detection; otherwise the first role whose
// keyword appears in the text is chosen, defaulting to Software Engineer.
func DetectRole(jobText, hint string) string {
	if hint != "" {
		return hint
	}
	jobLower := strings.ToLower(jobText)
	for _, p := range rolePatterns {
		for _, kw := range p.keywords {
			if strings.Contains(jobLower, kw) {
				return p.role
			}
		}
	}
	return DefaultRole
}

// RequirementsFor returns the expectation tables for a role, falling back to
// the Software Engineer tables for unrecognized roles.
func RequirementsFor(role string) RoleRequirements {
	if reqs, ok := roleRequirements[role]; ok {
		return reqs
	}
	return roleRequirements[DefaultRole]
}

// KnownRoles lists the roles with dedicated requirement tables.
func KnownRoles() []string {
	roles := make([]string, 0, len(roleRequirements))
	for _, p := range rolePatterns {
		roles = append(roles, p.role)
	}
	return roles
}

// whyImportant explains why a fundamental matters, with a role-specific
// fallback for skills outside the curated list.
var whyImportant = map[string]string{
	"Data Structures":   "Essential for solving coding problems efficiently",
	"Algorithms":        "Core requirement for technical interviews and problem-solving",
	"System Design":     "Critical for designing scalable systems",
	"OOP":               "Fundamental programming paradigm used in all modern languages",
	"API Design":        "Core skill for backend development",
	"Database Systems":  "Essential for data persistence and management",
	"JavaScript":        "Foundation of modern web development",
	"React/Vue/Angular": "Industry-standard frontend frameworks",
	"Machine Learning":  "Core requirement for ML roles",
	"Python":            "Primary language for data science and ML",
}

// WhyImportant returns the significance note for a fundamental skill.
func WhyImportant(skill, role string) string {
	if why, ok := whyImportant[skill]; ok {
		return why
	}
	return "Important skill for " + role + " role"
}
