// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content generation.
// It provides a reusable way to describe the JSON shape a prompt must yield.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeAnalysis")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", number range
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Ground every statement in the provided text, do not invent facts.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeAnalysisSchema returns the schema for the overall narrative
// assessment of a resume against a job description.
func ResumeAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeAnalysis",
		Description: `You are an expert technical recruiter. Analyze the candidate's resume against the job description.
Assess genuine fit: what the candidate demonstrably brings, and what the role demands that the resume does not show.`,
		Fields: []SchemaField{
			{
				Name:        "role_fit",
				Type:        "number 1-10",
				Description: "How well the candidate fits the role",
				Required:    true,
			},
			{
				Name:        "key_strengths",
				Type:        "[\"string\"]",
				Description: "Top 3-5 unique strengths grounded in the resume",
				Required:    true,
			},
			{
				Name:        "critical_gaps",
				Type:        "[\"string\"]",
				Description: "Top 3-5 critical skill gaps relative to the job description",
				Required:    true,
			},
			{
				Name:        "experience_assessment",
				Type:        "\"string\"",
				Description: "Assessment of experience level and quality",
				Required:    true,
			},
			{
				Name:        "specific_recommendations",
				Type:        "[\"string\"]",
				Description: "3-5 specific, actionable recommendations",
				Required:    true,
			},
		},
	}
}

// RoleAnalysisSchema returns the schema for role-targeted skill-gap prose.
func RoleAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "RoleAnalysis",
		Description: `You are a career advisor. Analyze how the candidate's current skills map onto the target role.
Separate what they already have, what needs strengthening, and what they must learn from scratch.`,
		Fields: []SchemaField{
			{
				Name:        "skills_you_have",
				Type:        "[\"string\"]",
				Description: "Role-relevant skills the resume already demonstrates",
				Required:    true,
			},
			{
				Name:        "skills_to_improve",
				Type:        "[\"string\"]",
				Description: "Skills present but below the role's expected depth",
				Required:    true,
			},
			{
				Name:        "skills_to_learn",
				Type:        "[\"string\"]",
				Description: "Role requirements absent from the resume",
				Required:    true,
			},
			{
				Name:        "readiness_summary",
				Type:        "\"string\"",
				Description: "2-3 sentence verdict on readiness for the role",
				Required:    true,
			},
		},
	}
}

// ResumeImprovementSchema returns the schema for document-level advice.
func ResumeImprovementSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeImprovement",
		Description: `You are a professional resume reviewer. Critique the resume document itself: structure, clarity, and impact.
Focus on presentation, not on whether the candidate is qualified.`,
		Fields: []SchemaField{
			{
				Name:        "overall_impression",
				Type:        "\"string\"",
				Description: "2-3 sentence impression of the document",
				Required:    true,
			},
			{
				Name:        "structure_feedback",
				Type:        "[\"string\"]",
				Description: "Concrete structural fixes (sections, ordering, length)",
				Required:    true,
			},
			{
				Name:        "wording_feedback",
				Type:        "[\"string\"]",
				Description: "Wording upgrades: action verbs, quantified impact",
				Required:    true,
			},
			{
				Name:        "priority_fix",
				Type:        "\"string\"",
				Description: "The single highest-impact change to make first",
				Required:    true,
			},
		},
	}
}
