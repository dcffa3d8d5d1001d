package profile

import (
	"regexp"
	"strings"
)

// Section heading keywords. A short line containing one of these opens the
// corresponding section.
var (
	educationKeywords  = []string{"education", "academic", "qualification", "degree"}
	experienceKeywords = []string{"experience", "employment", "work history", "career", "professional"}
	skillsKeywords     = []string{"skills", "technical skills", "competencies", "expertise", "proficiencies"}
	projectKeywords    = []string{"projects", "project", "portfolio", "work samples"}
)

var (
	degreeRe   = regexp.MustCompile(`(?i)\b(b\.?s\.?c?|b\.?a\.?|b\.?e\.?|b\.?tech|m\.?s\.?c?|m\.?a\.?|m\.?e\.?|m\.?tech|ph\.?d\.?|bachelor|master|doctorate)\b`)
	jobTitleRe = regexp.MustCompile(`(?i)\b(software engineer|developer|analyst|manager|engineer|consultant|intern|associate|sde|swe|qa|devops|data scientist|product manager|scientist|architect)\b`)
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	durationRe = regexp.MustCompile(`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+)?\d{4}\s*[-\x{2013}]\s*((?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+)?\d{4}|present|current|now)\b`)
	skillSplit = regexp.MustCompile(`[,|;\x{2022}]`)
)

const (
	maxEducationEntries  = 3
	maxExperienceEntries = 5
	maxProjectEntries    = 5
	maxDeclaredSkills    = 20
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionEducation
	sectionExperience
	sectionSkills
	sectionProjects
)

// SectionizeText splits raw resume text into structured sections using
// heading heuristics. It never fails: text with no recognizable headings
// yields a ParsedSections with just the full text populated.
func SectionizeText(text string) ParsedSections {
	sections := ParsedSections{
		FullText:   text,
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Skills:     []string{},
	}

	lines := strings.Split(text, "\n")
	current := sectionNone
	skillLines := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if kind, ok := headingKind(lower); ok {
			current = kind
			skillLines = 0
			continue
		}
		if trimmed == "" {
			continue
		}

		switch current {
		case sectionEducation:
			if len(sections.Education) < maxEducationEntries && degreeRe.MatchString(lower) {
				sections.Education = append(sections.Education, Education{
					Degree:      trimmed,
					Institution: findInstitution(lines, i),
					Year:        yearRe.FindString(trimmed),
				})
			}
		case sectionExperience:
			if len(sections.Experience) < maxExperienceEntries &&
				jobTitleRe.MatchString(lower) && len(trimmed) > 5 && len(trimmed) < 100 {
				sections.Experience = append(sections.Experience, Experience{
					Title:    trimmed,
					Company:  findCompany(lines, i),
					Duration: durationRe.FindString(trimmed),
				})
			}
		case sectionSkills:
			skillLines++
			if skillLines > 10 {
				current = sectionNone
				continue
			}
			for _, raw := range skillSplit.Split(trimmed, -1) {
				skill := strings.TrimSpace(strings.TrimLeft(raw, "-* \t"))
				if len(skill) > 1 && len(skill) < 50 && len(sections.Skills) < maxDeclaredSkills {
					sections.Skills = append(sections.Skills, skill)
				}
			}
		case sectionProjects:
			if len(sections.Projects) < maxProjectEntries &&
				len(trimmed) > 10 && len(trimmed) < 100 && !startsWithDigit(trimmed) {
				sections.Projects = append(sections.Projects, Project{
					Name:        trimmed,
					Description: findDescription(lines, i),
				})
			}
		}
	}

	return sections
}

// headingKind reports whether a lowercased line is a section heading. Long
// lines never count as headings even when they contain a keyword.
func headingKind(lower string) (sectionKind, bool) {
	if lower == "" || len(lower) >= 50 {
		return sectionNone, false
	}
	for _, kw := range skillsKeywords {
		if strings.Contains(lower, kw) {
			return sectionSkills, true
		}
	}
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			return sectionEducation, true
		}
	}
	for _, kw := range experienceKeywords {
		if strings.Contains(lower, kw) {
			return sectionExperience, true
		}
	}
	for _, kw := range projectKeywords {
		if strings.Contains(lower, kw) {
			return sectionProjects, true
		}
	}
	return sectionNone, false
}

func findInstitution(lines []string, index int) string {
	for i := max(0, index-2); i < min(len(lines), index+3); i++ {
		line := strings.TrimSpace(lines[i])
		lower := strings.ToLower(line)
		for _, word := range []string{"university", "college", "institute", "school"} {
			if strings.Contains(lower, word) {
				return line
			}
		}
	}
	return "Not specified"
}

func findCompany(lines []string, index int) string {
	// The company usually sits on the line right after the title.
	for i := index + 1; i < min(len(lines), index+3); i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) > 2 && len(line) < 50 && !jobTitleRe.MatchString(strings.ToLower(line)) {
			return line
		}
	}
	return "Not specified"
}

func findDescription(lines []string, index int) string {
	var parts []string
	for i := index + 1; i < min(len(lines), index+4); i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) > 10 {
			parts = append(parts, line)
			if len(parts) >= 2 {
				break
			}
		}
	}
	return strings.Join(parts, " | ")
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
