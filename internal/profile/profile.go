// Package profile normalizes raw resume and job inputs into the structured
// forms the matcher and analyzers consume.
package profile

import "github.com/careeriq/engine/internal/extract"

// Education is one recognized education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
}

// Experience is one recognized work-history entry.
type Experience struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Duration string `json:"duration,omitempty"`
}

// Project is one recognized project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ParsedSections is the raw sectionized view of a resume before skill
// canonicalization. It is produced by SectionizeText or supplied directly by
// callers that already have structured data.
type ParsedSections struct {
	FullText   string
	Education  []Education
	Experience []Experience
	Projects   []Project
	Skills     []string
}

// ResumeProfile is a normalized resume. The JSON shape is the structured
// resume echo embedded in analysis results; canonical skills and full text
// are kept unexported because downstream consumers read them through
// accessors rather than serialization.
type ResumeProfile struct {
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Skills     []string     `json:"skills"`

	canonicalSkills []string
	fullText        string
}

// CanonicalSkills returns the deduplicated canonical skill list derived from
// the whole resume, in first-mention order.
func (p *ResumeProfile) CanonicalSkills() []string { return p.canonicalSkills }

// FullText returns the complete resume text the profile was built from.
func (p *ResumeProfile) FullText() string { return p.fullText }

// JobRequirement is a normalized job posting.
type JobRequirement struct {
	RawText        string
	RequiredSkills []string
	TargetRole     string
}

// Normalize builds a ResumeProfile from parsed sections. Canonical skills are
// the union of skills extracted from the full text and from the declared
// skills list, so a skill listed only in a "Skills:" section still counts.
func Normalize(sections ParsedSections, extractor *extract.Extractor) *ResumeProfile {
	profile := &ResumeProfile{
		Education:  sections.Education,
		Experience: sections.Experience,
		Projects:   sections.Projects,
		Skills:     sections.Skills,
		fullText:   sections.FullText,
	}
	if profile.Education == nil {
		profile.Education = []Education{}
	}
	if profile.Experience == nil {
		profile.Experience = []Experience{}
	}
	if profile.Projects == nil {
		profile.Projects = []Project{}
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	canonical := extractor.Extract(sections.FullText)
	seen := make(map[string]struct{}, len(canonical))
	for _, s := range canonical {
		seen[s] = struct{}{}
	}
	for _, declared := range sections.Skills {
		for _, s := range extractor.Extract(declared) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			canonical = append(canonical, s)
		}
	}
	profile.canonicalSkills = canonical

	return profile
}

// NormalizeJob builds a JobRequirement from posting text. Required skills
// are the canonical skills extracted from the posting, in mention order.
func NormalizeJob(text, targetRole string, extractor *extract.Extractor) *JobRequirement {
	return &JobRequirement{
		RawText:        text,
		RequiredSkills: extractor.Extract(text),
		TargetRole:     targetRole,
	}
}
