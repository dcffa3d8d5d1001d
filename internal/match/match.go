// Package match computes the set-based comparison between a candidate's
// skills and a job's required skills.
package match

import "fmt"

// Result holds the outcome of one resume-vs-job comparison.
//
// Matched and Missing partition the required skills; Extra holds resume
// skills the job never asked for. All three slices are always non-nil.
type Result struct {
	Score   int      `json:"match_score"`
	Matched []string `json:"matched_skills"`
	Missing []string `json:"missing_skills"`
	Extra   []string `json:"extra_skills"`
}

// InvariantError reports an internally inconsistent match result.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("match invariant violated: %s", e.Message)
}

// Match compares canonical resume skills against canonical required skills.
//
// The score is round(100 * matched / required), and 0 when the job lists no
// required skills. Matched and missing preserve required-skill order; extras
// preserve resume order. Duplicate inputs are tolerated and deduplicated.
func Match(resumeSkills, requiredSkills []string) Result {
	resumeSet := toSet(resumeSkills)

	result := Result{
		Matched: []string{},
		Missing: []string{},
		Extra:   []string{},
	}

	requiredSeen := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range requiredSkills {
		if _, dup := requiredSeen[skill]; dup {
			continue
		}
		requiredSeen[skill] = struct{}{}
		if _, ok := resumeSet[skill]; ok {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	extraSeen := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		if _, dup := extraSeen[skill]; dup {
			continue
		}
		extraSeen[skill] = struct{}{}
		if _, required := requiredSeen[skill]; !required {
			result.Extra = append(result.Extra, skill)
		}
	}

	if n := len(requiredSeen); n > 0 {
		result.Score = roundPercent(len(result.Matched), n)
	}

	return result
}

// Validate checks the structural invariants of a result: score in [0,100],
// matched and missing disjoint, and no skill in both matched and extra.
func (r Result) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return &InvariantError{Message: fmt.Sprintf("score %d out of range", r.Score)}
	}
	matched := toSet(r.Matched)
	for _, skill := range r.Missing {
		if _, ok := matched[skill]; ok {
			return &InvariantError{Message: fmt.Sprintf("%q is both matched and missing", skill)}
		}
	}
	for _, skill := range r.Extra {
		if _, ok := matched[skill]; ok {
			return &InvariantError{Message: fmt.Sprintf("%q is both matched and extra", skill)}
		}
	}
	return nil
}

// roundPercent computes round(100 * part / whole) in integer arithmetic,
// rounding half up.
func roundPercent(part, whole int) int {
	return (200*part + whole) / (2 * whole)
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}
