package suggest

import "github.com/careeriq/engine/internal/vocab"

// SkillRecommendation is one related-skill suggestion derived from a gap.
type SkillRecommendation struct {
	Skill       string `json:"skill"`
	Reason      string `json:"reason"`
	LearningTip string `json:"learning_tip"`
	Priority    string `json:"priority"`
}

const (
	maxSkillRecommendations = 10
	relatedPerMissingSkill  = 3
	highPriorityCount       = 5
)

// RecommendRelated suggests skills adjacent to the missing ones, using the
// vocabulary's relationship graph. At most three related skills per missing
// skill, ten overall; the first five carry high priority. Skills already on
// the resume are never recommended back.
func RecommendRelated(missingSkills, resumeSkills []string, v *vocab.Vocabulary) []SkillRecommendation {
	recommendations := []SkillRecommendation{}
	seen := make(map[string]struct{}, maxSkillRecommendations)
	for _, s := range resumeSkills {
		seen[s] = struct{}{}
	}

	for _, missing := range missingSkills {
		if len(recommendations) >= maxSkillRecommendations {
			break
		}
		added := 0
		for _, related := range v.Related(missing) {
			if added >= relatedPerMissingSkill || len(recommendations) >= maxSkillRecommendations {
				break
			}
			if _, dup := seen[related]; dup {
				continue
			}
			seen[related] = struct{}{}

			priority := "medium"
			if len(recommendations) < highPriorityCount {
				priority = "high"
			}
			recommendations = append(recommendations, SkillRecommendation{
				Skill:       related,
				Reason:      "Often used together with " + missing,
				LearningTip: v.LearningTip(related),
				Priority:    priority,
			})
			added++
		}
	}

	return recommendations
}
