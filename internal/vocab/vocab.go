// Package vocab provides the controlled skill vocabulary used by the
// extractor, recommender, and roadmap builder. The vocabulary is loaded once
// at startup, validated against its JSON Schema, and never mutated afterwards,
// so concurrent analysis requests can read it without synchronization.
package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/careeriq/engine/internal/schemas"
)

//go:embed vocabulary.json
var defaultVocabulary []byte

//go:embed vocabulary.schema.json
var vocabularySchema []byte

// Default effort estimates (in weeks) per category, used when a skill entry
// does not carry its own effort_weeks value.
var categoryEffort = map[string]int{
	"language":  4,
	"framework": 3,
	"database":  2,
	"cloud":     4,
	"devops":    2,
	"data":      4,
	"mobile":    4,
	"practice":  2,
	"soft":      1,
}

const fallbackEffortWeeks = 3

// Skill is one canonical vocabulary entry.
type Skill struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Aliases     []string `json:"aliases,omitempty"`
	Related     []string `json:"related,omitempty"`
	LearningTip string   `json:"learning_tip,omitempty"`
	EffortWeeks int      `json:"effort_weeks,omitempty"`
}

// document is the on-disk vocabulary shape.
type document struct {
	Version string  `json:"version"`
	Skills  []Skill `json:"skills"`
}

// Vocabulary is an immutable, process-wide skill vocabulary.
type Vocabulary struct {
	version         string
	skills          []Skill
	byName          map[string]int // canonical fold -> index into skills
	bySurface       map[string]string
	maxPhraseTokens int
}

// Error is a fatal vocabulary configuration error. Per the startup contract,
// a vocabulary that cannot be loaded or fails schema validation aborts the
// process rather than degrading per-request behavior.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary error (%s): %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Load parses and validates the embedded default vocabulary.
func Load() (*Vocabulary, error) {
	return parse("embedded", defaultVocabulary)
}

// LoadFile parses and validates a vocabulary from a JSON file, for
// deployments that override the built-in skill set.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Message: "cannot read vocabulary file", Cause: err}
	}
	return parse(path, data)
}

func parse(source string, data []byte) (*Vocabulary, error) {
	if err := schemas.ValidateJSONString(string(vocabularySchema), string(data)); err != nil {
		return nil, &Error{Source: source, Message: "vocabulary failed schema validation", Cause: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Source: source, Message: "cannot parse vocabulary JSON", Cause: err}
	}

	v := &Vocabulary{
		version:   doc.Version,
		skills:    doc.Skills,
		byName:    make(map[string]int, len(doc.Skills)),
		bySurface: make(map[string]string, len(doc.Skills)*2),
	}

	for i, skill := range doc.Skills {
		nameFold := FoldSurface(skill.Name)
		if nameFold == "" {
			return nil, &Error{Source: source, Message: fmt.Sprintf("skill %d has an empty name", i)}
		}
		if _, dup := v.byName[nameFold]; dup {
			return nil, &Error{Source: source, Message: fmt.Sprintf("duplicate skill name %q", skill.Name)}
		}
		v.byName[nameFold] = i
		if err := v.registerSurface(source, nameFold, skill.Name); err != nil {
			return nil, err
		}
		for _, alias := range skill.Aliases {
			if err := v.registerSurface(source, FoldSurface(alias), skill.Name); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

// registerSurface records one surface form -> canonical mapping and tracks the
// longest phrase length seen, which bounds the extractor's n-gram window.
func (v *Vocabulary) registerSurface(source, surface, canonical string) error {
	if surface == "" {
		return &Error{Source: source, Message: fmt.Sprintf("skill %q has an empty alias", canonical)}
	}
	if existing, ok := v.bySurface[surface]; ok && existing != canonical {
		return &Error{
			Source:  source,
			Message: fmt.Sprintf("surface form %q maps to both %q and %q", surface, existing, canonical),
		}
	}
	v.bySurface[surface] = canonical
	if n := len(strings.Fields(surface)); n > v.maxPhraseTokens {
		v.maxPhraseTokens = n
	}
	return nil
}

// FoldSurface lowercases and whitespace-normalizes a surface form so lookups
// are insensitive to case and spacing.
func FoldSurface(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// Version returns the vocabulary document version string.
func (v *Vocabulary) Version() string { return v.version }

// Len returns the number of canonical skills.
func (v *Vocabulary) Len() int { return len(v.skills) }

// Skills returns the canonical entries in document order. Callers must treat
// the returned slice as read-only.
func (v *Vocabulary) Skills() []Skill { return v.skills }

// MaxPhraseTokens returns the token length of the longest surface form, the
// upper bound for the extractor's n-gram window.
func (v *Vocabulary) MaxPhraseTokens() int { return v.maxPhraseTokens }

// Canonical resolves a surface form (any alias or the name itself, any case)
// to its canonical skill name.
func (v *Vocabulary) Canonical(surface string) (string, bool) {
	name, ok := v.bySurface[FoldSurface(surface)]
	return name, ok
}

// Lookup returns the vocabulary entry for a canonical skill name.
func (v *Vocabulary) Lookup(name string) (Skill, bool) {
	idx, ok := v.byName[FoldSurface(name)]
	if !ok {
		return Skill{}, false
	}
	return v.skills[idx], true
}

// Related returns the related-skill list for a canonical name, or nil when
// the skill is unknown or has no relationships.
func (v *Vocabulary) Related(name string) []string {
	skill, ok := v.Lookup(name)
	if !ok {
		return nil
	}
	return skill.Related
}

// LearningTip returns the curated learning tip for a skill, or a generic
// fallback when none is recorded.
func (v *Vocabulary) LearningTip(name string) string {
	if skill, ok := v.Lookup(name); ok && skill.LearningTip != "" {
		return skill.LearningTip
	}
	return "Start with official documentation and build a small project to practice."
}

// EffortWeeks estimates the weeks needed to reach working proficiency in a
// skill: the entry's own estimate, else its category default, else a fixed
// fallback for skills outside the vocabulary.
func (v *Vocabulary) EffortWeeks(name string) int {
	skill, ok := v.Lookup(name)
	if !ok {
		return fallbackEffortWeeks
	}
	if skill.EffortWeeks > 0 {
		return skill.EffortWeeks
	}
	if effort, ok := categoryEffort[skill.Category]; ok {
		return effort
	}
	return fallbackEffortWeeks
}
