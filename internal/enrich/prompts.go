package enrich

import (
	"fmt"
	"unicode/utf8"
)

// Provider input caps. Long documents are truncated so prompts stay inside
// model context budgets; the head of a resume carries the most signal.
const (
	maxResumeChars = 2500
	maxJobChars    = 2000
)

func analysisInput(resumeText, jobText string) string {
	return fmt.Sprintf("RESUME:\n%s\n\nJOB DESCRIPTION:\n%s",
		truncate(resumeText, maxResumeChars), truncate(jobText, maxJobChars))
}

func roleInput(resumeText, targetRole string) string {
	return fmt.Sprintf("TARGET ROLE: %s\n\nRESUME:\n%s",
		targetRole, truncate(resumeText, maxResumeChars))
}

func improvementInput(resumeText, jobText string) string {
	return fmt.Sprintf("RESUME:\n%s\n\nTARGET JOB DESCRIPTION:\n%s",
		truncate(resumeText, maxResumeChars), truncate(jobText, maxJobChars))
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
