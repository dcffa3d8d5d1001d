package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careeriq/engine/internal/vocab"
)

var vocabCommand = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect the skill vocabulary",
	Long:  "Lists the controlled skill vocabulary used for extraction and matching, grouped by category.",
	RunE:  runVocabCmd,
}

var vocabCategory string

func init() {
	vocabCommand.Flags().StringVar(&vocabCategory, "category", "", "Only show skills in this category")

	rootCmd.AddCommand(vocabCommand)
}

func runVocabCmd(_ *cobra.Command, _ []string) error {
	vocabulary, err := vocab.Load()
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	byCategory := map[string][]vocab.Skill{}
	for _, skill := range vocabulary.Skills() {
		if vocabCategory != "" && skill.Category != vocabCategory {
			continue
		}
		byCategory[skill.Category] = append(byCategory[skill.Category], skill)
	}
	if len(byCategory) == 0 {
		return fmt.Errorf("no skills found for category %q", vocabCategory)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Printf("Vocabulary %s: %d skills\n\n", vocabulary.Version(), vocabulary.Len())
	for _, category := range categories {
		fmt.Printf("%s:\n", category)
		for _, skill := range byCategory[category] {
			line := "  " + skill.Name
			if len(skill.Aliases) > 0 {
				line += " (" + strings.Join(skill.Aliases, ", ") + ")"
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
	return nil
}
