// Command fuzzyac exposes the fuzzyac library's search, replace, segment,
// and split operations from the shell, reading a pattern set from a YAML
// file and the target text as a positional argument.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gofuzzyac/fuzzyac"
)

type patternFile struct {
	Text        string      `yaml:"text"`
	Weight      float64     `yaml:"weight"`
	Limits      *limitsFile `yaml:"limits"`
	ID          string      `yaml:"id"`
	Replacement string      `yaml:"replacement"`
}

type limitsFile struct {
	MaxInsertions    int `yaml:"max_insertions"`
	MaxDeletions     int `yaml:"max_deletions"`
	MaxSubstitutions int `yaml:"max_substitutions"`
	MaxSwaps         int `yaml:"max_swaps"`
	MaxEdits         int `yaml:"max_edits"`
}

var (
	patternsPath    string
	threshold       float64
	greedy          bool
	unique          bool
	caseInsensitive bool
	generateIDs     bool
)

func main() {
	root := &cobra.Command{
		Use:   "fuzzyac",
		Short: "Bounded fuzzy multi-pattern matching over a text",
	}
	root.PersistentFlags().StringVar(&patternsPath, "patterns", "", "path to a YAML pattern file (required)")
	root.PersistentFlags().Float64Var(&threshold, "threshold", 0.8, "minimum similarity to keep a match")
	root.PersistentFlags().BoolVar(&caseInsensitive, "case-insensitive", false, "fold case during normalization")
	root.PersistentFlags().BoolVar(&generateIDs, "generate-ids", false, "assign a generated unique id to patterns that don't specify one")
	root.MarkPersistentFlagRequired("patterns")

	search := &cobra.Command{
		Use:   "search <text>",
		Short: "Find non-overlapping fuzzy matches",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	search.Flags().BoolVar(&greedy, "greedy", false, "use length-first ordering instead of similarity-first")
	search.Flags().BoolVar(&unique, "unique", false, "keep at most one match per pattern unique id")

	replace := &cobra.Command{
		Use:   "replace <text>",
		Short: "Replace fuzzy matches with each pattern's configured replacement",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplace,
	}

	segment := &cobra.Command{
		Use:   "segment <text>",
		Short: "Print the whitespace-joined segmentation of text",
		Args:  cobra.ExactArgs(1),
		RunE:  runSegment,
	}

	split := &cobra.Command{
		Use:   "split <text>",
		Short: "Print the unmatched slices of text, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  runSplit,
	}

	root.AddCommand(search, replace, segment, split)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadPatterns() ([]patternFile, error) {
	raw, err := os.ReadFile(patternsPath)
	if err != nil {
		return nil, fmt.Errorf("reading patterns file: %w", err)
	}
	var pf []patternFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parsing patterns file: %w", err)
	}
	return pf, nil
}

func toSpec(pf patternFile, index int) fuzzyac.PatternSpec {
	weight := pf.Weight
	if weight == 0 {
		weight = 1
	}
	var limits fuzzyac.FuzzyLimits
	if pf.Limits != nil {
		limits = fuzzyac.FuzzyLimits{
			MaxInsertions:    pf.Limits.MaxInsertions,
			MaxDeletions:     pf.Limits.MaxDeletions,
			MaxSubstitutions: pf.Limits.MaxSubstitutions,
			MaxSwaps:         pf.Limits.MaxSwaps,
			MaxEdits:         pf.Limits.MaxEdits,
		}
	}
	var uid any = index
	switch {
	case pf.ID != "":
		uid = pf.ID
	case generateIDs:
		uid = uuid.NewString()
	}
	return fuzzyac.PatFull(pf.Text, weight, limits, uid)
}

func buildMatcher(pf []patternFile) (*fuzzyac.Matcher, error) {
	specs := make([]fuzzyac.PatternSpec, len(pf))
	for i, p := range pf {
		specs[i] = toSpec(p, i)
	}
	return fuzzyac.NewBuilder(fuzzyac.WithCaseInsensitive(caseInsensitive)).Patterns(specs...).Build()
}

func runSearch(cmd *cobra.Command, args []string) error {
	pf, err := loadPatterns()
	if err != nil {
		return err
	}
	matcher, err := buildMatcher(pf)
	if err != nil {
		return err
	}

	var matches []fuzzyac.Match
	switch {
	case unique:
		matches = matcher.SearchNonOverlappingUnique(args[0], threshold)
	case greedy:
		matches = matcher.SearchGreedy(args[0], threshold)
	default:
		matches = matcher.Search(args[0], threshold)
	}

	for _, m := range matches {
		fmt.Printf("%d\t%s\t%d-%d\t%.3f\t%q\n", m.PatternIndex, m.PatternText, m.Start, m.End, m.Similarity, m.Text)
	}
	return nil
}

func runReplace(cmd *cobra.Command, args []string) error {
	pf, err := loadPatterns()
	if err != nil {
		return err
	}
	matcher, err := buildMatcher(pf)
	if err != nil {
		return err
	}

	replacements := make(map[int]string, len(pf))
	for i, p := range pf {
		replacements[i] = p.Replacement
	}

	fmt.Println(matcher.ReplaceWith(args[0], threshold, replacements))
	return nil
}

func runSegment(cmd *cobra.Command, args []string) error {
	pf, err := loadPatterns()
	if err != nil {
		return err
	}
	matcher, err := buildMatcher(pf)
	if err != nil {
		return err
	}
	fmt.Println(matcher.SegmentText(args[0], threshold))
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	pf, err := loadPatterns()
	if err != nil {
		return err
	}
	matcher, err := buildMatcher(pf)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(matcher.Split(args[0], threshold), "\n"))
	return nil
}
