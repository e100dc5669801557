package priority

import "strings"

// Goal alignment scores. North-star matches always win over secondary
// matches, which win over the default.
const (
	GoalAlignmentNorthStar = 90
	GoalAlignmentSecondary = 70
	GoalAlignmentDefault   = 30
)

// GoalClassifier scores free text against the user's strategic goals.
// It is an interface so the keyword tables can be swapped or tested
// independently of the scoring arithmetic.
type GoalClassifier interface {
	Alignment(text string) float64
}

// KeywordClassifier matches case-insensitive substrings: any
// north-star keyword scores 90, otherwise any word drawn from a
// secondary goal phrase scores 70, otherwise 30.
type KeywordClassifier struct {
	northStar []string
	secondary [][]string
}

func NewKeywordClassifier(northStarKeywords, secondaryGoals []string) *KeywordClassifier {
	ns := make([]string, 0, len(northStarKeywords))
	for _, kw := range northStarKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			ns = append(ns, kw)
		}
	}
	sec := make([][]string, 0, len(secondaryGoals))
	for _, phrase := range secondaryGoals {
		words := strings.Fields(strings.ToLower(phrase))
		if len(words) > 0 {
			sec = append(sec, words)
		}
	}
	return &KeywordClassifier{northStar: ns, secondary: sec}
}

func (c *KeywordClassifier) Alignment(text string) float64 {
	lowered := strings.ToLower(text)
	for _, kw := range c.northStar {
		if strings.Contains(lowered, kw) {
			return GoalAlignmentNorthStar
		}
	}
	for _, words := range c.secondary {
		for _, w := range words {
			if strings.Contains(lowered, w) {
				return GoalAlignmentSecondary
			}
		}
	}
	return GoalAlignmentDefault
}
