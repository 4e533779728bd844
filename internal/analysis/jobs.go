package analysis

import "strings"

// JobMatch is a single job-category suggestion derived from fixed keyword
// groups, not a learned classifier.
type JobMatch struct {
	Title           string `json:"title"`
	MatchPercentage int    `json:"matchPercentage"`
	Reason          string `json:"reason"`
}

// maxJobMatches bounds the returned list.
const maxJobMatches = 3

// jobCategories are checked in order; any, all or none may fire.
var jobCategories = []struct {
	keywords []string
	match    JobMatch
}{
	{
		keywords: []string{"react", "javascript", "frontend"},
		match: JobMatch{
			Title:           "Frontend Developer",
			MatchPercentage: 92,
			Reason:          "Strong match for modern web technologies found in your profile.",
		},
	},
	{
		keywords: []string{"python", "data", "sql"},
		match: JobMatch{
			Title:           "Data Analyst",
			MatchPercentage: 88,
			Reason:          "Your experience with data processing and databases aligns well.",
		},
	},
	{
		keywords: []string{"manager", "lead", "agile"},
		match: JobMatch{
			Title:           "Project Manager",
			MatchPercentage: 85,
			Reason:          "Leadership and methodology keywords detected.",
		},
	},
}

// fallbackJobMatch is emitted when no category fires; the list is never
// empty.
var fallbackJobMatch = JobMatch{
	Title:           "General Associate",
	MatchPercentage: 70,
	Reason:          "Based on your general professional profile.",
}

// MatchJobs returns up to three job-category matches for the resume text,
// in fixed category order.
func MatchJobs(text string) []JobMatch {
	lower := strings.ToLower(text)

	var matches []JobMatch
	for _, category := range jobCategories {
		if containsAny(lower, category.keywords) {
			matches = append(matches, category.match)
		}
	}

	if len(matches) == 0 {
		matches = append(matches, fallbackJobMatch)
	}
	if len(matches) > maxJobMatches {
		matches = matches[:maxJobMatches]
	}
	return matches
}
