// Package analysis implements the deterministic resume scoring engine.
// Every function in this package is a pure function of its inputs: no I/O,
// no shared state, identical inputs produce identical output.
package analysis

import (
	"regexp"
	"strings"
)

// Fixed matching vocabularies. Section detection and all keyword checks are
// case-insensitive substring tests, not tokenized matching.
var (
	experienceKeywords = []string{"experience", "intern"}
	projectsKeywords   = []string{"projects"}
	skillsKeywords     = []string{"skills"}
	educationKeywords  = []string{"education", "university", "college"}

	actionVerbs = []string{"built", "developed", "designed", "implemented", "optimized", "led", "created"}

	genericPhrases = []string{"responsible for", "worked on", "helped in", "involved in", "participated in"}

	projectIndicators = []string{"project", "application", "system", "platform", "app", "website", "dashboard", "portal"}

	deploymentPlatforms = []string{"vercel", "render", "aws", "firebase", "netlify", "railway", "heroku"}

	techKeywords = []string{"react", "node", "express", "mongodb", "sql", "python", "django", "flask", "next", "tailwind"}

	coreTechKeywords = []string{"react", "node", "python"}
)

var (
	// bulletPattern matches the glyphs commonly used as bullet markers.
	bulletPattern = regexp.MustCompile(`•|-|\*`)
	// metricPattern matches quantified impact: percentages, "N+" counts and
	// "N <unit>" figures.
	metricPattern = regexp.MustCompile(`(?i)\d+%|\d+\+|\d+\s?(users|clients|projects|months|years|apps)`)
)

// Features holds the flags and counts derived from a single scan of the
// resume text. Derived per invocation, never persisted.
type Features struct {
	HasExperience bool
	HasProjects   bool
	HasSkills     bool
	HasEducation  bool

	BulletCount   int
	HasMetrics    bool
	HasActionVerb bool

	HasGenericPhrase      bool
	HasProjectIndicator   bool
	MentionsDeployment    bool
	HasDeploymentPlatform bool
	HasTechKeyword        bool
	HasCoreTech           bool
	HasTeamwork           bool

	Length int
}

// ScanFeatures derives feature flags from normalized resume text. Bullet
// counting runs over the text as given; all other checks run over a
// lowercased copy.
func ScanFeatures(text string) Features {
	lower := strings.ToLower(text)

	return Features{
		HasExperience: containsAny(lower, experienceKeywords),
		HasProjects:   containsAny(lower, projectsKeywords),
		HasSkills:     containsAny(lower, skillsKeywords),
		HasEducation:  containsAny(lower, educationKeywords),

		BulletCount:   len(bulletPattern.FindAllString(text, -1)),
		HasMetrics:    metricPattern.MatchString(text),
		HasActionVerb: containsAny(lower, actionVerbs),

		HasGenericPhrase:      containsAny(lower, genericPhrases),
		HasProjectIndicator:   containsAny(lower, projectIndicators),
		MentionsDeployment:    strings.Contains(lower, "deployed") || strings.Contains(lower, "production"),
		HasDeploymentPlatform: containsAny(lower, deploymentPlatforms),
		HasTechKeyword:        containsAny(lower, techKeywords),
		HasCoreTech:           containsAny(lower, coreTechKeywords),
		HasTeamwork:           strings.Contains(lower, "team") || strings.Contains(lower, "collaborat"),

		Length: len(text),
	}
}

// containsAny reports whether any of the given keywords appears as a
// substring of the lowercased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
