package analysis

import (
	"math"
	"strings"
)

// Score bounds and combination constants. The compress transform maps the
// raw rule sum into a tighter visible band so stacked bonuses do not
// saturate the top end, and every resume receives the floor score.
const (
	scoreFloor   = 20
	scoreCeiling = 85

	similarityWeight = 0.35
	compressBase     = 20
	compressFactor   = 0.65
)

// Constants for the legacy local-only formula.
const (
	localBaseScore     = 50
	localSectionPoints = 8
	localShortPenalty  = 15
	localShortChars    = 500
	localLongChars     = 1500
	localScoreCap      = 99
)

// Fallback entries used when a rule pass produces an empty list. Output
// lists are never empty.
const (
	fallbackPro            = "Basic structure present"
	fallbackCon            = "No major issues detected"
	fallbackRecommendation = "Improve formatting and add more quantified achievements"
)

// Assessment is the engine's sole output. All fields are always populated;
// list fields are non-empty after fallback defaulting.
type Assessment struct {
	Score           int        `json:"score"`
	Summary         string     `json:"summary"`
	Pros            []string   `json:"pros"`
	Cons            []string   `json:"cons"`
	Recommendations []string   `json:"recommendations"`
	Jobs            []JobMatch `json:"jobs"`
}

// ScoringPolicy produces an assessment from normalized resume text and an
// externally computed similarity score in [0,100]. Implementations are
// stateless and safe for concurrent use.
type ScoringPolicy interface {
	Name() string
	Evaluate(text string, similarity int) Assessment
}

// HybridPolicy combines the heuristic rule checks with the external
// similarity signal. This is the policy the service runs by default.
type HybridPolicy struct{}

// NewHybridPolicy returns the hybrid heuristic+similarity scoring policy.
func NewHybridPolicy() *HybridPolicy { return &HybridPolicy{} }

// Name identifies the policy in logs and configuration.
func (*HybridPolicy) Name() string { return "hybrid" }

// Evaluate runs the ordered rule checks, folds their results, blends in the
// similarity score, compresses and clamps the total, and appends the
// suggestion-generator output to the recommendations.
func (*HybridPolicy) Evaluate(text string, similarity int) Assessment {
	f := ScanFeatures(text)

	delta, pros, cons, recs := fold(runChecks(f))

	raw := delta + int(math.Round(float64(similarity)*similarityWeight))
	score := compressAndClamp(raw)

	recs = append(recs, GeneralSuggestions(f)...)
	recs = append(recs, ProjectSuggestions(f)...)

	return Assessment{
		Score:           score,
		Summary:         "Hybrid heuristic and similarity analysis",
		Pros:            withFallback(pros, fallbackPro),
		Cons:            withFallback(cons, fallbackCon),
		Recommendations: withFallback(recs, fallbackRecommendation),
		Jobs:            MatchJobs(text),
	}
}

// compressAndClamp applies the compression transform and bounds the result
// to [scoreFloor, scoreCeiling].
func compressAndClamp(raw int) int {
	score := int(math.Round(compressBase + float64(raw-compressBase)*compressFactor))
	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeiling {
		return scoreCeiling
	}
	return score
}

// LocalOnlyPolicy is the legacy heuristic that predates the similarity
// integration. It ignores the similarity input entirely, which makes it the
// fallback when the similarity collaborator is unavailable and the policy
// for offline analysis.
type LocalOnlyPolicy struct{}

// NewLocalOnlyPolicy returns the legacy local-only scoring policy.
func NewLocalOnlyPolicy() *LocalOnlyPolicy { return &LocalOnlyPolicy{} }

// Name identifies the policy in logs and configuration.
func (*LocalOnlyPolicy) Name() string { return "local" }

// localSections are the broader keyword groups the legacy formula scans
// for, in award order.
var localSections = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "work history", "employment"}},
	{"education", []string{"education", "academic", "university", "college"}},
	{"skills", []string{"skills", "technologies", "technical proficiencies"}},
	{"projects", []string{"projects", "personal work", "portfolio"}},
	{"contact", []string{"email", "phone", "linkedin", "github"}},
}

// Evaluate applies the legacy formula: 50 base points, 8 per detected
// section group, a short-content penalty, capped at 99.
func (*LocalOnlyPolicy) Evaluate(text string, _ int) Assessment {
	lower := strings.ToLower(text)

	score := localBaseScore
	found := make(map[string]bool, len(localSections))
	for _, section := range localSections {
		if containsAny(lower, section.keywords) {
			found[section.name] = true
			score += localSectionPoints
		}
	}

	var pros, cons, recs []string

	if found["experience"] {
		pros = append(pros, "Professional experience section detected")
	} else {
		cons = append(cons, "Missing clear work experience section")
		recs = append(recs, "Add a dedicated 'Experience' section to showcase your career history.")
	}

	if found["skills"] {
		pros = append(pros, "Technical skills are clearly listed")
	} else {
		cons = append(cons, "Skills section is missing or poorly defined")
		recs = append(recs, "Create a 'Skills' section with keywords relevant to your target roles.")
	}

	if len(text) > localLongChars {
		pros = append(pros, "Comprehensive content length")
	} else if len(text) < localShortChars {
		score -= localShortPenalty
		cons = append(cons, "Resume is too short")
		recs = append(recs, "Expand on your achievements and responsibilities to provide more context.")
	}

	if score > localScoreCap {
		score = localScoreCap
	}

	return Assessment{
		Score:           score,
		Summary:         "Local heuristic analysis",
		Pros:            withFallback(pros, fallbackPro),
		Cons:            withFallback(cons, fallbackCon),
		Recommendations: withFallback(recs, fallbackRecommendation),
		Jobs:            MatchJobs(text),
	}
}

// withFallback returns the list unchanged when non-empty, otherwise a
// single-entry list with the fallback text.
func withFallback(list []string, fallback string) []string {
	if len(list) > 0 {
		return list
	}
	return []string{fallback}
}
