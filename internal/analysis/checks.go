package analysis

// Point values for the individual rule checks.
const (
	experiencePoints = 18
	projectsPoints   = 18
	skillsPoints     = 12
	educationPoints  = 12

	experiencePenalty = 18
	projectsPenalty   = 10

	bulletPoints  = 14
	bulletPenalty = 10
	metricPoints  = 16
	metricPenalty = 12
	verbPoints    = 8
	verbPenalty   = 6

	lengthBonus   = 6
	lengthPenalty = 8

	wellRoundedBonus = 8

	// minBulletCount is the bullet-marker count required for the bullet
	// check and the well-rounded booster.
	minBulletCount = 4

	longResumeChars  = 800
	shortResumeChars = 400
)

// CheckResult is the outcome of a single rule check: a signed score delta
// plus at most one pro, one con and one recommendation. Rule checks never
// fail; an inapplicable check returns the zero value.
type CheckResult struct {
	Delta          int
	Pro            string
	Con            string
	Recommendation string
}

// runChecks evaluates every rule check against the scanned features and
// returns the results in fixed order. The fold over this slice is what
// makes the pros/cons/recommendations ordering deterministic.
func runChecks(f Features) []CheckResult {
	return []CheckResult{
		checkExperience(f),
		checkProjects(f),
		checkSkills(f),
		checkEducation(f),
		checkBullets(f),
		checkMetrics(f),
		checkActionVerbs(f),
		checkLength(f),
		checkWellRounded(f),
	}
}

func checkExperience(f Features) CheckResult {
	if f.HasExperience {
		return CheckResult{Delta: experiencePoints, Pro: "Experience section detected"}
	}
	return CheckResult{
		Delta:          -experiencePenalty,
		Con:            "No experience/internship section found",
		Recommendation: "Add an Experience or Internship section even for academic, freelance, or training work.",
	}
}

func checkProjects(f Features) CheckResult {
	if f.HasProjects {
		return CheckResult{Delta: projectsPoints, Pro: "Projects section present"}
	}
	return CheckResult{
		Delta:          -projectsPenalty,
		Con:            "Projects section missing",
		Recommendation: "Add a Projects section to showcase hands-on work.",
	}
}

func checkSkills(f Features) CheckResult {
	if f.HasSkills {
		return CheckResult{Delta: skillsPoints}
	}
	return CheckResult{}
}

func checkEducation(f Features) CheckResult {
	if f.HasEducation {
		return CheckResult{Delta: educationPoints}
	}
	return CheckResult{}
}

func checkBullets(f Features) CheckResult {
	if f.BulletCount >= minBulletCount {
		return CheckResult{Delta: bulletPoints, Pro: "Good use of bullet points"}
	}
	return CheckResult{
		Delta:          -bulletPenalty,
		Con:            "Poor or missing bullet points",
		Recommendation: "Use bullet points to describe responsibilities and achievements.",
	}
}

func checkMetrics(f Features) CheckResult {
	if f.HasMetrics {
		return CheckResult{Delta: metricPoints, Pro: "Quantified achievements found"}
	}
	return CheckResult{
		Delta:          -metricPenalty,
		Con:            "Lacks quantified impact",
		Recommendation: "Add numbers (e.g. 'improved performance by 30%', 'served 500+ users').",
	}
}

// checkActionVerbs penalizes score and recommendations only. It never emits
// a con entry, unlike the bullet and metric checks.
func checkActionVerbs(f Features) CheckResult {
	if f.HasActionVerb {
		return CheckResult{Delta: verbPoints}
	}
	return CheckResult{
		Delta:          -verbPenalty,
		Recommendation: "Start bullet points with action verbs like built, optimized, led, designed.",
	}
}

func checkLength(f Features) CheckResult {
	if f.Length > longResumeChars {
		return CheckResult{Delta: lengthBonus}
	}
	if f.Length < shortResumeChars {
		return CheckResult{
			Delta:          -lengthPenalty,
			Con:            "Resume too short",
			Recommendation: "Expand your content with more details about projects, skills, and learning.",
		}
	}
	return CheckResult{}
}

// checkWellRounded awards the booster when projects, skills and education
// are all present and the text is bullet-formatted.
func checkWellRounded(f Features) CheckResult {
	if f.HasProjects && f.HasSkills && f.HasEducation && f.BulletCount >= minBulletCount {
		return CheckResult{Delta: wellRoundedBonus}
	}
	return CheckResult{}
}

// fold combines an ordered list of check results into a total score delta
// and the accumulated pro/con/recommendation lists, preserving check order.
func fold(results []CheckResult) (delta int, pros, cons, recs []string) {
	for _, r := range results {
		delta += r.Delta
		if r.Pro != "" {
			pros = append(pros, r.Pro)
		}
		if r.Con != "" {
			cons = append(cons, r.Con)
		}
		if r.Recommendation != "" {
			recs = append(recs, r.Recommendation)
		}
	}
	return delta, pros, cons, recs
}
