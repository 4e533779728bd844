package analysis

// Suggestion generators run regardless of the rule checks and contribute to
// recommendations only, never to the score or the pro/con lists. Both are
// pure and emit suggestions in the fixed check order below.

// GeneralSuggestions produces rewrite advice for common weaknesses:
// missing quantification, weak verbs, filler phrasing, missing deployment
// detail, unclear tech stack and absent teamwork signals.
func GeneralSuggestions(f Features) []string {
	var suggestions []string

	if !f.HasMetrics {
		suggestions = append(suggestions,
			"Add quantified achievements to your experience and projects (e.g. 'improved performance by 30%', 'served 500+ users').")
	}

	if !f.HasActionVerb {
		suggestions = append(suggestions,
			"Use strong action verbs like 'built', 'optimized', 'implemented', 'engineered' to start your bullet points.")
	}

	if f.HasGenericPhrase {
		suggestions = append(suggestions,
			"Replace generic phrases like 'worked on' or 'helped in' with specific technical contributions.")
	}

	if f.HasProjectIndicator && !f.MentionsDeployment {
		suggestions = append(suggestions,
			"Mention deployment details of your projects (e.g. hosted on Vercel, Render, AWS, Firebase).")
	}

	if !f.HasCoreTech {
		suggestions = append(suggestions,
			"Clearly list the technologies used in each project (e.g. React, Node.js, MongoDB, Python, SQL).")
	}

	if !f.HasTeamwork {
		suggestions = append(suggestions,
			"Highlight collaboration or teamwork experience to show real-world working ability.")
	}

	return suggestions
}

// ProjectSuggestions produces project-specific advice. It only activates
// when the text mentions project-like work at all; each subsequent check is
// independent.
func ProjectSuggestions(f Features) []string {
	if !f.HasProjectIndicator {
		return nil
	}

	var suggestions []string

	if !f.HasMetrics {
		suggestions = append(suggestions,
			"For each project, add measurable impact (e.g. 'served 500+ users', 'reduced load time by 40%', 'handled 1000+ records').")
	}

	if !f.HasDeploymentPlatform {
		suggestions = append(suggestions,
			"Mention where your projects are deployed (e.g. Vercel, AWS, Firebase) to show production readiness.")
	}

	if !f.HasTechKeyword {
		suggestions = append(suggestions,
			"Clearly specify the technology stack used in each project (e.g. React, Node.js, MongoDB, Python, SQL).")
	}

	if !f.HasActionVerb {
		suggestions = append(suggestions,
			"Start project bullet points with strong action verbs like 'Built', 'Designed', 'Implemented', 'Optimized'.")
	}

	return suggestions
}
