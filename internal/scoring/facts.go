// Package scoring holds the deterministic half of the screening pipeline:
// the fact projections both scorers consume, the rules score, and the
// canonical final-score combination.
package scoring

// CandidateFacts is the read-only projection of a seeker used for scoring.
type CandidateFacts struct {
	Email           string
	Skills          []string
	ExperienceYears int
	ResumeText      string
}

// JobFacts is the read-only projection of a job posting used for scoring.
type JobFacts struct {
	Title          string
	Description    string
	RequiredSkills []string
	MinYears       int
}
