package scoring

import (
	"math"
	"strings"
)

// Weights for the rules score. Skill overlap dominates.
const (
	skillOverlapWeight    = 0.7
	experienceMatchWeight = 0.3
)

// RulesScore computes the deterministic 0-100 fit score from skill overlap and
// experience match. Absent skills count as an empty set, never an error.
func RulesScore(candidate CandidateFacts, job JobFacts) int {
	overlap := skillOverlapRatio(candidate.Skills, job.RequiredSkills)
	exp := experienceRatio(candidate.ExperienceYears, job.MinYears)

	score := 100 * (skillOverlapWeight*overlap + experienceMatchWeight*exp)
	return clampScore(int(math.Round(score)))
}

// skillOverlapRatio returns |candidate ∩ required| / |required|, matching
// skills case-insensitively after trimming.
func skillOverlapRatio(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		if key := normalizeSkill(s); key != "" {
			have[key] = true
		}
	}

	required := make(map[string]bool, len(requiredSkills))
	matched := 0
	for _, s := range requiredSkills {
		key := normalizeSkill(s)
		if key == "" || required[key] {
			continue
		}
		required[key] = true
		if have[key] {
			matched++
		}
	}

	if len(required) == 0 {
		return 0
	}
	return float64(matched) / float64(len(required))
}

// experienceRatio returns min(1, years/minYears). A job without a minimum is
// fully satisfied by any candidate.
func experienceRatio(years, minYears int) float64 {
	if minYears <= 0 {
		return 1
	}
	if years <= 0 {
		return 0
	}
	ratio := float64(years) / float64(minYears)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
