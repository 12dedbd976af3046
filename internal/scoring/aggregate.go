package scoring

import "math"

// Weights for combining the two scores into the final score. The aggregator is
// the single source of truth: any final score the model returns is ignored so
// the combination rule stays auditable.
const (
	rulesWeight    = 0.4
	semanticWeight = 0.6
)

// FinalScore combines the rules and semantic scores, clamped to [0,100].
func FinalScore(rulesScore, semanticScore int) int {
	final := rulesWeight*float64(rulesScore) + semanticWeight*float64(semanticScore)
	return clampScore(int(math.Round(final)))
}
