package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalScore_Bounds(t *testing.T) {
	assert.Equal(t, 0, FinalScore(0, 0))
	assert.Equal(t, 100, FinalScore(100, 100))
}

func TestFinalScore_Weighting(t *testing.T) {
	// round(0.4*100 + 0.6*80) = 88
	assert.Equal(t, 88, FinalScore(100, 80))
	// round(0.4*50 + 0.6*90) = 74
	assert.Equal(t, 74, FinalScore(50, 90))
	// semantic weighs more than rules
	assert.Greater(t, FinalScore(0, 100), FinalScore(100, 0))
}

func TestFinalScore_Monotonic(t *testing.T) {
	for r := 0; r <= 100; r += 10 {
		for s := 0; s <= 100; s += 10 {
			base := FinalScore(r, s)
			if r < 100 {
				assert.GreaterOrEqual(t, FinalScore(r+10, s), base)
			}
			if s < 100 {
				assert.GreaterOrEqual(t, FinalScore(r, s+10), base)
			}
		}
	}
}

func TestFinalScore_ClampsOutOfRangeInputs(t *testing.T) {
	assert.Equal(t, 100, FinalScore(150, 150))
	assert.Equal(t, 0, FinalScore(-10, -10))
}
