package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TripWeaver/models"
)

func TestPickCategoryPriority(t *testing.T) {
	// Food wins over park when both tag families are present.
	assert.Equal(t, models.CategoryFood, PickCategory([]string{"park", "cafe"}))
	assert.Equal(t, models.CategoryFood, PickCategory([]string{"restaurant"}))
	assert.Equal(t, models.CategoryPark, PickCategory([]string{"natural_feature", "tourist_attraction"}))
	assert.Equal(t, models.CategoryAttraction, PickCategory([]string{"museum"}))
	assert.Equal(t, models.CategoryAttraction, PickCategory(nil))
}

func TestPickCategoryStable(t *testing.T) {
	tags := []string{"bar", "tourist_attraction", "park"}
	first := PickCategory(tags)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PickCategory(tags))
	}
}

func TestIsNoisy(t *testing.T) {
	assert.True(t, IsNoisy([]string{"bank", "atm"}))
	assert.True(t, IsNoisy([]string{"car_repair"}))

	// One touristic tag rescues the place.
	assert.False(t, IsNoisy([]string{"bank", "tourist_attraction"}))

	// Empty tag set is never noisy.
	assert.False(t, IsNoisy(nil))
	assert.False(t, IsNoisy([]string{}))
}

func TestScoreCandidateMonotonicInRating(t *testing.T) {
	base := models.Place{Types: []string{"museum"}, ReviewCount: 100}

	prev := -1.0
	for _, rating := range []float64{0, 1.5, 3.0, 4.2, 5.0} {
		p := base
		p.Rating = rating
		score := ScoreCandidate(p, false)
		assert.Greater(t, score, prev)
		prev = score
	}
}

func TestScoreCandidateMonotonicInReviews(t *testing.T) {
	base := models.Place{Types: []string{"museum"}, Rating: 4.0}

	prev := -1.0
	for _, reviews := range []int{0, 1, 10, 100, 10000} {
		p := base
		p.ReviewCount = reviews
		score := ScoreCandidate(p, false)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreCandidateMissingFieldsBottomOut(t *testing.T) {
	p := models.Place{Types: []string{"museum"}}
	assert.Equal(t, 0.0, ScoreCandidate(p, false))
}

func TestScoreCandidateRiderModeScenicBoost(t *testing.T) {
	scenic := models.Place{Types: []string{"viewpoint"}, Rating: 4.5, ReviewCount: 200}
	plain := models.Place{Types: []string{"museum"}, Rating: 4.5, ReviewCount: 200}

	// Identical rating and review count, but the scenic tag wins
	// strictly once rider mode is on.
	assert.Equal(t, ScoreCandidate(scenic, false), ScoreCandidate(plain, false))
	assert.Greater(t, ScoreCandidate(scenic, true), ScoreCandidate(plain, true))
}

func TestScoreCandidateRiderModeFoodBoost(t *testing.T) {
	cafe := models.Place{Types: []string{"cafe"}, Rating: 4.0, ReviewCount: 50}
	boosted := ScoreCandidate(cafe, true)
	plain := ScoreCandidate(cafe, false)
	assert.InDelta(t, plain*riderFoodBoost, boosted, 1e-9)
}
