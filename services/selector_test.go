package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripWeaver/models"
)

func TestDesiredCategoriesDefaults(t *testing.T) {
	// Culture doubles down on attractions before the fill cycle.
	assert.Equal(t,
		[]models.Category{models.CategoryAttraction, models.CategoryAttraction, models.CategoryFood},
		desiredCategories([]string{"culture"}, 3))

	assert.Equal(t,
		[]models.Category{models.CategoryAttraction, models.CategoryFood},
		desiredCategories([]string{"foodie"}, 2))

	assert.Equal(t,
		[]models.Category{models.CategoryAttraction, models.CategoryPark, models.CategoryFood},
		desiredCategories([]string{"adventure"}, 3))
}

func TestDesiredCategoriesTruncates(t *testing.T) {
	desired := desiredCategories([]string{"culture", "foodie", "relaxed"}, 2)
	assert.Len(t, desired, 2)
	assert.Equal(t, models.CategoryAttraction, desired[0])
}

func loc(lat, lng float64) *models.GeoLocation {
	return &models.GeoLocation{Latitude: lat, Longitude: lng}
}

func testPool() []models.Place {
	return []models.Place{
		{ID: "gallery", Types: []string{"tourist_attraction"}, Rating: 4.6, ReviewCount: 1200, Location: loc(49.2827, -123.1207)},
		{ID: "park", Types: []string{"park"}, Rating: 4.7, ReviewCount: 800, Location: loc(49.3043, -123.1443)},
		{ID: "museum", Types: []string{"museum", "tourist_attraction"}, Rating: 4.4, ReviewCount: 900, Location: loc(49.2766, -123.1250)},
		{ID: "cafe", Types: []string{"cafe"}, Rating: 4.5, ReviewCount: 300, Location: loc(49.2820, -123.1171)},
	}
}

func TestSelectStopsCategoryBalance(t *testing.T) {
	pool := testPool()
	desired := []models.Category{models.CategoryAttraction, models.CategoryFood, models.CategoryPark}

	picked := selectStops(pool, 3, desired, false)
	require.Len(t, picked, 3)
	assert.Equal(t, "gallery", picked[0].ID)
	assert.Equal(t, "cafe", picked[1].ID)
	assert.Equal(t, "park", picked[2].ID)
}

func TestSelectStopsNoDuplicateIDs(t *testing.T) {
	pool := testPool()
	desired := desiredCategories([]string{"culture"}, 3)

	picked := selectStops(pool, 3, desired, false)
	seen := make(map[string]bool)
	for _, p := range picked {
		assert.False(t, seen[p.ID], "place %s picked twice", p.ID)
		seen[p.ID] = true
	}
}

func TestSelectStopsAnchorFallback(t *testing.T) {
	// No attraction in the pool: highest-scored place anchors.
	pool := []models.Place{
		{ID: "cafe-a", Types: []string{"cafe"}, Rating: 4.8, ReviewCount: 500, Location: loc(49.28, -123.12)},
		{ID: "cafe-b", Types: []string{"cafe"}, Rating: 4.2, ReviewCount: 100, Location: loc(49.29, -123.13)},
	}
	picked := selectStops(pool, 2, []models.Category{models.CategoryAttraction, models.CategoryPark}, false)
	require.Len(t, picked, 2)
	assert.Equal(t, "cafe-a", picked[0].ID)
}

func TestSelectStopsParkOncePrefersWalkable(t *testing.T) {
	pool := []models.Place{
		{ID: "anchor", Types: []string{"tourist_attraction"}, Rating: 4.6, ReviewCount: 1000, Location: loc(49.2827, -123.1207)},
		// ~8 km away: outside both walking pools.
		{ID: "far-cafe", Types: []string{"cafe"}, Rating: 4.9, ReviewCount: 2000, Location: loc(49.3500, -123.0300)},
		// ~300 m away: inside the primary pool.
		{ID: "near-cafe", Types: []string{"cafe"}, Rating: 4.2, ReviewCount: 150, Location: loc(49.2850, -123.1220)},
	}
	desired := []models.Category{models.CategoryAttraction, models.CategoryFood}

	picked := selectStops(pool, 2, desired, true)
	require.Len(t, picked, 2)
	assert.Equal(t, "anchor", picked[0].ID)
	assert.Equal(t, "near-cafe", picked[1].ID, "park-once should prefer the walkable cafe over the better-rated far one")

	// Without park-once the better-rated cafe wins.
	picked = selectStops(pool, 2, desired, false)
	assert.Equal(t, "far-cafe", picked[1].ID)
}
