package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripWeaver/models"
)

func TestStopCountFor(t *testing.T) {
	assert.Equal(t, 2, stopCountFor(120))
	assert.Equal(t, 2, stopCountFor(140))
	assert.Equal(t, 3, stopCountFor(141))
	assert.Equal(t, 3, stopCountFor(420))
}

func TestAllocateStopMinutesSumsToRemaining(t *testing.T) {
	for _, remaining := range []int{60, 97, 130, 300} {
		for _, stops := range []int{2, 3} {
			minutes := allocateStopMinutes(remaining, stops)
			require.Len(t, minutes, stops)

			sum := 0
			for _, m := range minutes {
				assert.Positive(t, m)
				sum += m
			}
			assert.Equal(t, remaining, sum, "remaining=%d stops=%d", remaining, stops)
		}
	}
}

func TestAllocateStopMinutesSplits(t *testing.T) {
	assert.Equal(t, []int{55, 45}, allocateStopMinutes(100, 2))
	assert.Equal(t, []int{42, 35, 23}, allocateStopMinutes(100, 3))
}

func TestAssembleItemsAlternates(t *testing.T) {
	stops := []models.Stop{
		{PlaceID: "a", Title: "A", Minutes: 50},
		{PlaceID: "b", Title: "B", Minutes: 40},
		{PlaceID: "c", Title: "C", Minutes: 35},
	}
	legs := []models.TravelLeg{
		{Mode: models.ModeDrive, Minutes: 10, Title: "From A to B"},
		{Mode: models.ModeDrive, Minutes: 12, Title: "From B to C"},
	}

	items := assembleItems(stops, legs, false)
	require.Len(t, items, 5)

	kinds := make([]string, len(items))
	for i, item := range items {
		kinds[i] = item.Kind
	}
	assert.Equal(t, []string{
		models.ItemStop, models.ItemTravel, models.ItemStop, models.ItemTravel, models.ItemStop,
	}, kinds)
}

func TestAssembleItemsParkOncePrefix(t *testing.T) {
	stops := []models.Stop{
		{PlaceID: "a", Title: "A", Minutes: 50, Location: models.GeoLocation{Latitude: 49.28, Longitude: -123.12}},
		{PlaceID: "b", Title: "B", Minutes: 40},
		{PlaceID: "c", Title: "C", Minutes: 35},
	}
	legs := []models.TravelLeg{
		{Mode: models.ModeWalk, Minutes: 5, Title: "Walk from parking to A"},
		{Mode: models.ModeWalk, Minutes: 8, Title: "From A to B"},
		{Mode: models.ModeWalk, Minutes: 9, Title: "From B to C"},
	}

	items := assembleItems(stops, legs, true)
	require.Len(t, items, 7)

	require.Equal(t, models.ItemStop, items[0].Kind)
	assert.Equal(t, "parking", items[0].Stop.PlaceID)
	assert.Equal(t, parkingStopMinutes, items[0].Minutes)

	for i := 1; i < len(items); i += 2 {
		require.Equal(t, models.ItemTravel, items[i].Kind)
		assert.Equal(t, models.ModeWalk, items[i].Travel.Mode)
	}
}

func TestAssembleItemsUsesParkingSpotWhenPresent(t *testing.T) {
	stops := []models.Stop{
		{
			PlaceID:  "a",
			Title:    "A",
			Minutes:  60,
			Location: models.GeoLocation{Latitude: 49.28, Longitude: -123.12},
			Parking: &models.ParkingSpot{
				Title:    "Lot 4",
				Location: models.GeoLocation{Latitude: 49.281, Longitude: -123.121},
			},
		},
		{PlaceID: "b", Title: "B", Minutes: 55},
	}
	legs := []models.TravelLeg{
		{Mode: models.ModeWalk, Minutes: 5},
		{Mode: models.ModeWalk, Minutes: 7},
	}

	items := assembleItems(stops, legs, true)
	require.Len(t, items, 5)
	assert.Equal(t, "Park at Lot 4", items[0].Stop.Title)
}
