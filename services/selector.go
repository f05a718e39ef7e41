package services

import (
	"TripWeaver/models"
	"TripWeaver/utils"
)

const (
	// Park-once walking pools around the anchor.
	primaryWalkKm = 1.5
	relaxedWalkKm = 3.0
)

// categoryCycle fills desired slots not claimed by a vibe.
var categoryCycle = []models.Category{models.CategoryFood, models.CategoryPark, models.CategoryAttraction}

// desiredCategories derives the category sequence for the plan from
// the requested vibes, truncated to the stop count.
func desiredCategories(vibes []string, stopCount int) []models.Category {
	desired := []models.Category{models.CategoryAttraction}

	for _, vibe := range vibes {
		switch vibe {
		case "foodie":
			desired = append(desired, models.CategoryFood)
		case "adventure", "relaxed":
			desired = append(desired, models.CategoryPark)
		case "culture":
			desired = append(desired, models.CategoryAttraction)
		}
	}

	present := make(map[models.Category]bool)
	for _, c := range desired {
		present[c] = true
	}
	for _, c := range categoryCycle {
		if !present[c] {
			desired = append(desired, c)
			present[c] = true
		}
	}

	if len(desired) > stopCount {
		desired = desired[:stopCount]
	}
	return desired
}

// selectStops picks a category-balanced subset of the pool. The first
// pick anchors the plan; with park-once on, later picks prefer places
// within walking range of that anchor.
func selectStops(pool []models.Place, stopCount int, desired []models.Category, parkOnce bool) []models.Place {
	if len(pool) == 0 {
		return nil
	}

	anchor := pool[0]
	for _, place := range pool {
		if PickCategory(place.Types) == desired[0] {
			anchor = place
			break
		}
	}

	primary, relaxed := pool, pool
	if parkOnce && anchor.Location != nil {
		primary = withinKm(pool, anchor.Location, primaryWalkKm)
		relaxed = withinKm(pool, anchor.Location, relaxedWalkKm)
	}

	picked := []models.Place{anchor}
	used := map[string]bool{anchor.ID: true}

	for _, category := range desired[1:] {
		if len(picked) >= stopCount {
			break
		}
		if place, ok := findByCategory(category, used, primary, relaxed, pool); ok {
			picked = append(picked, place)
			used[place.ID] = true
		}
	}

	// Fallback fill when the desired categories ran dry.
	for _, tier := range [][]models.Place{primary, relaxed, pool} {
		for _, place := range tier {
			if len(picked) >= stopCount {
				return picked
			}
			if used[place.ID] {
				continue
			}
			picked = append(picked, place)
			used[place.ID] = true
		}
	}
	return picked
}

func findByCategory(category models.Category, used map[string]bool, tiers ...[]models.Place) (models.Place, bool) {
	for _, tier := range tiers {
		for _, place := range tier {
			if used[place.ID] {
				continue
			}
			if PickCategory(place.Types) == category {
				return place, true
			}
		}
	}
	return models.Place{}, false
}

func withinKm(pool []models.Place, from *models.GeoLocation, km float64) []models.Place {
	var out []models.Place
	for _, place := range pool {
		if place.Location == nil {
			continue
		}
		if utils.Haversine(from.Latitude, from.Longitude, place.Location.Latitude, place.Location.Longitude) <= km {
			out = append(out, place)
		}
	}
	return out
}
