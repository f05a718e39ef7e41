package services

import (
	"sort"

	"TripWeaver/models"
	"TripWeaver/utils"
)

// orderStops sequences the picked stops. The anchor stays first when
// park-once is on; rider mode with 3+ stops re-sorts everything after
// the anchor into a closest ring around it.
func orderStops(stops []models.Place, parkOnce, riderMode bool) []models.Place {
	var ordered []models.Place
	if parkOnce && len(stops) > 0 {
		ordered = append([]models.Place{stops[0]}, nearestNeighborOrder(stops[1:], riderMode, &stops[0])...)
	} else {
		ordered = nearestNeighborOrder(stops, riderMode, nil)
	}

	if riderMode && len(ordered) >= 3 {
		anchor := ordered[0]
		rest := append([]models.Place{}, ordered[1:]...)
		sort.SliceStable(rest, func(i, j int) bool {
			return placeDistanceKm(anchor, rest[i]) < placeDistanceKm(anchor, rest[j])
		})
		ordered = append([]models.Place{anchor}, rest...)
	}
	return ordered
}

// nearestNeighborOrder chains stops by smallest great-circle hop. The
// chain starts from the given start stop, or from the top-scored stop
// when none is given. Lists of length <=2 need no sequencing.
func nearestNeighborOrder(stops []models.Place, riderMode bool, start *models.Place) []models.Place {
	if len(stops) <= 2 && start == nil {
		return stops
	}
	if len(stops) == 0 {
		return stops
	}

	remaining := append([]models.Place{}, stops...)
	sort.SliceStable(remaining, func(i, j int) bool {
		return ScoreCandidate(remaining[i], riderMode) > ScoreCandidate(remaining[j], riderMode)
	})

	var ordered []models.Place
	current := remaining[0]
	if start != nil {
		current = *start
	} else {
		ordered = append(ordered, current)
		remaining = remaining[1:]
	}

	for len(remaining) > 0 {
		best := 0
		bestDist := placeDistanceKm(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := placeDistanceKm(current, remaining[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return ordered
}

func placeDistanceKm(a, b models.Place) float64 {
	if a.Location == nil || b.Location == nil {
		return 0
	}
	return utils.Haversine(a.Location.Latitude, a.Location.Longitude, b.Location.Latitude, b.Location.Longitude)
}
