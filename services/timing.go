package services

import (
	"TripWeaver/models"
)

const (
	minPlanStops = 2
	maxPlanStops = 3

	// Plans of 140 minutes or less get two stops, longer ones three.
	twoStopMaxMinutes = 140

	// Whatever travel eats, stops still share at least this much.
	minStopBudgetMinutes = 60

	// Floor applied to every stop duration at assembly time.
	minStopMinutes = 25

	// Client-supplied durations on swap are clamped to this range but
	// otherwise preserved exactly.
	minSwapStopMinutes = 20
	maxSwapStopMinutes = 180

	// Synthetic park-once pseudo-stop.
	parkingStopMinutes = 5
)

// Proportional splits of the stop budget.
var (
	twoStopSplit   = []float64{0.55}
	threeStopSplit = []float64{0.42, 0.35}
)

func stopCountFor(totalMinutes int) int {
	if totalMinutes <= twoStopMaxMinutes {
		return minPlanStops
	}
	return maxPlanStops
}

// allocateStopMinutes splits the remaining budget across stops with
// fixed proportions, floor on all but the last, remainder to the last.
func allocateStopMinutes(remaining, stopCount int) []int {
	split := twoStopSplit
	if stopCount >= maxPlanStops {
		split = threeStopSplit
	}

	minutes := make([]int, 0, stopCount)
	used := 0
	for i := 0; i < stopCount-1 && i < len(split); i++ {
		part := int(float64(remaining) * split[i])
		minutes = append(minutes, part)
		used += part
	}
	minutes = append(minutes, remaining-used)
	return minutes
}

// assembleItems builds the alternating stop/travel sequence and
// prefixes the park-once pseudo-stop. Stop durations are taken as
// given; the generation path floors them beforehand, the swap path
// preserves the caller's clamped values.
func assembleItems(stops []models.Stop, legs []models.TravelLeg, parkOnce bool) []models.PlanItem {
	items := make([]models.PlanItem, 0, len(stops)*2)

	legIdx := 0
	if parkOnce && len(legs) > len(stops)-1 {
		parking := parkingPseudoStop(stops[0])
		items = append(items,
			models.PlanItem{Kind: models.ItemStop, Minutes: parking.Minutes, Stop: parking},
			models.PlanItem{Kind: models.ItemTravel, Minutes: legs[0].Minutes, Travel: &legs[0]},
		)
		legIdx = 1
	}

	for i := range stops {
		items = append(items, models.PlanItem{Kind: models.ItemStop, Minutes: stops[i].Minutes, Stop: &stops[i]})
		if legIdx < len(legs) {
			items = append(items, models.PlanItem{Kind: models.ItemTravel, Minutes: legs[legIdx].Minutes, Travel: &legs[legIdx]})
			legIdx++
		}
	}
	return items
}

func parkingPseudoStop(first models.Stop) *models.Stop {
	stop := &models.Stop{
		PlaceID:  "parking",
		Title:    "Park the car",
		Location: first.Location,
		Category: models.CategoryAttraction,
		Minutes:  parkingStopMinutes,
	}
	if first.Parking != nil {
		stop.Title = "Park at " + first.Parking.Title
		stop.Address = first.Parking.Address
		stop.Location = first.Parking.Location
		stop.MapsLink = first.Parking.MapsLink
	}
	return stop
}
