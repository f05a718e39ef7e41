package services

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"

	"TripWeaver/models"
	"TripWeaver/utils"
)

// Replacement search queries per category.
var swapQueries = map[models.Category]string{
	models.CategoryFood:       "cafes and restaurants",
	models.CategoryPark:       "parks and viewpoints",
	models.CategoryAttraction: "attractions and museums",
}

// SwapStop replaces exactly one stop with a same-category, open,
// nearby alternative, preserving every other stop's identity and all
// caller-supplied durations, then rebuilds the plan from the new list.
func (ps *PlanService) SwapStop(ctx context.Context, req *models.SwapRequest) (*models.PlanResponse, error) {
	normalizeRequest(&req.PlanRequest)
	if req.Destination == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "destination is required")
	}
	if len(req.Stops) < minPlanStops {
		return nil, utils.NewCustomError(http.StatusBadRequest, "at least two stops are required")
	}
	if req.SwapIndex < 0 || req.SwapIndex >= len(req.Stops) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "swap index out of range")
	}
	for _, stop := range req.Stops {
		if stop.PlaceID == "" || strings.TrimSpace(stop.Title) == "" || stop.Minutes <= 0 || stop.Location == nil {
			return nil, utils.NewCustomError(http.StatusBadRequest, "every stop needs an id, title, duration and location")
		}
	}

	target := req.Stops[req.SwapIndex]
	anchor := target.Location
	if req.Anchor != nil {
		anchor = req.Anchor
	}

	// Best-effort category of the stop being replaced.
	category := models.CategoryAttraction
	if details, err := ps.Provider.PlaceDetails(ctx, target.PlaceID); err == nil {
		category = PickCategory(details.Types)
	}
	log.Printf("[SWAP] Replacing stop %d (%s) category=%s", req.SwapIndex, target.Title, category)

	replacement, err := ps.findReplacement(ctx, req, category, anchor)
	if err != nil {
		return nil, err
	}

	// Rebuild the stop list: only the swapped index changes identity,
	// every duration stays as the caller sent it (clamped).
	places := make([]models.Place, len(req.Stops))
	minutes := make([]int, len(req.Stops))
	for i, stop := range req.Stops {
		if i == req.SwapIndex {
			places[i] = *replacement
		} else {
			places[i] = models.Place{ID: stop.PlaceID, Title: stop.Title, Location: stop.Location}
		}
		minutes[i] = utils.ClampInt(stop.Minutes, minSwapStopMinutes, maxSwapStopMinutes)
	}

	stops := make([]models.Stop, 0, len(places))
	for i, place := range places {
		stop, open, err := ps.enrichStop(ctx, place, req.Destination)
		if err != nil {
			return nil, err
		}
		if !open {
			// A sibling that has since closed fails the whole swap
			// rather than silently shipping a closed stop.
			return nil, utils.NewCustomError(http.StatusNotFound, utils.ErrNotEnoughOpen)
		}
		stop.Minutes = minutes[i]
		stops = append(stops, *stop)
	}

	legs, err := ps.buildLegs(ctx, stops, req.ParkOnce, req.BufferMinutes)
	if err != nil {
		return nil, err
	}

	return &models.PlanResponse{
		Destination:  req.Destination,
		TotalMinutes: req.TotalMinutes,
		Vibe:         strings.Join(req.Vibes, ", "),
		ParkOnce:     req.ParkOnce,
		RiderMode:    req.RiderMode,
		Items:        assembleItems(stops, legs, req.ParkOnce),
	}, nil
}

// findReplacement searches near the anchor for an open place of the
// same category that is not already part of the plan.
func (ps *PlanService) findReplacement(ctx context.Context, req *models.SwapRequest, category models.Category, anchor *models.GeoLocation) (*models.Place, error) {
	used := make(map[string]bool, len(req.Stops))
	for _, stop := range req.Stops {
		used[stop.PlaceID] = true
	}

	radiusKm := swapRadiusDriveKm
	if req.ParkOnce {
		radiusKm = swapRadiusParkedKm
	}

	hits, err := ps.Provider.SearchPlaces(ctx, swapQueries[category], swapSearchResults, anchor)
	if err != nil {
		return nil, err
	}

	var candidates []models.Place
	for _, place := range hits {
		if place.Location == nil || used[place.ID] || IsNoisy(place.Types) {
			continue
		}
		if PickCategory(place.Types) != category {
			continue
		}
		dist := utils.Haversine(anchor.Latitude, anchor.Longitude, place.Location.Latitude, place.Location.Longitude)
		if dist > radiusKm {
			continue
		}
		candidates = append(candidates, place)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return ScoreCandidate(candidates[i], req.RiderMode) > ScoreCandidate(candidates[j], req.RiderMode)
	})
	if len(candidates) > swapDetailAttempts {
		candidates = candidates[:swapDetailAttempts]
	}

	for _, candidate := range candidates {
		details, err := ps.Provider.PlaceDetails(ctx, candidate.ID)
		if err != nil {
			return nil, err
		}
		if details.OpenNow != nil && !*details.OpenNow {
			continue
		}
		return &candidate, nil
	}
	return nil, utils.NewCustomError(http.StatusNotFound, utils.ErrNoOpenReplacement)
}
