package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"TripWeaver/models"
	"TripWeaver/utils"
)

const (
	maxSearchResults = 20

	// Quality gate: suppress low-confidence low-quality results while
	// tolerating sparse high-rated ones.
	confidentReviewCount = 20
	confidentMinRating   = 4.1
	sparseReviewCount    = 5
	sparseMinRating      = 3.9

	// Candidates farther than this from the destination center are
	// dropped (only when a center was resolved).
	centerRadiusKm = 10.0
)

// candidatePool is the scored, filtered set one plan selects from.
type candidatePool struct {
	Places []models.Place
	Center *models.GeoLocation
}

func poolQueries(destination string, vibes []string, riderMode bool) []string {
	queries := make([]string, 0, len(vibes)+4)
	for _, vibe := range vibes {
		queries = append(queries, fmt.Sprintf("%s spots in %s", vibe, destination))
	}

	foodQuery := fmt.Sprintf("best places to eat in %s", destination)
	if riderMode {
		foodQuery = fmt.Sprintf("coffee with parking in %s", destination)
	}
	queries = append(queries,
		fmt.Sprintf("top attractions in %s", destination),
		foodQuery,
		fmt.Sprintf("parks in %s", destination),
		fmt.Sprintf("scenic viewpoints in %s", destination),
	)
	return queries
}

// buildPool issues every search concurrently, merges by place id in
// query order, then filters and ranks. The extra leading search for
// the bare destination resolves the center used for radius filtering.
func (ps *PlanService) buildPool(ctx context.Context, req *models.PlanRequest, riderMode bool) (*candidatePool, error) {
	queries := append([]string{req.Destination}, poolQueries(req.Destination, req.Vibes, riderMode)...)

	type searchResult struct {
		idx    int
		places []models.Place
		err    error
	}

	resultChan := make(chan searchResult, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(idx int, q string) {
			defer wg.Done()
			limit := maxSearchResults
			if idx == 0 {
				limit = 1
			}
			places, err := ps.Provider.SearchPlaces(ctx, q, limit, nil)
			resultChan <- searchResult{idx: idx, places: places, err: err}
		}(i, query)
	}
	wg.Wait()
	close(resultChan)

	bySearch := make([][]models.Place, len(queries))
	for result := range resultChan {
		if result.err != nil {
			return nil, result.err
		}
		bySearch[result.idx] = result.places
	}

	var center *models.GeoLocation
	if len(bySearch[0]) > 0 && bySearch[0][0].Location != nil {
		center = bySearch[0][0].Location
	}

	excluded := make(map[string]bool, len(req.ExcludeIDs))
	for _, id := range req.ExcludeIDs {
		excluded[id] = true
	}

	seen := make(map[string]bool)
	var pool []models.Place
	for _, places := range bySearch[1:] {
		for _, place := range places {
			if place.ID == "" || seen[place.ID] {
				continue
			}
			seen[place.ID] = true
			if !keepCandidate(place, excluded, center) {
				continue
			}
			pool = append(pool, place)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return ScoreCandidate(pool[i], riderMode) > ScoreCandidate(pool[j], riderMode)
	})

	if len(pool) < minPlanStops {
		return nil, utils.NewCustomError(http.StatusNotFound, utils.ErrNotEnoughPlaces)
	}
	return &candidatePool{Places: pool, Center: center}, nil
}

func keepCandidate(place models.Place, excluded map[string]bool, center *models.GeoLocation) bool {
	if place.Location == nil {
		return false
	}
	if excluded[place.ID] {
		return false
	}
	if IsNoisy(place.Types) {
		return false
	}
	if place.ReviewCount >= confidentReviewCount && place.Rating < confidentMinRating {
		return false
	}
	if place.ReviewCount >= sparseReviewCount && place.Rating < sparseMinRating {
		return false
	}
	if center != nil {
		dist := utils.Haversine(center.Latitude, center.Longitude, place.Location.Latitude, place.Location.Longitude)
		if dist > centerRadiusKm {
			return false
		}
	}
	return true
}
