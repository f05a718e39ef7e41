package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mmcloughlin/geohash"

	"TripWeaver/models"
	"TripWeaver/utils"
)

const (
	minTotalMinutes = 120
	maxTotalMinutes = 420
	maxBufferMins   = 20

	defaultVibe = "culture"

	// Enrichment lookups per stop slot before giving up.
	enrichAttemptsPerStop = 8

	reviewExcerptLimit = 170

	// Swap search tuning.
	swapSearchResults  = 30
	swapDetailAttempts = 12
	swapRadiusParkedKm = 2.0
	swapRadiusDriveKm  = 4.0
)

// PlanService turns a pool of raw place records into an ordered,
// time-boxed, multi-stop plan.
type PlanService struct {
	Provider PlacesProvider
}

func NewPlanService() *PlanService {
	return &PlanService{
		Provider: NewGooglePlacesService(),
	}
}

func normalizeRequest(req *models.PlanRequest) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.TotalMinutes = utils.ClampInt(req.TotalMinutes, minTotalMinutes, maxTotalMinutes)
	req.BufferMinutes = utils.ClampInt(req.BufferMinutes, 0, maxBufferMins)

	var vibes []string
	for _, vibe := range req.Vibes {
		vibe = strings.ToLower(strings.TrimSpace(vibe))
		if vibe != "" {
			vibes = append(vibes, vibe)
		}
	}
	if len(vibes) == 0 {
		vibes = []string{defaultVibe}
	}
	req.Vibes = vibes
}

// BuildPlan runs the full pipeline: pool, select, sequence, enrich,
// legs, allocate, assemble.
func (ps *PlanService) BuildPlan(ctx context.Context, req *models.PlanRequest) (*models.PlanResponse, error) {
	normalizeRequest(req)
	if req.Destination == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "destination is required")
	}

	stopCount := stopCountFor(req.TotalMinutes)
	log.Printf("[PLAN] Building plan: destination=%q stops=%d vibes=%v parkOnce=%v riderMode=%v",
		req.Destination, stopCount, req.Vibes, req.ParkOnce, req.RiderMode)

	pool, err := ps.buildPool(ctx, req, req.RiderMode)
	if err != nil {
		return nil, err
	}
	log.Printf("[PLAN] Pool built: candidates=%d center=%v", len(pool.Places), pool.Center != nil)

	desired := desiredCategories(req.Vibes, stopCount)
	picked := selectStops(pool.Places, stopCount, desired, req.ParkOnce)
	ordered := orderStops(picked, req.ParkOnce, req.RiderMode)

	stops, err := ps.enrichStops(ctx, ordered, pool.Places, stopCount, req.Destination)
	if err != nil {
		return nil, err
	}

	legs, err := ps.buildLegs(ctx, stops, req.ParkOnce, req.BufferMinutes)
	if err != nil {
		return nil, err
	}

	travelTotal := 0
	for _, leg := range legs {
		travelTotal += leg.Minutes
	}
	remaining := req.TotalMinutes - travelTotal
	if remaining < minStopBudgetMinutes {
		remaining = minStopBudgetMinutes
	}
	allocated := allocateStopMinutes(remaining, len(stops))
	for i := range stops {
		stops[i].Minutes = allocated[i]
		if stops[i].Minutes < minStopMinutes {
			stops[i].Minutes = minStopMinutes
		}
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

// enrichStops walks the ordered picks (then the rest of the pool as
// fallback) sequentially, keeping open places until enough stops are
// collected. Sequential on purpose: it stops calling the provider the
// moment enough open stops are found.
func (ps *PlanService) enrichStops(ctx context.Context, ordered, pool []models.Place, stopCount int, destination string) ([]models.Stop, error) {
	candidates := append([]models.Place{}, ordered...)
	used := make(map[string]bool, len(ordered))
	for _, place := range ordered {
		used[place.ID] = true
	}
	for _, place := range pool {
		if !used[place.ID] {
			candidates = append(candidates, place)
		}
	}

	maxAttempts := stopCount * enrichAttemptsPerStop
	if len(pool) < maxAttempts {
		maxAttempts = len(pool)
	}

	var stops []models.Stop
	for attempts := 0; attempts < maxAttempts && attempts < len(candidates); attempts++ {
		if len(stops) >= stopCount {
			break
		}
		stop, open, err := ps.enrichStop(ctx, candidates[attempts], destination)
		if err != nil {
			return nil, err
		}
		if !open {
			log.Printf("[PLAN] Skipping closed place %q", candidates[attempts].Title)
			continue
		}
		stops = append(stops, *stop)
	}

	if len(stops) < minPlanStops {
		return nil, utils.NewCustomError(http.StatusNotFound, utils.ErrNotEnoughOpen)
	}
	return stops, nil
}

// enrichStop fetches details plus the best-effort extras for one
// candidate. Returns open=false when the place reports itself closed.
func (ps *PlanService) enrichStop(ctx context.Context, place models.Place, destination string) (*models.Stop, bool, error) {
	details, err := ps.Provider.PlaceDetails(ctx, place.ID)
	if err != nil {
		return nil, false, err
	}
	if details.OpenNow != nil && !*details.OpenNow {
		return nil, false, nil
	}

	location := place.Location
	if location == nil {
		location = details.Location
	}

	stop := &models.Stop{
		PlaceID:     place.ID,
		Title:       details.Title,
		Address:     details.Address,
		Location:    *location,
		Category:    PickCategory(details.Types),
		Rating:      details.Rating,
		ReviewCount: details.ReviewCount,
		PriceLevel:  details.PriceLevel,
		OpenNow:     details.OpenNow,
		Hours:       details.WeekdayHours,
		Review:      truncateReview(details.ReviewText),
		MapsLink:    details.MapsLink,
		Geohash:     geohash.Encode(location.Latitude, location.Longitude),
	}
	if stop.Title == "" {
		stop.Title = place.Title
	}

	// Photo and parking lookups degrade to absent on any failure.
	if details.PhotoName != "" {
		if uri, err := ps.Provider.PhotoURI(ctx, details.PhotoName, 800); err == nil {
			stop.ImageURL = uri
		}
	}
	stop.Parking = ps.findParking(ctx, stop.Title, destination, location)

	return stop, true, nil
}

func (ps *PlanService) findParking(ctx context.Context, title, destination string, near *models.GeoLocation) *models.ParkingSpot {
	query := fmt.Sprintf("parking near %s %s", title, destination)
	hits, err := ps.Provider.SearchPlaces(ctx, query, 1, near)
	if err != nil || len(hits) == 0 || hits[0].Location == nil {
		return nil
	}
	return &models.ParkingSpot{
		Title:    hits[0].Title,
		Address:  hits[0].Address,
		Location: *hits[0].Location,
		MapsLink: hits[0].MapsLink,
	}
}

func truncateReview(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= reviewExcerptLimit {
		return string(runes)
	}
	return string(runes[:reviewExcerptLimit]) + "…"
}

// buildLegs computes travel between consecutive stops, in stop order
// since each leg needs resolved endpoints. Park-once prepends the
// walk from parking and makes every leg a walking leg.
func (ps *PlanService) buildLegs(ctx context.Context, stops []models.Stop, parkOnce bool, bufferMinutes int) ([]models.TravelLeg, error) {
	mode := models.ModeDrive
	if parkOnce {
		mode = models.ModeWalk
	}

	var legs []models.TravelLeg
	if parkOnce && len(stops) > 0 {
		minutes := minLegMinutes
		if stops[0].Parking != nil {
			minutes = ps.travelOrDefault(ctx, stops[0].Parking.Location, stops[0].Location, models.ModeWalk)
		}
		legs = append(legs, models.TravelLeg{
			Mode:    models.ModeWalk,
			Minutes: minutes + bufferMinutes,
			Title:   fmt.Sprintf("Walk from parking to %s", stops[0].Title),
		})
	}

	for i := 0; i+1 < len(stops); i++ {
		minutes, err := ps.Provider.TravelMinutes(ctx, stops[i].Location, stops[i+1].Location, mode)
		if err != nil {
			return nil, err
		}
		legs = append(legs, models.TravelLeg{
			Mode:    mode,
			Minutes: minutes + bufferMinutes,
			Title:   fmt.Sprintf("From %s to %s", stops[i].Title, stops[i+1].Title),
		})
	}
	return legs, nil
}

// travelOrDefault is used for the synthetic parking leg only; a failed
// lookup falls back to the floor instead of failing the plan.
func (ps *PlanService) travelOrDefault(ctx context.Context, origin, dest models.GeoLocation, mode string) int {
	minutes, err := ps.Provider.TravelMinutes(ctx, origin, dest, mode)
	if err != nil {
		return minLegMinutes
	}
	return minutes
}
