package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"TripWeaver/config"
	"TripWeaver/config/environment"
	"TripWeaver/models"
	"TripWeaver/utils"
)

const (
	placesBaseURL = "https://places.googleapis.com/v1"
	routesBaseURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

	searchFieldMask  = "places.id,places.displayName,places.formattedAddress,places.location,places.types,places.rating,places.userRatingCount,places.googleMapsUri"
	detailsFieldMask = "id,displayName,formattedAddress,location,types,rating,userRatingCount,priceLevel,currentOpeningHours,photos,reviews,googleMapsUri"

	// Fallback when the provider omits a route duration.
	defaultRouteSeconds = 900
	minLegMinutes       = 5

	searchBiasRadiusMeters = 15000.0
)

// PlacesProvider is the narrow contract the planning core consumes, so
// the pipeline can be tested without network access.
type PlacesProvider interface {
	SearchPlaces(ctx context.Context, query string, maxResults int, bias *models.GeoLocation) ([]models.Place, error)
	PlaceDetails(ctx context.Context, placeID string) (*models.PlaceDetails, error)
	TravelMinutes(ctx context.Context, origin, dest models.GeoLocation, mode string) (int, error)
	PhotoURI(ctx context.Context, photoName string, maxWidthPx int) (string, error)
}

// GooglePlacesService talks to the Places API (New) and the Routes API.
type GooglePlacesService struct {
	APIKey     string
	HTTPClient *http.Client
}

func NewGooglePlacesService() *GooglePlacesService {
	return &GooglePlacesService{
		APIKey:     environment.GetMapsAPIKey(),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ---- wire types ----

type searchTextRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LocationBias   *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle circleBias `json:"circle"`
}

type circleBias struct {
	Center wireLatLng `json:"center"`
	Radius float64    `json:"radius"`
}

type wireLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextResponse struct {
	Places []wirePlace `json:"places"`
}

type wirePlace struct {
	ID                  string            `json:"id"`
	DisplayName         *wireLocalized    `json:"displayName"`
	FormattedAddress    string            `json:"formattedAddress"`
	Location            *wireLatLng       `json:"location"`
	Types               []string          `json:"types"`
	Rating              *float64          `json:"rating"`
	UserRatingCount     *int              `json:"userRatingCount"`
	PriceLevel          string            `json:"priceLevel"`
	CurrentOpeningHours *wireOpeningHours `json:"currentOpeningHours"`
	Photos              []wirePhoto       `json:"photos"`
	Reviews             []wireReview      `json:"reviews"`
	GoogleMapsURI       string            `json:"googleMapsUri"`
}

type wireLocalized struct {
	Text string `json:"text"`
}

type wireOpeningHours struct {
	OpenNow             *bool    `json:"openNow"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

type wirePhoto struct {
	Name string `json:"name"`
}

type wireReview struct {
	Text *wireLocalized `json:"text"`
}

type photoMediaResponse struct {
	PhotoURI string `json:"photoUri"`
}

type computeRoutesRequest struct {
	Origin      routeWaypoint `json:"origin"`
	Destination routeWaypoint `json:"destination"`
	TravelMode  string        `json:"travelMode"`
}

type routeWaypoint struct {
	Location routeLocation `json:"location"`
}

type routeLocation struct {
	LatLng wireLatLng `json:"latLng"`
}

type computeRoutesResponse struct {
	Routes []struct {
		Duration string `json:"duration"`
	} `json:"routes"`
}

var priceLevels = map[string]int{
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// ---- provider calls ----

func (s *GooglePlacesService) SearchPlaces(ctx context.Context, query string, maxResults int, bias *models.GeoLocation) ([]models.Place, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	body := searchTextRequest{TextQuery: query, MaxResultCount: maxResults}
	if bias != nil {
		body.LocationBias = &locationBias{
			Circle: circleBias{
				Center: wireLatLng{Latitude: bias.Latitude, Longitude: bias.Longitude},
				Radius: searchBiasRadiusMeters,
			},
		}
	}

	var resp searchTextResponse
	if err := s.postJSON(ctx, placesBaseURL+"/places:searchText", searchFieldMask, body, &resp); err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(resp.Places))
	for _, wp := range resp.Places {
		places = append(places, toPlace(wp))
	}
	return places, nil
}

func (s *GooglePlacesService) PlaceDetails(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/places/%s", placesBaseURL, url.PathEscape(placeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}
	s.setHeaders(req, detailsFieldMask)

	var wp wirePlace
	if err := s.do(req, &wp); err != nil {
		return nil, err
	}

	details := &models.PlaceDetails{
		Place:      toPlace(wp),
		PriceLevel: priceLevels[wp.PriceLevel],
	}
	if wp.CurrentOpeningHours != nil {
		details.OpenNow = wp.CurrentOpeningHours.OpenNow
		details.WeekdayHours = wp.CurrentOpeningHours.WeekdayDescriptions
	}
	if len(wp.Photos) > 0 {
		details.PhotoName = wp.Photos[0].Name
	}
	if len(wp.Reviews) > 0 && wp.Reviews[0].Text != nil {
		details.ReviewText = wp.Reviews[0].Text.Text
	}
	return details, nil
}

func (s *GooglePlacesService) TravelMinutes(ctx context.Context, origin, dest models.GeoLocation, mode string) (int, error) {
	if err := s.checkKey(); err != nil {
		return 0, err
	}

	cacheKey := config.GetCacheKey("route",
		fmt.Sprintf("%.5f,%.5f", origin.Latitude, origin.Longitude),
		fmt.Sprintf("%.5f,%.5f", dest.Latitude, dest.Longitude),
		mode)
	if config.RouteCache != nil {
		if cached, found := config.RouteCache.Get(cacheKey); found {
			return cached.(int), nil
		}
	}

	travelMode := "DRIVE"
	if mode == models.ModeWalk {
		travelMode = "WALK"
	}
	body := computeRoutesRequest{
		Origin:      routeWaypoint{Location: routeLocation{LatLng: wireLatLng{Latitude: origin.Latitude, Longitude: origin.Longitude}}},
		Destination: routeWaypoint{Location: routeLocation{LatLng: wireLatLng{Latitude: dest.Latitude, Longitude: dest.Longitude}}},
		TravelMode:  travelMode,
	}

	var resp computeRoutesResponse
	if err := s.postJSON(ctx, routesBaseURL, "routes.duration", body, &resp); err != nil {
		return 0, err
	}

	seconds := defaultRouteSeconds
	if len(resp.Routes) > 0 && resp.Routes[0].Duration != "" {
		if parsed, err := strconv.Atoi(strings.TrimSuffix(resp.Routes[0].Duration, "s")); err == nil {
			seconds = parsed
		}
	}

	minutes := int(math.Ceil(float64(seconds) / 60.0))
	if minutes < minLegMinutes {
		minutes = minLegMinutes
	}
	if config.RouteCache != nil {
		config.RouteCache.SetDefault(cacheKey, minutes)
	}
	return minutes, nil
}

// PhotoURI is best-effort: any failure returns an empty URI.
func (s *GooglePlacesService) PhotoURI(ctx context.Context, photoName string, maxWidthPx int) (string, error) {
	if s.APIKey == "" || photoName == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/%s/media?maxWidthPx=%d&skipHttpRedirect=true", placesBaseURL, photoName, maxWidthPx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", nil
	}
	req.Header.Set("X-Goog-Api-Key", s.APIKey)

	var resp photoMediaResponse
	if err := s.do(req, &resp); err != nil {
		return "", nil
	}
	return resp.PhotoURI, nil
}

// ---- plumbing ----

func (s *GooglePlacesService) checkKey() error {
	if s.APIKey == "" {
		return utils.NewCustomError(http.StatusInternalServerError, utils.ErrMissingAPIKey)
	}
	return nil
}

func (s *GooglePlacesService) setHeaders(req *http.Request, fieldMask string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.APIKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
}

func (s *GooglePlacesService) postJSON(ctx context.Context, endpoint, fieldMask string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}
	s.setHeaders(req, fieldMask)
	return s.do(req, out)
}

func (s *GooglePlacesService) do(req *http.Request, out interface{}) error {
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return utils.NewCustomError(http.StatusBadGateway, utils.ErrProviderUnavailable)
	}
	return nil
}

func toPlace(wp wirePlace) models.Place {
	p := models.Place{
		ID:       wp.ID,
		Address:  wp.FormattedAddress,
		Types:    wp.Types,
		MapsLink: wp.GoogleMapsURI,
	}
	if wp.DisplayName != nil {
		p.Title = wp.DisplayName.Text
	}
	if wp.Location != nil {
		p.Location = &models.GeoLocation{Latitude: wp.Location.Latitude, Longitude: wp.Location.Longitude}
	}
	if wp.Rating != nil {
		p.Rating = *wp.Rating
	}
	if wp.UserRatingCount != nil {
		p.ReviewCount = *wp.UserRatingCount
	}
	return p
}
