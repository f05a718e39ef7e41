package models

// Travel modes for a leg between stops.
const (
	ModeDrive = "drive"
	ModeWalk  = "walk"
)

// Plan item kinds.
const (
	ItemStop   = "stop"
	ItemTravel = "travel"
)

// Stop is a place chosen for the itinerary, enriched with details.
type Stop struct {
	PlaceID     string       `json:"place_id"`
	Title       string       `json:"title"`
	Address     string       `json:"address,omitempty"`
	Location    GeoLocation  `json:"location"`
	Category    Category     `json:"category"`
	Minutes     int          `json:"minutes"`
	Rating      float64      `json:"rating,omitempty"`
	ReviewCount int          `json:"review_count,omitempty"`
	PriceLevel  int          `json:"price_level,omitempty"`
	OpenNow     *bool        `json:"open_now,omitempty"`
	Hours       []string     `json:"hours,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Review      string       `json:"review,omitempty"`
	MapsLink    string       `json:"maps_link,omitempty"`
	Geohash     string       `json:"geohash,omitempty"`
	Parking     *ParkingSpot `json:"parking,omitempty"`
}

// ParkingSpot is a best-effort nearby parking option for a stop.
type ParkingSpot struct {
	Title    string      `json:"title"`
	Address  string      `json:"address,omitempty"`
	Location GeoLocation `json:"location"`
	MapsLink string      `json:"maps_link,omitempty"`
}

// TravelLeg is the transition between two consecutive stops.
type TravelLeg struct {
	Mode    string `json:"mode"`
	Minutes int    `json:"minutes"`
	Title   string `json:"title"`
}

// PlanItem is the stop/travel union making up the itinerary sequence.
type PlanItem struct {
	Kind    string     `json:"kind"`
	Minutes int        `json:"minutes"`
	Stop    *Stop      `json:"stop,omitempty"`
	Travel  *TravelLeg `json:"travel,omitempty"`
}

// PlanRequest is the body for POST /v1/plans.
type PlanRequest struct {
	Destination   string   `json:"destination" binding:"required"`
	TotalMinutes  int      `json:"total_minutes"`
	Vibes         []string `json:"vibes"`
	ParkOnce      bool     `json:"park_once"`
	RiderMode     bool     `json:"rider_mode"`
	BufferMinutes int      `json:"buffer_minutes"`
	ExcludeIDs    []string `json:"exclude_ids"`
}

// SwapStopInput is one existing stop as the client holds it. All
// fields are required; durations are preserved, not recomputed.
type SwapStopInput struct {
	PlaceID  string       `json:"place_id"`
	Title    string       `json:"title"`
	Minutes  int          `json:"minutes"`
	Location *GeoLocation `json:"location"`
}

// SwapRequest is the body for POST /v1/plans/swap.
type SwapRequest struct {
	PlanRequest
	Stops     []SwapStopInput `json:"stops" binding:"required"`
	SwapIndex int             `json:"swap_index"`
	Anchor    *GeoLocation    `json:"anchor"`
}

// PlanResponse is the assembled itinerary.
type PlanResponse struct {
	Destination  string     `json:"destination"`
	TotalMinutes int        `json:"total_minutes"`
	Vibe         string     `json:"vibe"`
	ParkOnce     bool       `json:"park_once"`
	RiderMode    bool       `json:"rider_mode"`
	Items        []PlanItem `json:"items"`
}
