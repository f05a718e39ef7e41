package models

// Category is the coarse bucket a place falls into. Derived from the
// provider's type tags, attraction when nothing else matches.
type Category string

const (
	CategoryFood       Category = "food"
	CategoryPark       Category = "park"
	CategoryAttraction Category = "attraction"
)

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is one raw candidate from a text search. Lives only for the
// duration of a single planning request.
type Place struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Address     string       `json:"address"`
	Location    *GeoLocation `json:"location"`
	Types       []string     `json:"types"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	MapsLink    string       `json:"maps_link,omitempty"`
}

// PlaceDetails is the enriched view of a single place.
type PlaceDetails struct {
	Place
	PriceLevel   int      `json:"price_level"` // 0 = unknown, 1..4
	OpenNow      *bool    `json:"open_now"`    // nil = unknown
	WeekdayHours []string `json:"weekday_hours"`
	PhotoName    string   `json:"photo_name"`
	ReviewText   string   `json:"review_text"`
}
