package services

import (
	"math"

	"TripWeaver/models"
)

// Type-tag tables. Kept as data so the category and denylist policy
// stays auditable in one spot.
var foodTypes = map[string]bool{
	"restaurant":    true,
	"cafe":          true,
	"bakery":        true,
	"bar":           true,
	"meal_takeaway": true,
	"meal_delivery": true,
}

var parkTypes = map[string]bool{
	"park":            true,
	"natural_feature": true,
	"campground":      true,
	"rv_park":         true,
	"hiking_area":     true,
}

// categoryRules are checked in order, first match wins. Anything that
// matches neither rule is an attraction.
var categoryRules = []struct {
	category models.Category
	types    map[string]bool
}{
	{models.CategoryFood, foodTypes},
	{models.CategoryPark, parkTypes},
}

// noisyTypes are non-touristic tags. A place whose tags are all in
// this list is dropped regardless of rating.
var noisyTypes = map[string]bool{
	"accounting":              true,
	"atm":                     true,
	"bank":                    true,
	"bus_station":             true,
	"car_dealer":              true,
	"car_rental":              true,
	"car_repair":              true,
	"car_wash":                true,
	"city_hall":               true,
	"courthouse":              true,
	"dentist":                 true,
	"doctor":                  true,
	"electrician":             true,
	"funeral_home":            true,
	"gas_station":             true,
	"hospital":                true,
	"insurance_agency":        true,
	"lawyer":                  true,
	"local_government_office": true,
	"locksmith":               true,
	"moving_company":          true,
	"parking":                 true,
	"pharmacy":                true,
	"physiotherapist":         true,
	"plumber":                 true,
	"police":                  true,
	"post_office":             true,
	"real_estate_agency":      true,
	"roofing_contractor":      true,
	"storage":                 true,
	"subway_station":          true,
	"taxi_stand":              true,
	"train_station":           true,
	"transit_station":         true,
	"travel_agency":           true,
}

// scenicTypes get the bigger rider-mode boost.
var scenicTypes = map[string]bool{
	"tourist_attraction": true,
	"park":               true,
	"natural_feature":    true,
	"viewpoint":          true,
	"lookout":            true,
	"hiking_area":        true,
	"campground":         true,
}

// Scoring weights and boosts.
const (
	ratingWeight     = 12.0
	reviewWeight     = 8.0
	attractionBoost  = 1.12
	parkBoost        = 1.08
	foodBoost        = 1.0
	riderScenicBoost = 1.18
	riderFoodBoost   = 1.08
)

// PickCategory maps a tag set to exactly one category. Pure and
// stable for the same tags.
func PickCategory(types []string) models.Category {
	for _, rule := range categoryRules {
		for _, t := range types {
			if rule.types[t] {
				return rule.category
			}
		}
	}
	return models.CategoryAttraction
}

// IsNoisy reports whether every tag of a non-empty tag set is on the
// denylist. An empty tag set is never noisy.
func IsNoisy(types []string) bool {
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if !noisyTypes[t] {
			return false
		}
	}
	return true
}

func hasAnyType(types []string, set map[string]bool) bool {
	for _, t := range types {
		if set[t] {
			return true
		}
	}
	return false
}

// ScoreCandidate ranks a place for selection. Monotonic in rating and
// review count; missing values default to zero and bottom out.
func ScoreCandidate(p models.Place, riderMode bool) float64 {
	score := p.Rating*ratingWeight + math.Log10(math.Max(1, float64(p.ReviewCount)))*reviewWeight

	switch PickCategory(p.Types) {
	case models.CategoryAttraction:
		score *= attractionBoost
	case models.CategoryPark:
		score *= parkBoost
	default:
		score *= foodBoost
	}

	if riderMode {
		if hasAnyType(p.Types, scenicTypes) {
			score *= riderScenicBoost
		} else if hasAnyType(p.Types, foodTypes) {
			score *= riderFoodBoost
		}
	}
	return score
}
